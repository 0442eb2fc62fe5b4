package domain

import "neotokyo-core/internal/core/types/enums"

// AlignmentShift - изменение репутации у фракции.
type AlignmentShift struct {
	Faction enums.Faction `json:"faction"`
	Amount  int           `json:"amount"`
}

// Reward - награда, которую вызывающий код передаёт в аккумуляторы прогресса.
type Reward struct {
	XP             int             `json:"xp"`
	Credits        int             `json:"credits"`
	Items          []string        `json:"items,omitempty"` // ID шаблонов предметов
	AlignmentShift *AlignmentShift `json:"alignmentShift,omitempty"`
}

// Requirements - условия доступа к квесту.
type Requirements struct {
	Level int `json:"level,omitempty"`
}

type Quest struct {
	ID           string          `json:"id"`
	Type         enums.QuestType `json:"type"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Objective    string          `json:"objective"`
	Location     string          `json:"location"`
	Rewards      Reward          `json:"rewards"`
	Requirements *Requirements   `json:"requirements,omitempty"`
	Completed    bool            `json:"completed"`
}

// QuestCluster - ровно один основной, два побочных и один секретный квест на район.
type QuestCluster struct {
	DistrictID   string   `json:"districtId"`
	DistrictName string   `json:"districtName"`
	Main         Quest    `json:"main"`
	Sides        [2]Quest `json:"sides"`
	Secret       Quest    `json:"secret"`
}

// All возвращает квесты кластера по порядку: main, side_1, side_2, secret.
func (c QuestCluster) All() []Quest {
	return []Quest{c.Main, c.Sides[0], c.Sides[1], c.Secret}
}

// Find ищет квест по ID.
func (c QuestCluster) Find(id string) (Quest, bool) {
	for _, q := range c.All() {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}
