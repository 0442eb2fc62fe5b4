package content

import (
	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
)

// ItemTemplate определяет шаблон предмета
type ItemTemplate struct {
	ID          string
	Name        string
	Slot        enums.ItemSlot
	Bonus       domain.StatBlock
	Rare        bool
	Description string
}

// Item создаёт экземпляр предмета. ID экземпляра совпадает с ID шаблона:
// предметы различаются только типом.
func (t ItemTemplate) Item() domain.Item {
	return domain.Item{
		ID:          t.ID,
		Name:        t.Name,
		Slot:        t.Slot,
		Bonus:       t.Bonus,
		Rare:        t.Rare,
		Description: t.Description,
	}
}

// --- ПРЕДМЕТЫ ---

var ItemTemplates = map[string]ItemTemplate{
	"pipe_blade": {
		ID:          "pipe_blade",
		Name:        "Pipe Blade",
		Slot:        enums.ItemSlotWeapon,
		Bonus:       domain.StatBlock{Ignition: 3},
		Description: "Заточенная водопроводная труба.",
	},
	"arc_baton": {
		ID:          "arc_baton",
		Name:        "Arc Baton",
		Slot:        enums.ItemSlotWeapon,
		Bonus:       domain.StatBlock{Ignition: 5, Logic: 2},
		Description: "Дубинка с конденсатором.",
	},
	"academy_blazer": {
		ID:          "academy_blazer",
		Name:        "Reinforced Blazer",
		Slot:        enums.ItemSlotArmor,
		Bonus:       domain.StatBlock{Structure: 4},
		Description: "Форменный пиджак с кевларовой подкладкой.",
	},
	"runner_jacket": {
		ID:          "runner_jacket",
		Name:        "Runner Jacket",
		Slot:        enums.ItemSlotArmor,
		Bonus:       domain.StatBlock{Structure: 2, Flow: 3},
		Description: "Лёгкая куртка курьеров.",
	},
	"neural_band": {
		ID:          "neural_band",
		Name:        "Neural Band",
		Slot:        enums.ItemSlotAccessory,
		Bonus:       domain.StatBlock{Logic: 3, Flow: 1},
		Description: "Повязка с нейроинтерфейсом.",
	},
	"data_shard_prototype": {
		ID:          "data_shard_prototype",
		Name:        "Prototype Data Shard",
		Slot:        enums.ItemSlotAccessory,
		Bonus:       domain.StatBlock{Logic: 5, Flow: 2},
		Rare:        true,
		Description: "Кристалл памяти с неизвестной прошивкой.",
	},
}
