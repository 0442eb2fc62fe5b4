package api

import (
	"encoding/json"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/internal/systems"
)

// Типы сообщений сервера
const (
	TypeInit   = "INIT"
	TypeUpdate = "UPDATE"
	TypeError  = "ERROR"
)

// Команды клиента
const (
	ActionNewGame        = "NEW_GAME"
	ActionStartEncounter = "START_ENCOUNTER"
	ActionCombat         = "ACTION"
	ActionCompleteQuest  = "COMPLETE_QUEST"
	ActionEquip          = "EQUIP"
	ActionUnequip        = "UNEQUIP"
	ActionAllocate       = "ALLOCATE"
	ActionInit           = "INIT"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Это снимок сессии после обработки одной команды.
type ServerResponse struct {
	// Type тип сообщения: INIT, UPDATE или ERROR.
	Type string `json:"type"`

	// SessionID сессия, к которой относится снимок.
	SessionID string `json:"sessionId"`

	// Seed мастер-сид текущей игры. По нему мир воспроизводится целиком.
	Seed string `json:"seed,omitempty"`

	// Districts и Quests отправляются только при создании игры (INIT).
	Districts []domain.District     `json:"districts,omitempty"`
	Quests    []domain.QuestCluster `json:"quests,omitempty"`

	// Player постоянное состояние игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Battle текущая встреча, если она идёт или только что закончилась.
	Battle *BattleView `json:"battle,omitempty"`

	// Results броски, разрешённые этой командой (для анимаций).
	Results []systems.ActionResult `json:"results,omitempty"`

	// Reward награда, выданная этой командой.
	Reward  *domain.Reward    `json:"reward,omitempty"`
	LevelUp *systems.XPResult `json:"levelUp,omitempty"`

	// Logs новые сообщения с прошлого ответа.
	Logs []LogEntry `json:"logs,omitempty"`

	// Error текст ошибки для Type == ERROR.
	Error string `json:"error,omitempty"`
}

// PlayerView это DTO для постоянного состояния игрока.
type PlayerView struct {
	domain.PlayerState
	MaxHP int `json:"maxHp"`
}

// BattleView это DTO для пошаговой встречи.
type BattleView struct {
	EncounterID string             `json:"encounterId"`
	Name        string             `json:"name"`
	Phase       enums.CombatPhase  `json:"phase"`
	Turn        int                `json:"turn"`
	Player      domain.Combatant   `json:"player"`
	Enemies     []domain.Combatant `json:"enemies"`
	Outcome     *systems.Outcome   `json:"outcome,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, QUEST, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Сервер подставляет его сам после рукопожатия.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// NewGamePayload используется для NEW_GAME. Пустой сид - случайный.
type NewGamePayload struct {
	Seed      string `json:"seed,omitempty"`
	Districts int    `json:"districts,omitempty"`
}

// EncounterPayload используется для START_ENCOUNTER.
type EncounterPayload struct {
	EncounterID string `json:"encounterId"`
}

// CombatPayload используется для ACTION внутри встречи.
type CombatPayload struct {
	Type     enums.ActionType `json:"type"`
	TargetID string           `json:"targetId,omitempty"`
}

// QuestPayload используется для COMPLETE_QUEST.
type QuestPayload struct {
	QuestID string `json:"questId"`
}

// ItemPayload используется для EQUIP.
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// SlotPayload используется для UNEQUIP.
type SlotPayload struct {
	Slot enums.ItemSlot `json:"slot"`
}

// AllocatePayload используется для ALLOCATE: сколько очков вложить в каждую характеристику.
type AllocatePayload struct {
	domain.StatBlock
}
