package domain

import "neotokyo-core/internal/core/types/enums"

// --- СУЩНОСТЬ ---

// Entity - набор необязательных компонентов.
// Если компонент nil - свойство отсутствует. Рендер и трансформы ядру не нужны.
//
// Обновления не меняют сущность на месте: системы возвращают копию (Clone).
type Entity struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Class enums.EntityClass `json:"class"`

	Position      *Vec3               `json:"position,omitempty"`
	Health        *HealthComponent    `json:"health,omitempty"`
	Stats         *StatBlock          `json:"stats,omitempty"`
	Invincibility *InvincibilityState `json:"invincibility,omitempty"`
	Stability     *StabilityState     `json:"stability,omitempty"`
	Break         *BreakState         `json:"break,omitempty"`
	Progress      *LevelProgress      `json:"level,omitempty"`
	Equipment     *EquipmentComponent `json:"equipment,omitempty"`

	Faction        enums.Faction        `json:"faction,omitempty"`
	CharacterState enums.CharacterState `json:"characterState"`
}

// Clone - глубокая копия: компоненты копии не разделяют память с оригиналом.
func (e Entity) Clone() Entity {
	c := e
	c.Position = clonePtr(e.Position)
	c.Health = clonePtr(e.Health)
	c.Stats = clonePtr(e.Stats)
	c.Invincibility = clonePtr(e.Invincibility)
	c.Stability = clonePtr(e.Stability)
	c.Break = clonePtr(e.Break)
	c.Progress = clonePtr(e.Progress)
	if e.Equipment != nil {
		eq := e.Equipment.WithSlot(enums.ItemSlotWeapon, e.Equipment.Weapon).
			WithSlot(enums.ItemSlotArmor, e.Equipment.Armor).
			WithSlot(enums.ItemSlotAccessory, e.Equipment.Accessory)
		c.Equipment = &eq
	}
	return c
}

// IsDead - здоровья нет (или компонента нет вовсе - тогда сущность неуязвима и не "мертва").
func (e Entity) IsDead() bool {
	return e.Health != nil && e.Health.Current <= 0
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
