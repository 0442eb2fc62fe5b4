package domain

import (
	"slices"

	"neotokyo-core/internal/core/types/enums"
)

// PlayerState - постоянное состояние игрока, на которое накладываются награды.
// Слой сохранений воспроизводит его повторным применением наград к состоянию по умолчанию.
type PlayerState struct {
	Level      LevelProgress         `json:"level"`
	Stats      StatBlock             `json:"stats"`
	Credits    int                   `json:"credits"`
	Inventory  []string              `json:"inventory"`
	Reputation map[enums.Faction]int `json:"reputation"`
	Equipment  EquipmentComponent    `json:"equipment"`
}

// Clone копирует срезы и карты, чтобы обновления не протекали в исходник.
func (p PlayerState) Clone() PlayerState {
	c := p
	c.Inventory = slices.Clone(p.Inventory)
	c.Reputation = make(map[enums.Faction]int, len(p.Reputation))
	for k, v := range p.Reputation {
		c.Reputation[k] = v
	}
	c.Equipment = p.Equipment.WithSlot(enums.ItemSlotWeapon, p.Equipment.Weapon).
		WithSlot(enums.ItemSlotArmor, p.Equipment.Armor).
		WithSlot(enums.ItemSlotAccessory, p.Equipment.Accessory)
	return c
}
