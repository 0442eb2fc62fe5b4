package api

import (
	"errors"

	"neotokyo-core/internal/core/types/enums"
)

// MaxDistricts - верхняя граница запроса районов.
const MaxDistricts = 64

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p NewGamePayload) Validate() error {
	if p.Districts < 0 || p.Districts > MaxDistricts {
		return errors.New("districts out of range")
	}
	return nil
}

func (p EncounterPayload) Validate() error {
	if p.EncounterID == "" {
		return errors.New("encounterId is required")
	}
	return nil
}

func (p QuestPayload) Validate() error {
	if p.QuestID == "" {
		return errors.New("questId is required")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	switch p.Slot {
	case enums.ItemSlotWeapon, enums.ItemSlotArmor, enums.ItemSlotAccessory:
		return nil
	}
	return errors.New("unknown equipment slot")
}

func (p AllocatePayload) Validate() error {
	if p.HasNegative() {
		return errors.New("allocation cannot be negative")
	}
	return nil
}
