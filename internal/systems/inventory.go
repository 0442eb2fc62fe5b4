package systems

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/content"
	"neotokyo-core/pkg/logger"
)

var (
	ErrItemNotOwned  = errors.New("item not in inventory")
	ErrUnknownItem   = errors.New("unknown item")
	ErrNotEquippable = errors.New("item cannot be equipped")
	ErrSlotEmpty     = errors.New("equipment slot is empty")
)

// --- EQUIP ---

// Equip надевает предмет из инвентаря игрока и пересобирает статы.
// Надетый предмет остаётся в Inventory: Equipment хранит только то, что из него активно.
func Equip(p domain.PlayerState, reg content.Registry, itemID string) (domain.PlayerState, error) {
	if !slices.Contains(p.Inventory, itemID) {
		return p, fmt.Errorf("equip %q: %w", itemID, ErrItemNotOwned)
	}

	tpl, ok := reg.LookupItem(itemID)
	if !ok {
		return p, fmt.Errorf("equip %q: %w", itemID, ErrUnknownItem)
	}

	item := tpl.Item()
	if !equippable(item.Slot) {
		return p, fmt.Errorf("equip %q: %w", itemID, ErrNotEquippable)
	}

	next := p.Clone()
	old := next.Equipment.Slot(item.Slot)
	next.Equipment = next.Equipment.WithSlot(item.Slot, &item)
	next.Stats = RecalculateStats(next.Level.Current, next.Level.Allocated, next.Equipment)

	fields := logrus.Fields{"item_id": itemID, "slot": item.Slot.String()}
	if old != nil {
		fields["replaced"] = old.ID
	}
	logger.For("inventory").WithFields(fields).Debug("Item equipped.")

	return next, nil
}

// --- UNEQUIP ---

// Unequip освобождает слот и пересобирает статы.
func Unequip(p domain.PlayerState, slot enums.ItemSlot) (domain.PlayerState, error) {
	if p.Equipment.Slot(slot) == nil {
		return p, fmt.Errorf("unequip %s: %w", slot, ErrSlotEmpty)
	}

	next := p.Clone()
	next.Equipment = next.Equipment.WithSlot(slot, nil)
	next.Stats = RecalculateStats(next.Level.Current, next.Level.Allocated, next.Equipment)
	return next, nil
}

// EquipEntity надевает предмет на боевую сущность.
// Если у сущности есть прогресс, статы пересобираются от уровня, иначе бонус
// снятого предмета вычитается, а нового прибавляется. Без обрезки до нуля:
// любая цепочка смен предметов обратима.
func EquipEntity(e domain.Entity, item domain.Item) (domain.Entity, error) {
	if !equippable(item.Slot) {
		return e, fmt.Errorf("equip %q: %w", item.ID, ErrNotEquippable)
	}

	next := e.Clone()
	if next.Equipment == nil {
		next.Equipment = &domain.EquipmentComponent{}
	}
	old := next.Equipment.Slot(item.Slot)
	eq := next.Equipment.WithSlot(item.Slot, &item)
	next.Equipment = &eq

	switch {
	case next.Progress != nil:
		stats := RecalculateStats(next.Progress.Current, next.Progress.Allocated, eq)
		next.Stats = &stats
	case next.Stats != nil:
		stats := *next.Stats
		if old != nil {
			stats = stats.Add(negate(old.Bonus))
		}
		stats = stats.Add(item.Bonus)
		next.Stats = &stats
	}
	return next, nil
}

func equippable(slot enums.ItemSlot) bool {
	switch slot {
	case enums.ItemSlotWeapon, enums.ItemSlotArmor, enums.ItemSlotAccessory:
		return true
	}
	return false
}

func negate(s domain.StatBlock) domain.StatBlock {
	return domain.StatBlock{
		Structure: -s.Structure,
		Ignition:  -s.Ignition,
		Logic:     -s.Logic,
		Flow:      -s.Flow,
	}
}
