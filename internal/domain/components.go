package domain

import (
	"time"

	"neotokyo-core/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// Vec3 - позиция или полуразмеры в мировых координатах.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HealthComponent - очки здоровья.
type HealthComponent struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// TakeDamage возвращает новое здоровье. died=true только в момент смерти.
func (h HealthComponent) TakeDamage(amount int) (next HealthComponent, died bool) {
	if h.Current <= 0 {
		return h, false
	}
	if amount < 0 {
		amount = 0
	}

	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return h, true
	}
	return h, false
}

// Heal лечит, не превышая максимум. Трупы не лечим.
func (h HealthComponent) Heal(amount int) HealthComponent {
	if h.Current <= 0 {
		return h
	}
	h.Current = min(h.Max, h.Current+amount)
	return h
}

// StabilityState - шкала устойчивости (poise). 0 ≤ Current ≤ Max.
type StabilityState struct {
	Current        float64       `json:"current"`
	Max            float64       `json:"max"`
	RegenRate      float64       `json:"regenRate"` // единиц в секунду
	RegenDelay     time.Duration `json:"regenDelay"`
	LastDamageTime time.Duration `json:"lastDamageTime"`
}

// BreakState существует только пока цель "сломлена".
type BreakState struct {
	Gauge         float64       `json:"gauge"`
	MaxGauge      float64       `json:"maxGauge"`
	IsBroken      bool          `json:"isBroken"`
	BreakDuration time.Duration `json:"breakDuration"`
	BreakTimer    time.Duration `json:"breakTimer"` // момент окончания
	RecoveryRate  float64       `json:"recoveryRate"`
}

// InvincibilityState - окно неуязвимости после удара.
// Remaining ≤ Duration; Active=false, когда Remaining ≤ 0.
type InvincibilityState struct {
	Active    bool          `json:"active"`
	Remaining time.Duration `json:"remaining"`
	Duration  time.Duration `json:"duration"`
}

// LevelProgress - уровень и опыт.
type LevelProgress struct {
	Current     int       `json:"current"`
	XP          int       `json:"xp"`
	NextLevelXP int       `json:"nextLevelXp"` // 100 × Current
	StatPoints  int       `json:"statPoints"`
	Allocated   StatBlock `json:"allocated"` // вложенные вручную очки
}

// Item - экипируемый или квестовый предмет.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slot        enums.ItemSlot `json:"slot"`
	Bonus       StatBlock      `json:"bonus"`
	Rare        bool           `json:"rare,omitempty"`
	Description string         `json:"description,omitempty"`
}

// EquipmentComponent хранит экипированные предметы.
type EquipmentComponent struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	Accessory *Item `json:"accessory,omitempty"`
}

// Items возвращает экипированные предметы в фиксированном порядке слотов.
func (eq EquipmentComponent) Items() []Item {
	out := make([]Item, 0, 3)
	for _, it := range []*Item{eq.Weapon, eq.Armor, eq.Accessory} {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// Slot возвращает предмет в слоте (nil - пусто).
func (eq EquipmentComponent) Slot(slot enums.ItemSlot) *Item {
	switch slot {
	case enums.ItemSlotWeapon:
		return eq.Weapon
	case enums.ItemSlotArmor:
		return eq.Armor
	case enums.ItemSlotAccessory:
		return eq.Accessory
	}
	return nil
}

// WithSlot возвращает копию с предметом в слоте (nil снимает предмет).
func (eq EquipmentComponent) WithSlot(slot enums.ItemSlot, item *Item) EquipmentComponent {
	var p *Item
	if item != nil {
		c := *item
		p = &c
	}
	switch slot {
	case enums.ItemSlotWeapon:
		eq.Weapon = p
	case enums.ItemSlotArmor:
		eq.Armor = p
	case enums.ItemSlotAccessory:
		eq.Accessory = p
	}
	return eq
}
