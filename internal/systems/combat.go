package systems

import (
	"math"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
	"neotokyo-core/pkg/rng"
)

// Константы боевых формул
const (
	BaseHitChance    = 0.8
	HitChancePerFlow = 0.05
	MinHitChance     = 0.1
	MaxHitChance     = 1.0

	CritChancePerIgnition = 0.01
	MaxCritChance         = 0.5

	DefendMultiplier   = 0.5
	CriticalMultiplier = 2.0
)

// Action - действие бойца в его ход.
type Action struct {
	Type     enums.ActionType `json:"type"`
	TargetID string           `json:"targetId,omitempty"`
}

// ActionResult - итог действия; по нему внешний слой строит анимации.
type ActionResult struct {
	AttackerID string           `json:"attackerId"`
	DefenderID string           `json:"defenderId"`
	Action     enums.ActionType `json:"action"`
	Hit        bool             `json:"hit"`
	Critical   bool             `json:"critical"`
	Damage     int              `json:"damage"`
}

// Resolver разрешает действия, вытягивая броски из своего потока.
// Один Resolver - одна встреча; не потокобезопасен.
type Resolver struct {
	stream rng.Stream
}

// NewResolver создает резолвер поверх готового потока.
func NewResolver(stream rng.Stream) *Resolver {
	return &Resolver{stream: stream}
}

// NewSeededResolver - детерминированный резолвер: поток Derive(seed, key).
func NewSeededResolver(seed, key string) *Resolver {
	return NewResolver(rng.Derive(seed, key))
}

// NewUnseededResolver - режим "быстрой игры". Бои не воспроизводятся.
func NewUnseededResolver() *Resolver {
	return NewResolver(rng.Unseeded())
}

// HitChance = clamp(0.1, 1.0, 0.8 + (flowA − flowD) × 0.05)
func HitChance(attacker, defender domain.StatBlock) float64 {
	chance := BaseHitChance + float64(attacker.Flow-defender.Flow)*HitChancePerFlow
	return math.Max(MinHitChance, math.Min(MaxHitChance, chance))
}

// CritChance = min(0.5, ignition × 0.01)
func CritChance(attacker domain.StatBlock) float64 {
	return math.Min(MaxCritChance, float64(attacker.Ignition)*CritChancePerIgnition)
}

// BaseDamage = max(1, floor(ignition × 2 − structure × 0.5))
func BaseDamage(attacker, defender domain.StatBlock) int {
	raw := math.Floor(float64(attacker.Ignition)*2 - float64(defender.Structure)*0.5)
	return max(1, int(raw))
}

// FinalDamage применяет защиту (×0.5), затем крит (×2) и округляет вниз.
func FinalDamage(attacker, defender domain.StatBlock, defending, critical bool) int {
	damage := float64(BaseDamage(attacker, defender))
	if defending {
		damage *= DefendMultiplier
	}
	if critical {
		damage *= CriticalMultiplier
	}
	return int(math.Floor(damage))
}

// ExecuteAction разрешает действие attacker против defender.
// Возвращает обновлённого атакующего (флаг защиты) и результат;
// урон к защитнику применяет вызывающий код через ApplyDamage.
func (r *Resolver) ExecuteAction(attacker, defender domain.Combatant, action Action) (domain.Combatant, ActionResult) {
	result := ActionResult{
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		Action:     action.Type,
	}

	// Защиту нужно подтверждать каждый ход.
	attacker.Defending = false

	switch action.Type {
	case enums.ActionDefend:
		attacker.Defending = true
		return attacker, result

	case enums.ActionAttack:
		// ниже

	default:
		logger.For("combat_system").WithFields(logrus.Fields{
			"attacker_id": attacker.ID,
			"action":      action.Type,
		}).Warn("Unknown action type, turn skipped.")
		return attacker, result
	}

	result.Hit = r.stream.Next() < HitChance(attacker.Stats, defender.Stats)
	if result.Hit {
		result.Critical = r.stream.Next() < CritChance(attacker.Stats)
		result.Damage = FinalDamage(attacker.Stats, defender.Stats, defender.Defending, result.Critical)
	}

	logger.For("combat_system").WithFields(logrus.Fields{
		"attacker_id": attacker.ID,
		"defender_id": defender.ID,
		"hit":         result.Hit,
		"critical":    result.Critical,
		"damage":      result.Damage,
		"defending":   defender.Defending,
	}).Debug("Action resolved.")

	return attacker, result
}

// ApplyDamage возвращает бойца с уменьшенным здоровьем (не ниже нуля).
func ApplyDamage(c domain.Combatant, damage int) domain.Combatant {
	if damage < 0 {
		damage = 0
	}
	c.CurrentHP = max(0, c.CurrentHP-damage)
	return c
}

// IsDefeated - здоровье бойца исчерпано.
func IsDefeated(c domain.Combatant) bool {
	return c.CurrentHP <= 0
}
