package domain

import (
	"time"

	"neotokyo-core/internal/core/types/enums"
)

// StabilityProfile - параметры устойчивости класса сущности.
type StabilityProfile struct {
	Max       float64
	RegenRate float64 // единиц в секунду
}

// DefaultRegenDelay - пауза после удара, прежде чем шкала начнёт восстанавливаться.
const DefaultRegenDelay = 1000 * time.Millisecond

// StabilityProfiles - устойчивость по классам.
var StabilityProfiles = map[enums.EntityClass]StabilityProfile{
	enums.EntityClassGrunt:  {Max: 100, RegenRate: 10},
	enums.EntityClassBoss:   {Max: 500, RegenRate: 20},
	enums.EntityClassPlayer: {Max: 200, RegenRate: 15},
}

// NewStability создает полную шкалу для класса.
// Неизвестный класс получает параметры рядового врага.
func NewStability(class enums.EntityClass) StabilityState {
	p, ok := StabilityProfiles[class]
	if !ok {
		p = StabilityProfiles[enums.EntityClassGrunt]
	}
	return StabilityState{
		Current:        p.Max,
		Max:            p.Max,
		RegenRate:      p.RegenRate,
		RegenDelay:     DefaultRegenDelay,
		LastDamageTime: 0,
	}
}
