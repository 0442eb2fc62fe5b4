package systems

import (
	"math"
	"time"

	"neotokyo-core/internal/domain"
)

// Параметры слома (stagger)
const (
	DefaultBreakDuration   = 5000 * time.Millisecond
	BreakGauge             = 100.0
	BreakRecoveryRate      = 20.0 // единиц шкалы слома в секунду
	BrokenDamageMultiplier = 1.5
)

// ReduceStability снимает устойчивость.
// Слом срабатывает только на переходе в ноль (было > 0, стало 0):
// повторные удары по уже пустой шкале слом не перезапускают.
func ReduceStability(s domain.StabilityState, damage float64, now time.Duration) (domain.StabilityState, bool) {
	if damage < 0 {
		damage = 0
	}

	prev := s.Current
	s.Current = math.Max(0, s.Current-damage)
	s.LastDamageTime = now

	return s, s.Current == 0 && prev > 0
}

// NewBreakState создает состояние слома с таймером now + duration.
func NewBreakState(now, duration time.Duration) *domain.BreakState {
	if duration <= 0 {
		duration = DefaultBreakDuration
	}
	return &domain.BreakState{
		Gauge:         BreakGauge,
		MaxGauge:      BreakGauge,
		IsBroken:      true,
		BreakDuration: duration,
		BreakTimer:    now + duration,
		RecoveryRate:  BreakRecoveryRate,
	}
}

// UpdateBreakState продвигает слом к моменту now.
// Возвращает nil, когда слом истёк (now ≥ BreakTimer).
func UpdateBreakState(b *domain.BreakState, now time.Duration) *domain.BreakState {
	if b == nil || !b.IsBroken || now >= b.BreakTimer {
		return nil
	}

	next := *b
	elapsed := now - (b.BreakTimer - b.BreakDuration)
	if elapsed < 0 {
		elapsed = 0
	}
	next.Gauge = math.Max(0, b.MaxGauge-b.RecoveryRate*elapsed.Seconds())
	return &next
}

// TickStability - шаг непрерывного времени для устойчивости и слома.
//
// Пока цель сломлена, шкала не восстанавливается. Когда слом истекает,
// шкала сбрасывается в максимум. Вне слома, после паузы RegenDelay
// с последнего удара, шкала растёт на RegenRate × delta, не выше Max.
func TickStability(s domain.StabilityState, b *domain.BreakState, now, delta time.Duration) (domain.StabilityState, *domain.BreakState) {
	if b != nil {
		next := UpdateBreakState(b, now)
		if next == nil {
			s.Current = s.Max
		}
		return s, next
	}

	if now-s.LastDamageTime < s.RegenDelay || delta <= 0 {
		return s, nil
	}

	s.Current = math.Min(s.Max, s.Current+s.RegenRate*delta.Seconds())
	return s, nil
}

// BreakDamageMultiplier - множитель урона по цели (×1.5, пока она сломлена).
func BreakDamageMultiplier(b *domain.BreakState) float64 {
	if b != nil && b.IsBroken {
		return BrokenDamageMultiplier
	}
	return 1
}
