package systems

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
)

// DefaultInvincibilityDuration - окно неуязвимости после засчитанного удара.
const DefaultInvincibilityDuration = 500 * time.Millisecond

// AABB - коробка, выровненная по осям: центр и полуразмеры.
type AABB struct {
	Center      domain.Vec3 `json:"center"`
	HalfExtents domain.Vec3 `json:"halfExtents"`
}

// CheckAABBCollision - пересечение по всем трём осям.
// Касание гранями считается пересечением.
func CheckAABBCollision(a, b AABB) bool {
	return math.Abs(a.Center.X-b.Center.X) <= a.HalfExtents.X+b.HalfExtents.X &&
		math.Abs(a.Center.Y-b.Center.Y) <= a.HalfExtents.Y+b.HalfExtents.Y &&
		math.Abs(a.Center.Z-b.Center.Z) <= a.HalfExtents.Z+b.HalfExtents.Z
}

// Hitbox - активная зона атаки. HitEntities хранит всех, кого она уже задела:
// одна атака бьёт многих, но каждого - один раз.
type Hitbox struct {
	ID          string              `json:"id"`
	OwnerID     string              `json:"ownerId"`
	Box         AABB                `json:"box"`
	Damage      int                 `json:"damage"`
	PoiseDamage float64             `json:"poiseDamage"`
	HitEntities map[string]struct{} `json:"-"`
}

// NewHitbox создает хитбокс с пустым множеством попаданий.
func NewHitbox(id, ownerID string, box AABB, damage int, poise float64) Hitbox {
	return Hitbox{
		ID:          id,
		OwnerID:     ownerID,
		Box:         box,
		Damage:      damage,
		PoiseDamage: poise,
		HitEntities: make(map[string]struct{}),
	}
}

// HasHit - цель уже задета этим хитбоксом.
func (h Hitbox) HasHit(id string) bool {
	_, ok := h.HitEntities[id]
	return ok
}

func (h Hitbox) withHit(id string) Hitbox {
	set := make(map[string]struct{}, len(h.HitEntities)+1)
	for k := range h.HitEntities {
		set[k] = struct{}{}
	}
	set[id] = struct{}{}
	h.HitEntities = set
	return h
}

// HitCheck - результат проверки CanBeHit.
type HitCheck struct {
	OK     bool                  `json:"ok"`
	Reason enums.HitRejectReason `json:"reason,omitempty"`
}

// CanBeHit проверяет, может ли хитбокс задеть цель.
// Порядок причин: dead, invincible, already_hit.
func CanBeHit(target domain.Entity, h Hitbox) HitCheck {
	if target.IsDead() {
		return HitCheck{Reason: enums.HitRejectDead}
	}
	if inv := target.Invincibility; inv != nil && inv.Active && inv.Remaining > 0 {
		return HitCheck{Reason: enums.HitRejectInvincible}
	}
	if h.HasHit(target.ID) {
		return HitCheck{Reason: enums.HitRejectAlreadyHit}
	}
	return HitCheck{OK: true}
}

// HitOptions - тайминги регистрации удара. Нулевые значения - по умолчанию.
type HitOptions struct {
	InvincibilityDuration time.Duration
	BreakDuration         time.Duration
}

// HitResult - что произошло при регистрации удара.
type HitResult struct {
	Registered     bool                  `json:"registered"`
	Reason         enums.HitRejectReason `json:"reason,omitempty"`
	Damage         int                   `json:"damage"`
	Killed         bool                  `json:"killed"`
	BreakTriggered bool                  `json:"breakTriggered"`
}

// RegisterHit применяет удар хитбокса к цели, если CanBeHit разрешает.
//
// При успехе: урон (×1.5 по сломленной цели), свежее окно неуязвимости,
// цель попадает в множество хитбокса, снимается устойчивость (если есть).
// CharacterState становится dead ровно в момент, когда здоровье дошло до нуля.
func RegisterHit(target domain.Entity, h Hitbox, now time.Duration, opts HitOptions) (domain.Entity, Hitbox, HitResult) {
	check := CanBeHit(target, h)
	if !check.OK {
		return target, h, HitResult{Reason: check.Reason}
	}

	if opts.InvincibilityDuration <= 0 {
		opts.InvincibilityDuration = DefaultInvincibilityDuration
	}

	next := target.Clone()
	res := HitResult{
		Registered: true,
		Damage:     int(math.Floor(float64(h.Damage) * BreakDamageMultiplier(target.Break))),
	}

	if next.Health != nil {
		hp, died := next.Health.TakeDamage(res.Damage)
		next.Health = &hp
		res.Killed = died
	}

	inv := NewInvincibility(opts.InvincibilityDuration)
	next.Invincibility = &inv
	h = h.withHit(target.ID)

	switch {
	case res.Killed:
		next.CharacterState = enums.CharacterStateDead
		next.Break = nil
	case next.Stability != nil && h.PoiseDamage > 0 && next.Break == nil:
		st, triggered := ReduceStability(*next.Stability, h.PoiseDamage, now)
		next.Stability = &st
		if triggered {
			next.Break = NewBreakState(now, opts.BreakDuration)
			next.CharacterState = enums.CharacterStateStaggered
			res.BreakTriggered = true
		} else {
			next.CharacterState = enums.CharacterStateHurt
		}
	case next.Break == nil:
		next.CharacterState = enums.CharacterStateHurt
	}

	logger.For("hit_registration").WithFields(logrus.Fields{
		"hitbox_id": h.ID,
		"owner_id":  h.OwnerID,
		"target_id": target.ID,
		"damage":    res.Damage,
		"killed":    res.Killed,
		"break":     res.BreakTriggered,
	}).Debug("Hit registered.")

	return next, h, res
}

// NewInvincibility - активное окно на duration.
func NewInvincibility(duration time.Duration) domain.InvincibilityState {
	return domain.InvincibilityState{
		Active:    duration > 0,
		Remaining: duration,
		Duration:  duration,
	}
}

// UpdateInvincibility уменьшает остаток окна. Остаток никогда не растёт;
// Active снимается, как только остаток дошёл до нуля.
func UpdateInvincibility(s domain.InvincibilityState, delta time.Duration) domain.InvincibilityState {
	if delta > 0 {
		s.Remaining -= delta
	}
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Active = false
	}
	return s
}

// TickEntity продвигает таймеры непрерывного боя сущности: неуязвимость,
// устойчивость и слом. Когда слом заканчивается, оглушённая сущность встаёт.
func TickEntity(e domain.Entity, now, delta time.Duration) domain.Entity {
	next := e.Clone()

	if next.Invincibility != nil {
		inv := UpdateInvincibility(*next.Invincibility, delta)
		next.Invincibility = &inv
	}

	if next.Stability != nil && !next.IsDead() {
		st, brk := TickStability(*next.Stability, next.Break, now, delta)
		next.Stability = &st
		if next.Break != nil && brk == nil && next.CharacterState == enums.CharacterStateStaggered {
			next.CharacterState = enums.CharacterStateIdle
		}
		next.Break = brk
	}

	return next
}
