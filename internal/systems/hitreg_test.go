package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/content"
	"neotokyo-core/pkg/rng"
)

func box(x, y, z, half float64) AABB {
	return AABB{Center: domain.Vec3{X: x, Y: y, Z: z}, HalfExtents: domain.Vec3{X: half, Y: half, Z: half}}
}

func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"Overlap", box(0, 0, 0, 1), box(1, 1, 1, 1), true},
		{"Touching faces", box(0, 0, 0, 1), box(2, 0, 0, 1), true},
		{"Separated on X", box(0, 0, 0, 1), box(2.01, 0, 0, 1), false},
		{"Separated on Z only", box(0, 0, 0, 1), box(0, 0, -3, 1), false},
		{"Contained", box(0, 0, 0, 5), box(1, 1, 1, 0.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAABBCollision(tt.a, tt.b))
			assert.Equal(t, tt.want, CheckAABBCollision(tt.b, tt.a))
		})
	}
}

func punk(t *testing.T, seed string) domain.Entity {
	t.Helper()
	return content.StreetPunk.SpawnEntity(domain.Vec3{}, rng.New(seed))
}

func TestCanBeHit_Reasons(t *testing.T) {
	target := punk(t, "a")
	h := NewHitbox("hb", "player", box(0, 0, 0, 1), 10, 0)

	assert.True(t, CanBeHit(target, h).OK)

	dead := target.Clone()
	dead.Health.Current = 0
	inv := NewInvincibility(time.Second)
	dead.Invincibility = &inv
	assert.Equal(t, enums.HitRejectDead, CanBeHit(dead, h).Reason, "dead wins over invincible")

	shielded := target.Clone()
	shielded.Invincibility = &inv
	assert.Equal(t, enums.HitRejectInvincible, CanBeHit(shielded, h).Reason)

	h = h.withHit(target.ID)
	check := CanBeHit(target, h)
	assert.False(t, check.OK)
	assert.Equal(t, enums.HitRejectAlreadyHit, check.Reason)
}

func TestRegisterHit_AppliesOnce(t *testing.T) {
	target := punk(t, "a")
	h := NewHitbox("hb", "player", box(0, 0, 0, 1), 12, 10)

	got, h2, res := RegisterHit(target, h, time.Second, HitOptions{})
	require.True(t, res.Registered)
	assert.Equal(t, 12, res.Damage)
	assert.Equal(t, 28, got.Health.Current)
	assert.Equal(t, 40, target.Health.Current, "input entity must stay untouched")

	require.NotNil(t, got.Invincibility)
	assert.True(t, got.Invincibility.Active)
	assert.Equal(t, DefaultInvincibilityDuration, got.Invincibility.Remaining)
	assert.Equal(t, enums.CharacterStateHurt, got.CharacterState)
	assert.InDelta(t, 90, got.Stability.Current, 1e-9)

	assert.True(t, h2.HasHit(target.ID))
	assert.False(t, h.HasHit(target.ID), "hitbox set must be copied")

	// i-frames закончились, но этот хитбокс уже бил цель
	later := TickEntity(got, 2*time.Second, time.Second)
	assert.False(t, later.Invincibility.Active)

	same, _, res := RegisterHit(later, h2, 2*time.Second, HitOptions{})
	assert.False(t, res.Registered)
	assert.Equal(t, enums.HitRejectAlreadyHit, res.Reason)
	assert.Equal(t, later.Health.Current, same.Health.Current)

	// во время i-frames новый хитбокс отклоняется
	h3 := NewHitbox("hb3", "player", box(0, 0, 0, 1), 12, 0)
	_, _, res = RegisterHit(got, h3, time.Second, HitOptions{})
	assert.Equal(t, enums.HitRejectInvincible, res.Reason)
}

func TestRegisterHit_MultiTarget(t *testing.T) {
	a, b := punk(t, "a"), punk(t, "b")
	require.NotEqual(t, a.ID, b.ID)

	h := NewHitbox("sweep", "player", box(0, 0, 0, 3), 5, 0)

	_, h, resA := RegisterHit(a, h, 0, HitOptions{})
	_, h, resB := RegisterHit(b, h, 0, HitOptions{})

	assert.True(t, resA.Registered)
	assert.True(t, resB.Registered)
	assert.True(t, h.HasHit(a.ID))
	assert.True(t, h.HasHit(b.ID))
	assert.Len(t, h.HitEntities, 2)
}

func TestRegisterHit_Kill(t *testing.T) {
	target := punk(t, "a")
	h := NewHitbox("hb", "player", box(0, 0, 0, 1), 100, 0)

	got, _, res := RegisterHit(target, h, 0, HitOptions{})
	assert.True(t, res.Killed)
	assert.Equal(t, 0, got.Health.Current)
	assert.Equal(t, enums.CharacterStateDead, got.CharacterState)
	assert.True(t, got.IsDead())

	_, _, res = RegisterHit(got, NewHitbox("hb2", "player", box(0, 0, 0, 1), 1, 0), time.Second, HitOptions{})
	assert.Equal(t, enums.HitRejectDead, res.Reason)
}

func TestRegisterHit_BreakAndMultiplier(t *testing.T) {
	target := punk(t, "a")

	got, _, res := RegisterHit(target, NewHitbox("hb1", "player", box(0, 0, 0, 1), 4, 100), time.Second, HitOptions{BreakDuration: 2 * time.Second})
	require.True(t, res.BreakTriggered)
	require.NotNil(t, got.Break)
	assert.Equal(t, 3*time.Second, got.Break.BreakTimer)
	assert.Equal(t, enums.CharacterStateStaggered, got.CharacterState)

	got = TickEntity(got, 1600*time.Millisecond, 600*time.Millisecond)
	require.NotNil(t, got.Break, "still broken")

	got, _, res = RegisterHit(got, NewHitbox("hb2", "player", box(0, 0, 0, 1), 10, 100), 1600*time.Millisecond, HitOptions{})
	require.True(t, res.Registered)
	assert.Equal(t, 15, res.Damage)
	assert.False(t, res.BreakTriggered)

	// слом истёк: устойчивость восстановлена, цель встаёт
	got = TickEntity(got, 3*time.Second, 1400*time.Millisecond)
	assert.Nil(t, got.Break)
	assert.Equal(t, got.Stability.Max, got.Stability.Current)
	assert.Equal(t, enums.CharacterStateIdle, got.CharacterState)
}

func TestUpdateInvincibility_Monotonic(t *testing.T) {
	s := NewInvincibility(500 * time.Millisecond)
	prev := s.Remaining

	for _, delta := range []time.Duration{100, -300, 0, 250, 1000} {
		s = UpdateInvincibility(s, delta*time.Millisecond)
		assert.LessOrEqual(t, s.Remaining, prev)
		assert.LessOrEqual(t, s.Remaining, s.Duration)
		assert.Equal(t, s.Remaining > 0, s.Active)
		prev = s.Remaining
	}

	assert.False(t, s.Active)
	assert.Zero(t, s.Remaining)
}
