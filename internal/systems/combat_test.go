package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
)

func TestBaseDamage(t *testing.T) {
	tests := []struct {
		name     string
		attacker domain.StatBlock
		defender domain.StatBlock
		want     int
	}{
		{"Scenario 10 vs 20", domain.StatBlock{Ignition: 10}, domain.StatBlock{Structure: 20}, 10},
		{"Floor of fraction", domain.StatBlock{Ignition: 5}, domain.StatBlock{Structure: 3}, 8},
		{"Minimum is one", domain.StatBlock{Ignition: 1}, domain.StatBlock{Structure: 40}, 1},
		{"Zero attacker", domain.StatBlock{}, domain.StatBlock{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseDamage(tt.attacker, tt.defender)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
			assert.Equal(t, tt.want, FinalDamage(tt.attacker, tt.defender, false, false))
		})
	}
}

func TestHitChance_Clamped(t *testing.T) {
	assert.InDelta(t, 0.8, HitChance(domain.Uniform(10), domain.Uniform(10)), 1e-9)
	assert.InDelta(t, 0.9, HitChance(domain.StatBlock{Flow: 12}, domain.StatBlock{Flow: 10}), 1e-9)
	assert.Equal(t, MinHitChance, HitChance(domain.StatBlock{}, domain.StatBlock{Flow: 100}))
	assert.Equal(t, MaxHitChance, HitChance(domain.StatBlock{Flow: 100}, domain.StatBlock{}))
}

func TestCritChance(t *testing.T) {
	assert.InDelta(t, 0.1, CritChance(domain.StatBlock{Ignition: 10}), 1e-9)
	assert.Equal(t, MaxCritChance, CritChance(domain.StatBlock{Ignition: 80}))
}

func TestFinalDamage_Modifiers(t *testing.T) {
	a := domain.StatBlock{Ignition: 10}
	d := domain.StatBlock{Structure: 20} // база 10

	assert.Equal(t, 5, FinalDamage(a, d, true, false))
	assert.Equal(t, 20, FinalDamage(a, d, false, true))
	assert.Equal(t, 10, FinalDamage(a, d, true, true))

	// база 3: 3 × 0.5 = 1.5 → 1; с критом 1.5 × 2 = 3
	weak := domain.StatBlock{Ignition: 2}
	assert.Equal(t, 1, FinalDamage(weak, domain.StatBlock{Structure: 2}, true, false))
	assert.Equal(t, 3, FinalDamage(weak, domain.StatBlock{Structure: 2}, true, true))
}

func newFighter(id string, stats domain.StatBlock, hp int) domain.Combatant {
	return domain.Combatant{ID: id, Name: id, Stats: stats, CurrentHP: hp, MaxHP: hp}
}

func TestExecuteAction_Defend(t *testing.T) {
	stream := fixed(0)
	r := NewResolver(stream)

	attacker := newFighter("a", domain.Uniform(10), 50)
	defender := newFighter("d", domain.Uniform(10), 50)

	got, res := r.ExecuteAction(attacker, defender, Action{Type: enums.ActionDefend})

	assert.True(t, got.Defending)
	assert.False(t, res.Hit)
	assert.Zero(t, res.Damage)
	assert.Zero(t, stream.n, "defend must not consume draws")
}

func TestExecuteAction_Attack(t *testing.T) {
	attacker := newFighter("a", domain.StatBlock{Ignition: 10, Flow: 10}, 50)
	defender := newFighter("d", domain.StatBlock{Structure: 20, Flow: 10}, 50)

	tests := []struct {
		name     string
		draws    []float64
		hit      bool
		critical bool
		damage   int
	}{
		{"Hit no crit", []float64{0.0, 0.99}, true, false, 10},
		{"Hit crit", []float64{0.5, 0.05}, true, true, 20},
		{"Miss", []float64{0.95}, false, false, 0},
		{"Edge equals chance misses", []float64{0.8}, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(fixed(tt.draws...))
			_, res := r.ExecuteAction(attacker, defender, Action{Type: enums.ActionAttack})

			assert.Equal(t, tt.hit, res.Hit)
			assert.Equal(t, tt.critical, res.Critical)
			assert.Equal(t, tt.damage, res.Damage)
			assert.Equal(t, "a", res.AttackerID)
			assert.Equal(t, "d", res.DefenderID)
		})
	}
}

func TestExecuteAction_DefenseResetsEachTurn(t *testing.T) {
	r := NewResolver(fixed(0, 0.99))

	a := newFighter("a", domain.Uniform(10), 50)
	a.Defending = true

	got, _ := r.ExecuteAction(a, newFighter("d", domain.Uniform(10), 50), Action{Type: enums.ActionAttack})
	assert.False(t, got.Defending)
}

func TestExecuteAction_DefenderGuardHalves(t *testing.T) {
	r := NewResolver(fixed(0, 0.99))

	d := newFighter("d", domain.StatBlock{Structure: 20}, 50)
	d.Defending = true

	_, res := r.ExecuteAction(newFighter("a", domain.StatBlock{Ignition: 10}, 50), d, Action{Type: enums.ActionAttack})
	assert.Equal(t, 5, res.Damage)
}

func TestExecuteAction_UnknownSkipsTurn(t *testing.T) {
	stream := fixed(0)
	r := NewResolver(stream)

	_, res := r.ExecuteAction(newFighter("a", domain.Uniform(10), 50), newFighter("d", domain.Uniform(10), 50), Action{})
	assert.False(t, res.Hit)
	assert.Zero(t, res.Damage)
	assert.Zero(t, stream.n)
}

func TestApplyDamage(t *testing.T) {
	c := newFighter("c", domain.Uniform(10), 30)

	c = ApplyDamage(c, 12)
	assert.Equal(t, 18, c.CurrentHP)
	assert.False(t, IsDefeated(c))

	c = ApplyDamage(c, -5)
	assert.Equal(t, 18, c.CurrentHP)

	c = ApplyDamage(c, 100)
	assert.Equal(t, 0, c.CurrentHP)
	assert.True(t, IsDefeated(c))
}

func TestSeededResolver_Deterministic(t *testing.T) {
	a := newFighter("a", domain.StatBlock{Ignition: 20, Flow: 8}, 50)
	d := newFighter("d", domain.StatBlock{Structure: 10, Flow: 10}, 50)

	run := func() []ActionResult {
		r := NewSeededResolver("abc", "encounter_alley")
		out := make([]ActionResult, 0, 50)
		for i := 0; i < 50; i++ {
			_, res := r.ExecuteAction(a, d, Action{Type: enums.ActionAttack})
			out = append(out, res)
		}
		return out
	}

	assert.Equal(t, run(), run())
}
