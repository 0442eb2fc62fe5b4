package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
)

func attack(target string) Action {
	return Action{Type: enums.ActionAttack, TargetID: target}
}

func TestBattle_Victory(t *testing.T) {
	hero := newFighter("hero", domain.StatBlock{Structure: 50, Ignition: 100, Flow: 10}, 500)
	b := NewBattle(hero, CreateEncounter("alley_ambush"), NewResolver(fixed(0)))

	assert.Equal(t, enums.PhaseIdle, b.Phase())
	require.NoError(t, b.Start())
	assert.Equal(t, enums.PhasePlayerTurn, b.Phase())

	for i := 0; i < 2; i++ {
		res, err := b.PlayerAction(attack(""))
		require.NoError(t, err)
		assert.True(t, res.Hit)
		assert.Equal(t, enums.PhaseEnemyTurn, b.Phase())

		results, err := b.EnemyTurn()
		require.NoError(t, err)
		assert.Len(t, results, 2-i)
		assert.Equal(t, enums.PhasePlayerTurn, b.Phase())
	}

	_, err := b.PlayerAction(attack(""))
	require.NoError(t, err)
	assert.Equal(t, enums.PhaseVictory, b.Phase())
	assert.True(t, b.Phase().IsFinal())

	out, done := b.Outcome()
	require.True(t, done)
	assert.True(t, out.Victory)
	assert.Equal(t, 75, out.Reward.XP)
	assert.Equal(t, 45, out.Reward.Credits)
	assert.Equal(t, 3, b.Turn)
}

func TestBattle_DefeatShortCircuits(t *testing.T) {
	hero := newFighter("hero", domain.StatBlock{}, 1)
	b := NewBattle(hero, CreateEncounter("alley_ambush"), NewResolver(fixed(0)))
	require.NoError(t, b.Start())

	_, err := b.PlayerAction(Action{Type: enums.ActionDefend})
	require.NoError(t, err)
	assert.True(t, b.Player.Defending)

	results, err := b.EnemyTurn()
	require.NoError(t, err)
	assert.Len(t, results, 1, "remaining enemies must not act after the player falls")
	assert.Equal(t, enums.PhaseDefeat, b.Phase())

	out, done := b.Outcome()
	require.True(t, done)
	assert.False(t, out.Victory)
	assert.Zero(t, out.Reward.XP)
}

func TestBattle_InvalidTransitions(t *testing.T) {
	b := NewBattle(newFighter("hero", domain.Uniform(10), 100), CreateEncounter("alley_ambush"), NewResolver(fixed(0.99)))

	_, err := b.PlayerAction(attack(""))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = b.EnemyTurn()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, b.Start())
	assert.ErrorIs(t, b.Start(), ErrInvalidTransition)

	_, err = b.EnemyTurn()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, done := b.Outcome()
	assert.False(t, done)
}

func TestBattle_InvalidTarget(t *testing.T) {
	b := NewBattle(newFighter("hero", domain.Uniform(10), 100), CreateEncounter("alley_ambush"), NewResolver(fixed(0)))
	require.NoError(t, b.Start())

	_, err := b.PlayerAction(attack("nobody"))
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Equal(t, enums.PhasePlayerTurn, b.Phase())
}

func TestBattle_DoesNotMutateEncounter(t *testing.T) {
	enc := CreateEncounter("alley_ambush")
	hero := newFighter("hero", domain.StatBlock{Ignition: 100}, 500)

	b := NewBattle(hero, enc, NewResolver(fixed(0)))
	require.NoError(t, b.Start())
	_, err := b.PlayerAction(attack("street_punk_1"))
	require.NoError(t, err)

	assert.False(t, b.Enemies[1].Alive())
	assert.True(t, enc.Enemies[1].Alive())
}
