package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
)

func TestApplyReward(t *testing.T) {
	p := NewPlayerState()

	got, res := ApplyReward(p, domain.Reward{
		XP:             120,
		Credits:        300,
		Items:          []string{"data_shard_prototype"},
		AlignmentShift: &domain.AlignmentShift{Faction: enums.FactionKurenai, Amount: 15},
	})

	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, got.Level.Current)
	assert.Equal(t, 20, got.Level.XP)
	assert.Equal(t, 300, got.Credits)
	assert.Equal(t, []string{"data_shard_prototype"}, got.Inventory)
	assert.Equal(t, 15, got.Reputation[enums.FactionKurenai])

	assert.Zero(t, p.Credits)
	assert.Empty(t, p.Inventory)
	assert.Empty(t, p.Reputation)
}

func TestReplayRewards_Reproducible(t *testing.T) {
	rewards := []domain.Reward{
		{XP: 520, Credits: 1100},
		{XP: 190, Credits: 380, AlignmentShift: &domain.AlignmentShift{Faction: enums.FactionAzure, Amount: 12}},
		{XP: 330, Credits: 610, Items: []string{"data_shard_prototype"}},
		{XP: 75, Credits: 45},
		{XP: 0, Credits: 0, AlignmentShift: &domain.AlignmentShift{Faction: enums.FactionAzure, Amount: 7}},
	}

	// пошаговое применение
	live := NewPlayerState()
	for _, r := range rewards {
		live, _ = ApplyReward(live, r)
	}

	replayed := ReplayRewards(NewPlayerState(), rewards)
	assert.Equal(t, live, replayed)
	assert.Equal(t, replayed, ReplayRewards(NewPlayerState(), rewards))

	assert.Equal(t, 2135, replayed.Credits)
	assert.Equal(t, 19, replayed.Reputation[enums.FactionAzure])
	// 1115 XP: 100+200+300+400 = 1000, остаток 115 на 5-м уровне
	assert.Equal(t, 5, replayed.Level.Current)
	assert.Equal(t, 115, replayed.Level.XP)
	assert.Equal(t, 4*StatPointsPerLevel, replayed.Level.StatPoints)
}
