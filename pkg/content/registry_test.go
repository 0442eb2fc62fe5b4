package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/rng"
)

func TestDefault_EncountersReferenceKnownEnemies(t *testing.T) {
	for id, enc := range Default.Encounters {
		assert.Equal(t, id, enc.ID)
		for _, entry := range enc.Enemies {
			_, ok := Default.LookupEnemy(entry.TemplateID)
			assert.True(t, ok, "encounter %s references unknown enemy %s", id, entry.TemplateID)
			assert.Positive(t, entry.Count)
		}
	}
}

func TestDefault_TemplatesAreValid(t *testing.T) {
	for id, e := range Default.Enemies {
		assert.Equal(t, id, e.ID)
		assert.Positive(t, e.HP)
		assert.False(t, e.Stats.HasNegative())
		assert.NotEqual(t, enums.EntityClassUnknown, e.Class)
	}
	for id, it := range Default.Items {
		assert.Equal(t, id, it.ID)
		assert.False(t, it.Bonus.HasNegative())
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Default.LookupEnemy("ghost")
	assert.False(t, ok)
	_, ok = Default.LookupEncounter("ghost")
	assert.False(t, ok)
	_, ok = Default.LookupItem("ghost")
	assert.False(t, ok)
}

func TestEnemyTemplate_SpawnEntity(t *testing.T) {
	pos := domain.Vec3{X: 1, Y: 2}

	a := RivalCaptain.SpawnEntity(pos, rng.New("spawn"))
	b := RivalCaptain.SpawnEntity(pos, rng.New("spawn"))

	assert.Equal(t, a.ID, b.ID, "ID детерминирован потоком")
	require.NotNil(t, a.Health)
	assert.Equal(t, RivalCaptain.HP, a.Health.Current)
	require.NotNil(t, a.Stability)
	assert.Equal(t, 500.0, a.Stability.Max)
	assert.Equal(t, pos, *a.Position)
}

func TestItemTemplate_Item(t *testing.T) {
	it := ItemTemplates["data_shard_prototype"].Item()
	assert.True(t, it.Rare)
	assert.Equal(t, enums.ItemSlotAccessory, it.Slot)
}
