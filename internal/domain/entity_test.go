package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neotokyo-core/internal/core/types/enums"
)

func TestHealthComponent_TakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		hp       HealthComponent
		amount   int
		wantHP   int
		wantDied bool
	}{
		{"regular hit", HealthComponent{20, 20}, 5, 15, false},
		{"lethal hit", HealthComponent{5, 20}, 10, 0, true},
		{"exact lethal", HealthComponent{5, 20}, 5, 0, true},
		{"already dead", HealthComponent{0, 20}, 5, 0, false},
		{"negative damage ignored", HealthComponent{10, 20}, -3, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, died := tt.hp.TakeDamage(tt.amount)
			assert.Equal(t, tt.wantHP, got.Current)
			assert.Equal(t, tt.wantDied, died)
		})
	}
}

func TestHealthComponent_Heal(t *testing.T) {
	assert.Equal(t, 20, HealthComponent{15, 20}.Heal(10).Current)
	assert.Equal(t, 0, HealthComponent{0, 20}.Heal(10).Current, "трупы не лечим")
}

func TestEntity_CloneIsDeep(t *testing.T) {
	orig := Entity{
		ID:     "p1",
		Health: &HealthComponent{Current: 10, Max: 10},
		Stats:  &StatBlock{Structure: 1},
		Equipment: &EquipmentComponent{
			Weapon: &Item{ID: "blade", Slot: enums.ItemSlotWeapon, Bonus: StatBlock{Ignition: 3}},
		},
	}

	c := orig.Clone()
	c.Health.Current = 1
	c.Stats.Structure = 99
	c.Equipment.Weapon.Bonus.Ignition = 100

	assert.Equal(t, 10, orig.Health.Current)
	assert.Equal(t, 1, orig.Stats.Structure)
	assert.Equal(t, 3, orig.Equipment.Weapon.Bonus.Ignition)
}

func TestStatBlock_Helpers(t *testing.T) {
	s := StatBlock{Structure: 1, Ignition: 2, Logic: 3, Flow: 4}

	assert.Equal(t, 10, s.Sum())
	assert.Equal(t, StatBlock{2, 4, 6, 8}, s.Add(s))
	assert.Equal(t, 7, s.With(StatLogic, 7).Get(StatLogic))
	assert.False(t, s.HasNegative())
	assert.True(t, StatBlock{Flow: -1}.HasNegative())
	assert.Equal(t, StatBlock{Structure: 2}, StatBlock{Structure: 2, Flow: -5}.ClampNonNegative())
}

func TestQuestCluster_Find(t *testing.T) {
	c := QuestCluster{
		Main:   Quest{ID: "d_main"},
		Sides:  [2]Quest{{ID: "d_side_1"}, {ID: "d_side_2"}},
		Secret: Quest{ID: "d_secret"},
	}

	q, ok := c.Find("d_side_2")
	assert.True(t, ok)
	assert.Equal(t, "d_side_2", q.ID)

	_, ok = c.Find("nope")
	assert.False(t, ok)
}
