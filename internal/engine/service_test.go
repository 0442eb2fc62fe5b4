package engine

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/pkg/api"
	"neotokyo-core/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "error"})
	os.Exit(m.Run())
}

func command(t *testing.T, session, action string, payload any) api.ClientCommand {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return api.ClientCommand{Token: session, Action: action, Payload: raw}
}

func TestProcessCommand_NewGame(t *testing.T) {
	s := NewService(Config{DistrictCount: 6})
	id := s.OpenSession()
	updates := s.Hub.Register(id)

	resp := s.ProcessCommand(context.Background(), command(t, id, api.ActionNewGame, api.NewGamePayload{Seed: "abc", Districts: 3}))

	require.Equal(t, api.TypeInit, resp.Type, resp.Error)
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, "abc", resp.Seed)
	assert.Len(t, resp.Districts, 3)
	assert.Len(t, resp.Quests, 3)
	require.NotNil(t, resp.Player)
	assert.Equal(t, 1, resp.Player.Level.Current)
	assert.Equal(t, 100, resp.Player.MaxHP)

	pushed := <-updates
	assert.Equal(t, resp.Seed, pushed.Seed)

	// тот же сид - тот же мир в другой сессии
	other := s.ProcessCommand(context.Background(), command(t, s.OpenSession(), api.ActionNewGame, api.NewGamePayload{Seed: "abc", Districts: 3}))
	assert.Equal(t, resp.Districts, other.Districts)
	assert.Equal(t, resp.Quests, other.Quests)
}

func TestProcessCommand_DefaultsFromConfig(t *testing.T) {
	s := NewService(Config{Seed: "cfg-seed", DistrictCount: 2})

	resp := s.ProcessCommand(context.Background(), api.ClientCommand{Token: "s1", Action: api.ActionNewGame})
	require.Equal(t, api.TypeInit, resp.Type, resp.Error)
	assert.Equal(t, "cfg-seed", resp.Seed)
	assert.Len(t, resp.Districts, 2)

	random := NewService(Config{DistrictCount: 2})
	a := random.ProcessCommand(context.Background(), api.ClientCommand{Token: "s1", Action: api.ActionNewGame})
	b := random.ProcessCommand(context.Background(), api.ClientCommand{Token: "s2", Action: api.ActionNewGame})
	assert.NotEmpty(t, a.Seed)
	assert.NotEqual(t, a.Seed, b.Seed)
}

func TestProcessCommand_Errors(t *testing.T) {
	s := NewService(Config{DistrictCount: 2})
	ctx := context.Background()

	resp := s.ProcessCommand(ctx, command(t, "s1", api.ActionCompleteQuest, api.QuestPayload{QuestID: "district_0_main"}))
	assert.Equal(t, api.TypeError, resp.Type)
	assert.Contains(t, resp.Error, "NEW_GAME")

	resp = s.ProcessCommand(ctx, api.ClientCommand{Token: "s1", Action: "DANCE"})
	assert.Equal(t, api.TypeError, resp.Type)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionNewGame, api.NewGamePayload{Districts: -1}))
	assert.Equal(t, api.TypeError, resp.Type)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionNewGame, api.NewGamePayload{Seed: "abc"}))
	require.Equal(t, api.TypeInit, resp.Type)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionCompleteQuest, api.QuestPayload{}))
	assert.Equal(t, api.TypeError, resp.Type)
	assert.Contains(t, resp.Error, "questId")

	resp = s.ProcessCommand(ctx, api.ClientCommand{Token: "s1", Action: api.ActionCompleteQuest, Payload: json.RawMessage(`{"questId":`)})
	assert.Equal(t, api.TypeError, resp.Type)
	assert.NotNil(t, resp.Player, "rejected commands still carry a snapshot")
}

func TestProcessCommand_QuestFlow(t *testing.T) {
	s := NewService(Config{DistrictCount: 2})
	ctx := context.Background()

	start := s.ProcessCommand(ctx, command(t, "s1", api.ActionNewGame, api.NewGamePayload{Seed: "abc"}))
	require.Equal(t, api.TypeInit, start.Type)
	main := start.Quests[0].Main

	resp := s.ProcessCommand(ctx, command(t, "s1", api.ActionCompleteQuest, api.QuestPayload{QuestID: main.ID}))
	require.Equal(t, api.TypeUpdate, resp.Type, resp.Error)
	require.NotNil(t, resp.Reward)
	assert.Equal(t, main.Rewards.XP, resp.Reward.XP)
	require.NotNil(t, resp.LevelUp)
	assert.True(t, resp.LevelUp.LeveledUp)
	assert.Equal(t, main.Rewards.Credits, resp.Player.Credits)
	assert.Empty(t, resp.Districts, "districts are only sent on INIT")
	assert.NotEmpty(t, resp.Logs)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionAllocate, api.AllocatePayload{}))
	require.Equal(t, api.TypeUpdate, resp.Type, resp.Error)

	resp = s.ProcessCommand(ctx, api.ClientCommand{Token: "s1", Action: api.ActionInit})
	assert.Equal(t, api.TypeInit, resp.Type)
	assert.True(t, resp.Quests[0].Main.Completed)

	summary := s.Sessions()
	require.Len(t, summary, 1)
	assert.Equal(t, "abc", summary[0].Seed)
	assert.Equal(t, 3, summary[0].Level)

	s.CloseSession("s1")
	assert.Empty(t, s.Sessions())
}

func TestProcessCommand_Combat(t *testing.T) {
	s := NewService(Config{DistrictCount: 1})
	ctx := context.Background()

	s.ProcessCommand(ctx, command(t, "s1", api.ActionNewGame, api.NewGamePayload{Seed: "abc"}))

	resp := s.ProcessCommand(ctx, command(t, "s1", api.ActionCombat, api.CombatPayload{Type: enums.ActionAttack}))
	assert.Equal(t, api.TypeError, resp.Type)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionStartEncounter, api.EncounterPayload{EncounterID: "rooftop_duel"}))
	require.Equal(t, api.TypeUpdate, resp.Type, resp.Error)
	require.NotNil(t, resp.Battle)
	assert.Equal(t, enums.PhasePlayerTurn, resp.Battle.Phase)
	assert.Len(t, resp.Battle.Enemies, 1)

	resp = s.ProcessCommand(ctx, command(t, "s1", api.ActionCombat, api.CombatPayload{Type: enums.ActionDefend}))
	require.Equal(t, api.TypeUpdate, resp.Type, resp.Error)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, enums.ActionDefend, resp.Results[0].Action)
	assert.Equal(t, "player", resp.Results[0].AttackerID)
}

func TestProcessCommand_ConcurrentOnOneSession(t *testing.T) {
	s := NewService(Config{DistrictCount: 2})
	ctx := context.Background()

	// NEW_GAME и INIT на одном токене одновременно: снимки читают логи сессии под замком
	newGame := command(t, "s1", api.ActionNewGame, api.NewGamePayload{Seed: "abc"})
	var g errgroup.Group
	types := make([]string, 16)
	for i := range types {
		i := i
		g.Go(func() error {
			cmd := api.ClientCommand{Token: "s1", Action: api.ActionInit}
			if i%2 == 0 {
				cmd = newGame
			}
			types[i] = s.ProcessCommand(ctx, cmd).Type
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, typ := range types {
		if i%2 == 0 {
			assert.Equal(t, api.TypeInit, typ)
		} else {
			assert.Contains(t, []string{api.TypeInit, api.TypeError}, typ)
		}
	}
	sess, ok := s.Session("s1")
	require.True(t, ok)
	assert.Equal(t, "abc", sess.Seed)
}
