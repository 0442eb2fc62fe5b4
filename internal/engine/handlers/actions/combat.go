package actions

import (
	"fmt"

	"neotokyo-core/internal/engine/handlers"
	"neotokyo-core/internal/systems"
	"neotokyo-core/pkg/api"
)

// HandleStartEncounter обрабатывает START_ENCOUNTER
func HandleStartEncounter(ctx handlers.Context, p api.EncounterPayload) (handlers.Result, error) {
	b, err := ctx.Session.StartEncounter(p.EncounterID)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Бой начался: %s.", b.Encounter.Name),
		MsgType: "COMBAT",
	}, nil
}

// HandleCombat обрабатывает ACTION: ход игрока и ответный ход врагов
func HandleCombat(ctx handlers.Context, p api.CombatPayload) (handlers.Result, error) {
	results, xp, err := ctx.Session.Act(systems.Action{Type: p.Type, TargetID: p.TargetID})
	if err != nil {
		return handlers.Result{}, err
	}

	res := handlers.Result{Results: results, LevelUp: xp}
	// награда выдаётся только той командой, которая закончила бой победой
	if xp != nil {
		out, _ := ctx.Session.Battle.Outcome()
		res.Reward = &out.Reward
	}
	return res, nil
}
