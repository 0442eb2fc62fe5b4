package actions

import (
	"neotokyo-core/internal/engine/handlers"
	"neotokyo-core/pkg/api"
)

// HandleCompleteQuest обрабатывает COMPLETE_QUEST
func HandleCompleteQuest(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	reward, xp, err := ctx.Session.CompleteQuest(p.QuestID)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Reward: &reward, LevelUp: &xp}, nil
}
