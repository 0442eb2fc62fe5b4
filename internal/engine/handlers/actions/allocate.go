package actions

import (
	"neotokyo-core/internal/engine/handlers"
	"neotokyo-core/pkg/api"
)

// HandleAllocate обрабатывает ALLOCATE - трату очков характеристик
func HandleAllocate(ctx handlers.Context, p api.AllocatePayload) (handlers.Result, error) {
	if err := ctx.Session.Allocate(p.StatBlock); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: "Очки характеристик распределены.", MsgType: "INFO"}, nil
}
