package actions

import (
	"fmt"

	"neotokyo-core/internal/engine/handlers"
	"neotokyo-core/pkg/api"
)

// HandleEquip обрабатывает команду EQUIP - экипировка из инвентаря
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	if err := ctx.Session.Equip(p.ItemID); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: fmt.Sprintf("Экипировано: %s.", p.ItemID), MsgType: "INFO"}, nil
}

// HandleUnequip обрабатывает команду UNEQUIP - освобождение слота
func HandleUnequip(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	if err := ctx.Session.Unequip(p.Slot); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: fmt.Sprintf("Слот %s освобождён.", p.Slot), MsgType: "INFO"}, nil
}
