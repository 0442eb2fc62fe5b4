package actions

import "neotokyo-core/internal/engine/handlers"

// HandleInit просто возвращает снимок сессии
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
