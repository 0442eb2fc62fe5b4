package handlers

import (
	"encoding/json"

	"neotokyo-core/internal/domain"
	"neotokyo-core/internal/engine/session"
	"neotokyo-core/internal/systems"
)

// Context передает хендлеру сессию, над которой выполняется команда.
// Хендлер меняет сессию через её методы.
type Context struct {
	Session *session.Session
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в ответ напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, QUEST, ERROR)

	Results []systems.ActionResult
	Reward  *domain.Reward
	LevelUp *systems.XPResult
}

// HandlerFunc - это контракт для любой команды (ACTION, COMPLETE_QUEST, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
