package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/engine/handlers"
	"neotokyo-core/internal/engine/handlers/actions"
	"neotokyo-core/internal/engine/session"
	"neotokyo-core/internal/network"
	"neotokyo-core/pkg/api"
	"neotokyo-core/pkg/logger"
)

var (
	ErrNoGame        = errors.New("no game in session: send NEW_GAME first")
	ErrUnknownAction = errors.New("unknown action")
)

// Service держит игровые сессии и разбирает команды клиентов.
type Service struct {
	Config Config
	Hub    *network.Broadcaster

	mu       sync.Mutex
	sessions map[string]*session.Session

	handlers map[string]handlers.HandlerFunc
}

func NewService(cfg Config) *Service {
	s := &Service{
		Config:   cfg,
		Hub:      network.NewBroadcaster(),
		sessions: make(map[string]*session.Session),
		handlers: make(map[string]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *Service) registerHandlers() {
	s.handlers[api.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[api.ActionStartEncounter] = handlers.WithPayload(actions.HandleStartEncounter)
	s.handlers[api.ActionCombat] = handlers.WithPayload(actions.HandleCombat)
	s.handlers[api.ActionCompleteQuest] = handlers.WithPayload(actions.HandleCompleteQuest)
	s.handlers[api.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	s.handlers[api.ActionUnequip] = handlers.WithPayload(actions.HandleUnequip)
	s.handlers[api.ActionAllocate] = handlers.WithPayload(actions.HandleAllocate)
}

// OpenSession выдаёт новый ID сессии.
func (s *Service) OpenSession() string {
	return uuid.NewString()
}

// CloseSession забывает игру сессии.
func (s *Service) CloseSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Session возвращает игру сессии.
func (s *Service) Session(id string) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// NewGame генерирует игру и привязывает её к сессии (старая игра отбрасывается).
func (s *Service) NewGame(ctx context.Context, sessionID string, p api.NewGamePayload) (*session.Session, error) {
	cfg := session.Config{Seed: p.Seed, DistrictCount: p.Districts}
	if cfg.Seed == "" {
		cfg.Seed = s.Config.Seed
	}
	if cfg.Seed == "" {
		cfg.Seed = RandomSeed()
	}
	if cfg.DistrictCount == 0 {
		cfg.DistrictCount = s.Config.DistrictCount
	}

	sess, err := session.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sessionID] = sess
	s.mu.Unlock()

	return sess, nil
}

// ProcessCommand выполняет команду клиента и отправляет снимок в его канал Hub.
// Token команды - ID сессии.
func (s *Service) ProcessCommand(ctx context.Context, cmd api.ClientCommand) api.ServerResponse {
	resp := s.process(ctx, cmd)
	s.Hub.SendTo(cmd.Token, resp)
	return resp
}

func (s *Service) process(ctx context.Context, cmd api.ClientCommand) api.ServerResponse {
	log := logger.For("game_service").WithFields(logrus.Fields{
		"session_id": cmd.Token,
		"action":     cmd.Action,
	})

	if cmd.Action == api.ActionNewGame {
		var p api.NewGamePayload
		if len(cmd.Payload) > 0 {
			if err := json.Unmarshal(cmd.Payload, &p); err != nil {
				return errorResponse(cmd.Token, fmt.Errorf("invalid payload format: %w", err))
			}
		}
		if err := p.Validate(); err != nil {
			return errorResponse(cmd.Token, fmt.Errorf("validation failed: %w", err))
		}

		sess, err := s.NewGame(ctx, cmd.Token, p)
		if err != nil {
			log.WithError(err).Error("New game failed.")
			return errorResponse(cmd.Token, err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		return s.snapshot(cmd.Token, sess, api.TypeInit, handlers.EmptyResult())
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		log.Warn("Unknown action.")
		return errorResponse(cmd.Token, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action))
	}

	// Команды одной сессии выполняются строго по очереди.
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[cmd.Token]
	if !ok {
		return errorResponse(cmd.Token, ErrNoGame)
	}

	res, err := handler(handlers.Context{Session: sess}, cmd.Payload)
	if err != nil {
		log.WithError(err).Debug("Command rejected.")
		resp := s.snapshot(cmd.Token, sess, api.TypeError, handlers.EmptyResult())
		resp.Error = err.Error()
		return resp
	}
	if res.Msg != "" {
		sess.AddLog(res.Msg, res.MsgType)
	}

	typ := api.TypeUpdate
	if cmd.Action == api.ActionInit {
		typ = api.TypeInit
	}
	return s.snapshot(cmd.Token, sess, typ, res)
}

// snapshot собирает ответ. Районы и квесты уходят только в INIT.
func (s *Service) snapshot(id string, sess *session.Session, typ string, res handlers.Result) api.ServerResponse {
	resp := api.ServerResponse{
		Type:      typ,
		SessionID: id,
		Seed:      sess.Seed,
		Player:    sess.PlayerView(),
		Battle:    sess.BattleView(),
		Results:   res.Results,
		Reward:    res.Reward,
		LevelUp:   res.LevelUp,
		Logs:      sess.FlushLogs(),
	}
	if typ == api.TypeInit {
		resp.Districts = sess.Districts
		resp.Quests = sess.Clusters
	}
	return resp
}

func errorResponse(id string, err error) api.ServerResponse {
	return api.ServerResponse{Type: api.TypeError, SessionID: id, Error: err.Error()}
}

// SessionSummary - краткая информация о сессии для отладки.
type SessionSummary struct {
	ID        string `json:"id"`
	Seed      string `json:"seed"`
	Districts int    `json:"districts"`
	Level     int    `json:"level"`
	InBattle  bool   `json:"inBattle"`
}

// Sessions - сводка по всем сессиям, отсортированная по ID.
func (s *Service) Sessions() []SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SessionSummary, 0, len(s.sessions))
	for id, sess := range s.sessions {
		out = append(out, SessionSummary{
			ID:        id,
			Seed:      sess.Seed,
			Districts: len(sess.Districts),
			Level:     sess.Player.Level.Current,
			InBattle:  sess.Battle != nil && !sess.Battle.Phase().IsFinal(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
