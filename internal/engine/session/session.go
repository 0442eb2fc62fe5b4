// Package session хранит состояние одной игры: сгенерированный мир,
// постоянное состояние игрока и текущую встречу.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/internal/systems"
	"neotokyo-core/pkg/api"
	"neotokyo-core/pkg/content"
	"neotokyo-core/pkg/logger"
	"neotokyo-core/pkg/quest"
	"neotokyo-core/pkg/world"
)

var (
	ErrUnknownQuest     = errors.New("unknown quest")
	ErrQuestCompleted   = errors.New("quest already completed")
	ErrLevelTooLow      = errors.New("level too low")
	ErrUnknownEncounter = errors.New("unknown encounter")
	ErrBattleInProgress = errors.New("battle in progress")
	ErrNoBattle         = errors.New("no active battle")
)

// PlayerID - ID игрока внутри встреч.
const PlayerID = "player"

// Config - параметры новой игры.
type Config struct {
	Seed          string
	DistrictCount int
	PlayerName    string
}

// Session - одна игра. Не потокобезопасна: доступ сериализует владелец (engine.Service).
type Session struct {
	Seed      string                `json:"seed"`
	Districts []domain.District     `json:"districts"`
	Clusters  []domain.QuestCluster `json:"clusters"`
	Player    domain.PlayerState    `json:"player"`

	// Rewards - все выданные награды по порядку.
	// ReplayRewards(NewPlayerState(), Rewards) воспроизводит Player без экипировки и распределения.
	Rewards []domain.Reward `json:"rewards"`

	Battle *systems.Battle `json:"battle,omitempty"`

	Logs []api.LogEntry `json:"-"`

	name       string
	encounters int // сколько встреч уже начато: часть ключа потока боя
	registry   content.Registry
	log        *logrus.Entry
}

// New генерирует мир по сиду и создаёт игрока по умолчанию.
// Один район - режим минимальной игры (первый профиль, нижний пояс).
func New(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.PlayerName == "" {
		cfg.PlayerName = "Runner"
	}

	gen := world.NewGenerator()
	var districts []domain.District
	if cfg.DistrictCount == 1 {
		districts = []domain.District{gen.GenerateSingleDistrict(cfg.Seed)}
	} else {
		districts = gen.GenerateDistricts(cfg.Seed, cfg.DistrictCount)
	}

	clusters, err := quest.GenerateWorld(ctx, districts)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		Seed:      cfg.Seed,
		Districts: districts,
		Clusters:  clusters,
		Player:    systems.NewPlayerState(),
		Rewards:   make([]domain.Reward, 0),
		Logs:      make([]api.LogEntry, 0),
		name:      cfg.PlayerName,
		registry:  content.Default,
		log:       logger.For("session").WithField("seed", cfg.Seed),
	}

	s.log.WithField("districts", len(districts)).Info("Session created.")
	s.AddLog(fmt.Sprintf("Город сгенерирован: %d районов.", len(districts)), "INFO")
	return s, nil
}

// Quest ищет квест по ID во всех кластерах.
func (s *Session) Quest(id string) (domain.Quest, bool) {
	for _, c := range s.Clusters {
		if q, ok := c.Find(id); ok {
			return q, true
		}
	}
	return domain.Quest{}, false
}

// CompleteQuest отмечает квест выполненным и передаёт награду в прогрессию.
func (s *Session) CompleteQuest(id string) (domain.Reward, systems.XPResult, error) {
	q, ok := s.Quest(id)
	if !ok {
		return domain.Reward{}, systems.XPResult{}, fmt.Errorf("%w: %q", ErrUnknownQuest, id)
	}
	if q.Completed {
		return domain.Reward{}, systems.XPResult{}, fmt.Errorf("%w: %q", ErrQuestCompleted, id)
	}
	if req := q.Requirements; req != nil && s.Player.Level.Current < req.Level {
		return domain.Reward{}, systems.XPResult{}, fmt.Errorf("%w: %q needs level %d", ErrLevelTooLow, id, req.Level)
	}

	s.markCompleted(id)
	res := s.grant(q.Rewards)

	s.AddLog(fmt.Sprintf("Квест выполнен: %s (+%d XP, +%d кредитов).", q.Title, q.Rewards.XP, q.Rewards.Credits), "QUEST")
	return q.Rewards, res, nil
}

func (s *Session) markCompleted(id string) {
	for i := range s.Clusters {
		c := &s.Clusters[i]
		for _, q := range []*domain.Quest{&c.Main, &c.Sides[0], &c.Sides[1], &c.Secret} {
			if q.ID == id {
				q.Completed = true
				return
			}
		}
	}
}

func (s *Session) grant(r domain.Reward) systems.XPResult {
	next, res := systems.ApplyReward(s.Player, r)
	s.Player = next
	s.Rewards = append(s.Rewards, r)

	if res.LeveledUp {
		s.AddLog(fmt.Sprintf("Новый уровень: %d (+%d очков).", res.Level, res.LevelsGained*systems.StatPointsPerLevel), "INFO")
	}
	return res
}

// StartEncounter начинает встречу. Поток боя выводится из сида игры
// и порядкового номера встречи, поэтому бой воспроизводим.
func (s *Session) StartEncounter(id string) (*systems.Battle, error) {
	if s.Battle != nil && !s.Battle.Phase().IsFinal() {
		return nil, ErrBattleInProgress
	}

	enc := systems.CreateEncounterFrom(s.registry, id)
	if len(enc.Enemies) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncounter, id)
	}

	key := fmt.Sprintf("encounter_%d_%s", s.encounters, id)
	s.encounters++

	player := systems.PlayerCombatant(systems.PlayerEntity(PlayerID, s.name, s.Player))
	b := systems.NewBattle(player, enc, systems.NewSeededResolver(s.Seed, key))
	if err := b.Start(); err != nil {
		return nil, err
	}
	s.Battle = b

	s.AddLog(fmt.Sprintf("Встреча: %s (%d противников).", enc.Name, len(enc.Enemies)), "COMBAT")
	return b, nil
}

// Act - ход игрока. Если бой продолжается, сразу отыгрывается ход врагов.
// Победа передаёт награду встречи в прогрессию.
func (s *Session) Act(action systems.Action) ([]systems.ActionResult, *systems.XPResult, error) {
	if s.Battle == nil || s.Battle.Phase().IsFinal() {
		return nil, nil, ErrNoBattle
	}
	b := s.Battle

	res, err := b.PlayerAction(action)
	if err != nil {
		return nil, nil, err
	}
	results := []systems.ActionResult{res}
	s.logResult(res)

	if b.Phase() == enums.PhaseEnemyTurn {
		enemy, err := b.EnemyTurn()
		if err != nil {
			return results, nil, err
		}
		for _, r := range enemy {
			s.logResult(r)
		}
		results = append(results, enemy...)
	}

	out, done := b.Outcome()
	if !done {
		return results, nil, nil
	}
	if !out.Victory {
		s.AddLog("Поражение.", "COMBAT")
		return results, nil, nil
	}

	s.AddLog(fmt.Sprintf("Победа! +%d XP, +%d кредитов.", out.Reward.XP, out.Reward.Credits), "COMBAT")
	xp := s.grant(out.Reward)
	return results, &xp, nil
}

// Allocate тратит свободные очки характеристик.
func (s *Session) Allocate(alloc domain.StatBlock) error {
	next, err := systems.AllocatePlayerStats(s.Player, alloc)
	if err != nil {
		return err
	}
	s.Player = next
	return nil
}

// Equip надевает предмет из инвентаря.
func (s *Session) Equip(itemID string) error {
	next, err := systems.Equip(s.Player, s.registry, itemID)
	if err != nil {
		return err
	}
	s.Player = next
	return nil
}

// Unequip снимает предмет из слота.
func (s *Session) Unequip(slot enums.ItemSlot) error {
	next, err := systems.Unequip(s.Player, slot)
	if err != nil {
		return err
	}
	s.Player = next
	return nil
}

// AddLog добавляет запись в игровой лог сессии.
func (s *Session) AddLog(text, logType string) {
	now := time.Now()
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", s.Seed, now.UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: now.UnixMilli(),
	})
	s.log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
	}).Debug(text)
}

// FlushLogs возвращает накопленные записи и очищает лог.
func (s *Session) FlushLogs() []api.LogEntry {
	logs := s.Logs
	s.Logs = make([]api.LogEntry, 0)
	return logs
}

func (s *Session) logResult(r systems.ActionResult) {
	switch {
	case r.Action == enums.ActionDefend:
		s.AddLog(fmt.Sprintf("%s защищается.", r.AttackerID), "COMBAT")
	case !r.Hit:
		s.AddLog(fmt.Sprintf("%s промахивается по %s.", r.AttackerID, r.DefenderID), "COMBAT")
	case r.Critical:
		s.AddLog(fmt.Sprintf("%s критически бьёт %s: %d урона!", r.AttackerID, r.DefenderID, r.Damage), "COMBAT")
	default:
		s.AddLog(fmt.Sprintf("%s бьёт %s: %d урона.", r.AttackerID, r.DefenderID, r.Damage), "COMBAT")
	}
}
