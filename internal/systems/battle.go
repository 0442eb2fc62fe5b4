package systems

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
)

var (
	ErrInvalidTransition = errors.New("invalid combat transition")
	ErrInvalidTarget     = errors.New("invalid combat target")
)

// События машины боя
const (
	eventStart        = "start"
	eventPlayerActed  = "player_acted"
	eventEnemiesWiped = "all_enemies_defeated"
	eventEnemiesActed = "enemies_acted"
	eventPlayerDown   = "player_defeated"
)

func newPhaseMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(enums.PhaseIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(enums.PhaseIdle)}, Dst: string(enums.PhasePlayerTurn)},
			{Name: eventPlayerActed, Src: []string{string(enums.PhasePlayerTurn)}, Dst: string(enums.PhaseEnemyTurn)},
			{Name: eventEnemiesWiped, Src: []string{string(enums.PhasePlayerTurn)}, Dst: string(enums.PhaseVictory)},
			{Name: eventEnemiesActed, Src: []string{string(enums.PhaseEnemyTurn)}, Dst: string(enums.PhasePlayerTurn)},
			{Name: eventPlayerDown, Src: []string{string(enums.PhaseEnemyTurn)}, Dst: string(enums.PhaseDefeat)},
		},
		fsm.Callbacks{},
	)
}

// Battle - состояние одной пошаговой встречи.
//
// Переходы фаз задаёт внешний оркестратор (Start, PlayerAction, EnemyTurn),
// Battle только проверяет их допустимость.
type Battle struct {
	Encounter Encounter          `json:"encounter"`
	Player    domain.Combatant   `json:"player"`
	Enemies   []domain.Combatant `json:"enemies"`
	Turn      int                `json:"turn"`
	Log       []ActionResult     `json:"log"`

	resolver *Resolver
	phase    *fsm.FSM
}

// NewBattle готовит бой в фазе idle.
func NewBattle(player domain.Combatant, enc Encounter, resolver *Resolver) *Battle {
	enemies := make([]domain.Combatant, len(enc.Enemies))
	copy(enemies, enc.Enemies)

	return &Battle{
		Encounter: enc,
		Player:    player,
		Enemies:   enemies,
		Log:       make([]ActionResult, 0),
		resolver:  resolver,
		phase:     newPhaseMachine(),
	}
}

// Phase - текущая фаза.
func (b *Battle) Phase() enums.CombatPhase {
	return enums.CombatPhase(b.phase.Current())
}

func (b *Battle) fire(event string) error {
	if err := b.phase.Event(context.Background(), event); err != nil {
		return fmt.Errorf("%w: %s in %s: %v", ErrInvalidTransition, event, b.Phase(), err)
	}
	return nil
}

// Start: idle → player_turn.
func (b *Battle) Start() error {
	if err := b.fire(eventStart); err != nil {
		return err
	}
	b.Turn = 1
	return nil
}

// PlayerAction разрешает действие игрока.
// Если после него живых врагов не осталось - victory, иначе enemy_turn.
func (b *Battle) PlayerAction(action Action) (ActionResult, error) {
	if b.Phase() != enums.PhasePlayerTurn {
		return ActionResult{}, fmt.Errorf("%w: player action in %s", ErrInvalidTransition, b.Phase())
	}

	idx, err := b.target(action.TargetID)
	if err != nil {
		return ActionResult{}, err
	}

	player, res := b.resolver.ExecuteAction(b.Player, b.Enemies[idx], action)
	b.Player = player
	b.Enemies[idx] = ApplyDamage(b.Enemies[idx], res.Damage)
	b.Log = append(b.Log, res)

	if b.aliveEnemies() == 0 {
		logger.For("battle").WithFields(logrus.Fields{
			"encounter_id": b.Encounter.ID,
			"turn":         b.Turn,
		}).Info("Encounter won.")
		return res, b.fire(eventEnemiesWiped)
	}
	return res, b.fire(eventPlayerActed)
}

// EnemyTurn - все живые враги атакуют игрока по порядку.
// Как только здоровье игрока падает до нуля, ход прерывается и бой проигран.
func (b *Battle) EnemyTurn() ([]ActionResult, error) {
	if b.Phase() != enums.PhaseEnemyTurn {
		return nil, fmt.Errorf("%w: enemy turn in %s", ErrInvalidTransition, b.Phase())
	}

	results := make([]ActionResult, 0, len(b.Enemies))
	for i, enemy := range b.Enemies {
		if !enemy.Alive() {
			continue
		}

		attacker, res := b.resolver.ExecuteAction(enemy, b.Player, Action{Type: enums.ActionAttack, TargetID: b.Player.ID})
		b.Enemies[i] = attacker
		b.Player = ApplyDamage(b.Player, res.Damage)
		b.Log = append(b.Log, res)
		results = append(results, res)

		if IsDefeated(b.Player) {
			logger.For("battle").WithFields(logrus.Fields{
				"encounter_id": b.Encounter.ID,
				"turn":         b.Turn,
				"finisher":     enemy.ID,
			}).Info("Player defeated.")
			return results, b.fire(eventPlayerDown)
		}
	}

	b.Turn++
	return results, b.fire(eventEnemiesActed)
}

// Outcome - итог завершённого боя для передачи в прогрессию.
type Outcome struct {
	Victory bool             `json:"victory"`
	Player  domain.Combatant `json:"player"`
	Reward  domain.Reward    `json:"reward"`
}

// Outcome возвращает итог. Награда выдаётся только за победу.
func (b *Battle) Outcome() (Outcome, bool) {
	switch b.Phase() {
	case enums.PhaseVictory:
		return Outcome{
			Victory: true,
			Player:  b.Player,
			Reward:  domain.Reward{XP: b.Encounter.XPReward, Credits: b.Encounter.CreditReward},
		}, true
	case enums.PhaseDefeat:
		return Outcome{Player: b.Player}, true
	}
	return Outcome{}, false
}

func (b *Battle) target(id string) (int, error) {
	for i, e := range b.Enemies {
		if !e.Alive() {
			continue
		}
		if id == "" || e.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrInvalidTarget, id)
}

func (b *Battle) aliveEnemies() int {
	n := 0
	for _, e := range b.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}
