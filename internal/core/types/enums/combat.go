package enums

import "strings"

// CombatPhase - фаза пошагового боя.
// Значения совпадают с именами состояний машины боя.
type CombatPhase string

const (
	PhaseIdle       CombatPhase = "idle"
	PhasePlayerTurn CombatPhase = "player_turn"
	PhaseEnemyTurn  CombatPhase = "enemy_turn"
	PhaseVictory    CombatPhase = "victory"
	PhaseDefeat     CombatPhase = "defeat"
)

// IsFinal - бой закончен.
func (p CombatPhase) IsFinal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionAttack
	ActionDefend
)

var actionTypeToString = map[ActionType]string{
	ActionAttack: "attack",
	ActionDefend: "defend",
}

var actionTypeStringToType = map[string]ActionType{
	"attack": ActionAttack,
	"defend": ActionDefend,
}

func (a ActionType) String() string {
	if val, ok := actionTypeToString[a]; ok {
		return val
	}
	return "unknown"
}

func ParseActionType(s string) ActionType {
	if val, ok := actionTypeStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *ActionType) UnmarshalText(b []byte) error {
	*a = ParseActionType(string(b))
	return nil
}

// HitRejectReason - почему удар хитбокса не засчитан.
type HitRejectReason uint8

const (
	HitAccepted HitRejectReason = iota
	HitRejectDead
	HitRejectInvincible
	HitRejectAlreadyHit
)

var hitRejectToString = map[HitRejectReason]string{
	HitRejectDead:       "dead",
	HitRejectInvincible: "invincible",
	HitRejectAlreadyHit: "already_hit",
}

func (r HitRejectReason) String() string {
	if val, ok := hitRejectToString[r]; ok {
		return val
	}
	return ""
}

func (r HitRejectReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
