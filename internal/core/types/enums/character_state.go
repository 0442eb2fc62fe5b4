package enums

import "strings"

// CharacterState - состояние персонажа в непрерывном бою.
type CharacterState uint8

const (
	CharacterStateIdle CharacterState = iota
	CharacterStateAttacking
	CharacterStateHurt
	CharacterStateStaggered
	CharacterStateDead
)

var characterStateToString = map[CharacterState]string{
	CharacterStateIdle:      "idle",
	CharacterStateAttacking: "attacking",
	CharacterStateHurt:      "hurt",
	CharacterStateStaggered: "staggered",
	CharacterStateDead:      "dead",
}

var characterStateStringToType = map[string]CharacterState{
	"idle":      CharacterStateIdle,
	"attacking": CharacterStateAttacking,
	"hurt":      CharacterStateHurt,
	"staggered": CharacterStateStaggered,
	"dead":      CharacterStateDead,
}

func (s CharacterState) String() string {
	if val, ok := characterStateToString[s]; ok {
		return val
	}
	return "idle"
}

func ParseCharacterState(s string) CharacterState {
	if val, ok := characterStateStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return CharacterStateIdle
}

func (s CharacterState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *CharacterState) UnmarshalText(b []byte) error {
	*s = ParseCharacterState(string(b))
	return nil
}
