package enums

import "strings"

// EntityClass определяет параметры устойчивости (poise) сущности.
type EntityClass uint8

const (
	EntityClassUnknown EntityClass = iota
	EntityClassGrunt
	EntityClassBoss
	EntityClassPlayer
)

var entityClassToString = map[EntityClass]string{
	EntityClassGrunt:  "grunt",
	EntityClassBoss:   "boss",
	EntityClassPlayer: "player",
}

var entityClassStringToType = map[string]EntityClass{
	"grunt":  EntityClassGrunt,
	"boss":   EntityClassBoss,
	"player": EntityClassPlayer,
}

// String возвращает строковое представление (для логов и дебага)
func (c EntityClass) String() string {
	if val, ok := entityClassToString[c]; ok {
		return val
	}
	return "unknown"
}

// ParseEntityClass конвертирует строку в Enum (нужно для загрузки шаблонов)
func ParseEntityClass(s string) EntityClass {
	if val, ok := entityClassStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return EntityClassUnknown
}

func (c EntityClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *EntityClass) UnmarshalText(b []byte) error {
	*c = ParseEntityClass(string(b))
	return nil
}
