package enums

import "strings"

// Faction - сторона, к которой тянет выбор игрока (репутация).
type Faction uint8

const (
	FactionNone Faction = iota
	FactionKurenai
	FactionAzure
	FactionSyndicate
	FactionRunners
)

var factionToString = map[Faction]string{
	FactionKurenai:   "kurenai",
	FactionAzure:     "azure",
	FactionSyndicate: "syndicate",
	FactionRunners:   "runners",
}

var factionStringToType = map[string]Faction{
	"kurenai":   FactionKurenai,
	"azure":     FactionAzure,
	"syndicate": FactionSyndicate,
	"runners":   FactionRunners,
}

func (f Faction) String() string {
	if val, ok := factionToString[f]; ok {
		return val
	}
	return "none"
}

func ParseFaction(s string) Faction {
	if val, ok := factionStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return FactionNone
}

func (f Faction) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Faction) UnmarshalText(b []byte) error {
	*f = ParseFaction(string(b))
	return nil
}
