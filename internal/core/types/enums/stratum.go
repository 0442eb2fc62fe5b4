package enums

import "strings"

// Stratum - высотный пояс района.
type Stratum uint8

const (
	StratumUnknown Stratum = iota
	StratumLower
	StratumMid
	StratumUpper
)

var stratumToString = map[Stratum]string{
	StratumLower: "lower",
	StratumMid:   "mid",
	StratumUpper: "upper",
}

var stratumStringToType = map[string]Stratum{
	"lower": StratumLower,
	"mid":   StratumMid,
	"upper": StratumUpper,
}

func (s Stratum) String() string {
	if val, ok := stratumToString[s]; ok {
		return val
	}
	return "unknown"
}

func ParseStratum(s string) Stratum {
	if val, ok := stratumStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return StratumUnknown
}

func (s Stratum) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stratum) UnmarshalText(b []byte) error {
	*s = ParseStratum(string(b))
	return nil
}
