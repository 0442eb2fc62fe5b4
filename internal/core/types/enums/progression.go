package enums

import "strings"

// Role - архетип для рекомендованного распределения очков.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleStriker
	RoleTank
	RoleHacker
	RoleRunner
	RoleBalanced
)

var roleToString = map[Role]string{
	RoleStriker:  "striker",
	RoleTank:     "tank",
	RoleHacker:   "hacker",
	RoleRunner:   "runner",
	RoleBalanced: "balanced",
}

var roleStringToType = map[string]Role{
	"striker":  RoleStriker,
	"tank":     RoleTank,
	"hacker":   RoleHacker,
	"runner":   RoleRunner,
	"balanced": RoleBalanced,
}

func (r Role) String() string {
	if val, ok := roleToString[r]; ok {
		return val
	}
	return "unknown"
}

func ParseRole(s string) Role {
	if val, ok := roleStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return RoleUnknown
}

func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}

type ItemSlot uint8

const (
	ItemSlotUnknown ItemSlot = iota // 0
	ItemSlotWeapon                  // 1
	ItemSlotArmor                   // 2
	ItemSlotAccessory               // 3
	ItemSlotKey                     // 4 - квестовые предметы, не экипируются
)

var itemSlotToString = map[ItemSlot]string{
	ItemSlotWeapon:    "weapon",
	ItemSlotArmor:     "armor",
	ItemSlotAccessory: "accessory",
	ItemSlotKey:       "key",
}

var itemSlotStringToType = map[string]ItemSlot{
	"weapon":    ItemSlotWeapon,
	"armor":     ItemSlotArmor,
	"accessory": ItemSlotAccessory,
	"key":       ItemSlotKey,
}

func (s ItemSlot) String() string {
	if val, ok := itemSlotToString[s]; ok {
		return val
	}
	return "unknown"
}

func ParseItemSlot(s string) ItemSlot {
	if val, ok := itemSlotStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return ItemSlotUnknown
}

func (s ItemSlot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *ItemSlot) UnmarshalText(b []byte) error {
	*s = ParseItemSlot(string(b))
	return nil
}
