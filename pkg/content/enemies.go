package content

import (
	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/rng"
)

// EnemyTemplate определяет шаблон для создания врага
type EnemyTemplate struct {
	ID           string
	Name         string
	Class        enums.EntityClass
	Faction      enums.Faction
	Stats        domain.StatBlock
	HP           int
	XPReward     int
	CreditReward int
	Description  string
}

// SpawnCombatant создает бойца для пошаговой встречи.
func (t EnemyTemplate) SpawnCombatant(id, name string) domain.Combatant {
	return domain.Combatant{
		ID:        id,
		Name:      name,
		Stats:     t.Stats,
		CurrentHP: t.HP,
		MaxHP:     t.HP,
	}
}

// SpawnEntity создает сущность для непрерывного боя на заданной позиции.
// Устойчивость задаётся классом врага.
func (t EnemyTemplate) SpawnEntity(pos domain.Vec3, stream rng.Stream) domain.Entity {
	stats := t.Stats
	stability := domain.NewStability(t.Class)

	return domain.Entity{
		ID:        rng.DeterministicID(stream, "e_"),
		Name:      t.Name,
		Class:     t.Class,
		Faction:   t.Faction,
		Position:  &pos,
		Health:    &domain.HealthComponent{Current: t.HP, Max: t.HP},
		Stats:     &stats,
		Stability: &stability,
	}
}

// --- ВРАГИ ---

var StreetPunk = EnemyTemplate{
	ID:           "street_punk",
	Name:         "Street Punk",
	Class:        enums.EntityClassGrunt,
	Faction:      enums.FactionSyndicate,
	Stats:        domain.StatBlock{Structure: 6, Ignition: 8, Logic: 2, Flow: 6},
	HP:           40,
	XPReward:     25,
	CreditReward: 15,
	Description:  "Шпана из-под эстакады с обрезком трубы.",
}

var SecurityDrone = EnemyTemplate{
	ID:           "security_drone",
	Name:         "Security Drone",
	Class:        enums.EntityClassGrunt,
	Stats:        domain.StatBlock{Structure: 10, Ignition: 6, Logic: 10, Flow: 8},
	HP:           35,
	XPReward:     30,
	CreditReward: 25,
	Description:  "Корпоративный дрон-охранник с электрошокером.",
}

var AcademyEnforcer = EnemyTemplate{
	ID:           "academy_enforcer",
	Name:         "Azure Enforcer",
	Class:        enums.EntityClassGrunt,
	Faction:      enums.FactionAzure,
	Stats:        domain.StatBlock{Structure: 12, Ignition: 10, Logic: 6, Flow: 10},
	HP:           60,
	XPReward:     45,
	CreditReward: 30,
	Description:  "Старшекурсник лазурной академии из дисциплинарного комитета.",
}

var SyndicateBruiser = EnemyTemplate{
	ID:           "syndicate_bruiser",
	Name:         "Syndicate Bruiser",
	Class:        enums.EntityClassGrunt,
	Faction:      enums.FactionSyndicate,
	Stats:        domain.StatBlock{Structure: 16, Ignition: 14, Logic: 2, Flow: 4},
	HP:           80,
	XPReward:     60,
	CreditReward: 50,
	Description:  "Вышибала синдиката в армированной куртке.",
}

var RivalCaptain = EnemyTemplate{
	ID:           "rival_captain",
	Name:         "Rival Captain",
	Class:        enums.EntityClassBoss,
	Faction:      enums.FactionAzure,
	Stats:        domain.StatBlock{Structure: 24, Ignition: 22, Logic: 14, Flow: 16},
	HP:           220,
	XPReward:     300,
	CreditReward: 250,
	Description:  "Капитан боевого клуба соперников. Не проигрывал с первого курса.",
}

var MechWarden = EnemyTemplate{
	ID:           "mech_warden",
	Name:         "Mech Warden",
	Class:        enums.EntityClassBoss,
	Stats:        domain.StatBlock{Structure: 40, Ignition: 18, Logic: 20, Flow: 6},
	HP:           400,
	XPReward:     450,
	CreditReward: 400,
	Description:  "Шагающий охранный мех литейного квартала.",
}

// EnemyTemplates - карта всех доступных врагов
var EnemyTemplates = map[string]EnemyTemplate{
	StreetPunk.ID:       StreetPunk,
	SecurityDrone.ID:    SecurityDrone,
	AcademyEnforcer.ID:  AcademyEnforcer,
	SyndicateBruiser.ID: SyndicateBruiser,
	RivalCaptain.ID:     RivalCaptain,
	MechWarden.ID:       MechWarden,
}
