package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/content"
	"neotokyo-core/pkg/logger"
)

// Encounter - готовая к бою встреча.
type Encounter struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Enemies      []domain.Combatant `json:"enemies"`
	XPReward     int                `json:"xpReward"`
	CreditReward int                `json:"creditReward"`
}

// CreateEncounter создает встречу из встроенных шаблонов.
func CreateEncounter(templateID string) Encounter {
	return CreateEncounterFrom(content.Default, templateID)
}

// CreateEncounterFrom разворачивает шаблон встречи в бойцов.
//
// Каждая запись {templateId, count} повторяется count раз; дубликаты
// нумеруются: "Name", "Name 2", "Name 3"... Неизвестные шаблоны врагов
// пропускаются с предупреждением - встреча собирается из того, что нашлось.
func CreateEncounterFrom(reg content.Registry, templateID string) Encounter {
	log := logger.For("encounter_builder").WithField("encounter_id", templateID)

	tpl, ok := reg.LookupEncounter(templateID)
	if !ok {
		log.Warn("Unknown encounter template, returning empty encounter.")
		return Encounter{ID: templateID, Enemies: []domain.Combatant{}}
	}

	enc := Encounter{
		ID:      tpl.ID,
		Name:    tpl.Name,
		Enemies: make([]domain.Combatant, 0),
	}

	spawned := make(map[string]int) // templateID -> сколько уже создано
	for _, entry := range tpl.Enemies {
		enemy, ok := reg.LookupEnemy(entry.TemplateID)
		if !ok {
			log.WithFields(logrus.Fields{
				"enemy_id": entry.TemplateID,
				"count":    entry.Count,
			}).Warn("Unknown enemy template skipped.")
			continue
		}

		for i := 0; i < entry.Count; i++ {
			spawned[entry.TemplateID]++
			n := spawned[entry.TemplateID]

			name := enemy.Name
			if n > 1 {
				name = fmt.Sprintf("%s %d", enemy.Name, n)
			}
			id := fmt.Sprintf("%s_%d", entry.TemplateID, len(enc.Enemies))

			enc.Enemies = append(enc.Enemies, enemy.SpawnCombatant(id, name))
			enc.XPReward += enemy.XPReward
			enc.CreditReward += enemy.CreditReward
		}
	}

	log.WithField("enemies", len(enc.Enemies)).Debug("Encounter created.")
	return enc
}

// CalculateEncounterXP - сумма опыта за всех врагов встречи.
func CalculateEncounterXP(templateID string) int {
	return CreateEncounter(templateID).XPReward
}

// CalculateEncounterCredits - сумма кредитов за всех врагов встречи.
func CalculateEncounterCredits(templateID string) int {
	return CreateEncounter(templateID).CreditReward
}

// PlayerCombatant проецирует сущность игрока в бойца.
// Без компонента здоровья максимум выводится из Structure.
func PlayerCombatant(e domain.Entity) domain.Combatant {
	c := domain.Combatant{ID: e.ID, Name: e.Name}
	if e.Stats != nil {
		c.Stats = *e.Stats
	}
	if e.Health != nil {
		c.CurrentHP = e.Health.Current
		c.MaxHP = e.Health.Max
	} else {
		c.MaxHP = MaxHPFor(c.Stats)
		c.CurrentHP = c.MaxHP
	}
	return c
}
