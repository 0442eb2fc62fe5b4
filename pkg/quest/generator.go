// Package quest генерирует кластеры квестов районов по грамматике.
package quest

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
	"neotokyo-core/pkg/rng"
)

// RareItemID - предмет, который может выпасть за секретный квест.
const RareItemID = "data_shard_prototype"

// Slot - позиция квеста в кластере.
type Slot struct {
	Suffix     string
	Type       enums.QuestType
	SeedOffset int
}

// Slots - все слоты кластера в порядке генерации.
var Slots = [4]Slot{
	{Suffix: "main", Type: enums.QuestTypeMain, SeedOffset: 1},
	{Suffix: "side_1", Type: enums.QuestTypeSide, SeedOffset: 2},
	{Suffix: "side_2", Type: enums.QuestTypeSide, SeedOffset: 3},
	{Suffix: "secret", Type: enums.QuestTypeSecret, SeedOffset: 4},
}

type baseReward struct {
	XP, Credits int
}

var baseRewards = map[enums.QuestType]baseReward{
	enums.QuestTypeMain:   {XP: 500, Credits: 1000},
	enums.QuestTypeSide:   {XP: 200, Credits: 400},
	enums.QuestTypeSecret: {XP: 300, Credits: 600},
}

var levelRequirements = map[enums.QuestType]int{
	enums.QuestTypeSide:   2,
	enums.QuestTypeSecret: 5,
}

// Generator выводит квесты из корневого сида (обычно - сида района).
//
// Каждый квест тянет числа из собственного потока, поэтому квесты кластера
// можно генерировать в любом порядке или параллельно с одинаковым результатом.
type Generator struct {
	rootSeed string
	grammar  Grammar
}

// NewGenerator создает генератор со стандартной грамматикой.
func NewGenerator(rootSeed string) *Generator {
	return &Generator{rootSeed: rootSeed, grammar: DefaultGrammar}
}

// WithGrammar подменяет таблицы (моды, тесты).
func (g *Generator) WithGrammar(gr Grammar) *Generator {
	g.grammar = gr
	return g
}

// GenerateCluster создает ровно 1 main, 2 side и 1 secret квест района.
func (g *Generator) GenerateCluster(profile domain.DistrictProfile, districtID, districtName string) domain.QuestCluster {
	return domain.QuestCluster{
		DistrictID:   districtID,
		DistrictName: districtName,
		Main:         g.GenerateQuest(profile, districtID, districtName, Slots[0]),
		Sides: [2]domain.Quest{
			g.GenerateQuest(profile, districtID, districtName, Slots[1]),
			g.GenerateQuest(profile, districtID, districtName, Slots[2]),
		},
		Secret: g.GenerateQuest(profile, districtID, districtName, Slots[3]),
	}
}

// QuestID - "{districtId}_{suffix}".
func QuestID(districtID string, slot Slot) string {
	return districtID + "_" + slot.Suffix
}

// GenerateQuest создает один квест слота.
func (g *Generator) GenerateQuest(profile domain.DistrictProfile, districtID, districtName string, slot Slot) domain.Quest {
	questID := QuestID(districtID, slot)
	stream := rng.New(fmt.Sprintf("%s_%s_%d", g.rootSeed, questID, slot.SeedOffset))

	theme, known := g.grammar.Theme(profile.Theme)
	if !known {
		logger.For("quest_generator").WithFields(logrus.Fields{
			"district_id": districtID,
			"theme":       profile.Theme,
			"fallback":    DefaultTheme,
		}).Warn("Unknown district theme, falling back to default tables.")
	}

	// Шесть независимых взвешенных выборов, порядок фиксирован.
	noun := rng.SelectWeighted(g.grammar.Nouns, stream)
	verb := rng.SelectWeighted(g.grammar.Verbs, stream)
	adjective := rng.SelectWeighted(theme.Adjectives, stream)
	landmark := rng.SelectWeighted(theme.Landmarks, stream)
	outcome := rng.SelectWeighted(g.grammar.Outcomes, stream)
	contact := rng.SelectWeighted(g.grammar.Contacts, stream)

	verbTitle := capitalize(verb.Value)

	q := domain.Quest{
		ID:        questID,
		Type:      slot.Type,
		Title:     fmt.Sprintf("%s the %s %s", verbTitle, adjective.Value, noun.Value),
		Objective: fmt.Sprintf("%s the %s from %s", verbTitle, noun.Value, landmark.Value),
		Location:  fmt.Sprintf("%s, %s", landmark.Value, districtName),
		Description: g.describe(questID,
			"{contact}", contact.Value,
			"{noun}", noun.Value,
			"{landmark}", landmark.Value,
			"{outcome}", outcome.Value,
			"{district}", districtName,
		),
		Rewards: g.rewards(stream, slot.Type, verb),
	}

	if lvl, ok := levelRequirements[slot.Type]; ok {
		q.Requirements = &domain.Requirements{Level: lvl}
	}

	return q
}

// describe выбирает шаблон описания на собственном потоке квеста,
// чтобы текст не зависел от порядка генерации соседних квестов.
func (g *Generator) describe(questID string, pairs ...string) string {
	if len(g.grammar.Descriptions) == 0 {
		return ""
	}
	stream := rng.New(fmt.Sprintf("%s_%s_description", g.rootSeed, questID))
	tpl := g.grammar.Descriptions[rng.Intn(stream, len(g.grammar.Descriptions))]
	out := strings.NewReplacer(pairs...).Replace(tpl)
	return capitalize(out)
}

func (g *Generator) rewards(stream rng.Stream, qt enums.QuestType, verb rng.GrammarEntry) domain.Reward {
	base := baseRewards[qt]

	r := domain.Reward{
		XP:      vary(base.XP, stream),
		Credits: vary(base.Credits, stream),
	}

	if verb.AlignmentBias != enums.FactionNone {
		r.AlignmentShift = &domain.AlignmentShift{
			Faction: verb.AlignmentBias,
			Amount:  10 + rng.Intn(stream, 11), // 10..20
		}
	}

	if qt == enums.QuestTypeSecret && stream.Next() > 0.5 {
		r.Items = []string{RareItemID}
	}

	return r
}

// vary масштабирует базу на 0.8 + r × 0.4 (±20%).
func vary(base int, stream rng.Stream) int {
	return int(math.Floor(float64(base) * (0.8 + stream.Next()*0.4)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GenerateWorld создает кластеры всех районов параллельно.
// Каждый район владеет своим генератором, поэтому результат не зависит от планировщика.
func GenerateWorld(ctx context.Context, districts []domain.District) ([]domain.QuestCluster, error) {
	clusters := make([]domain.QuestCluster, len(districts))

	eg, ctx := errgroup.WithContext(ctx)
	for i := range districts {
		d := districts[i]
		idx := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			clusters[idx] = NewGenerator(d.Seed).GenerateCluster(d.Profile, d.ID, d.Name)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate quest clusters: %w", err)
	}
	return clusters, nil
}
