package world

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
	"neotokyo-core/pkg/rng"
)

// Константы генерации
const (
	// StreamKey - ключ потока генерации районов внутри мастер-сида.
	StreamKey = "districts"

	lowerRatio = 0.3 // < 30% позиций - нижний пояс
	midRatio   = 0.7 // < 70% - средний, остальное - верхний

	SingleDistrictElevation = -10.0
)

// ElevationRange - допустимые высоты пояса.
type ElevationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains - высота внутри диапазона (границы включительно).
func (r ElevationRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DefaultRanges - высоты поясов по умолчанию.
var DefaultRanges = map[enums.Stratum]ElevationRange{
	enums.StratumLower: {Min: -50, Max: 0},
	enums.StratumMid:   {Min: 0, Max: 60},
	enums.StratumUpper: {Min: 60, Max: 200},
}

// Generator собирает упорядоченный список районов из мастер-сида.
type Generator struct {
	Profiles []domain.DistrictProfile
	Ranges   map[enums.Stratum]ElevationRange
}

// NewGenerator создает генератор со стандартными профилями и высотами.
func NewGenerator() *Generator {
	return &Generator{
		Profiles: Profiles,
		Ranges:   DefaultRanges,
	}
}

// GenerateDistricts - то же, что NewGenerator().GenerateDistricts.
func GenerateDistricts(masterSeed string, count int) []domain.District {
	return NewGenerator().GenerateDistricts(masterSeed, count)
}

// GenerateDistricts создает min(count, len(Profiles)) районов.
//
// Профили перемешиваются Фишером-Йетсом на потоке Derive(masterSeed, "districts"),
// пояс зависит от доли позиции в списке, высота - от того же потока.
// Сид района зависит только от позиции ("{masterSeed}_d{i}"), а не от профиля:
// контент района (квесты) не меняется, если изменится раздача профилей.
func (g *Generator) GenerateDistricts(masterSeed string, count int) []domain.District {
	log := logger.For("world_generator").WithFields(logrus.Fields{
		"master_seed": masterSeed,
		"requested":   count,
	})

	n := min(count, len(g.Profiles))
	if n <= 0 {
		log.Warn("Nothing to generate: no profiles or non-positive count.")
		return []domain.District{}
	}

	stream := rng.Derive(masterSeed, StreamKey)

	// 1. Перемешиваем индексы профилей (i от последнего к первому, j ≤ i)
	order := make([]int, len(g.Profiles))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(stream, i+1)
		order[i], order[j] = order[j], order[i]
	}

	// 2. Раздаём пояса и высоты
	districts := make([]domain.District, 0, n)
	for i := 0; i < n; i++ {
		stratum := StratumFor(i, n)
		elevation := g.elevation(stream, stratum)

		districts = append(districts, domain.District{
			ID:        DistrictID(i),
			Name:      g.Profiles[order[i]].Name,
			Seed:      DistrictSeed(masterSeed, i),
			Stratum:   stratum,
			Elevation: elevation,
			Profile:   g.Profiles[order[i]],
		})
	}

	log.WithField("generated", len(districts)).Debug("Districts generated.")
	return districts
}

// GenerateSingleDistrict - путь минимальной игры: первый профиль,
// нижний пояс и фиксированная высота.
func (g *Generator) GenerateSingleDistrict(masterSeed string) domain.District {
	var profile domain.DistrictProfile
	if len(g.Profiles) > 0 {
		profile = g.Profiles[0]
	}

	return domain.District{
		ID:        DistrictID(0),
		Name:      profile.Name,
		Seed:      DistrictSeed(masterSeed, 0),
		Stratum:   enums.StratumLower,
		Elevation: SingleDistrictElevation,
		Profile:   profile,
	}
}

func (g *Generator) elevation(stream rng.Stream, stratum enums.Stratum) float64 {
	r, ok := g.Ranges[stratum]
	if !ok {
		logger.For("world_generator").WithField("stratum", stratum).
			Warn("No elevation range for stratum, using zero range.")
	}
	return rng.Between(stream, r.Min, r.Max)
}

// StratumFor выбирает пояс по доле позиции i среди n районов.
func StratumFor(i, n int) enums.Stratum {
	if n <= 0 {
		return enums.StratumLower
	}
	ratio := float64(i) / float64(n)
	switch {
	case ratio < lowerRatio:
		return enums.StratumLower
	case ratio < midRatio:
		return enums.StratumMid
	default:
		return enums.StratumUpper
	}
}

// DistrictSeed - сид района по позиции.
func DistrictSeed(masterSeed string, index int) string {
	return fmt.Sprintf("%s_d%d", masterSeed, index)
}

func DistrictID(index int) string {
	return fmt.Sprintf("district_%d", index)
}
