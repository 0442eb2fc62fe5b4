package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/core/types/enums"
	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
)

// Параметры кривой опыта
const (
	XPPerLevel         = 100
	BaseStatValue      = 10
	StatGrowthPerLevel = 2
	StatPointsPerLevel = 3

	BaseMaxHP      = 50
	HPPerStructure = 5
)

var (
	ErrNegativeAllocation   = errors.New("allocation has negative values")
	ErrAllocationOverBudget = errors.New("allocation exceeds available points")
)

// NextLevelXP = 100 × level
func NextLevelXP(level int) int {
	return XPPerLevel * max(1, level)
}

// XPResult - итог начисления опыта.
type XPResult struct {
	Level        int  `json:"level"`
	XP           int  `json:"xp"`
	LeveledUp    bool `json:"leveledUp"`
	LevelsGained int  `json:"levelsGained"`
}

// AddXP начисляет опыт. Один крупный грант может поднять несколько уровней:
// пока xp ≥ NextLevelXP(level), порог вычитается и уровень растёт.
func AddXP(level, xp, amount int) XPResult {
	level = max(1, level)
	amount = max(0, amount)
	total := xp + amount
	if xp > 0 && amount > math.MaxInt-xp {
		// насыщение вместо переполнения
		total = math.MaxInt
	}
	res := XPResult{Level: level, XP: total}

	for res.XP >= NextLevelXP(res.Level) {
		res.XP -= NextLevelXP(res.Level)
		res.Level++
		res.LevelsGained++
	}
	res.LeveledUp = res.LevelsGained > 0
	return res
}

// BaseStats = 10 + (level−1)×2 на каждую характеристику.
func BaseStats(level int) domain.StatBlock {
	return domain.Uniform(BaseStatValue + (max(1, level)-1)*StatGrowthPerLevel)
}

// EquipmentBonus - сумма бонусов всех надетых предметов.
func EquipmentBonus(eq domain.EquipmentComponent) domain.StatBlock {
	var bonus domain.StatBlock
	for _, it := range eq.Items() {
		bonus = bonus.Add(it.Bonus)
	}
	return bonus
}

// RecalculateStats собирает статы с нуля: база уровня + вложенные очки + экипировка.
// Бонусы экипировки никогда не накладываются на предыдущий снимок статов.
func RecalculateStats(level int, allocated domain.StatBlock, eq domain.EquipmentComponent) domain.StatBlock {
	return BaseStats(level).Add(allocated).Add(EquipmentBonus(eq)).ClampNonNegative()
}

// MaxHPFor = 50 + structure × 5
func MaxHPFor(stats domain.StatBlock) int {
	return BaseMaxHP + stats.Structure*HPPerStructure
}

// ValidateAllocation проверяет распределение очков.
func ValidateAllocation(allocation domain.StatBlock, available int) error {
	if allocation.HasNegative() {
		return ErrNegativeAllocation
	}
	if allocation.Sum() > available {
		return fmt.Errorf("%w: %d > %d", ErrAllocationOverBudget, allocation.Sum(), available)
	}
	return nil
}

// ApplyStatAllocation списывает очки и добавляет распределение к статам.
func ApplyStatAllocation(progress domain.LevelProgress, stats, allocation domain.StatBlock) (domain.LevelProgress, domain.StatBlock, error) {
	if err := ValidateAllocation(allocation, progress.StatPoints); err != nil {
		return progress, stats, err
	}

	progress.StatPoints -= allocation.Sum()
	progress.Allocated = progress.Allocated.Add(allocation)
	return progress, stats.Add(allocation), nil
}

// roleWeight - доли очков в процентах; Primary забирает остаток от округления.
type roleWeight struct {
	Primary domain.Stat
	Percent [4]int // по порядку domain.AllStats
}

var roleWeights = map[enums.Role]roleWeight{
	enums.RoleStriker:  {Primary: domain.StatIgnition, Percent: [4]int{20, 50, 0, 30}},
	enums.RoleTank:     {Primary: domain.StatStructure, Percent: [4]int{60, 20, 0, 20}},
	enums.RoleHacker:   {Primary: domain.StatLogic, Percent: [4]int{20, 0, 60, 20}},
	enums.RoleRunner:   {Primary: domain.StatFlow, Percent: [4]int{20, 30, 0, 50}},
	enums.RoleBalanced: {Primary: domain.StatStructure, Percent: [4]int{25, 25, 25, 25}},
}

// RecommendedAllocation раскладывает points по весам роли (с округлением вниз),
// остаток уходит в основную характеристику. Сумма всегда равна points.
// Неизвестная роль считается balanced.
func RecommendedAllocation(role enums.Role, points int) domain.StatBlock {
	if points <= 0 {
		return domain.StatBlock{}
	}

	w, ok := roleWeights[role]
	if !ok {
		w = roleWeights[enums.RoleBalanced]
	}

	var out domain.StatBlock
	for i, stat := range domain.AllStats {
		out = out.With(stat, points*w.Percent[i]/100)
	}
	rest := points - out.Sum()
	return out.With(w.Primary, out.Get(w.Primary)+rest)
}

// NewLevelProgress - прогресс на уровне level без опыта и очков.
func NewLevelProgress(level int) domain.LevelProgress {
	level = max(1, level)
	return domain.LevelProgress{
		Current:     level,
		NextLevelXP: NextLevelXP(level),
	}
}

// NewPlayerState - состояние по умолчанию, на которое воспроизводятся награды.
func NewPlayerState() domain.PlayerState {
	return domain.PlayerState{
		Level:      NewLevelProgress(1),
		Stats:      BaseStats(1),
		Inventory:  []string{},
		Reputation: make(map[enums.Faction]int),
	}
}

// GrantXP начисляет опыт игроку. За каждый уровень даётся StatPointsPerLevel очков,
// статы пересобираются с нуля.
func GrantXP(p domain.PlayerState, amount int) (domain.PlayerState, XPResult) {
	next := p.Clone()
	res := AddXP(p.Level.Current, p.Level.XP, amount)

	next.Level.Current = res.Level
	next.Level.XP = res.XP
	next.Level.NextLevelXP = NextLevelXP(res.Level)

	if res.LeveledUp {
		next.Level.StatPoints += res.LevelsGained * StatPointsPerLevel
		next.Stats = RecalculateStats(res.Level, next.Level.Allocated, next.Equipment)

		logger.For("progression").WithFields(logrus.Fields{
			"level":       res.Level,
			"gained":      res.LevelsGained,
			"stat_points": next.Level.StatPoints,
		}).Info("Level up.")
	}
	return next, res
}

// AllocatePlayerStats тратит свободные очки игрока.
func AllocatePlayerStats(p domain.PlayerState, allocation domain.StatBlock) (domain.PlayerState, error) {
	next := p.Clone()
	progress, stats, err := ApplyStatAllocation(p.Level, p.Stats, allocation)
	if err != nil {
		return p, fmt.Errorf("allocate stats: %w", err)
	}
	next.Level = progress
	next.Stats = stats
	return next, nil
}

// PlayerEntity собирает боевую сущность из постоянного состояния игрока.
func PlayerEntity(id, name string, p domain.PlayerState) domain.Entity {
	stats := p.Stats
	hp := MaxHPFor(stats)
	stability := domain.NewStability(enums.EntityClassPlayer)
	progress := p.Level
	eq := p.Clone().Equipment

	return domain.Entity{
		ID:             id,
		Name:           name,
		Class:          enums.EntityClassPlayer,
		Position:       &domain.Vec3{},
		Health:         &domain.HealthComponent{Current: hp, Max: hp},
		Stats:          &stats,
		Stability:      &stability,
		Progress:       &progress,
		Equipment:      &eq,
		CharacterState: enums.CharacterStateIdle,
	}
}
