package systems

import (
	"github.com/sirupsen/logrus"

	"neotokyo-core/internal/domain"
	"neotokyo-core/pkg/logger"
)

// ApplyReward складывает награду в аккумуляторы игрока: опыт, кредиты,
// предметы и репутацию. Исходное состояние не меняется.
func ApplyReward(p domain.PlayerState, r domain.Reward) (domain.PlayerState, XPResult) {
	next, res := GrantXP(p, r.XP)

	next.Credits += r.Credits
	next.Inventory = append(next.Inventory, r.Items...)

	if shift := r.AlignmentShift; shift != nil {
		next.Reputation[shift.Faction] += shift.Amount
	}

	logger.For("rewards").WithFields(logrus.Fields{
		"xp":      r.XP,
		"credits": r.Credits,
		"items":   len(r.Items),
	}).Debug("Reward applied.")

	return next, res
}

// ReplayRewards воспроизводит сохранённую последовательность наград
// поверх начального состояния. Один и тот же список всегда даёт один и тот же снимок.
func ReplayRewards(initial domain.PlayerState, rewards []domain.Reward) domain.PlayerState {
	state := initial.Clone()
	for _, r := range rewards {
		state, _ = ApplyReward(state, r)
	}
	return state
}
