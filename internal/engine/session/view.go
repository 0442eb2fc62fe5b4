package session

import (
	"neotokyo-core/internal/domain"
	"neotokyo-core/internal/systems"
	"neotokyo-core/pkg/api"
)

// PlayerView собирает DTO игрока.
func (s *Session) PlayerView() *api.PlayerView {
	return &api.PlayerView{
		PlayerState: s.Player.Clone(),
		MaxHP:       systems.MaxHPFor(s.Player.Stats),
	}
}

// BattleView собирает DTO встречи (nil, если встреч не было).
func (s *Session) BattleView() *api.BattleView {
	b := s.Battle
	if b == nil {
		return nil
	}

	enemies := make([]domain.Combatant, len(b.Enemies))
	copy(enemies, b.Enemies)

	view := &api.BattleView{
		EncounterID: b.Encounter.ID,
		Name:        b.Encounter.Name,
		Phase:       b.Phase(),
		Turn:        b.Turn,
		Player:      b.Player,
		Enemies:     enemies,
	}
	if out, done := b.Outcome(); done {
		view.Outcome = &out
	}
	return view
}
