package domain

// Combatant - проекция сущности внутри одного пошагового боя.
// Создаётся из шаблона врага или из живых статов игрока, после боя выбрасывается.
type Combatant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stats     StatBlock `json:"stats"`
	CurrentHP int       `json:"currentHp"`
	MaxHP     int       `json:"maxHp"`
	Defending bool      `json:"defending"`
}

// Alive - у бойца осталось здоровье.
func (c Combatant) Alive() bool {
	return c.CurrentHP > 0
}
