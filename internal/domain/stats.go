package domain

// Stat - одна из четырёх характеристик.
type Stat uint8

const (
	StatStructure Stat = iota // здоровье и защита
	StatIgnition              // урон ближнего боя и криты
	StatLogic                 // дальний/тех урон
	StatFlow                  // точность и уклонение
)

// AllStats - порядок обхода характеристик.
var AllStats = [...]Stat{StatStructure, StatIgnition, StatLogic, StatFlow}

// StatBlock - четыре неотрицательные характеристики.
type StatBlock struct {
	Structure int `json:"structure"`
	Ignition  int `json:"ignition"`
	Logic     int `json:"logic"`
	Flow      int `json:"flow"`
}

// Uniform возвращает блок с одинаковым значением всех характеристик.
func Uniform(v int) StatBlock {
	return StatBlock{Structure: v, Ignition: v, Logic: v, Flow: v}
}

func (s StatBlock) Get(stat Stat) int {
	switch stat {
	case StatStructure:
		return s.Structure
	case StatIgnition:
		return s.Ignition
	case StatLogic:
		return s.Logic
	case StatFlow:
		return s.Flow
	}
	return 0
}

// With возвращает копию с заменённой характеристикой.
func (s StatBlock) With(stat Stat, v int) StatBlock {
	switch stat {
	case StatStructure:
		s.Structure = v
	case StatIgnition:
		s.Ignition = v
	case StatLogic:
		s.Logic = v
	case StatFlow:
		s.Flow = v
	}
	return s
}

func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		Structure: s.Structure + o.Structure,
		Ignition:  s.Ignition + o.Ignition,
		Logic:     s.Logic + o.Logic,
		Flow:      s.Flow + o.Flow,
	}
}

// Sum - сумма всех характеристик.
func (s StatBlock) Sum() int {
	return s.Structure + s.Ignition + s.Logic + s.Flow
}

// HasNegative - есть ли отрицательная компонента.
func (s StatBlock) HasNegative() bool {
	return s.Structure < 0 || s.Ignition < 0 || s.Logic < 0 || s.Flow < 0
}

// ClampNonNegative обрезает отрицательные значения до нуля.
func (s StatBlock) ClampNonNegative() StatBlock {
	for _, stat := range AllStats {
		if s.Get(stat) < 0 {
			s = s.With(stat, 0)
		}
	}
	return s
}
