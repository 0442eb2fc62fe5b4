package rng

import "neotokyo-core/internal/core/types/enums"

// GrammarEntry - запись взвешенной таблицы грамматики.
type GrammarEntry struct {
	Value         string        `json:"value"`
	Weight        float64       `json:"weight"`                  // > 0
	AlignmentBias enums.Faction `json:"alignmentBias,omitempty"` // FactionNone - без смещения
}

// SelectWeighted выбирает запись пропорционально весу.
func SelectWeighted(entries []GrammarEntry, s Stream) GrammarEntry {
	return Pick(entries, func(e GrammarEntry) float64 { return e.Weight }, s)
}

// Pick - взвешенный выбор из произвольной таблицы.
//
// r = next × Σweight; вычитаем веса по порядку и возвращаем первую запись,
// на которой r ≤ 0. Если из-за округления ни одна не подошла, возвращается
// последняя запись: выбор никогда не "проваливается".
// Для пустой таблицы возвращается нулевое значение T.
func Pick[T any](items []T, weightOf func(T) float64, s Stream) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	total := 0.0
	for _, it := range items {
		total += weightOf(it)
	}

	r := s.Next() * total
	for _, it := range items {
		r -= weightOf(it)
		if r <= 0 {
			return it
		}
	}

	return items[len(items)-1]
}
