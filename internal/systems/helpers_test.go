package systems

// seqStream - поток с заранее заданными значениями (по кругу).
type seqStream struct {
	vals []float64
	n    int
}

func (s *seqStream) Next() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

func fixed(vals ...float64) *seqStream {
	return &seqStream{vals: vals}
}
