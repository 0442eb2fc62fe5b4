package rng

import "fmt"

// DeterministicID генерирует ID из потока: одинаковый поток - одинаковые ID.
// Нужен, чтобы предметы из реплея получали те же ID, что и в живой игре.
func DeterministicID(s Stream, prefix string) string {
	hi := uint32(s.Next() * (1 << 32))
	lo := uint32(s.Next() * (1 << 32))
	return fmt.Sprintf("%s%08x%08x", prefix, hi, lo)
}
