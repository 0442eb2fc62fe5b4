// Package rng выдаёт детерминированные потоки псевдослучайных чисел.
//
// Каждый генератор получает собственный поток, выведенный из корневого
// сида и ключа ("seed:key"). Потоки не делят состояние, поэтому
// поддерживают независимую и переупорядочиваемую генерацию.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Stream - детерминированная последовательность чисел в [0, 1).
type Stream interface {
	Next() float64
}

// source - Stream поверх math/rand. Не потокобезопасен:
// один поток принадлежит одной горутине.
type source struct {
	r *rand.Rand
}

func (s *source) Next() float64 {
	return s.r.Float64()
}

// StringToSeed превращает строковый сид в int64 для math/rand.
func StringToSeed(seed string) int64 {
	return int64(xxhash.Sum64String(seed))
}

// FromSeed создаёт поток по числовому сиду.
func FromSeed(seed int64) Stream {
	return &source{r: rand.New(rand.NewSource(seed))}
}

// New создаёт поток, однозначно заданный строкой.
func New(seed string) Stream {
	return FromSeed(StringToSeed(seed))
}

// Derive выводит независимый поток для ключа key внутри корневого сида.
// Чистая функция: одинаковые (rootSeed, key) дают одинаковые последовательности.
func Derive(rootSeed, key string) Stream {
	return New(rootSeed + ":" + key)
}

// Unseeded - явно недетерминированный поток для режима "быстрой игры".
// Сид берётся из crypto/rand; воспроизвести такой бой нельзя.
func Unseeded() Stream {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("rng: read random seed: " + err.Error())
	}
	return FromSeed(int64(binary.LittleEndian.Uint64(b[:])))
}

// Intn возвращает floor(next × n) в диапазоне [0, n).
func Intn(s Stream, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between возвращает min + next × (max − min).
func Between(s Stream, min, max float64) float64 {
	return min + s.Next()*(max-min)
}
