package engine

import (
	"github.com/google/uuid"

	"neotokyo-core/internal/config"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно по умолчанию. Пустое - каждая новая игра получает случайный сид.
	Seed          string
	DistrictCount int
}

// NewConfig собирает конфиг движка из конфига процесса.
func NewConfig(cfg config.Config) Config {
	return Config{
		Seed:          cfg.MasterSeed,
		DistrictCount: cfg.DistrictCount,
	}
}

// RandomSeed - сид для игры без явного сида. Такую игру можно
// воспроизвести, только сохранив выданный сид.
func RandomSeed() string {
	return uuid.NewString()
}
