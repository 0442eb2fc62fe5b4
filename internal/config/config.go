package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска ядра.
type Config struct {
	// MasterSeed - мастер-зерно. От него зависят все районы и квесты.
	// District N Seed = MasterSeed + "_d" + N
	MasterSeed    string `env:"MASTER_SEED"`
	DistrictCount int    `env:"DISTRICT_COUNT" envDefault:"6"`

	Port      string `env:"CD_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load читает конфиг из переменных окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
