package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.DistrictCount)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MASTER_SEED", "abc")
	t.Setenv("DISTRICT_COUNT", "3")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.MasterSeed)
	assert.Equal(t, 3, cfg.DistrictCount)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("DISTRICT_COUNT", "many")

	_, err := Load()
	assert.Error(t, err)
}
