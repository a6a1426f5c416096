package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waferhq/wafer/core/config"
)

type serverConfig struct {
	Addr  string `env:"WAFER_TEST_ADDR" envDefault:":8080"`
	Debug bool   `env:"WAFER_TEST_DEBUG" envDefault:"false"`
}

type cachedConfig struct {
	Value string `env:"WAFER_TEST_CACHED" envDefault:"initial"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	type envConfig struct {
		Addr string `env:"WAFER_TEST_ENV_ADDR" envDefault:":8080"`
	}

	t.Setenv("WAFER_TEST_ENV_ADDR", ":9999")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9999", cfg.Addr)
}

func TestLoadCachesPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached value.
	t.Setenv("WAFER_TEST_CACHED", "changed")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadNil(t *testing.T) {
	t.Parallel()

	err := config.Load[serverConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		var cfg serverConfig
		config.MustLoad(&cfg)
	})
}
