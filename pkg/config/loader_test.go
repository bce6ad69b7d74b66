package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoinfo/pkg/config"
)

type resolverSettings struct {
	Field string `env:"GEOINFO_TEST_FIELD" envDefault:"X-Forwarded-For"`
	Index int    `env:"GEOINFO_TEST_INDEX" envDefault:"-1"`
}

type requiredSettings struct {
	Value string `env:"GEOINFO_TEST_REQUIRED,required"`
}

type cachedSettings struct {
	Value string `env:"GEOINFO_TEST_CACHED" envDefault:"first"`
}

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEOINFO_TEST_FIELD", "GEOINFO_TEST_INDEX", "GEOINFO_TEST_REQUIRED", "GEOINFO_TEST_CACHED"} {
		os.Unsetenv(key)
	}
	config.ResetCache()
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	var cfg resolverSettings
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "X-Forwarded-For", cfg.Field)
	assert.Equal(t, -1, cfg.Index)
}

func TestLoad_FromEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv("GEOINFO_TEST_FIELD", "REMOTE_ADDR")
	t.Setenv("GEOINFO_TEST_INDEX", "0")

	var cfg resolverSettings
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "REMOTE_ADDR", cfg.Field)
	assert.Equal(t, 0, cfg.Index)
}

func TestLoad_Cached(t *testing.T) {
	unsetAll(t)

	var first cachedSettings
	require.NoError(t, config.Load(&first))

	t.Setenv("GEOINFO_TEST_CACHED", "second")

	var second cachedSettings
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	var reloaded cachedSettings
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetAll(t)

	var cfg requiredSettings
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *resolverSettings
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Reload(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Run("later files override earlier ones", func(t *testing.T) {
		unsetAll(t)
		t.Cleanup(func() { unsetAll(t) })

		require.NoError(t, config.LoadEnv("testdata/.env.proxy", "testdata/.env.override"))

		var cfg resolverSettings
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "X-Real-IP", cfg.Field)
		assert.Equal(t, -2, cfg.Index)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must variant panics", func(t *testing.T) {
		assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
	})
}
