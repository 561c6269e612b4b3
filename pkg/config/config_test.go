package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiepack/pkg/config"
)

type testConfig struct {
	Address string `env:"TEST_CP_ADDRESS" yaml:"address"`
	Name    string `env:"TEST_CP_NAME" yaml:"name"`
	Evict   bool   `env:"TEST_CP_EVICT" yaml:"evict"`
	Nested  struct {
		Level string `env:"TEST_CP_LEVEL" yaml:"level"`
	} `yaml:"nested"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg := testConfig{Address: ":8080", Name: "zappa"}
	require.NoError(t, config.Load(&cfg, config.WithDotEnv()))

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "zappa", cfg.Name)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: pack\nnested:\n  level: debug\n")

	cfg := testConfig{Address: ":8080", Name: "zappa"}
	require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithoutEnv()))

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "pack", cfg.Name)
	assert.Equal(t, "debug", cfg.Nested.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("TEST_CP_NAME", "from-env")
	t.Setenv("TEST_CP_EVICT", "true")
	path := writeFile(t, "config.yaml", "name: from-file\naddress: :9000\n")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithDotEnv()))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, ":9000", cfg.Address)
	assert.True(t, cfg.Evict)
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeFile(t, "test.env", "TEST_CP_LEVEL=warn\n")
	t.Cleanup(func() { _ = os.Unsetenv("TEST_CP_LEVEL") })

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))))

	assert.Equal(t, "warn", cfg.Nested.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	cfg := testConfig{Name: "zappa"}
	require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithoutEnv()))
	assert.Equal(t, "zappa", cfg.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("not a pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load(testConfig{}), config.ErrNotPointer)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNotPointer)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfig
		assert.Error(t, config.Load(&cfg, config.WithFile(filepath.Join(t.TempDir(), "nope.yaml"))))
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "unknown: 1\n")
		var cfg testConfig
		assert.Error(t, config.Load(&cfg, config.WithFile(path), config.WithoutEnv()))
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("TEST_CP_EVICT", "maybe")
		var cfg testConfig
		assert.Error(t, config.Load(&cfg, config.WithDotEnv()))
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() { config.MustLoad(testConfig{}) })
	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithoutEnv())
	})
}
