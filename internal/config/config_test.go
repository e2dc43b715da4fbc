package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONVOY_API_BASE_URL", "CONVOY_LOG_FILE", "CONVOY_DEBUG", "CONVOY_REQUEST_TIMEOUT", "CONVOY_NO_ALT_SCREEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000", cfg.APIBaseURL)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.Zero(t, cfg.RequestTimeout, "requests stay unbounded unless configured")
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONVOY_API_BASE_URL", "https://api.convoy.test")
	t.Setenv("CONVOY_LOG_FILE", "/tmp/convoy.log")
	t.Setenv("CONVOY_DEBUG", "true")
	t.Setenv("CONVOY_REQUEST_TIMEOUT", "15s")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.convoy.test", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/convoy.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONVOY_API_BASE_URL=http://from-dotenv:4000\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CONVOY_API_BASE_URL") })

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:4000", cfg.APIBaseURL)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"), nil)
	assert.NoError(t, err)
}

func TestLoadOverridesWinOverEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONVOY_API_BASE_URL", "https://env.example")

	v := NewViper()
	v.Set(KeyAPIBaseURL, "https://flag.example")

	cfg, err := Load("", v)
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", cfg.APIBaseURL)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	cases := []string{"soon", "-5s"}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CONVOY_REQUEST_TIMEOUT", raw)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}
