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
	vars := []string{
		"TUI_ESCAPE_FLUSH_TIMEOUT",
		"TUI_LINE_SCROLL",
		"TUI_WHEEL_SCROLL",
		"TUI_RESET_ON_ZERO",
		"TUI_DOUBLE_CLICK_INTERVAL",
		"TUI_EXIT_ON_CTRL_C",
	}
	for _, v := range vars {
		prev, had := os.LookupEnv(v)
		os.Unsetenv(v)
		t.Cleanup(func() {
			if had {
				os.Setenv(v, prev)
			} else {
				os.Unsetenv(v)
			}
		})
	}
}

func TestDefaultMatchesSpecLiteralValues(t *testing.T) {
	clearEnv(t)
	cfg := Default()

	assert.Equal(t, 10*time.Millisecond, cfg.EscapeFlushTimeout)
	assert.Equal(t, 1, cfg.LineScroll)
	assert.Equal(t, 3, cfg.WheelScroll)
	assert.True(t, cfg.ResetOnZero)
	assert.Equal(t, 400*time.Millisecond, cfg.DoubleClickInterval)
	assert.True(t, cfg.ExitOnCtrlC)
}

func TestLoadWithoutEnvFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.LineScroll)
}

func TestLoadWithMissingEnvFileIsNotAnError(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.WheelScroll)
}

func TestLoadOverridesDefaultsFromProcessEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("TUI_LINE_SCROLL", "5")
	os.Setenv("TUI_RESET_ON_ZERO", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.LineScroll)
	assert.False(t, cfg.ResetOnZero)
}

func TestLoadReadsValuesFromEnvFile(t *testing.T) {
	clearEnv(t)
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("TUI_WHEEL_SCROLL=7\nTUI_EXIT_ON_CTRL_C=false\n"), 0o644))

	cfg, err := Load(envPath)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.WheelScroll)
	assert.False(t, cfg.ExitOnCtrlC)
}

func TestLoadParsesDurationFields(t *testing.T) {
	clearEnv(t)
	os.Setenv("TUI_ESCAPE_FLUSH_TIMEOUT", "25ms")
	os.Setenv("TUI_DOUBLE_CLICK_INTERVAL", "1s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.EscapeFlushTimeout)
	assert.Equal(t, time.Second, cfg.DoubleClickInterval)
}

func TestLoadReturnsErrorOnMalformedValue(t *testing.T) {
	clearEnv(t)
	os.Setenv("TUI_LINE_SCROLL", "not-an-int")

	_, err := Load("")
	assert.Error(t, err)
}
