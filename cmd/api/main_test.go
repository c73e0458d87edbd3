package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitAndTrim("a, b ,c"))
	assert.Equal(t, []string{"solo"}, splitAndTrim("solo"))
	assert.Nil(t, splitAndTrim(""))
}

func TestEnvHelpersFallBack(t *testing.T) {
	assert.Equal(t, "fallback", envString("ECONPULSE_UNSET_VAR", "fallback"))
	assert.Equal(t, 42, envInt("ECONPULSE_UNSET_VAR", 42))
	assert.Equal(t, time.Hour, envDuration("ECONPULSE_UNSET_VAR", time.Hour))
}

func TestEnvHelpersReadValues(t *testing.T) {
	t.Setenv("ECONPULSE_TEST_VAR", "7")
	assert.Equal(t, "7", envString("ECONPULSE_TEST_VAR", "fallback"))
	assert.Equal(t, 7, envInt("ECONPULSE_TEST_VAR", 42))

	t.Setenv("ECONPULSE_TEST_VAR", "90s")
	assert.Equal(t, 90*time.Second, envDuration("ECONPULSE_TEST_VAR", time.Hour))

	t.Setenv("ECONPULSE_TEST_VAR", "not-a-number")
	assert.Equal(t, 42, envInt("ECONPULSE_TEST_VAR", 42))
	assert.Equal(t, time.Hour, envDuration("ECONPULSE_TEST_VAR", time.Hour))
}
