package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_WsPollSecondsClampedToOne(t *testing.T) {
	t.Setenv("WS_POLL_SECONDS", "0")
	LoadConfig()
	assert.Equal(t, 1, WsPollSeconds)

	t.Setenv("WS_POLL_SECONDS", "-5")
	LoadConfig()
	assert.Equal(t, 1, WsPollSeconds)

	t.Setenv("WS_POLL_SECONDS", "30")
	LoadConfig()
	assert.Equal(t, 30, WsPollSeconds)
}

func TestLoadConfig_WsPollSecondsUnparseableFallsBack(t *testing.T) {
	t.Setenv("WS_POLL_SECONDS", "quince")
	LoadConfig()
	assert.Equal(t, 15, WsPollSeconds)
}
