package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "inputs", AnswersFile: "answers.yaml"}, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/tmp/aoc")
	t.Setenv("AOC_ANSWERS_FILE", "")
	t.Setenv("AOC_VERBOSE", "true")
	t.Setenv("AOC_SKIP_INVALID", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/aoc", cfg.InputDir)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.SkipInvalid)
}

func TestBadBool(t *testing.T) {
	t.Setenv("AOC_VERBOSE", "sometimes")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
