package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("ASSIST_PORT", "9090")
	t.Setenv("ASSIST_DEBUG", "true")
	t.Setenv("ASSIST_OPENAI_API_KEY", "sk-test")
	t.Setenv("ASSIST_CHAT_MODEL", "gpt-4o")
	t.Setenv("ASSIST_CHAT_TIMEOUT", "5s")
	t.Setenv("ASSIST_CORPUS_PATH", "/etc/assist/corpus.json")
	t.Setenv("ASSIST_TOP_K", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.ChatModel)
	assert.Equal(t, 5*time.Second, cfg.ChatTimeout)
	assert.Equal(t, "/etc/assist/corpus.json", cfg.CorpusPath)
	assert.Equal(t, 6, cfg.TopK)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, 20*time.Second, cfg.ChatTimeout)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_RejectsNonPositiveTopK(t *testing.T) {
	t.Setenv("ASSIST_TOP_K", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestHasOpenAI(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}
	assert.True(t, cfg.HasOpenAI())

	cfg.OpenAIAPIKey = ""
	assert.False(t, cfg.HasOpenAI())
}
