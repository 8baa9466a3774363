package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults when env is empty", func(t *testing.T) {
		// given
		t.Setenv("LLM_BASE_URL", "")
		t.Setenv("LLM_API_KEY", "")
		t.Setenv("LLM_MODEL", "")

		// when
		cfg := Load()

		// then
		assert.Equal(t, "https://api.openai.com/v1", cfg.LLMBaseURL)
		assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
		assert.False(t, cfg.AIConfigured())
	})

	t.Run("should trim a trailing slash from the base url", func(t *testing.T) {
		// given
		t.Setenv("LLM_BASE_URL", "https://llm.internal/v1/")
		t.Setenv("LLM_API_KEY", "secret")

		// when
		cfg := Load()

		// then
		assert.Equal(t, "https://llm.internal/v1", cfg.LLMBaseURL)
		assert.True(t, cfg.AIConfigured())
	})
}
