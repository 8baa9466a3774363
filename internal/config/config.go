package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	GitHubToken string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),

		LLMBaseURL: os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   os.Getenv("LLM_MODEL"),
	}

	cfg.LLMBaseURL = strings.TrimSuffix(cfg.LLMBaseURL, "/")

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.openai.com/v1"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}

	return cfg
}

// AIConfigured reports whether an LLM credential is present. Without one,
// description synthesis runs template-only.
func (c *Config) AIConfigured() bool {
	return c.LLMAPIKey != ""
}
