package config

import "time"

const (
	envOpenAIKey     = "OPENAI_API_KEY"
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIModel   = "OPENAI_MODEL"
	envOpenAITimeout = "OPENAI_TIMEOUT"
	envAskRPM        = "ASK_REQUESTS_PER_MINUTE"

	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4"
	defaultOpenAITimeout = 60 * Duration(time.Second)
	defaultAskRPM        = 20
)

// LLMConfig controls the chat-completion client.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout Duration
	// AskRequestsPerMinute caps question traffic across all clients.
	AskRequestsPerMinute int
}

// Enabled reports whether an API key was supplied.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadLLM() LLMConfig {
	return LLMConfig{
		APIKey:  envOrDefault(envOpenAIKey, ""),
		BaseURL: envOrDefault(envOpenAIBaseURL, defaultOpenAIBaseURL),
		Model:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
		Timeout: durationEnvOrDefault(envOpenAITimeout, defaultOpenAITimeout),

		AskRequestsPerMinute: intEnvOrDefault(envAskRPM, defaultAskRPM),
	}
}
