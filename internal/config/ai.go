package config

import "os"

// AIConfig holds configuration for the two upstream language-model APIs.
// The chat endpoint proxies to Groq's OpenAI-compatible chat completions;
// the completion endpoint proxies to the HuggingFace inference API.
type AIConfig struct {
	GroqAPIKey string `json:"-"` // Never serialize
	GroqURL    string `json:"groqUrl"`
	GroqModel  string `json:"groqModel"`

	HFAPIToken string `json:"-"` // Never serialize
	HFURL      string `json:"hfUrl"`

	TimeoutMS int `json:"timeoutMs"`
	CacheTTLS int `json:"cacheTtlSeconds"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GroqURL:    getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		GroqModel:  getEnv("GROQ_MODEL", "qwen/qwen3-32b"),
		HFAPIToken: os.Getenv("HUGGINGFACE_API_TOKEN"),
		HFURL:      getEnv("HUGGINGFACE_API_URL", "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"),
		TimeoutMS:  10000,
		CacheTTLS:  3600,
	}
}

// ChatEnabled reports whether the chat upstream is configured.
func (c *AIConfig) ChatEnabled() bool {
	return c.GroqAPIKey != ""
}

// CompletionEnabled reports whether the completion upstream is configured.
func (c *AIConfig) CompletionEnabled() bool {
	return c.HFAPIToken != ""
}
