package model

import "time"

// ChatMessage is one turn in the career-counselor chat
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatRequest is the request body for the chat endpoint
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// ExplainRequest asks for an explanation of an assessment question
type ExplainRequest struct {
	Question string `json:"question"`
}

// SuggestRequest asks for a personalized answer suggestion
type SuggestRequest struct {
	Question string             `json:"question"`
	Scores   map[string]float64 `json:"scores"`
	Careers  []string           `json:"careers"`
}

// AIResponse wraps opaque text returned from an AI endpoint
type AIResponse struct {
	Text        string    `json:"text"`
	Cached      bool      `json:"cached"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generatedAt"`
}
