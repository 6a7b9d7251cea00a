package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/config"
	"careercompass/internal/model"
)

// AIService proxies explanation, suggestion, and chat requests to the
// upstream language-model APIs. Upstream output is opaque text; any failure
// is replaced by a deterministic fallback so callers never see a raw error.
type AIService struct {
	config *config.AIConfig
	client *http.Client
	cache  cache.AIResponseCache
	logger *zap.Logger
}

// NewAIService creates a new AI service.
func NewAIService(cfg *config.AIConfig, responseCache cache.AIResponseCache, logger *zap.Logger) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		cache:  responseCache,
		logger: logger,
	}
}

// Chat forwards a conversation to the chat-completions upstream.
func (s *AIService) Chat(ctx context.Context, req *model.ChatRequest) (*model.AIResponse, error) {
	if len(req.Messages) == 0 {
		return fallbackResponse(counselorFallback), nil
	}
	if !s.config.ChatEnabled() {
		return fallbackResponse(counselorFallback), nil
	}

	signature := chatSignature(req)
	if text, ok := s.cached(ctx, signature); ok {
		return &model.AIResponse{Text: text, Cached: true, GeneratedAt: time.Now().UTC()}, nil
	}

	text, err := s.callChatCompletions(ctx, req)
	if err != nil {
		s.logger.Warn("chat upstream failed, serving fallback", zap.Error(err))
		return fallbackResponse(counselorFallback), nil
	}

	s.store(ctx, signature, text)
	return &model.AIResponse{Text: text, GeneratedAt: time.Now().UTC()}, nil
}

// ExplainQuestion returns commentary on why an assessment question matters.
func (s *AIService) ExplainQuestion(ctx context.Context, question string) (*model.AIResponse, error) {
	fallback := explanationFor(question)
	if !s.config.CompletionEnabled() {
		return fallbackResponse(fallback), nil
	}

	prompt := "Explain in two short paragraphs why the following career assessment question matters " +
		"for career development, in a clear and educational tone:\n\n" + question
	signature := "explain:" + prompt
	if text, ok := s.cached(ctx, signature); ok {
		return &model.AIResponse{Text: text, Cached: true, GeneratedAt: time.Now().UTC()}, nil
	}

	text, err := s.callCompletion(ctx, prompt)
	if err != nil {
		s.logger.Warn("explain upstream failed, serving fallback", zap.Error(err))
		return fallbackResponse(fallback), nil
	}

	s.store(ctx, signature, text)
	return &model.AIResponse{Text: text, GeneratedAt: time.Now().UTC()}, nil
}

// SuggestAnswer returns a personalized suggestion for an open-ended question
// based on the user's scores and recommended careers.
func (s *AIService) SuggestAnswer(ctx context.Context, req *model.SuggestRequest) (*model.AIResponse, error) {
	fallback := suggestionFor(req.Scores, req.Careers)
	if !s.config.CompletionEnabled() {
		return fallbackResponse(fallback), nil
	}

	prompt := fmt.Sprintf(
		"You are providing personalized suggestions based on assessment results. "+
			"Question: %s\nCategory scores: %s\nRecommended careers: %s\n"+
			"Suggest a thoughtful, specific answer the user could adapt.",
		req.Question, formatScores(req.Scores), strings.Join(req.Careers, ", "))
	signature := "suggest:" + prompt
	if text, ok := s.cached(ctx, signature); ok {
		return &model.AIResponse{Text: text, Cached: true, GeneratedAt: time.Now().UTC()}, nil
	}

	text, err := s.callCompletion(ctx, prompt)
	if err != nil {
		s.logger.Warn("suggest upstream failed, serving fallback", zap.Error(err))
		return fallbackResponse(fallback), nil
	}

	s.store(ctx, signature, text)
	return &model.AIResponse{Text: text, GeneratedAt: time.Now().UTC()}, nil
}

func fallbackResponse(text string) *model.AIResponse {
	return &model.AIResponse{Text: text, Fallback: true, GeneratedAt: time.Now().UTC()}
}

func (s *AIService) cached(ctx context.Context, signature string) (string, bool) {
	text, ok, err := s.cache.Get(ctx, signature)
	if err != nil {
		s.logger.Warn("ai cache read failed", zap.Error(err))
		return "", false
	}
	return text, ok
}

func (s *AIService) store(ctx context.Context, signature, text string) {
	if err := s.cache.Set(ctx, signature, text); err != nil {
		s.logger.Warn("ai cache write failed", zap.Error(err))
	}
}

func chatSignature(req *model.ChatRequest) string {
	var b strings.Builder
	b.WriteString("chat:")
	for _, m := range req.Messages {
		b.WriteString(m.Role)
		b.WriteString("|")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// callChatCompletions posts to the OpenAI-compatible chat endpoint and
// extracts the first choice's message content.
func (s *AIService) callChatCompletions(ctx context.Context, req *model.ChatRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 700
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	body := map[string]interface{}{
		"model":       s.config.GroqModel,
		"messages":    req.Messages,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"top_p":       0.9,
		"stream":      false,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.GroqURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.GroqAPIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat upstream returned status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat upstream returned no content")
	}
	return parsed.Choices[0].Message.Content, nil
}

// callCompletion posts to the inference endpoint and extracts the generated text.
func (s *AIService) callCompletion(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"inputs": prompt,
		"parameters": map[string]interface{}{
			"max_new_tokens":   250,
			"return_full_text": false,
			"temperature":      0.7,
			"top_p":            0.9,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.HFURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.HFAPIToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion upstream returned status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var parsed []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if len(parsed) == 0 || strings.TrimSpace(parsed[0].GeneratedText) == "" {
		return "", fmt.Errorf("completion upstream returned no text")
	}
	return strings.TrimSpace(parsed[0].GeneratedText), nil
}

func formatScores(scores map[string]float64) string {
	categories := make([]string, 0, len(scores))
	for c := range scores {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, fmt.Sprintf("%s=%.1f", c, scores[c]))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
