package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/config"
	"careercompass/internal/model"
)

func testAICache(t *testing.T) cache.AIResponseCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewAIResponseCache(client, time.Hour)
}

func chatUpstream(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"choices":[{"message":{"content":"` + reply + `"}}]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func completionUpstream(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`[{"generated_text":"` + reply + `"}]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAIService(t *testing.T, cfg *config.AIConfig) *AIService {
	t.Helper()
	cfg.TimeoutMS = 2000
	return NewAIService(cfg, testAICache(t), zap.NewNop())
}

func TestChatProxiesUpstream(t *testing.T) {
	upstream := chatUpstream(t, "Consider roles that combine analysis and communication.", http.StatusOK)
	svc := newTestAIService(t, &config.AIConfig{
		GroqAPIKey: "test-key",
		GroqURL:    upstream.URL,
		GroqModel:  "test-model",
	})

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{
		Messages: []model.ChatMessage{{Role: "user", Content: "What careers suit me?"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Consider roles that combine analysis and communication.", resp.Text)
	assert.False(t, resp.Fallback)
	assert.False(t, resp.Cached)
}

func TestChatServesCachedResponse(t *testing.T) {
	upstream := chatUpstream(t, "first answer", http.StatusOK)
	svc := newTestAIService(t, &config.AIConfig{
		GroqAPIKey: "test-key",
		GroqURL:    upstream.URL,
	})
	req := &model.ChatRequest{Messages: []model.ChatMessage{{Role: "user", Content: "hello"}}}

	first, err := svc.Chat(context.Background(), req)
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := svc.Chat(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Text, second.Text)
}

func TestChatFallsBackWhenUpstreamFails(t *testing.T) {
	upstream := chatUpstream(t, "", http.StatusServiceUnavailable)
	svc := newTestAIService(t, &config.AIConfig{
		GroqAPIKey: "test-key",
		GroqURL:    upstream.URL,
	})

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{
		Messages: []model.ChatMessage{{Role: "user", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, counselorFallback, resp.Text)
}

func TestChatFallsBackWhenUnconfigured(t *testing.T) {
	svc := newTestAIService(t, &config.AIConfig{})

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{
		Messages: []model.ChatMessage{{Role: "user", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
}

func TestChatFallsBackOnEmptyMessages(t *testing.T) {
	svc := newTestAIService(t, &config.AIConfig{GroqAPIKey: "test-key"})

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, counselorFallback, resp.Text)
}

func TestExplainQuestionProxiesUpstream(t *testing.T) {
	upstream := completionUpstream(t, "It gauges how you process written language.", http.StatusOK)
	svc := newTestAIService(t, &config.AIConfig{
		HFAPIToken: "test-token",
		HFURL:      upstream.URL,
	})

	resp, err := svc.ExplainQuestion(context.Background(), "I enjoy writing essays for fun.")

	require.NoError(t, err)
	assert.Equal(t, "It gauges how you process written language.", resp.Text)
	assert.False(t, resp.Fallback)
}

func TestExplainQuestionFallbackMatchesTheme(t *testing.T) {
	svc := newTestAIService(t, &config.AIConfig{})

	resp, err := svc.ExplainQuestion(context.Background(), "I enjoy writing essays for fun.")

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Text, "linguistic intelligence")
}

func TestSuggestAnswerFallbackUsesScoresAndCareers(t *testing.T) {
	svc := newTestAIService(t, &config.AIConfig{})

	resp, err := svc.SuggestAnswer(context.Background(), &model.SuggestRequest{
		Question: "My top 3 career interest areas are:",
		Scores: map[string]float64{
			"Linguistic":         4.5,
			"Interpersonal":      4.0,
			"Technical Skills":   3.5,
			"Numerical Aptitude": 3.0,
		},
		Careers: []string{"Journalism", "Teaching", "Law", "Marketing"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Contains(t, resp.Text, "Linguistic")
	assert.Contains(t, resp.Text, "Journalism")
	// Only the first three careers are mentioned.
	assert.NotContains(t, resp.Text, "Marketing")
	assert.NotContains(t, resp.Text, "Numerical Aptitude")
}

func TestExplanationForKeywordRouting(t *testing.T) {
	cases := []struct {
		question string
		fragment string
	}{
		{"I analyze data, statistics, or numerical trends to make decisions.", "logical-mathematical"},
		{"I enjoy working in teams and collaborating with peers on projects.", "interpersonal"},
		{"I like spending time in nature and observing patterns in the environment.", "naturalistic"},
		{"Something entirely unrelated to any rule.", "honest response"},
	}
	for _, tc := range cases {
		assert.Contains(t, explanationFor(tc.question), tc.fragment, "question: %s", tc.question)
	}
}

func TestSuggestionForEmptyInputs(t *testing.T) {
	text := suggestionFor(nil, nil)
	assert.Contains(t, text, "activities you most enjoy")
	assert.Contains(t, text, "curious about")
}
