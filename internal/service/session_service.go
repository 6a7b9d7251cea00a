package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/model"
	"careercompass/internal/session"
)

var ErrNoSession = errors.New("no assessment session in progress")

// SessionService drives the assessment walkthrough. The collector state is
// checkpointed to the draft store after every mutation, so any interrupted
// session resumes from its last answered question.
type SessionService struct {
	draftCache    cache.DraftCache
	assessmentSvc *AssessmentService
	logger        *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(draftCache cache.DraftCache, assessmentSvc *AssessmentService, logger *zap.Logger) *SessionService {
	return &SessionService{
		draftCache:    draftCache,
		assessmentSvc: assessmentSvc,
		logger:        logger,
	}
}

// SessionState is the view of a session returned after every operation.
type SessionState struct {
	Layer           *model.AssessmentLayer `json:"layer"`
	Question        *model.Question        `json:"question"`
	LayerIndex      int                    `json:"layerIndex"`
	CompletedLayers []string               `json:"completedLayers"`
	Scores          map[string]float64     `json:"scores"`
	Answered        int                    `json:"answered"`
	Total           int                    `json:"total"`
	Done            bool                   `json:"done"`
}

func stateOf(c *session.Collector) *SessionState {
	snap := c.Snapshot()
	answered, total := c.Progress()
	layerIndex := snap.CurrentLayerIndex
	state := &SessionState{
		Layer:           c.CurrentLayer(),
		Question:        c.CurrentQuestion(),
		LayerIndex:      layerIndex,
		CompletedLayers: snap.CompletedLayers,
		Scores:          c.Scores(),
		Answered:        answered,
		Total:           total,
		Done:            c.Done(),
	}
	return state
}

// Start begins a fresh session, discarding any existing draft.
func (s *SessionService) Start(ctx context.Context, userID string) (*SessionState, error) {
	collector := session.New()
	if err := s.draftCache.Set(ctx, userID, collector.Snapshot()); err != nil {
		return nil, err
	}
	return stateOf(collector), nil
}

// Resume restores the session from the stored draft; with no draft it
// starts fresh.
func (s *SessionService) Resume(ctx context.Context, userID string) (*SessionState, error) {
	collector, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stateOf(collector), nil
}

// Answer records a response for the current question.
func (s *SessionService) Answer(ctx context.Context, userID string, value model.ResponseValue) (*SessionState, error) {
	return s.mutate(ctx, userID, func(c *session.Collector) error {
		return c.Answer(value)
	})
}

// AnswerQuestion overwrites the response of an arbitrary earlier question.
func (s *SessionService) AnswerQuestion(ctx context.Context, userID, questionID string, value model.ResponseValue) (*SessionState, error) {
	return s.mutate(ctx, userID, func(c *session.Collector) error {
		return c.AnswerQuestion(questionID, value)
	})
}

// Next advances the session.
func (s *SessionService) Next(ctx context.Context, userID string) (*SessionState, error) {
	return s.mutate(ctx, userID, func(c *session.Collector) error {
		return c.Next()
	})
}

// Back steps the session backwards.
func (s *SessionService) Back(ctx context.Context, userID string) (*SessionState, error) {
	return s.mutate(ctx, userID, func(c *session.Collector) error {
		c.Back()
		return nil
	})
}

// Complete hands the finished session to the assessment pipeline and clears
// the draft. Valid only once the final layer is done.
func (s *SessionService) Complete(ctx context.Context, userID string) (*model.Assessment, error) {
	snap, err := s.draftCache.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoSession
	}
	collector := session.Restore(*snap)
	if !collector.Done() {
		return nil, session.ErrNotComplete
	}
	// Submit clears the draft on success.
	return s.assessmentSvc.Submit(ctx, userID, collector.Responses())
}

// Abandon discards the stored draft.
func (s *SessionService) Abandon(ctx context.Context, userID string) error {
	return s.draftCache.Delete(ctx, userID)
}

func (s *SessionService) load(ctx context.Context, userID string) (*session.Collector, error) {
	snap, err := s.draftCache.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return session.New(), nil
	}
	return session.Restore(*snap), nil
}

func (s *SessionService) mutate(ctx context.Context, userID string, op func(*session.Collector) error) (*SessionState, error) {
	collector, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := op(collector); err != nil {
		return nil, err
	}
	if err := s.draftCache.Set(ctx, userID, collector.Snapshot()); err != nil {
		return nil, err
	}
	return stateOf(collector), nil
}
