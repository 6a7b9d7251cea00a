package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careercompass/internal/bank"
	"careercompass/internal/cache"
	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/scoring"
)

var ErrInvalidResponse = errors.New("response references a question not in the bank")

// AssessmentService materializes and serves completed assessments. A save
// failure is fatal to the triggering action: the caller is told the result
// could not be saved and nothing is retried.
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	dashboardCache cache.DashboardCache
	draftCache     cache.DraftCache
	logger         *zap.Logger
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepo,
	dashboardCache cache.DashboardCache,
	draftCache cache.DraftCache,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		dashboardCache: dashboardCache,
		draftCache:     draftCache,
		logger:         logger,
	}
}

// Submit scores a finished response set, maps careers, and persists the
// assessment. Every response must reference a bank question under the layer
// it claims.
func (s *AssessmentService) Submit(ctx context.Context, userID string, responses []model.Response) (*model.Assessment, error) {
	for _, r := range responses {
		if !bank.ValidResponse(r) {
			return nil, ErrInvalidResponse
		}
	}

	scores := scoring.CalculateScores(responses)
	careers := scoring.RecommendCareers(scores)

	assessment := &model.Assessment{
		ID:                 uuid.New().String(),
		UserID:             userID,
		CompletedAt:        time.Now().UTC(),
		Responses:          responses,
		Scores:             scores,
		RecommendedCareers: careers,
	}
	if len(careers) > 0 {
		assessment.MLPrediction = careers[0]
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		s.logger.Error("failed to persist assessment",
			zap.String("userId", userID),
			zap.Error(err))
		return nil, err
	}

	// A completed run supersedes any draft and stale dashboards. Neither
	// cleanup failing affects the save that already happened.
	if err := s.draftCache.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to clear draft after submit", zap.Error(err))
	}
	if err := s.dashboardCache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}

	s.logger.Info("assessment completed",
		zap.String("userId", userID),
		zap.String("assessmentId", assessment.ID),
		zap.Int("categories", len(scores)),
		zap.Int("careers", len(careers)))
	return assessment, nil
}

// List returns the user's assessments as stored (newest-first).
func (s *AssessmentService) List(ctx context.Context, userID string) ([]model.Assessment, error) {
	return s.assessmentRepo.GetByUserID(ctx, userID)
}

// Get returns one assessment, owner-checked.
func (s *AssessmentService) Get(ctx context.Context, id, userID string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return assessment, nil
}

// Delete removes an assessment and invalidates the user's dashboards.
func (s *AssessmentService) Delete(ctx context.Context, id, userID string) error {
	if err := s.assessmentRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	if err := s.dashboardCache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
	return nil
}
