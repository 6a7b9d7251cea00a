package service

import (
	"context"

	"go.uber.org/zap"

	"careercompass/internal/analytics"
	"careercompass/internal/cache"
	"careercompass/internal/model"
	"careercompass/internal/repository"
)

// DashboardService computes the three dashboard views over a user's
// assessment history. Results are cached per (user, mode) with a short TTL.
type DashboardService struct {
	assessmentRepo repository.AssessmentRepo
	dashboardCache cache.DashboardCache
	logger         *zap.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(assessmentRepo repository.AssessmentRepo, dashboardCache cache.DashboardCache, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		assessmentRepo: assessmentRepo,
		dashboardCache: dashboardCache,
		logger:         logger,
	}
}

// Get returns the dashboard for a mode, computing it on cache miss. Sparse
// histories degrade to empty sections, never errors.
func (s *DashboardService) Get(ctx context.Context, userID string, mode model.ViewMode) (*model.Dashboard, error) {
	if cached, err := s.dashboardCache.Get(ctx, userID, mode); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
	}

	assessments, err := s.assessmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		Mode:            mode,
		AssessmentCount: len(assessments),
		Improvements:    analytics.CalculateImprovements(assessments, mode),
		TopStrengths:    analytics.CalculateTopStrengths(assessments, mode),
		CareerMatches:   analytics.CalculateCareerMatches(assessments, mode),
	}

	if err := s.dashboardCache.Set(ctx, userID, dashboard); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return dashboard, nil
}
