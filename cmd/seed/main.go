// Command seed populates the database with a demo user and a handful of
// completed assessments so the dashboard has history to work with.
package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"careercompass/internal/config"
	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/scoring"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	db := client.Database(cfg.MongoDB)
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)

	email := "demo@careercompass.dev"
	user, err := userRepo.GetByEmail(ctx, email)
	switch err {
	case nil:
		logger.Info("demo user already exists", zap.String("userId", user.ID))
	case repository.ErrNotFound:
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if hashErr != nil {
			logger.Fatal("failed to hash password", zap.Error(hashErr))
		}
		user = &model.User{
			ID:           uuid.NewString(),
			Email:        strings.ToLower(email),
			Name:         "Demo User",
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatal("failed to create demo user", zap.Error(err))
		}
		logger.Info("created demo user", zap.String("userId", user.ID))
	default:
		logger.Fatal("failed to look up demo user", zap.Error(err))
	}

	// Three assessments over three months with gradually improving scores,
	// enough for the trend view to show movement.
	profiles := []map[string]float64{
		{"Linguistic": 3.0, "Logical-Mathematical": 4.2, "Technical Skills": 3.4, "Big Five - Conscientiousness": 3.8},
		{"Linguistic": 3.2, "Logical-Mathematical": 4.4, "Technical Skills": 3.9, "Big Five - Conscientiousness": 4.0},
		{"Linguistic": 3.6, "Logical-Mathematical": 4.6, "Technical Skills": 4.3, "Big Five - Conscientiousness": 4.2},
	}

	existing, err := assessmentRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		logger.Fatal("failed to list assessments", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("assessments already seeded", zap.Int("count", len(existing)))
		return
	}

	now := time.Now().UTC()
	for i, scores := range profiles {
		careers := scoring.RecommendCareers(scores)
		assessment := &model.Assessment{
			ID:                 uuid.NewString(),
			UserID:             user.ID,
			CompletedAt:        now.AddDate(0, i-len(profiles)+1, 0),
			Responses:          []model.Response{},
			Scores:             scores,
			RecommendedCareers: careers,
		}
		if len(careers) > 0 {
			assessment.MLPrediction = careers[0]
		}
		if err := assessmentRepo.Create(ctx, assessment); err != nil {
			logger.Fatal("failed to create assessment", zap.Error(err))
		}
	}
	logger.Info("seeded assessments", zap.Int("count", len(profiles)))
}
