package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/config"
	"careercompass/internal/repository"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	aiCfg := config.DefaultAIConfig()
	logger.Info("starting careercompass",
		zap.String("port", cfg.HTTPPort),
		zap.Bool("chatUpstream", aiCfg.ChatEnabled()),
		zap.Bool("completionUpstream", aiCfg.CompletionEnabled()))

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)

	// Initialize caches
	draftCache := cache.NewDraftCache(rdb, logger)
	dashboardCache := cache.NewDashboardCache(rdb)
	aiCache := cache.NewAIResponseCache(rdb, time.Duration(aiCfg.CacheTTLS)*time.Second)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, dashboardCache, draftCache, logger)
	sessionSvc := service.NewSessionService(draftCache, assessmentSvc, logger)
	dashboardSvc := service.NewDashboardService(assessmentRepo, dashboardCache, logger)
	aiSvc := service.NewAIService(aiCfg, aiCache, logger)

	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		SessionService:    sessionSvc,
		AssessmentService: assessmentSvc,
		DashboardService:  dashboardSvc,
		AIService:         aiSvc,
		Logger:            logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
