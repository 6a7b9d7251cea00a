package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"careercompass/internal/service"
	"careercompass/internal/transport/rest/handler"
	"careercompass/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SessionService    *service.SessionService
	AssessmentService *service.AssessmentService
	DashboardService  *service.DashboardService
	AIService         *service.AIService
	Logger            *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	bankHandler := handler.NewBankHandler()
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardService)
	aiHandler := handler.NewAIHandler(c.AIService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)
	r.Use(requestLogMiddleware(c.Logger))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/layers", bankHandler.Layers).Methods("GET", "OPTIONS")
	v1.HandleFunc("/layers/{layerId}", bankHandler.Layer).Methods("GET", "OPTIONS")
	v1.HandleFunc("/careers/mapping", bankHandler.CareerMapping).Methods("GET", "OPTIONS")
	v1.HandleFunc("/careers/{name}", bankHandler.CareerDetail).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/session/start", sessionHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/session", sessionHandler.Resume).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/session", sessionHandler.Abandon).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/session/answer", sessionHandler.Answer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/session/answers/{questionId}", sessionHandler.AnswerQuestion).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/session/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/session/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/session/complete", sessionHandler.Complete).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/ai/chat", aiHandler.Chat).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/ai/explain", aiHandler.Explain).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/ai/suggest", aiHandler.Suggest).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
