// Package server wires the services and handlers together and runs the HTTP
// server with graceful shutdown.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/JTFulkerson/cisc482-cooking-app/config"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/api"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/router"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/service"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	store  *store.MemoryStore
}

// New builds the full application: store, Gemini client, services, handlers,
// and routes. The rate limiter is only attached when redis is configured.
func New(cfg *config.Config) *Server {
	st := store.NewMemoryStore()
	st.SeedData()

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)

	authService := service.NewAuthService(st, cfg.JWTSecret)
	recipeService := service.NewRecipeService(st)
	pantryService := service.NewPantryService(st, cfg.SuggestionLimit)

	var rateLimiter *middleware.RateLimiter
	if cfg.RedisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rateLimiter = middleware.NewGenerationRateLimiter(redisClient)
		log.Printf("Rate limiting enabled via redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
	} else {
		log.Println("REDIS_HOST not set, rate limiting disabled")
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(st, authService),
		api.NewRecipeHandler(recipeService, authService),
		api.NewGenerateHandler(geminiClient, recipeService, st, authService, rateLimiter, cfg.DefaultRecipeRating),
		api.NewScannerHandler(geminiClient, pantryService, authService),
		api.NewPantryHandler(pantryService, authService),
		api.NewFeedHandler(st, authService),
	)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		store: st,
	}
}

// Start runs the server until it stops or fails.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
