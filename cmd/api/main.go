package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"persona-sim/internal/config"
	"persona-sim/internal/db"
	apihttp "persona-sim/internal/http"
	"persona-sim/internal/llm"
	"persona-sim/internal/psych"
	"persona-sim/internal/repository"
	"persona-sim/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	personaRepo := repository.NewPgPersonaRepository(pool)
	disorderRepo := repository.NewPgDisorderScoreRepository(pool)
	experienceRepo := repository.NewPgExperienceRepository(pool)
	interventionRepo := repository.NewPgInterventionRepository(pool)
	snapshotRepo := repository.NewPgSnapshotRepository(pool)

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Info("llm api key not set, experience classification uses keyword fallback")
	}

	var (
		loginLimiter service.RateLimiter
		tokenStore   service.RefreshTokenStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisRateLimiter(redisClient, 10*time.Minute, 5)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	taxonomy := psych.DefaultTaxonomy()
	catalog := psych.DefaultTherapyCatalog()
	stages := psych.DefaultStageTable()
	assessor := psych.NewAssessor(taxonomy)

	userSvc := service.NewUserService(logger, userRepo, loginLimiter)
	personaSvc := service.NewPersonaService(logger, personaRepo, disorderRepo, snapshotRepo)
	experienceSvc := service.NewExperienceService(logger, llmClient, personaRepo, experienceRepo, disorderRepo, snapshotRepo, assessor, stages)
	interventionSvc := service.NewInterventionService(logger, catalog, llmClient, personaRepo, disorderRepo, interventionRepo, snapshotRepo)

	authHandler := apihttp.NewAuthHandler(logger, userSvc, jwtSvc)
	personaHandler := apihttp.NewPersonaHandler(logger, personaSvc, experienceSvc, interventionSvc)
	referenceHandler := apihttp.NewReferenceHandler(taxonomy, catalog, stages)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, personaHandler, referenceHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
