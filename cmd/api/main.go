package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"mood-mirror/internal/config"
	"mood-mirror/internal/db"
	"mood-mirror/internal/emotion"
	apihttp "mood-mirror/internal/http"
	"mood-mirror/internal/llm"
	"mood-mirror/internal/persona"
	"mood-mirror/internal/repository"
	"mood-mirror/internal/service"

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
	moodRepo := repository.NewPgMoodRepository(pool)
	chatRepo := repository.NewPgChatRepository(pool)

	var (
		tokenStore  service.RefreshTokenStore
		chatLimiter service.ChatRateLimiter
		redisClient *redis.Client
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
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			chatLimiter = service.NewRedisChatRateLimiter(
				redisClient,
				time.Duration(cfg.ChatRateWindowMinutes)*time.Minute,
				cfg.ChatRateMax,
			)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	// El clasificador primario puede apagarse por config; el pipeline nace
	// degradado y todo el analisis corre por keywords.
	var primary emotion.Classifier
	if !cfg.ClassifyDisabled {
		primary = emotion.NewHFClassifier(
			cfg.HFBaseURL,
			cfg.HFAPIKey,
			cfg.HFModel,
			time.Duration(cfg.ClassifyTimeout)*time.Second,
		)
	}
	pipeline := emotion.NewPipeline(primary, emotion.NewFallbackClassifier(), logger)

	quotes := persona.LoadQuotes(cfg.QuotesPath, logger)
	composer := persona.NewComposer(rand.New(rand.NewSource(time.Now().UnixNano())), quotes)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeout)*time.Second, logger)

	userSvc := service.NewUserService(logger, userRepo)
	moodSvc := service.NewMoodService(logger, pipeline, composer, moodRepo)
	chatSvc := service.NewChatService(logger, llmClient, composer, chatRepo, time.Duration(cfg.LLMTimeout)*time.Second)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	moodHandler := apihttp.NewMoodHandler(logger, moodSvc)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc, chatLimiter)
	personaHandler := apihttp.NewPersonaHandler(logger, composer)
	statusHandler := apihttp.NewStatusHandler(logger, pipeline.Health(), quotes, moodRepo, userRepo, pool, cfg.HFModel, cfg.LLMModel)

	router := apihttp.NewRouter(logger, jwtSvc, userHandler, moodHandler, chatHandler, personaHandler, statusHandler)

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
