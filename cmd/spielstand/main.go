package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fkoehler/spielstand/internal/common/clock"
	"github.com/fkoehler/spielstand/internal/common/uuid"
	"github.com/fkoehler/spielstand/internal/repositories/game"
	"github.com/fkoehler/spielstand/internal/repositories/player"
	"github.com/fkoehler/spielstand/internal/repositories/preset"
	gameService "github.com/fkoehler/spielstand/internal/services/game"
)

// config holds the environment configuration of the scorekeeper process
type config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
}

func main() {
	// A missing .env file is fine; the environment wins either way
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create game repository", zap.Error(err))
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create player repository", zap.Error(err))
	}

	presetRepo, err := preset.NewRedis(&preset.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create preset repository", zap.Error(err))
	}

	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		PresetRepo:    presetRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create game service", zap.Error(err))
	}

	paused, err := gameSvc.ListPausedGames(ctx, &gameService.ListPausedGamesInput{})
	if err != nil {
		logger.Fatal("Failed to list paused games", zap.Error(err))
	}
	for _, summary := range paused.Summaries {
		logger.Info("paused game waiting for resume",
			zap.String("session_id", summary.SessionID),
			zap.String("kind", string(summary.Kind)),
			zap.Int("rounds", summary.RoundCount),
			zap.Time("updated_at", summary.UpdatedAt))
	}

	logger.Info("scorekeeper ready",
		zap.String("redis_addr", cfg.RedisAddr),
		zap.Int("paused_games", len(paused.Summaries)))

	// Wait for interrupt signal to shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("scorekeeper shut down")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
