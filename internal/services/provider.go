package services

import (
	"context"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/config"
	"github.com/KirkDiggler/wolfbot/internal/repositories/games"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	GameService gameService.Service
	Loader      *seed.Loader
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameRepository games.Repository         // Optional, will use an in-memory store if nil
	TimeProvider   gameService.TimeProvider // Optional, will use the system clock if nil
	Logger         *zap.Logger              // Optional, will use a no-op logger if nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Use in-memory repository if none provided
	repo := cfg.GameRepository
	if repo == nil {
		logger.Warn("no game repository configured, game state will not survive a restart")
		repo = games.NewInMemoryRepository()
	}

	loader := seed.NewLoader(&seed.LoaderConfig{Logger: logger})

	return &Provider{
		GameService: gameService.NewService(&gameService.ServiceConfig{
			Repository:   repo,
			Loader:       loader,
			TimeProvider: cfg.TimeProvider,
			Logger:       logger,
		}),
		Loader: loader,
	}
}

// Storage is the selected game repository and what must be closed with it
type Storage struct {
	Repository games.Repository
	Backend    string
	client     *redis.Client
}

// Close releases the redis connection, if any
func (s *Storage) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// OpenStorage picks the redis store when REDIS_URL is set and reachable,
// and the game file under BASE_PATH otherwise
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	fallback := func() *Storage {
		logger.Info("using game file", zap.String("path", cfg.GamePath()))
		return &Storage{Repository: games.NewFile(cfg.GamePath()), Backend: "file"}
	}

	if cfg.Storage.RedisURL == "" {
		return fallback()
	}

	opts, err := redis.ParseURL(cfg.Storage.RedisURL)
	if err != nil {
		logger.Warn("failed to parse redis url, falling back to the game file", zap.Error(err))
		return fallback()
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, falling back to the game file", zap.Error(err))
		_ = client.Close()
		return fallback()
	}

	logger.Info("using redis for the game document", zap.String("key", cfg.Storage.GameKey))
	return &Storage{
		Repository: games.NewRedis(client, cfg.Storage.GameKey),
		Backend:    "redis",
		client:     client,
	}
}
