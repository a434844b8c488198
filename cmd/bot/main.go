package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/wolfbot/internal/config"
	"github.com/KirkDiggler/wolfbot/internal/handlers/discord"
	"github.com/KirkDiggler/wolfbot/internal/logger"
	"github.com/KirkDiggler/wolfbot/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if envErr != nil {
		zl.Info("no .env file found")
	}
	zl.Info("starting wolfbot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID))

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		zl.Fatal("failed to create discord session", zap.Error(err))
	}

	storage := services.OpenStorage(context.Background(), cfg, zl)
	defer func() {
		if err := storage.Close(); err != nil {
			zl.Warn("failed to close storage", zap.Error(err))
		}
	}()

	serviceProvider := services.NewProvider(&services.ProviderConfig{
		GameRepository: storage.Repository,
		Logger:         zl,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		GameService:    serviceProvider.GameService,
		Messenger:      dg,
		Logger:         zl,
		SeedPaths:      cfg.SeedPaths(),
		VoteChannel:    cfg.Discord.VoteChannel,
		RequestChannel: cfg.Discord.RequestChannel,
		ModRoleID:      cfg.Discord.ModRoleID,
	})

	// Register interaction handler
	dg.AddHandler(discord.RecoverMiddleware(zl, "interaction", handler.HandleInteraction))

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		zl.Error("failed to open discord connection", zap.Error(err))
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			zl.Warn("failed to close discord connection", zap.Error(err))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		zl.Error("failed to register commands", zap.Error(err))
		return
	}
	if cfg.Discord.GuildID == "" {
		zl.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	metrics := serveMetrics(cfg.Metrics.Addr, zl)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	zl.Info("shutting down")
	if metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metrics.Shutdown(ctx); err != nil {
			zl.Warn("failed to stop metrics server", zap.Error(err))
		}
	}
}

// serveMetrics exposes /metrics on addr; an empty addr disables it
func serveMetrics(addr string, zl *zap.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		zl.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("metrics server stopped", zap.Error(err))
		}
	}()
	return srv
}
