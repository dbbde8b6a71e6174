package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jeju-tour-api/internal/adapter/api"
	"jeju-tour-api/internal/adapter/client"
	"jeju-tour-api/internal/adapter/store"
	"jeju-tour-api/internal/config"
	"jeju-tour-api/internal/domain/repository"
	"jeju-tour-api/internal/logger"
	"jeju-tour-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	ctx := context.Background()

	var provider repository.AIProvider
	if cfg.Access.Code == "" {
		log.Warn("access code not configured, AI delegation disabled", nil)
	} else {
		inner, err := newProvider(ctx, cfg)
		if err != nil {
			log.Error("failed to init ai provider", map[string]interface{}{"error": err.Error(), "provider": cfg.Provider.Name})
			os.Exit(1)
		}
		provider = usecase.NewGuardedProvider(cfg.Provider.Name, inner, cfg.Provider.Timeout)
	}

	delegation, err := usecase.NewDelegation(provider, usecase.DelegationConfig{
		ProviderName: cfg.Provider.Name,
		OutputMode:   usecase.OutputMode(cfg.Provider.OutputMode),
		MaxItems:     cfg.Provider.MaxItems,
		WebSearch:    cfg.Provider.WebSearch,
	}, log)
	if err != nil {
		log.Error("failed to init delegation", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	catalog := store.NewStaticCatalog(cfg.HTTP.StaticPrefix)
	resolver := usecase.NewResolver(usecase.NewAccessGuard(cfg.Access.Code), catalog, delegation, log)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	api.SetupRouter(app, api.NewTourHandler(resolver, log), api.RouterOptions{
		AllowedOrigin: cfg.HTTP.AllowedOrigin,
		StaticPrefix:  cfg.HTTP.StaticPrefix,
		StaticDir:     cfg.HTTP.StaticDir,
		Version:       cfg.App.Version,
		Environment:   cfg.App.Environment,
		AccessLog:     true,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down", nil)
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("server starting", map[string]interface{}{
		"port":       cfg.App.Port,
		"provider":   cfg.Provider.Name,
		"model":      cfg.Provider.Model,
		"outputMode": cfg.Provider.OutputMode,
		"aiEnabled":  provider != nil,
	})
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Error("server stopped", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func newProvider(ctx context.Context, cfg *config.Config) (repository.AIProvider, error) {
	var conversations repository.ConversationStore
	if cfg.Provider.NeedsConversationStore() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		conversations = store.NewRedisConversationStore(rdb, cfg.Redis.ConversationTTL)
	}

	switch cfg.Provider.Name {
	case config.ProviderGemini:
		return client.NewGeminiClient(ctx, client.GeminiConfig{
			APIKey:        cfg.Provider.APIKey,
			Project:       cfg.Provider.Gemini.Project,
			Location:      cfg.Provider.Gemini.Location,
			Model:         cfg.Provider.Model,
			BaseURL:       cfg.Provider.BaseURL,
			Conversations: conversations,
		})
	case config.ProviderOllama:
		baseURL := cfg.Provider.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return client.NewOllamaClient(ctx, baseURL, cfg.Provider.Model, conversations)
	default:
		return client.NewOpenAIClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Model)
	}
}
