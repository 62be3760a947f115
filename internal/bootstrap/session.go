package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/holidaze/holidaze-go/config"
	"github.com/holidaze/holidaze-go/internal/adapters/filestore"
	"github.com/holidaze/holidaze-go/internal/adapters/memstore"
	"github.com/holidaze/holidaze-go/internal/adapters/redisstore"
	"github.com/holidaze/holidaze-go/internal/holidaze"
	"github.com/holidaze/holidaze-go/internal/ports"
	"github.com/holidaze/holidaze-go/internal/service"
)

// NewSessionStore builds the configured session store backend. The returned
// closer releases backend resources and is safe to call once.
func NewSessionStore(cfg *config.AppConfig, logger *slog.Logger) (ports.SessionStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Session.Backend {
	case config.SessionBackendFile:
		store, err := filestore.New(cfg.Session.File)
		if err != nil {
			return nil, nil, fmt.Errorf("create file session store: %w", err)
		}
		return store, noop, nil

	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			if cerr := client.Close(); cerr != nil {
				logger.Warn("close redis client after ping failure", "error", cerr)
			}
			return nil, nil, fmt.Errorf("connect session redis: %w", err)
		}
		return redisstore.NewWithKey(client, cfg.Session.Redis.Key), client.Close, nil

	case config.SessionBackendMemory:
		return memstore.New(), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// NewAPIClient builds the Holidaze API client, reading bearer tokens from
// the session store.
func NewAPIClient(cfg *config.AppConfig, store ports.SessionStore, logger *slog.Logger) *holidaze.Client {
	return holidaze.NewClient(holidaze.Config{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.Key,
		Tokens:     ports.NewStoreTokenSource(store),
		Timeout:    cfg.API.Timeout,
		RetryLimit: cfg.API.RetryLimit,
		Logger:     logger,
	})
}

// NewSession builds the session lifecycle and restores any persisted state.
func NewSession(
	ctx context.Context,
	cfg *config.AppConfig,
	api service.API,
	store ports.SessionStore,
	logger *slog.Logger,
) (*service.Session, error) {
	sess, err := service.NewSession(service.Options{
		API:                api,
		Store:              store,
		Logger:             logger,
		RefreshMinInterval: cfg.Session.RefreshMinInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sess.Restore(ctx)
	return sess, nil
}
