package app

import (
	"log/slog"

	"github.com/thenoetrevino/tres/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv     database.KVStore
	logger *slog.Logger
}

// WithKVStore persists the board to kv instead of the SQLite repository
func WithKVStore(kv database.KVStore) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
