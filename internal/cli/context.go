package cli

import (
	"context"

	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes commands run against an existing App instead of opening one
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the App stored by WithApp, if any
func AppFromContext(ctx context.Context) *app.App {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(appKey).(*app.App)
	return a
}

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, if any
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}
