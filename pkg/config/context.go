package config

import "context"

// contextKey is the key for the config in the context.
var contextKey = struct{ string }{"config"}

// FromContext returns the configuration from the context.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(contextKey).(*Config); ok {
		return c
	}

	return nil
}

// WithContext returns a new context with the configuration attached.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey, cfg)
}
