package impl

import (
	"io"
	"log/slog"
	"time"

	"blogauth/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		JWT: &config.JWTConfig{
			SecurityKey: "test-signing-key-with-enough-entropy",
			Issuer:      "blogauth",
			Audience:    "blog-api",
			Expiration:  30 * time.Minute,
		},
		Auth: &config.AuthConfig{
			BcryptCost:    4,
			DefaultRoles:  []string{"RegisteredUser"},
			ResetTokenTTL: time.Hour,
		},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 1},
		Mirror: &config.MirrorConfig{
			MaxAttempts:        3,
			InitialInterval:    time.Millisecond,
			MaxInterval:        2 * time.Millisecond,
			ReconcileBatchSize: 2,
		},
	}
	cfg.HTTP.RequestTimeout = 5 * time.Second

	return cfg
}
