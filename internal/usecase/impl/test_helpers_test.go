package impl

import (
	"io"
	"log/slog"
	"time"

	"livewell/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Audience:           "authenticated",
			Issuer:             "supabase",
			FirstPartyTokenTTL: 24 * time.Hour,
		},
		Chat: &config.ChatConfig{
			DefaultFrequencyTime: "08:00",
			TimeZone:             "UTC",
		},
		Recommendation: &config.RecommendationConfig{
			Enabled:        true,
			Staging:        config.StagingMemory,
			MaxConcurrency: 4,
			UserTimeout:    time.Minute,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
