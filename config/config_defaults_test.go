package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Auth.Audience != "authenticated" || cfg.Auth.Issuer != "supabase" {
		t.Fatalf("auth defaults = %+v", cfg.Auth)
	}
	if cfg.Auth.FirstPartyTokenTTL != 24*time.Hour {
		t.Fatalf("FirstPartyTokenTTL = %s", cfg.Auth.FirstPartyTokenTTL)
	}
	if cfg.Gemini.Temperature != 0.7 || cfg.Gemini.TopK != 40 || cfg.Gemini.Model == "" {
		t.Fatalf("gemini defaults = %+v", cfg.Gemini)
	}
	if cfg.Chat.DefaultFrequencyTime != "08:00" {
		t.Fatalf("DefaultFrequencyTime = %q", cfg.Chat.DefaultFrequencyTime)
	}
	if cfg.Recommendation.GenerateCron != "0 6 * * 1" || cfg.Recommendation.SendCron != "0 8 * * 1" {
		t.Fatalf("cron defaults = %+v", cfg.Recommendation)
	}
	if cfg.Recommendation.Staging != StagingMemory {
		t.Fatalf("Staging = %q", cfg.Recommendation.Staging)
	}
	if cfg.Firebase != nil {
		t.Fatalf("Firebase must stay optional")
	}
}

func TestApplyDefaults_TokenTTLHasFloor(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{FirstPartyTokenTTL: time.Hour}}
	applyDefaults(cfg)

	if cfg.Auth.FirstPartyTokenTTL != 24*time.Hour {
		t.Fatalf("FirstPartyTokenTTL = %s, want 24h", cfg.Auth.FirstPartyTokenTTL)
	}

	cfg = &Config{Auth: &AuthConfig{FirstPartyTokenTTL: 48 * time.Hour}}
	applyDefaults(cfg)

	if cfg.Auth.FirstPartyTokenTTL != 48*time.Hour {
		t.Fatalf("FirstPartyTokenTTL = %s, want 48h", cfg.Auth.FirstPartyTokenTTL)
	}
}
