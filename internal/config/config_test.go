package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port default = %q", cfg.Port)
	}
	if cfg.PresenceWindow != 2*time.Minute {
		t.Fatalf("PresenceWindow default = %v", cfg.PresenceWindow)
	}
	if cfg.DedupWindow != time.Minute {
		t.Fatalf("DedupWindow default = %v", cfg.DedupWindow)
	}
	if cfg.MaxMessageLen != 1000 || cfg.HistoryLimit != 100 {
		t.Fatalf("message defaults = %d/%d", cfg.MaxMessageLen, cfg.HistoryLimit)
	}
	if cfg.TranslationCacheCap != 1000 {
		t.Fatalf("TranslationCacheCap default = %d", cfg.TranslationCacheCap)
	}
	if cfg.AudioFreshness != 300*time.Second || cfg.AudioSweepMaxAge != 24*time.Hour {
		t.Fatalf("audio defaults = %v/%v", cfg.AudioFreshness, cfg.AudioSweepMaxAge)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath default = %q", cfg.APIBasePath)
	}
}

func TestLoad_EnvOverridesAndNormalization(t *testing.T) {
	t.Setenv("PRESENCE_WINDOW", "45s")
	t.Setenv("DEDUP_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "weird")
	t.Setenv("API_BASE_PATH", "api/v2/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PresenceWindow != 45*time.Second || cfg.DedupWindow != 30*time.Second {
		t.Fatalf("windows = %v/%v", cfg.PresenceWindow, cfg.DedupWindow)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LOG_LEVEL not normalized: %q", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GIN_MODE not normalized: %q", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Fatalf("base path not normalized: %q", cfg.APIBasePath)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("CSV not parsed: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":             "verbose",
		"PRESENCE_WINDOW":       "-1m",
		"DEDUP_WINDOW":          "-10s",
		"MAX_MESSAGE_LEN":       "0",
		"HISTORY_LIMIT":         "-5",
		"TRANSLATION_CACHE_CAP": "0",
		"AUDIO_FRESHNESS":       "-1s",
		"RATE_RPS":              "-1",
		"RATE_BURST":            "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %s=%s", key, val)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"/api/v1": "/api/v1",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHelpers(t *testing.T) {
	t.Setenv("X_INT", "nope")
	if getint("X_INT", 7) != 7 {
		t.Fatal("getint should fall back on parse failure")
	}
	t.Setenv("X_BOOL", "on")
	if !getbool("X_BOOL", false) {
		t.Fatal("getbool should accept 'on'")
	}
	t.Setenv("X_DUR", "90s")
	if getdur("X_DUR", time.Second) != 90*time.Second {
		t.Fatal("getdur should parse durations")
	}
}
