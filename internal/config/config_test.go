package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("RULESET_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}

	if cfg.RulesetPath != "" {
		t.Errorf("expected empty ruleset path by default, got %s", cfg.RulesetPath)
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "loud")
	defer os.Unsetenv("LOG_LEVEL")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for an unknown log level")
	}
}

func TestLoad_SplitsCORSOrigins(t *testing.T) {
	os.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	defer os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
	if !c.IsProduction() {
		t.Error("expected IsProduction() to return true for production")
	}
}
