package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	engineCfg := cfg.EngineConfig()
	if engineCfg.CategoricalDistinctRatio != 0.5 {
		t.Errorf("ratio = %v, want 0.5", engineCfg.CategoricalDistinctRatio)
	}
	if engineCfg.TopNCategories != 10 {
		t.Errorf("top-N = %d, want 10", engineCfg.TopNCategories)
	}
	if engineCfg.Workers < 1 {
		t.Errorf("workers = %d, want >= 1", engineCfg.Workers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PROFILE_TOP_N", "5")
	t.Setenv("PROFILE_TIMEOUT_SECONDS", "30")
	t.Setenv("PROFILE_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Server.Port)
	}
	engineCfg := cfg.EngineConfig()
	if engineCfg.TopNCategories != 5 {
		t.Errorf("top-N = %d, want 5", engineCfg.TopNCategories)
	}
	if engineCfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", engineCfg.Timeout)
	}
	if engineCfg.Workers != 2 {
		t.Errorf("workers = %d, want 2", engineCfg.Workers)
	}
}

func TestLoad_RejectsBadThresholds(t *testing.T) {
	t.Setenv("PROFILE_CATEGORICAL_RATIO", "1.5")

	if _, err := Load(); err == nil {
		t.Error("ratio above 1 must fail validation")
	}
}
