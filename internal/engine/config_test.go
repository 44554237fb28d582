package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nancyzera/jurassic-game/internal/systems"
)

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("JQ_SEED", "1234")
	t.Setenv("JQ_TICK_HZ", "30")
	t.Setenv("JQ_PREDATOR_STEP", "delta")
	t.Setenv("JQ_DEBUG", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 1234 || cfg.TickHz != 30 || cfg.Port != 8080 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.PredatorStep != systems.StepDelta || !cfg.Debug {
		t.Errorf("Step %s, debug %v", cfg.PredatorStep, cfg.Debug)
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	os.Unsetenv("JQ_BOTS")
	t.Cleanup(func() { os.Unsetenv("JQ_BOTS") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("JQ_BOTS=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bots != 3 {
		t.Errorf("Bots = %d, want 3", cfg.Bots)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")

	t.Run("Not a number", func(t *testing.T) {
		t.Setenv("JQ_PORT", "eighty")
		if _, err := LoadConfig(missing); err == nil {
			t.Error("Expected error")
		}
	})

	t.Run("Tick rate out of range", func(t *testing.T) {
		t.Setenv("JQ_TICK_HZ", "0")
		if _, err := LoadConfig(missing); err == nil {
			t.Error("Expected error")
		}
	})
}
