package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/nancyzera/jurassic-game/internal/systems"
)

// Config holds the engine startup parameters.
type Config struct {
	// Seed is the master seed. Each session derives its own from it.
	Seed int64

	Port   int
	TickHz int

	// CatalogPath overrides the embedded level catalog when set.
	CatalogPath string

	PredatorStep systems.StepMode

	// Bots is the number of autopilot sessions started with the server.
	Bots int

	// Debug enables test-only commands such as DAMAGE.
	Debug bool
}

// NewConfig returns the defaults (time-based seed).
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		Port:         8080,
		TickHz:       60,
		PredatorStep: systems.StepFixed,
	}
}

// LoadConfig overlays environment variables on the defaults. envFiles
// are loaded first with godotenv; missing files are skipped, existing
// environment variables win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := NewConfig()
	var err error
	if cfg.Seed, err = envInt64("JQ_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Port, err = envInt("JQ_PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if cfg.TickHz, err = envInt("JQ_TICK_HZ", cfg.TickHz); err != nil {
		return cfg, err
	}
	if cfg.Bots, err = envInt("JQ_BOTS", cfg.Bots); err != nil {
		return cfg, err
	}
	cfg.CatalogPath = os.Getenv("JQ_CATALOG")
	if v := os.Getenv("JQ_PREDATOR_STEP"); v != "" {
		cfg.PredatorStep = systems.ParseStepMode(v)
	}
	if v := os.Getenv("JQ_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TickHz < 1 || c.TickHz > 240 {
		return fmt.Errorf("tick rate must be 1..240 Hz, got %d", c.TickHz)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Bots < 0 {
		return fmt.Errorf("bots cannot be negative")
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
