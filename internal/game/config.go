package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/minimap"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// EnvPrefix is prepended to every configuration variable.
const EnvPrefix = "DUNGEONCRAWL_"

// Config holds world generation and output options.
type Config struct {
	Width       int `env:"WIDTH"        envDefault:"96"`
	Height      int `env:"HEIGHT"       envDefault:"96"`
	MaxFeatures int `env:"MAX_FEATURES" envDefault:"60"`

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SEED" envDefault:"0"`

	// Tint is the flat vertex color as a hex string.
	Tint string `env:"TINT" envDefault:"#000000"`

	// Parallelism bounds the analyzer and mesher workers; 0 means GOMAXPROCS.
	Parallelism int `env:"PARALLELISM" envDefault:"0"`

	// DiagnosticsDir receives game_world.txt and world-gen-error.txt.
	// Empty disables diagnostics files.
	DiagnosticsDir string `env:"DIAGNOSTICS_DIR" envDefault:"."`
	Minimap        bool   `env:"MINIMAP"         envDefault:"false"`
	MinimapScale   int    `env:"MINIMAP_SCALE"   envDefault:"4"`

	Preview bool `env:"PREVIEW" envDefault:"false"`

	GroundTexture string `env:"GROUND_TEXTURE" envDefault:"ground.png"`
	WallTexture   string `env:"WALL_TEXTURE"   envDefault:"wall.png"`
}

// DefaultConfig returns the standard 96x96, 60-feature configuration.
func DefaultConfig() Config {
	return Config{
		Width:          world.DefaultWidth,
		Height:         world.DefaultHeight,
		MaxFeatures:    world.DefaultMaxFeatures,
		Tint:           "#000000",
		DiagnosticsDir: ".",
		MinimapScale:   minimap.DefaultScale,
		GroundTexture:  "ground.png",
		WallTexture:    "wall.png",
	}
}

// LoadConfig reads DUNGEONCRAWL_* variables on top of the defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings no world can be built from.
func (c Config) Validate() error {
	var errs []error
	// A room needs a 1-tile margin plus a 3x3 interior inside its wall ring.
	if c.Width < 7 || c.Height < 7 {
		errs = append(errs, fmt.Errorf("world size %dx%d is too small", c.Width, c.Height))
	}
	if c.MaxFeatures < 1 {
		errs = append(errs, fmt.Errorf("max features must be positive, got %d", c.MaxFeatures))
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism))
	}
	if _, err := gamedata.ParseHexColor(c.Tint); err != nil {
		errs = append(errs, fmt.Errorf("tint: %w", err))
	}
	return errors.Join(errs...)
}
