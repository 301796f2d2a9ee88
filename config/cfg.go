package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeball/model"
	"gopkg.in/yaml.v3"
)

const envPrefix = "MAZEBALL_"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is fixed once the arena is built. A restart reuses it with fresh
// randomness.
type Config struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Border is the outer wall thickness, 0 means Height/30.
	Border float64 `yaml:"border"`
	// WallThickness is the interior wall thickness, 0 means Border/2.
	WallThickness float64 `yaml:"wall_thickness"`

	Acceleration float64 `yaml:"acceleration"` // velocity delta per key press
	MaxSpeed     float64 `yaml:"max_speed"`
	WinGravity   float64 `yaml:"win_gravity"`

	Seed      int64  `yaml:"seed"` // 0 = random
	Wireframe bool   `yaml:"wireframe"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Rows:         8,
		Cols:         8,
		Width:        600,
		Height:       600,
		Acceleration: 120,
		MaxSpeed:     600,
		WinGravity:   400,
		LogLevel:     "info",
	}
}

// Load layers an optional YAML file, then a .env file and the process
// environment, over the defaults. Derived values are left for Resolved so
// command line overrides can still change them.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not loaded: %v", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Resolved fills the derived thicknesses.
func (c Config) Resolved() Config {
	if c.Border == 0 {
		c.Border = c.Height / 30
	}
	if c.WallThickness == 0 {
		c.WallThickness = c.Border / 2
	}
	return c
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d", model.ErrInvalidDimensions, c.Rows, c.Cols)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.Border < 0 || c.WallThickness < 0:
		return fmt.Errorf("%w: negative wall thickness", ErrInvalidConfig)
	case c.Acceleration <= 0:
		return fmt.Errorf("%w: acceleration %g", ErrInvalidConfig, c.Acceleration)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %g", ErrInvalidConfig, c.MaxSpeed)
	case c.WinGravity < 0:
		return fmt.Errorf("%w: win gravity %g", ErrInvalidConfig, c.WinGravity)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"ROWS": &c.Rows,
		"COLS": &c.Cols,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, envPrefix, key, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"WIDTH":          &c.Width,
		"HEIGHT":         &c.Height,
		"BORDER":         &c.Border,
		"WALL_THICKNESS": &c.WallThickness,
		"ACCELERATION":   &c.Acceleration,
		"MAX_SPEED":      &c.MaxSpeed,
		"WIN_GRAVITY":    &c.WinGravity,
	}
	for key, dst := range floats {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be a number: %v", ErrInvalidConfig, envPrefix, key, err)
			}
			*dst = f
		}
	}

	if v, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, envPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(envPrefix + "WIREFRAME"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sWIREFRAME must be a boolean: %v", ErrInvalidConfig, envPrefix, err)
		}
		c.Wireframe = b
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}
