package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults. The display bound is 1.5x a common phone viewport.
const (
	DefaultLanguage  = "eng"
	DefaultMaxWidth  = 1170.0
	DefaultMaxHeight = 2532.0
)

// Config holds the server's environment-derived settings.
type Config struct {
	// Language is the Tesseract language code for text recognition.
	Language string

	// MaxDisplayWidth and MaxDisplayHeight bound output rasters.
	MaxDisplayWidth  float64
	MaxDisplayHeight float64

	// Header overrides the renderer's default header label when non-empty.
	Header string

	// ExclusiveMatch switches the default matching policy to one-to-one.
	ExclusiveMatch bool

	// Debug enables debug logging to stderr.
	Debug bool
}

// Load reads configuration from the environment, after loading a .env file
// if one is present (its absence is not an error).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Language:         envOr("MENU_ANNOTATE_LANG", DefaultLanguage),
		MaxDisplayWidth:  DefaultMaxWidth,
		MaxDisplayHeight: DefaultMaxHeight,
		Header:           os.Getenv("MENU_ANNOTATE_HEADER"),
		ExclusiveMatch:   os.Getenv("MENU_ANNOTATE_EXCLUSIVE_MATCH") == "true",
		Debug:            os.Getenv("MENU_ANNOTATE_LOG_LEVEL") == "debug",
	}

	var err error
	if cfg.MaxDisplayWidth, err = envFloat("MENU_ANNOTATE_MAX_WIDTH", DefaultMaxWidth); err != nil {
		return nil, err
	}
	if cfg.MaxDisplayHeight, err = envFloat("MENU_ANNOTATE_MAX_HEIGHT", DefaultMaxHeight); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %v", key, f)
	}
	return f, nil
}
