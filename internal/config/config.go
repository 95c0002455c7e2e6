package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/zeebo/errs"

	"buddha-num-conv/internal/render"
)

// Environment keys
const (
	EnvAddr          = "APP_ADDR"
	EnvMode          = "GIN_MODE"
	EnvDefaultFormat = "APP_DEFAULT_FORMAT"
)

// Error is the class of configuration errors
var Error = errs.Class("config")

// Config holds configuration for the API server and the CLI
type Config struct {
	Addr          string        // Listen address (default: ":8080")
	Mode          string        // gin mode: debug, release or test (default: release)
	DefaultFormat render.Format // Output format when a request names none (default: text)
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Addr:          ":8080",
		Mode:          gin.ReleaseMode,
		DefaultFormat: render.FormatText,
	}
}

// Load reads the given dotenv files into the process environment, then
// builds the configuration from it. Missing files are skipped and variables
// already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, Error.Wrap(fmt.Errorf("load %s: %w", file, err))
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables, falling back
// to Default for unset keys.
func FromEnv() (*Config, error) {
	def := Default()

	cfg := &Config{
		Addr: getenv(EnvAddr, def.Addr),
		Mode: getenv(EnvMode, def.Mode),
	}

	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, Error.New("%s: unsupported mode %q", EnvMode, cfg.Mode)
	}

	format, err := render.ParseFormat(getenv(EnvDefaultFormat, string(def.DefaultFormat)))
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("%s: %w", EnvDefaultFormat, err))
	}
	cfg.DefaultFormat = format

	return cfg, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
