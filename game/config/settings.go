package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Settings are the runtime settings read from the environment.
type Settings struct {
	Seed       uint64        `env:"PANDEMIC_SEED"`
	Difficulty string        `env:"PANDEMIC_DIFFICULTY" envDefault:"introductory"`
	LogLevel   string        `env:"PANDEMIC_LOG_LEVEL" envDefault:"warn"`
	SessionTTL time.Duration `env:"PANDEMIC_SESSION_TTL" envDefault:"24h"`
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and parses Settings from it. Missing files are
// skipped; variables already set in the environment win.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return parse(env.Options{})
}

// LoadFrom parses Settings from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Settings, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings that env parsing cannot.
func (s Settings) Validate() error {
	if _, err := zap.ParseAtomicLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, s.LogLevel)
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("%w: session TTL must be positive, got %s", ErrInvalidConfig, s.SessionTTL)
	}
	return nil
}

// Logger builds the process logger. It writes JSON to stderr so stdout stays
// free for the console and the MCP stdio transport.
func (s Settings) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s.LogLevel)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
