package cmd

import (
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/log"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// LogConfig is read from the environment before flags are applied.
type LogConfig struct {
	Level   string `env:"BJSIM_LOG_LEVEL" envDefault:"info"`
	JSON    bool   `env:"BJSIM_LOG_JSON"`
	NoColor bool   `env:"BJSIM_LOG_NO_COLOR"`
}

// ParseLogConfig loads LogConfig from environment variables.
func ParseLogConfig() (LogConfig, error) {
	var cfg LogConfig
	if err := env.Parse(&cfg); err != nil {
		return LogConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the CLI logger writing to w.
func NewLogger(w io.Writer, cfg LogConfig) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := []log.Option{log.LevelOption(lvl), log.ColorOption(!cfg.NoColor)}
	if cfg.JSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}
