package equation

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/randalmurphal/equation/pkg/equation/config"
)

// OptionsFromConfig maps directory settings to options.
//
// Recognized keys:
//   - max_depth (int): WithMaxDepth
//   - log_level (string: debug, info, warn, error): a text logger on stderr
//   - metrics (bool): WithMetrics
//   - tracing (bool): WithTracing
func OptionsFromConfig(cfg config.Config) ([]Option, error) {
	return optionsFromConfig(cfg, os.Stderr)
}

func optionsFromConfig(cfg config.Config, logOut io.Writer) ([]Option, error) {
	var opts []Option

	if cfg.Has("max_depth") {
		depth := cfg.Int("max_depth", 0)
		if depth <= 0 {
			return nil, fmt.Errorf("max_depth must be a positive integer, got %v", cfg.Raw()["max_depth"])
		}
		opts = append(opts, WithMaxDepth(depth))
	}

	if level := cfg.String("log_level", ""); level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log_level: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))
		opts = append(opts, WithLogger(logger))
	}

	if cfg.Has("metrics") {
		opts = append(opts, WithMetrics(cfg.Bool("metrics", false)))
	}
	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}

	return opts, nil
}
