package orm

import (
	"io"
	"log"
)

const (
	defaultColumnSuffix  = "(R)"
	defaultHorizontalTag = "BPH"
	defaultVerticalTag   = "BPV"
)

type config struct {
	workers       int
	columnSuffix  string
	horizontalTag string
	verticalTag   string
	logger        *log.Logger
}

// Option configures an [Analyzer] or a standalone pipeline stage.
type Option func(*config)

func defaultConfig() config {
	return config{
		workers:       1,
		columnSuffix:  defaultColumnSuffix,
		horizontalTag: defaultHorizontalTag,
		verticalTag:   defaultVerticalTag,
		logger:        log.New(io.Discard, "", 0),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers sets how many goroutines compute device spectra. Results do
// not depend on the worker count.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithColumnSuffix sets the suffix appended to a raw device name to form its
// column name. The default is "(R)".
func WithColumnSuffix(suffix string) Option {
	return func(cfg *config) {
		cfg.columnSuffix = suffix
	}
}

// WithGroupTags sets the case-insensitive substrings that classify a sensor
// as horizontal or vertical. Empty tags keep the defaults "BPH" and "BPV".
func WithGroupTags(horizontal, vertical string) Option {
	return func(cfg *config) {
		if horizontal != "" {
			cfg.horizontalTag = horizontal
		}
		if vertical != "" {
			cfg.verticalTag = vertical
		}
	}
}

// WithLogger routes run summaries to l. Runs are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
