// Package config loads solver settings from YAML.
//
//	search:
//	  node_limit: 0        # 0 = unlimited
//	  workers: 4
//	  seed_tour: true
//	  root_iterations: 0   # 0 = ceil(n²/50)+n+15
//	  child_iterations: 0  # 0 = ceil(n/4)+5
//	  timeout: 5m
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json
//	metrics:
//	  addr: ":9090"        # empty disables the endpoint
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hkbb/bnb"
	"github.com/katalvlaran/hkbb/heldkarp"
)

// ErrInvalid reports a config that fails to decode or validate.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Search  Search  `yaml:"search"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Search maps onto bnb.Options.
type Search struct {
	NodeLimit       int           `yaml:"node_limit" validate:"gte=0"`
	Workers         int           `yaml:"workers" validate:"gte=0,lte=256"`
	SeedTour        bool          `yaml:"seed_tour"`
	RootIterations  int           `yaml:"root_iterations" validate:"gte=0"`
	ChildIterations int           `yaml:"child_iterations" validate:"gte=0"`
	Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns a single-threaded unlimited search logging at info level.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result. Empty input
// yields Default.
//
// Errors: ErrInvalid wrapping the YAML or validation failure.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// SearchOptions converts the search section. The logger is left unset.
func (c Config) SearchOptions() bnb.Options {
	return bnb.Options{
		HeldKarp: heldkarp.Config{
			RootIterations:  c.Search.RootIterations,
			ChildIterations: c.Search.ChildIterations,
		},
		NodeLimit: c.Search.NodeLimit,
		Workers:   c.Search.Workers,
		SeedTour:  c.Search.SeedTour,
	}
}

// Logger builds a slog.Logger writing to w.
func (l Log) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.level()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func (l Log) level() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
