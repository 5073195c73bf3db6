// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Environment keys recognized by ApplyEnv and ApplyEnvFile.
const (
	EnvPivotTolerance    = "LVLINALG_PIVOT_TOLERANCE"
	EnvTolerance         = "LVLINALG_TOLERANCE"
	EnvMaxIterations     = "LVLINALG_MAX_ITERATIONS"
	EnvWorkers           = "LVLINALG_WORKERS"
	EnvParallelThreshold = "LVLINALG_PARALLEL_THRESHOLD"
	EnvLogLevel          = "LVLINALG_LOG_LEVEL"
)

// Config is the serializable numeric policy. Zero MaxIterations keeps the
// size-derived cap; an empty LogLevel keeps the discard logger.
type Config struct {
	PivotTolerance    float64 `yaml:"pivot_tolerance"`
	Tolerance         float64 `yaml:"tolerance"`
	MaxIterations     int     `yaml:"max_iterations"`
	Workers           int     `yaml:"workers"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
	LogLevel          string  `yaml:"log_level"`

	// logOut receives log records when LogLevel is set; os.Stderr by default.
	logOut io.Writer
}

// Default returns the documented matrix defaults.
func Default() *Config {
	return &Config{
		PivotTolerance:    matrix.DefaultPivotTolerance,
		Tolerance:         matrix.DefaultTolerance,
		Workers:           matrix.DefaultWorkers,
		ParallelThreshold: matrix.DefaultParallelThreshold,
	}
}

// Parse decodes YAML over Default. Unknown fields are rejected and the
// result is validated.
func Parse(data []byte) (*Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// ApplyEnvFile overrides fields from a dotenv file without touching the
// process environment.
func (c *Config) ApplyEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("config: read env %s: %w", path, err)
	}

	return c.ApplyEnv(env)
}

// ApplyEnv overrides fields from the recognized LVLINALG_* keys of env and
// re-validates. Keys that are absent leave the field unchanged.
func (c *Config) ApplyEnv(env map[string]string) error {
	var err error
	if v, ok := env[EnvPivotTolerance]; ok {
		if c.PivotTolerance, err = parseFloat(EnvPivotTolerance, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvTolerance]; ok {
		if c.Tolerance, err = parseFloat(EnvTolerance, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvMaxIterations]; ok {
		if c.MaxIterations, err = parseInt(EnvMaxIterations, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvWorkers]; ok {
		if c.Workers, err = parseInt(EnvWorkers, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvParallelThreshold]; ok {
		if c.ParallelThreshold, err = parseInt(EnvParallelThreshold, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.LogLevel = strings.TrimSpace(v)
	}

	return c.Validate()
}

func parseFloat(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, v, matrix.ErrInvalidOption)
	}

	return f, nil
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, v, matrix.ErrInvalidOption)
	}

	return n, nil
}

// Validate checks every field against the domain of its matrix.WithX
// constructor, so Options never panics on a validated Config.
// Errors: matrix.ErrNaNInf, matrix.ErrInvalidOption.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"pivot_tolerance", c.PivotTolerance}, {"tolerance", c.Tolerance}} {
		if err := matrix.ValidateFinite(f.v); err != nil {
			return fmt.Errorf("config: %s: %w", f.name, err)
		}
	}
	switch {
	case c.PivotTolerance < 0:
		return fmt.Errorf("config: pivot_tolerance %g < 0: %w", c.PivotTolerance, matrix.ErrInvalidOption)
	case c.Tolerance <= 0:
		return fmt.Errorf("config: tolerance %g <= 0: %w", c.Tolerance, matrix.ErrInvalidOption)
	case c.MaxIterations < 0:
		return fmt.Errorf("config: max_iterations %d < 0: %w", c.MaxIterations, matrix.ErrInvalidOption)
	case c.Workers < 1:
		return fmt.Errorf("config: workers %d < 1: %w", c.Workers, matrix.ErrInvalidOption)
	case c.ParallelThreshold < 0:
		return fmt.Errorf("config: parallel_threshold %d < 0: %w", c.ParallelThreshold, matrix.ErrInvalidOption)
	}
	if _, err := c.level(); err != nil {
		return err
	}

	return nil
}

// level maps LogLevel onto slog levels.
func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return l, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("config: log_level %q: %w", c.LogLevel, matrix.ErrInvalidOption)
	}

	return l, nil
}

// SetLogOutput redirects the logger built by Options when LogLevel is set.
func (c *Config) SetLogOutput(w io.Writer) { c.logOut = w }

// Options converts a validated Config into matrix options.
func (c *Config) Options() []matrix.Option {
	opts := []matrix.Option{
		matrix.WithPivotTolerance(c.PivotTolerance),
		matrix.WithTolerance(c.Tolerance),
		matrix.WithWorkers(c.Workers),
		matrix.WithParallelThreshold(c.ParallelThreshold),
	}
	if c.MaxIterations > 0 {
		opts = append(opts, matrix.WithMaxIterations(c.MaxIterations))
	}
	if c.LogLevel != "" {
		lvl, _ := c.level()
		out := c.logOut
		if out == nil {
			out = os.Stderr
		}
		opts = append(opts, matrix.WithLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))))
	}

	return opts
}
