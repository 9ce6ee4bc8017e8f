// Package config loads the cavepaths run configuration from YAML, applies
// environment overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cavepaths/core"
	"github.com/katalvlaran/cavepaths/dfs"
	"github.com/katalvlaran/cavepaths/visit"
)

// ErrInvalidConfig wraps every validation or override failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvMaxPaths = "CAVEPATHS_MAX_PATHS"
	EnvMaxDepth = "CAVEPATHS_MAX_DEPTH"
	EnvLogLevel = "CAVEPATHS_LOG_LEVEL"
)

var validate = validator.New()

// Config holds every knob of a cavepaths run.
type Config struct {
	Start     string        `yaml:"start" validate:"required,alpha"`
	End       string        `yaml:"end" validate:"required,alpha"`
	Separator string        `yaml:"separator" validate:"required"`
	Policies  []string      `yaml:"policies" validate:"required,min=1,dive,oneof=single single-visit twice one-small-twice"`
	MaxPaths  int           `yaml:"max_paths" validate:"gte=0"` // 0 = unlimited
	MaxDepth  int           `yaml:"max_depth" validate:"gte=0"` // 0 = unlimited
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`   // 0 = none
	LogLevel  string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the configuration used when no file exists:
// both policies, "start"/"end", "-" separator, no caps.
func DefaultConfig() *Config {
	return &Config{
		Start:     dfs.DefaultStart,
		End:       dfs.DefaultEnd,
		Separator: core.DefaultSeparator,
		Policies:  []string{visit.SingleVisit.String(), visit.OneSmallTwice.String()},
		LogLevel:  "info",
	}
}

// Load loads configuration from a YAML file on top of DefaultConfig,
// applies environment overrides, and validates. A missing file yields
// the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	for _, o := range []struct {
		env string
		dst *int
	}{
		{EnvMaxPaths, &c.MaxPaths},
		{EnvMaxDepth, &c.MaxDepth},
	} {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, o.env, v)
		}
		*o.dst = n
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = strings.ToLower(lvl)
	}

	return nil
}

// Validate checks struct tags and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "alpha":
		return fmt.Sprintf("%s must contain only letters", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ParsedPolicies converts Policies into visit.Policy values, in order.
func (c *Config) ParsedPolicies() ([]visit.Policy, error) {
	out := make([]visit.Policy, 0, len(c.Policies))
	for _, name := range c.Policies {
		p, err := visit.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// GraphOptions returns the core options implied by the config.
func (c *Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithSeparator(c.Separator)}
}

// EnumOptions returns the dfs options implied by the config. The context
// and logger are supplied by the caller.
func (c *Config) EnumOptions() []dfs.Option {
	return []dfs.Option{
		dfs.WithStart(c.Start),
		dfs.WithEnd(c.End),
		dfs.WithMaxPaths(c.MaxPaths),
		dfs.WithMaxDepth(c.MaxDepth),
	}
}
