// Package config loads the clusternet run configuration.
//
// Sources, lowest to highest priority:
//
//  1. Default()
//  2. a YAML file (strict: unknown keys are rejected)
//  3. environment overrides (CLUSTERNET_LOG_LEVEL, CLUSTERNET_FORMAT,
//     CLUSTERNET_ENGINE)
//
// The merged result is validated with struct tags before it is returned.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/katalvlaran/clusternet/builder"
)

// ErrInvalidConfig wraps every load, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel = "CLUSTERNET_LOG_LEVEL"
	EnvFormat   = "CLUSTERNET_FORMAT"
	EnvEngine   = "CLUSTERNET_ENGINE"
)

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// MaxClusters bounds a single run. A grid of 100 clusters is N=900, which
// Floyd–Warshall still finishes in about a second.
const MaxClusters = 100

// Config is the merged configuration.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	NoColor  bool   `yaml:"no_color"`
	Engine   string `yaml:"engine" validate:"oneof=floyd-warshall bfs"`
	Output   Output `yaml:"output"`
	Runs     []Run  `yaml:"runs" validate:"dive"`
}

// Output selects what each run prints.
type Output struct {
	Format string `yaml:"format" validate:"oneof=text csv"`
	Matrix bool   `yaml:"matrix"`
	Edges  bool   `yaml:"edges"`
}

// Run is one (family, scale) job. Sweep reports every scale 1..Clusters.
type Run struct {
	Family   string `yaml:"family" validate:"required,oneof=star ring grid"`
	Clusters int    `yaml:"clusters" validate:"min=1,max=100"`
	Sweep    bool   `yaml:"sweep"`
}

// FamilyValue resolves Family to a builder.Family.
func (r Run) FamilyValue() (builder.Family, error) {
	return builder.ParseFamily(r.Family)
}

// Default returns the built-in configuration: info logging, Floyd–Warshall,
// text output, no runs.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Engine:   "floyd-warshall",
		Output:   Output{Format: FormatText},
	}
}

var validate = validator.New()

// ValidationError carries every violation found by Validate.
// errors.Is(err, ErrInvalidConfig) holds for it.
type ValidationError struct {
	Violations []error
}

// Error joins the violations with "; ".
func (e *ValidationError) Error() string {
	return ErrInvalidConfig.Error() + ": " + multierr.Combine(e.Violations...).Error()
}

// Is reports ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks struct tags and returns every violation at once as a
// *ValidationError.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var combined error
	for _, fe := range verrs {
		combined = multierr.Append(combined, errors.New(formatFieldError(fe)))
	}

	return &ValidationError{Violations: multierr.Errors(combined)}
}

// formatFieldError renders one violation as "path: reason".
func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
