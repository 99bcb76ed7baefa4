// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when no flag, environment variable or config file sets a value.
const (
	DefaultBaseURL    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	DefaultDatabase   = "pubmed"
	DefaultMaxResults = 200
	DefaultTimeout    = 30 * time.Second
	DefaultTool       = "affilscan"
)

// HTTPConfig holds shared HTTP settings used by the E-utilities clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "affilscan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// EntrezConfig holds settings for the ESearch and EFetch calls.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Database is the Entrez database identifier (default "pubmed").
	Database string `json:"database" yaml:"database" mapstructure:"database" validate:"required"`

	// MaxResults bounds the number of identifiers requested from ESearch,
	// and therefore the size of the single EFetch batch (default 200).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"min=1,max=10000"`

	// Contact is the operator email sent as the "email" parameter.
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty" mapstructure:"contact" validate:"omitempty,email"`

	// Tool is sent as the "tool" parameter.
	Tool string `json:"tool" yaml:"tool" mapstructure:"tool"`
}

// LogConfig controls the diagnostic channel.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console json"`
}

// OutputFormat selects how result records are presented.
type OutputFormat string

const (
	OutputConsole OutputFormat = "console"
	OutputCSV     OutputFormat = "csv"
	OutputJSON    OutputFormat = "json"
	OutputYAML    OutputFormat = "yaml"
	OutputCSL     OutputFormat = "csl"
)

// OutputConfig selects the presentation of a run.
type OutputConfig struct {
	// Format is the output format. Empty means csv when File is set and
	// console otherwise.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console csv json yaml csl"`

	// File is the output path. Empty writes to stdout.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// SQLitePath, when set, additionally exports the run to a SQLite database.
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty" mapstructure:"sqlite_path"`
}

// ResolvedFormat returns the effective output format.
func (o OutputConfig) ResolvedFormat() OutputFormat {
	if o.Format != "" {
		return o.Format
	}
	if o.File != "" {
		return OutputCSV
	}
	return OutputConsole
}

// Config groups every setting of a run.
type Config struct {
	Entrez EntrezConfig `json:"entrez" yaml:"entrez" mapstructure:"entrez"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// RulesFile is an optional YAML keyword ruleset replacing the built-in one.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty" mapstructure:"rules_file"`

	// Mode is "strict" (fetch failures are reported) or "compat" (fetch
	// failures are logged and collapse to an empty result).
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode" validate:"omitempty,oneof=strict compat"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Entrez: EntrezConfig{
			HTTPConfig: HTTPConfig{Timeout: DefaultTimeout},
			BaseURL:    DefaultBaseURL,
			Database:   DefaultDatabase,
			MaxResults: DefaultMaxResults,
			Tool:       DefaultTool,
		},
		Log:  LogConfig{Level: "warn", Format: "console"},
		Mode: "strict",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration and reports every invalid field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Config.entrez.max_results"; drop the root type.
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", field, fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
