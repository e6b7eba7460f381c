// Package config holds the run configuration of the discountroute CLI.
//
// A configuration file is optional. Values are applied in three layers:
// Default(), then the YAML file, then command-line flags.
//
//	input: testdata/house.txt
//	start: 0
//	end: 4
//	lenient: false
//	enumeration: upper-triangle
//	workers: 4
//	log:
//	  level: debug
//	  format: json
//	output:
//	  color: true
//	  dot: route.dot
//	  metrics_file: run.prom
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	// Input is the problem file. Usually given as a positional argument.
	Input string `yaml:"input"`

	// Start and End override the endpoints stored in the problem file.
	Start *int `yaml:"start" validate:"omitempty,min=0"`
	End   *int `yaml:"end" validate:"omitempty,min=0"`

	// Lenient accepts asymmetric weight matrices.
	Lenient bool `yaml:"lenient"`

	Enumeration string `yaml:"enumeration" validate:"omitempty,oneof=ordered-pairs upper-triangle"`
	Workers     int    `yaml:"workers" validate:"min=1,max=1024"`

	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

// Log configures the logrus logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Output selects optional artifacts.
type Output struct {
	Color       bool   `yaml:"color"`
	DOT         string `yaml:"dot"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns a configuration that runs a sequential search and logs
// warnings as text.
func Default() Config {
	return Config{
		Enumeration: "ordered-pairs",
		Workers:     1,
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes YAML from r on top of Default and validates the result.
// Unknown keys are rejected. An empty document yields Default.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerated values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return nil
}
