package rs1509

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UncorrectablePolicy controls what a decode driver does with a code word
// that Decode reports as ErrUncorrectable.
type UncorrectablePolicy string

const (
	// PolicyAbort stops the whole decode operation and surfaces the error
	// to the caller.
	PolicyAbort UncorrectablePolicy = "abort"
	// PolicySubstitute keeps going: the lost word's information symbols
	// are replaced with zero symbols and recorded in the DecodeReport, and
	// decoding continues with the next word.
	PolicySubstitute UncorrectablePolicy = "substitute"
)

// Config holds the tunables for a decode run. The zero value is not
// valid; use DefaultConfig or LoadConfig.
type Config struct {
	// InterleaveWidth is the number of code words grouped into one
	// interleave block. Only meaningful for interleaved streams.
	InterleaveWidth int `yaml:"interleave_width"`
	// OnUncorrectable selects the policy applied when a code word cannot
	// be corrected.
	OnUncorrectable UncorrectablePolicy `yaml:"on_uncorrectable"`
}

// DefaultConfig returns the library's default tunables: an interleave
// width of 1 (no interleaving) and abort-on-uncorrectable.
func DefaultConfig() Config {
	return Config{
		InterleaveWidth: 1,
		OnUncorrectable: PolicyAbort,
	}
}

// LoadConfig reads and validates a YAML config file. Missing fields fall
// back to DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading config %s: %v", ErrIO, path, err)
	}

	raw := struct {
		InterleaveWidth *int    `yaml:"interleave_width"`
		OnUncorrectable *string `yaml:"on_uncorrectable"`
	}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: parsing config %s: %v", ErrIO, path, err)
	}
	if raw.InterleaveWidth != nil {
		cfg.InterleaveWidth = *raw.InterleaveWidth
	}
	if raw.OnUncorrectable != nil {
		cfg.OnUncorrectable = UncorrectablePolicy(*raw.OnUncorrectable)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that a Config's fields hold legal values.
func (c Config) Validate() error {
	if c.InterleaveWidth < 1 {
		return fmt.Errorf("%w: interleave_width must be >= 1, got %d", ErrInvalidLength, c.InterleaveWidth)
	}
	switch c.OnUncorrectable {
	case PolicyAbort, PolicySubstitute:
	default:
		return fmt.Errorf("%w: on_uncorrectable must be %q or %q, got %q", ErrInvalidSymbol, PolicyAbort, PolicySubstitute, c.OnUncorrectable)
	}
	return nil
}
