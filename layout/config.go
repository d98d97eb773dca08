package layout

import (
	"fmt"
	"math"
	"sort"
)

// Config holds the tolerances that drive every clustering level. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// OriginTol is the relative baseline-alignment tolerance: a span joins a
	// line when |dy| / line height is below it (default: 0.01)
	OriginTol float64 `toml:"origin_tol" yaml:"origin_tol" json:"origin_tol"`

	// FontTol is the relative font-size equality tolerance (default: 0.01)
	FontTol float64 `toml:"font_tol" yaml:"font_tol" json:"font_tol"`

	// AlignmentTol is the column alignment tolerance, as a fraction of the
	// reference element's width (default: 0.01)
	AlignmentTol float64 `toml:"alignment_tol" yaml:"alignment_tol" json:"alignment_tol"`

	// NCharDist is the maximum horizontal gap, in average character widths,
	// between spans of the same line (default: 2)
	NCharDist float64 `toml:"n_char_dist" yaml:"n_char_dist" json:"n_char_dist"`

	// NLineDist is the maximum vertical gap, in average line heights,
	// between lines of the same paragraph (default: 0.8)
	NLineDist float64 `toml:"n_line_dist" yaml:"n_line_dist" json:"n_line_dist"`

	// NLineFooterMargin is the distance from the page bottom, in average line
	// heights, under which a paragraph is a footer candidate (default: 5).
	// Only used when footer removal is enabled.
	NLineFooterMargin float64 `toml:"n_line_footer_margin" yaml:"n_line_footer_margin" json:"n_line_footer_margin"`
}

// DefaultConfig returns the default tolerances
func DefaultConfig() Config {
	return Config{
		OriginTol:         0.01,
		FontTol:           0.01,
		AlignmentTol:      0.01,
		NCharDist:         2,
		NLineDist:         0.8,
		NLineFooterMargin: 5,
	}
}

// optionFields maps option names to the fields they set
var optionFields = map[string]func(*Config) *float64{
	"origin_tol":           func(c *Config) *float64 { return &c.OriginTol },
	"font_tol":             func(c *Config) *float64 { return &c.FontTol },
	"alignment_tol":        func(c *Config) *float64 { return &c.AlignmentTol },
	"n_char_dist":          func(c *Config) *float64 { return &c.NCharDist },
	"n_line_dist":          func(c *Config) *float64 { return &c.NLineDist },
	"n_line_footer_margin": func(c *Config) *float64 { return &c.NLineFooterMargin },
}

// OptionNames returns the recognized option names in sorted order
func OptionNames() []string {
	names := make([]string, 0, len(optionFields))
	for name := range optionFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set assigns an option by name. Unknown names return ErrUnknownOption.
func (c *Config) Set(name string, value float64) error {
	field, ok := optionFields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	*field(c) = value
	return nil
}

// Get returns an option by name
func (c Config) Get(name string) (float64, error) {
	field, ok := optionFields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	return *field(&c), nil
}

// Validate checks that every tolerance is a positive finite number and the
// footer margin is not negative.
func (c Config) Validate() error {
	for _, name := range OptionNames() {
		v, _ := c.Get(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, name, v)
		}
		if name == "n_line_footer_margin" {
			if v < 0 {
				return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v)
			}
			continue
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
