// Package config loads layout tolerances from files and key-value maps.
//
// Every loader starts from layout.DefaultConfig, so a file only needs to
// name the options it changes. Unknown option names are rejected rather than
// ignored: a misspelled tolerance silently falling back to its default is
// much harder to notice than an error.
//
//	cfg, err := config.Load("reflow.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	builder, err := layout.NewBuilderWithConfig(cfg)
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/reflow/layout"
)

var (
	// ErrUnknownOption is returned for an option name layout.Config does not
	// recognize. It is the same value as layout.ErrUnknownOption.
	ErrUnknownOption = layout.ErrUnknownOption

	// ErrInvalidConfig is returned for a value of the wrong type or range.
	// It is the same value as layout.ErrInvalidConfig.
	ErrInvalidConfig = layout.ErrInvalidConfig

	// ErrUnsupportedFormat is returned by Load for an unrecognized extension
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Format identifies a configuration file syntax
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// String returns a string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Load reads a configuration file, choosing the decoder from its extension
func Load(path string) (layout.Config, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return layout.Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return layout.Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, format)
	if err != nil {
		return layout.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration in the given format from r and validates it
func Decode(r io.Reader, format Format) (layout.Config, error) {
	var (
		cfg layout.Config
		err error
	)
	switch format {
	case FormatTOML:
		cfg, err = decodeTOML(r)
	case FormatYAML:
		cfg, err = decodeYAML(r)
	case FormatJSON:
		cfg, err = decodeJSON(r)
	default:
		return layout.Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return layout.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

func decodeTOML(r io.Reader) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return layout.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return layout.Config{}, unknownOptions(keys)
	}
	return cfg, nil
}

func decodeYAML(r io.Reader) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				if strings.Contains(msg, "not found in type") {
					return layout.Config{}, fmt.Errorf("%w: %s", ErrUnknownOption, msg)
				}
			}
		}
		return layout.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func decodeJSON(r io.Reader) (layout.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return layout.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := layout.DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return layout.Config{}, fmt.Errorf("%w: %v", ErrUnknownOption, err)
		}
		return layout.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// FromMap builds a configuration from option names to numeric values, the
// shape produced by command-line overrides and generic decoders. Every
// unknown name is reported, not just the first.
func FromMap(values map[string]any) (layout.Config, error) {
	cfg := layout.DefaultConfig()

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var unknown []string
	for _, name := range names {
		v, err := toFloat(values[name])
		if err != nil {
			return layout.Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
		if err := cfg.Set(name, v); err != nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return layout.Config{}, unknownOptions(unknown)
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// ToMap returns every option of cfg by name
func ToMap(cfg layout.Config) map[string]float64 {
	out := make(map[string]float64)
	for _, name := range layout.OptionNames() {
		v, _ := cfg.Get(name)
		out[name] = v
	}
	return out
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func unknownOptions(names []string) error {
	return fmt.Errorf("%w: %s (known options: %s)",
		ErrUnknownOption, strings.Join(names, ", "), strings.Join(layout.OptionNames(), ", "))
}
