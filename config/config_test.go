package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/reflow/layout"
)

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "reflow.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NCharDist != 3 || cfg.OriginTol != 0.05 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Untouched options keep their defaults
	if cfg.NLineDist != layout.DefaultConfig().NLineDist {
		t.Errorf("NLineDist = %v, want default", cfg.NLineDist)
	}
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "reflow.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NLineDist != 1.2 || cfg.FontTol != 0.02 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_JSON(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "reflow.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AlignmentTol != 0.02 || cfg.NLineFooterMargin != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_UnknownKeys(t *testing.T) {
	for _, name := range []string{"unknown.toml", "unknown.yaml"} {
		_, err := Load(filepath.Join("testdata", name))
		if !errors.Is(err, ErrUnknownOption) {
			t.Errorf("%s: error = %v, want ErrUnknownOption", name, err)
		}
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load("reflow.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		cfg, err := Decode(strings.NewReader(""), format)
		if err != nil {
			t.Errorf("%s: Decode(empty): %v", format, err)
			continue
		}
		if cfg != layout.DefaultConfig() {
			t.Errorf("%s: empty input should give the defaults, got %+v", format, cfg)
		}
	}
}

func TestDecode_JSONUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"n_char_distance": 2}`), FormatJSON)
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("error = %v, want ErrUnknownOption", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"n_char_dist": 4,
		"font_tol":    0.05,
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.NCharDist != 4 || cfg.FontTol != 0.05 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestFromMap_UnknownKeys(t *testing.T) {
	_, err := FromMap(map[string]any{
		"n_char_dist": 2,
		"zeta":        1,
		"alpha":       1,
	})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("error = %v, want ErrUnknownOption", err)
	}
	if !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("error should list every unknown key: %v", err)
	}
}

func TestFromMap_WrongType(t *testing.T) {
	_, err := FromMap(map[string]any{"n_char_dist": "two"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestFromMap_Validates(t *testing.T) {
	_, err := FromMap(map[string]any{"origin_tol": 0})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap(layout.DefaultConfig())
	if len(m) != 6 || m["n_line_dist"] != 0.8 {
		t.Errorf("ToMap = %v", m)
	}
	cfg, err := FromMap(map[string]any{"n_line_dist": m["n_line_dist"]})
	if err != nil || cfg != layout.DefaultConfig() {
		t.Errorf("round trip: %+v, %v", cfg, err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YML":  FormatYAML,
		"a.yaml": FormatYAML,
		"a.json": FormatJSON,
		"a.txt":  FormatUnknown,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
