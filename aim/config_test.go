package aim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"zero horizontal fov", func(cfg *Config) { cfg.HorizontalFOVDeg = 0 }},
		{"flat vertical fov", func(cfg *Config) { cfg.VerticalFOVDeg = 180 }},
		{"zero target width", func(cfg *Config) { cfg.TargetWidthIn = 0 }},
		{"negative tower height", func(cfg *Config) { cfg.TowerHeightFt = -1 }},
		{"zero alignment threshold", func(cfg *Config) { cfg.AlignmentThreshold = 0 }},
		{"inverted range", func(cfg *Config) { cfg.MinDistanceFt, cfg.MaxDistanceFt = 20, 8 }},
		{"negative closeness", func(cfg *Config) { cfg.ClosenessFt = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	data := []byte(`
horizontal_fov_deg: 47.0
vertical_fov_deg: 36.5
noise_band_y: 0
correction:
  d: 12.5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := DefaultConfig()
	expected.HorizontalFOVDeg = 47.0
	expected.VerticalFOVDeg = 36.5
	expected.NoiseBandY = 0
	expected.Correction.D = 12.5
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing file should give an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("horizontal_fov_deg: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(broken); err == nil {
		t.Error("Broken YAML should give an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("target_height_in: -14\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
