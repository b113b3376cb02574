package aim

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is camera and field calibration. It is set once at startup and never changes afterwards.
type Config struct {
	// Camera field of view, degrees. Camera is mounted sideways so horizontal FOV is the narrow one
	HorizontalFOVDeg float64 `yaml:"horizontal_fov_deg"`
	VerticalFOVDeg   float64 `yaml:"vertical_fov_deg"`
	// Physical target dimensions, inches
	TargetWidthIn  float64 `yaml:"target_width_in"`
	TargetHeightIn float64 `yaml:"target_height_in"`
	// Height from floor to target center, feet
	TowerHeightFt float64 `yaml:"tower_height_ft"`
	// Distance from camera to front of robot, feet
	SensorOffsetFt float64 `yaml:"sensor_offset_ft"`
	// Blobs with any corner Y below this value are reflections of the bar
	NoiseBandY float64 `yaml:"noise_band_y"`
	// Max normalized distance from center when target is treated as aligned
	AlignmentThreshold float64 `yaml:"alignment_threshold"`
	// Operable shooting range, feet
	MinDistanceFt float64 `yaml:"min_distance_ft"`
	MaxDistanceFt float64 `yaml:"max_distance_ft"`
	// Below this distance (feet) alignment does not matter for choosing target
	ClosenessFt float64 `yaml:"closeness_ft"`
	// Empirical correction curve: inches in, inches out
	Correction Polynomial `yaml:"correction"`
}

// DefaultConfig returns 2016 robot calibration
func DefaultConfig() Config {
	return Config{
		HorizontalFOVDeg:   36.5,
		VerticalFOVDeg:     47.0,
		TargetWidthIn:      20.0,
		TargetHeightIn:     14.0,
		TowerHeightFt:      89.0 / 12.0,
		SensorOffsetFt:     1.5,
		NoiseBandY:         220,
		AlignmentThreshold: 0.4,
		MinDistanceFt:      8,
		MaxDistanceFt:      20,
		ClosenessFt:        8,
		Correction: Polynomial{
			A: -2.9565e-6,
			B: 0.0017,
			C: 0.6935,
			D: 11.8683,
		},
	}
}

// Validate checks calibration values
func (cfg Config) Validate() error {
	for _, fov := range []struct {
		name  string
		value float64
	}{{"horizontal_fov_deg", cfg.HorizontalFOVDeg}, {"vertical_fov_deg", cfg.VerticalFOVDeg}} {
		if !(fov.value > 0 && fov.value < 180) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be in (0, 180), got %v", fov.name, fov.value)
		}
	}
	if !(cfg.TargetWidthIn > 0) || !(cfg.TargetHeightIn > 0) {
		return errors.Wrapf(ErrInvalidConfig, "target dimensions must be positive, got %vx%v", cfg.TargetWidthIn, cfg.TargetHeightIn)
	}
	if cfg.TowerHeightFt < 0 || cfg.SensorOffsetFt < 0 {
		return errors.Wrapf(ErrInvalidConfig, "tower height and sensor offset must not be negative, got %v and %v", cfg.TowerHeightFt, cfg.SensorOffsetFt)
	}
	if !(cfg.AlignmentThreshold > 0) {
		return errors.Wrapf(ErrInvalidConfig, "alignment_threshold must be positive, got %v", cfg.AlignmentThreshold)
	}
	if cfg.MinDistanceFt < 0 || cfg.MaxDistanceFt < cfg.MinDistanceFt {
		return errors.Wrapf(ErrInvalidConfig, "bad operable range [%v, %v]", cfg.MinDistanceFt, cfg.MaxDistanceFt)
	}
	if cfg.ClosenessFt < 0 {
		return errors.Wrapf(ErrInvalidConfig, "closeness_ft must not be negative, got %v", cfg.ClosenessFt)
	}
	for _, v := range []float64{cfg.NoiseBandY, cfg.Correction.A, cfg.Correction.B, cfg.Correction.C, cfg.Correction.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrap(ErrInvalidConfig, "noise band and correction coefficients must be finite")
		}
	}
	return nil
}

// LoadConfig reads YAML calibration file. Omitted fields keep default values
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, errors.Wrap(err, "Can't read config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "Can't parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "Bad config file %s", path)
	}
	return cfg, nil
}
