// Package config holds the tunable settings for the map viewer's camera
// controls. Settings can be loaded from a YAML file and are merged over the
// defaults, so a settings file only needs to name the values it changes.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Team-Fuho/BlueMapWeb/common"
)

// Settings is the tuning record consumed by the controls orchestrator and its
// input drivers. All durations and rates are in milliseconds; speeds are per
// millisecond of frame delta.
type Settings struct {
	// MinDistance and MaxDistance softly bound the camera distance.
	MinDistance float64 `yaml:"minDistance"`
	MaxDistance float64 `yaml:"maxDistance"`

	// EntryMinDistance is the lower distance bound applied only by the entry
	// transition's target framing.
	EntryMinDistance float64 `yaml:"entryMinDistance"`

	// ClampStiffness is the per-frame soft-clamp damping factor in [0, 1].
	ClampStiffness float64 `yaml:"clampStiffness"`

	// TransitionDuration is the length of mode transitions in milliseconds.
	TransitionDuration float64 `yaml:"transitionDuration"`

	// Mouse driver tuning.
	MouseMoveSpeed   float64 `yaml:"mouseMoveSpeed"`
	MouseRotateSpeed float64 `yaml:"mouseRotateSpeed"`
	MouseTiltSpeed   float64 `yaml:"mouseTiltSpeed"`
	MouseZoomStep    float64 `yaml:"mouseZoomStep"`

	// Keyboard driver tuning.
	KeyMoveSpeed   float64 `yaml:"keyMoveSpeed"`
	KeyRotateSpeed float64 `yaml:"keyRotateSpeed"`
	KeyTiltSpeed   float64 `yaml:"keyTiltSpeed"`
	KeyZoomSpeed   float64 `yaml:"keyZoomSpeed"`

	// Touch driver tuning.
	TouchMoveSpeed   float64 `yaml:"touchMoveSpeed"`
	TouchRotateSpeed float64 `yaml:"touchRotateSpeed"`
	TouchTiltSpeed   float64 `yaml:"touchTiltSpeed"`

	// InputSmoothing is the fraction of a driver's pending input consumed per
	// millisecond, giving drag and scroll input a short momentum tail.
	InputSmoothing float64 `yaml:"inputSmoothing"`

	// HeightFollowRate is the per-millisecond easing rate of the focus height
	// toward the suggested terrain height.
	HeightFollowRate float64 `yaml:"heightFollowRate"`
}

// Default returns the stock settings used when no file is provided.
//
// Returns:
//   - Settings: the default tuning values
func Default() Settings {
	return Settings{
		MinDistance:        5,
		MaxDistance:        10000,
		EntryMinDistance:   100,
		ClampStiffness:     0.8,
		TransitionDuration: 500,

		MouseMoveSpeed:   0.002,
		MouseRotateSpeed: 0.004,
		MouseTiltSpeed:   0.008,
		MouseZoomStep:    0.15,

		KeyMoveSpeed:   0.0009,
		KeyRotateSpeed: 0.0015,
		KeyTiltSpeed:   0.0015,
		KeyZoomSpeed:   0.001,

		TouchMoveSpeed:   0.002,
		TouchRotateSpeed: 1,
		TouchTiltSpeed:   0.01,

		InputSmoothing:   0.02,
		HeightFollowRate: 0.01,
	}
}

// Load reads settings from a YAML file and merges them over the defaults.
// Fields absent from the file (or zero) keep their default values: the merge
// cannot distinguish an explicit zero from a missing field, so zero is not a
// legal override and every tunable's default is non-zero. To effectively
// disable a tunable, set a negligibly small value instead.
//
// Parameters:
//   - path: path to the YAML settings file
//
// Returns:
//   - Settings: the merged settings
//   - error: error if the file cannot be read or parsed
func Load(path string) (Settings, error) {
	defaults := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return defaults, errors.Wrapf(err, "failed to read settings file %q", path)
	}

	var loaded Settings
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return defaults, errors.Wrapf(err, "failed to parse settings file %q", path)
	}

	return merge(loaded, defaults), nil
}

// merge fills every zero field of loaded with the corresponding default.
// Zero therefore always means "use the default", never "set to zero".
func merge(loaded, defaults Settings) Settings {
	return Settings{
		MinDistance:        common.Coalesce(loaded.MinDistance, defaults.MinDistance),
		MaxDistance:        common.Coalesce(loaded.MaxDistance, defaults.MaxDistance),
		EntryMinDistance:   common.Coalesce(loaded.EntryMinDistance, defaults.EntryMinDistance),
		ClampStiffness:     common.Coalesce(loaded.ClampStiffness, defaults.ClampStiffness),
		TransitionDuration: common.Coalesce(loaded.TransitionDuration, defaults.TransitionDuration),

		MouseMoveSpeed:   common.Coalesce(loaded.MouseMoveSpeed, defaults.MouseMoveSpeed),
		MouseRotateSpeed: common.Coalesce(loaded.MouseRotateSpeed, defaults.MouseRotateSpeed),
		MouseTiltSpeed:   common.Coalesce(loaded.MouseTiltSpeed, defaults.MouseTiltSpeed),
		MouseZoomStep:    common.Coalesce(loaded.MouseZoomStep, defaults.MouseZoomStep),

		KeyMoveSpeed:   common.Coalesce(loaded.KeyMoveSpeed, defaults.KeyMoveSpeed),
		KeyRotateSpeed: common.Coalesce(loaded.KeyRotateSpeed, defaults.KeyRotateSpeed),
		KeyTiltSpeed:   common.Coalesce(loaded.KeyTiltSpeed, defaults.KeyTiltSpeed),
		KeyZoomSpeed:   common.Coalesce(loaded.KeyZoomSpeed, defaults.KeyZoomSpeed),

		TouchMoveSpeed:   common.Coalesce(loaded.TouchMoveSpeed, defaults.TouchMoveSpeed),
		TouchRotateSpeed: common.Coalesce(loaded.TouchRotateSpeed, defaults.TouchRotateSpeed),
		TouchTiltSpeed:   common.Coalesce(loaded.TouchTiltSpeed, defaults.TouchTiltSpeed),

		InputSmoothing:   common.Coalesce(loaded.InputSmoothing, defaults.InputSmoothing),
		HeightFollowRate: common.Coalesce(loaded.HeightFollowRate, defaults.HeightFollowRate),
	}
}
