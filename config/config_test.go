package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.yaml")
	data := []byte("maxDistance: 5000\ntransitionDuration: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp settings: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.MaxDistance != 5000 {
		t.Errorf("MaxDistance = %v; expected 5000", s.MaxDistance)
	}
	if s.TransitionDuration != 250 {
		t.Errorf("TransitionDuration = %v; expected 250", s.TransitionDuration)
	}
	// Untouched fields keep defaults.
	if s.MinDistance != Default().MinDistance {
		t.Errorf("MinDistance = %v; expected default %v", s.MinDistance, Default().MinDistance)
	}
	if s.ClampStiffness != Default().ClampStiffness {
		t.Errorf("ClampStiffness = %v; expected default %v", s.ClampStiffness, Default().ClampStiffness)
	}
}

func TestLoadExplicitZeroKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.yaml")
	if err := os.WriteFile(path, []byte("inputSmoothing: 0\n"), 0o644); err != nil {
		t.Fatalf("write temp settings: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	// Zero is indistinguishable from an absent field and falls back to the
	// default rather than disabling the tunable.
	if s.InputSmoothing != Default().InputSmoothing {
		t.Errorf("InputSmoothing = %v; expected default %v", s.InputSmoothing, Default().InputSmoothing)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if s != Default() {
		t.Errorf("missing file did not fall back to defaults")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("maxDistance: [not a number"), 0o644); err != nil {
		t.Fatalf("write temp settings: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
