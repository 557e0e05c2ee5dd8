package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.MaxParallelLoads != 5 {
		t.Errorf("MaxParallelLoads = %d, want 5", s.MaxParallelLoads)
	}
	if s.LoadMaxRetries != 3 {
		t.Errorf("LoadMaxRetries = %d, want 3", s.LoadMaxRetries)
	}
	if s.ResourcesRoot == "" {
		t.Error("ResourcesRoot should not be empty")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MaxParallelLoads != DefaultSettings().MaxParallelLoads {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	s := DefaultSettings()
	s.MaxParallelLoads = 2
	s.BundleRoots = map[string]string{"level-1": "/assets/level-1"}

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.MaxParallelLoads != 2 {
		t.Errorf("MaxParallelLoads = %d, want 2", loaded.MaxParallelLoads)
	}
	if loaded.BundleRoots["level-1"] != "/assets/level-1" {
		t.Errorf("BundleRoots = %v", loaded.BundleRoots)
	}
}

func TestRoots_IncludesDefaultBundle(t *testing.T) {
	s := DefaultSettings()
	s.ResourcesRoot = "/assets/resources"
	s.BundleRoots = map[string]string{"music": "/assets/music"}

	roots := s.Roots()
	if roots["resources"] != "/assets/resources" {
		t.Errorf(`roots["resources"] = %q`, roots["resources"])
	}
	if roots["music"] != "/assets/music" {
		t.Errorf(`roots["music"] = %q`, roots["music"])
	}
}
