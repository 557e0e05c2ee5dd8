package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Loading settings
	ResourcesRoot    string            `json:"resources_root"`
	BundleRoots      map[string]string `json:"bundle_roots"`
	MaxParallelLoads int               `json:"max_parallel_loads"`
	LoadMaxRetries   int               `json:"load_max_retries"`
	MaxParallelReads int               `json:"max_parallel_reads"`

	// Image asset settings
	GenerateThumbnails bool `json:"generate_thumbnails"`
	ThumbnailMaxSize   int  `json:"thumbnail_max_size"`

	// Audio asset settings
	ExtractAudioTags bool `json:"extract_audio_tags"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		ResourcesRoot:    filepath.Join(homeDir, "assets", "resources"),
		BundleRoots:      map[string]string{},
		MaxParallelLoads: 5,
		LoadMaxRetries:   3,
		MaxParallelReads: 8,

		GenerateThumbnails: false,
		ThumbnailMaxSize:   512,

		ExtractAudioTags: true,

		LogLevel: "info",
	}
}

// DefaultPath returns the standard location of the settings file.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "assetbatch", "settings.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Roots returns the full bundle-name-to-root mapping, including the
// default "resources" bundle.
func (s *Settings) Roots() map[string]string {
	roots := make(map[string]string, len(s.BundleRoots)+1)
	for name, root := range s.BundleRoots {
		roots[name] = root
	}
	roots["resources"] = s.ResourcesRoot
	return roots
}
