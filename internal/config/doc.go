// Package config provides configuration management for assetbatch.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - The bundle-name-to-root mapping consumed by the bundle providers
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// resources bundle under ~/assets/resources
//	// 5 parallel loads, 3 retries per batch
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.BundleRoots["level-1"] = "/assets/bundles/level-1"
//	err := settings.Save("/path/to/config.json")
//
// # Bundle Roots
//
// BundleRoots maps named bundles to either a local directory or an HTTP
// base URL. The default "resources" bundle always maps to ResourcesRoot
// and must be a local directory so it can be resolved synchronously.
package config
