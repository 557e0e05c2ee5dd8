// Package http provides an HTTP client configured for remote bundle
// access.
//
// The Client in this package handles:
//   - User-Agent headers
//   - JSON manifest fetching
//   - In-memory asset downloads
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a bundle manifest
//	var m bundle.Manifest
//	err := client.GetJSON(ctx, "https://cdn.example.com/level-1/manifest.json", &m)
//
//	// Download one asset into memory
//	data, err := client.Get(ctx, assetURL)
package http
