package bundle

import (
	"sort"
	"strings"

	"github.com/handiism/assetbatch/internal/model"
)

// Manifest describes the contents of a remote bundle.
//
// A remote bundle serves a manifest.json next to its assets:
//
//	{
//	  "bundle": "level-2",
//	  "entries": [
//	    {"path": "sprites/slime.png"},
//	    {"path": "sprites/bat.png"},
//	    {"path": "bgm/cave.mp3"}
//	  ]
//	}
//
// The manifest is fetched once at resolution time; counting and directory
// listing answer from it without further round trips.
type Manifest struct {
	// Bundle is the bundle name the manifest claims to describe.
	Bundle string `json:"bundle"`

	// Entries lists every asset in the bundle by bundle-relative path.
	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry is one asset in a remote bundle.
type ManifestEntry struct {
	// Path is the bundle-relative asset path.
	Path string `json:"path"`
}

// match returns the sorted entry paths a path+kind descriptor selects:
// the exact entry for a file path, or every matching entry under the
// path prefix for a directory path. An empty path selects the whole
// bundle.
func (m *Manifest) match(path string, kind model.AssetKind) []string {
	var out []string
	prefix := strings.TrimSuffix(path, "/")
	for _, e := range m.Entries {
		if e.Path == path {
			out = append(out, e.Path)
			continue
		}
		if prefix != "" && !strings.HasPrefix(e.Path, prefix+"/") {
			continue
		}
		if matchesKind(kind, e.Path) {
			out = append(out, e.Path)
		}
	}
	sort.Strings(out)
	return out
}
