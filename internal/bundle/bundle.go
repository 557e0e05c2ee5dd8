package bundle

import (
	"errors"
	"path"
	"strings"

	"github.com/handiism/assetbatch/internal/model"
)

// ErrUnknownBundle is returned by Resolve for a bundle name with no
// configured root.
var ErrUnknownBundle = errors.New("unknown bundle")

// DecodeSettings controls the kind-specific decode step applied to every
// loaded unit.
type DecodeSettings struct {
	// GenerateThumbnails re-encodes image assets as JPEG thumbnails
	// bounded by ThumbnailMaxSize.
	GenerateThumbnails bool

	// ThumbnailMaxSize is the maximum thumbnail edge length in pixels.
	ThumbnailMaxSize int

	// ExtractAudioTags reads ID3 metadata from audio assets into
	// Asset.Meta.
	ExtractAudioTags bool
}

// kindExtensions lists the file extensions each asset kind matches.
// KindRaw is absent: it matches every regular file.
var kindExtensions = map[model.AssetKind][]string{
	model.KindImage: {".png", ".jpg", ".jpeg", ".gif"},
	model.KindAudio: {".mp3"},
	model.KindText:  {".txt", ".json", ".md"},
}

// matchesKind reports whether a file name belongs to the given asset
// kind.
func matchesKind(kind model.AssetKind, name string) bool {
	exts, ok := kindExtensions[kind]
	if !ok {
		return true // raw and unknown kinds take any file
	}
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
