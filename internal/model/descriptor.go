package model

// DefaultBundle is the name of the default resource container.
//
// Descriptors that do not name a bundle are assigned to this container.
// The default bundle is special: providers must be able to resolve it
// synchronously, without network or index lookups, so the loader can count
// its descriptors immediately during initialization.
const DefaultBundle = "resources"

// AssetKind tags the kind of asset a descriptor refers to.
//
// The kind is opaque to the loader core; it is passed through to the
// bundle provider, which uses it to select file extensions and decoders.
type AssetKind string

// Asset kinds understood by the built-in bundle providers.
const (
	// KindImage is a decodable raster image (png, jpeg, gif).
	KindImage AssetKind = "image"

	// KindAudio is an audio file whose ID3 metadata is extracted on load.
	KindAudio AssetKind = "audio"

	// KindText is a UTF-8 text or JSON document.
	KindText AssetKind = "text"

	// KindRaw is an uninterpreted byte blob; any extension matches.
	KindRaw AssetKind = "raw"
)

// AssetDescriptor specifies one resource group to load.
//
// A descriptor names either a single file (IsFile true) or a directory of
// files (IsFile false, the default) inside a bundle. Descriptors are
// immutable inputs; the loader derives one LoadItem per descriptor and
// never mutates the descriptor itself.
//
// Example manifest entry:
//
//	{"kind": "image", "path": "sprites/enemies", "bundle": "level-2"}
//
// A descriptor with an empty Bundle belongs to the default "resources"
// container; an absent IsFile means directory.
type AssetDescriptor struct {
	// Kind is the asset kind tag, passed through to the provider.
	Kind AssetKind `json:"kind"`

	// Path is the bundle-relative path of the file or directory.
	Path string `json:"path"`

	// IsFile marks the descriptor as a single file rather than a
	// directory of files. Defaults to false (directory).
	IsFile bool `json:"is_file,omitempty"`

	// Bundle is the name of the container holding the path.
	// Defaults to DefaultBundle when empty.
	Bundle string `json:"bundle,omitempty"`
}

// Normalized returns a copy of the descriptor with defaults applied.
//
// Currently the only implicit default is the bundle name: an empty Bundle
// becomes DefaultBundle. IsFile already defaults to false through the Go
// zero value, which matches the documented default.
func (d AssetDescriptor) Normalized() AssetDescriptor {
	if d.Bundle == "" {
		d.Bundle = DefaultBundle
	}
	return d
}

// Key returns the identity key of the item this descriptor derives.
func (d AssetDescriptor) Key() ItemKey {
	return ItemKey{Bundle: d.Bundle, Path: d.Path, Kind: d.Kind}
}
