package model

// Asset is one loaded unit handed to the registry sink.
//
// The loader core treats assets as opaque; the fields below are filled in
// by the bundle provider's decode step. Data always holds the raw bytes;
// Meta carries kind-specific attributes such as image dimensions or ID3
// tags.
type Asset struct {
	// Kind is the asset kind the descriptor requested.
	Kind AssetKind

	// Bundle is the container the asset was loaded from.
	Bundle string

	// Path is the bundle-relative path of the individual unit. For
	// directory items this is the path of each contained file, not the
	// directory itself.
	Path string

	// Data holds the raw asset bytes. For image assets with thumbnail
	// generation enabled this is the re-encoded thumbnail.
	Data []byte

	// Meta carries decoder-specific attributes: "width"/"height" for
	// images, ID3 frame values for audio, nothing for raw assets.
	Meta map[string]string
}

// Key returns the registry key for this asset.
func (a Asset) Key() AssetID {
	return AssetID{Kind: a.Kind, Path: a.Path}
}

// AssetID identifies a loaded asset in the registry by kind and path.
type AssetID struct {
	Kind AssetKind
	Path string
}
