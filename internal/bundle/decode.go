package bundle

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"strconv"

	"github.com/bogem/id3v2"
	"golang.org/x/image/draw"

	"github.com/handiism/assetbatch/internal/model"
)

// decodeAsset turns raw file bytes into an Asset according to the
// requested kind. Text and raw assets pass through untouched.
func decodeAsset(cfg DecodeSettings, kind model.AssetKind, bundleName, assetPath string, data []byte) (model.Asset, error) {
	asset := model.Asset{
		Kind:   kind,
		Bundle: bundleName,
		Path:   assetPath,
		Data:   data,
	}

	switch kind {
	case model.KindImage:
		return decodeImage(cfg, asset)
	case model.KindAudio:
		return decodeAudio(cfg, asset)
	}
	return asset, nil
}

// decodeImage validates the image, records its dimensions and optionally
// replaces the payload with a bounded JPEG thumbnail.
func decodeImage(cfg DecodeSettings, asset model.Asset) (model.Asset, error) {
	img, format, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return model.Asset{}, fmt.Errorf("decode image %s: %w", asset.Path, err)
	}

	bounds := img.Bounds()
	asset.Meta = map[string]string{
		"format": format,
		"width":  strconv.Itoa(bounds.Dx()),
		"height": strconv.Itoa(bounds.Dy()),
	}

	if !cfg.GenerateThumbnails || cfg.ThumbnailMaxSize <= 0 {
		return asset, nil
	}
	if bounds.Dx() <= cfg.ThumbnailMaxSize && bounds.Dy() <= cfg.ThumbnailMaxSize {
		return asset, nil
	}

	// Scale to fit the bounding square, maintaining aspect ratio.
	width := bounds.Dx()
	height := bounds.Dy()
	if width > height {
		height = height * cfg.ThumbnailMaxSize / width
		width = cfg.ThumbnailMaxSize
	} else {
		width = width * cfg.ThumbnailMaxSize / height
		height = cfg.ThumbnailMaxSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// Catmull-Rom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return model.Asset{}, fmt.Errorf("encode thumbnail %s: %w", asset.Path, err)
	}

	asset.Data = buf.Bytes()
	asset.Meta["thumbnail"] = "true"
	asset.Meta["width"] = strconv.Itoa(width)
	asset.Meta["height"] = strconv.Itoa(height)
	return asset, nil
}

// decodeAudio extracts ID3 metadata into Asset.Meta. Files without a tag
// are not an error; they simply carry no metadata.
func decodeAudio(cfg DecodeSettings, asset model.Asset) (model.Asset, error) {
	if !cfg.ExtractAudioTags {
		return asset, nil
	}

	tag, err := id3v2.ParseReader(bytes.NewReader(asset.Data), id3v2.Options{Parse: true})
	if err != nil {
		return model.Asset{}, fmt.Errorf("parse ID3 tag %s: %w", asset.Path, err)
	}
	defer tag.Close()

	if !tag.HasFrames() {
		return asset, nil
	}

	meta := map[string]string{}
	for key, value := range map[string]string{
		"title":  tag.Title(),
		"artist": tag.Artist(),
		"album":  tag.Album(),
		"year":   tag.Year(),
		"genre":  tag.Genre(),
	} {
		if value != "" {
			meta[key] = value
		}
	}
	if len(meta) > 0 {
		asset.Meta = meta
	}
	return asset, nil
}
