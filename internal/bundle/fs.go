package bundle

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/assetbatch/internal/loader"
	"github.com/handiism/assetbatch/internal/model"
)

// DefaultParallelReads is the default number of concurrent file reads
// inside one directory load.
const DefaultParallelReads = 8

// FSProvider serves bundles from local directory roots.
//
// Every bundle name maps to a directory; the default "resources" bundle
// must be present in the mapping. Resolution only checks that the root
// exists, so resolving the default bundle is cheap enough for the
// loader's synchronous initialization path.
type FSProvider struct {
	roots    map[string]string
	parallel int
	decode   DecodeSettings
}

// NewFSProvider creates a provider over the given bundle-name-to-root
// mapping.
func NewFSProvider(roots map[string]string, parallelReads int, decode DecodeSettings) *FSProvider {
	if parallelReads <= 0 {
		parallelReads = DefaultParallelReads
	}
	return &FSProvider{
		roots:    roots,
		parallel: parallelReads,
		decode:   decode,
	}
}

// dirBundle is a resolved filesystem bundle.
type dirBundle struct {
	name string
	root string
}

// Name returns the bundle name.
func (b *dirBundle) Name() string { return b.name }

// Resolve looks up the bundle's root directory and verifies it exists.
func (p *FSProvider) Resolve(ctx context.Context, name string) (loader.Handle, error) {
	root, ok := p.roots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBundle, name)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("bundle %q root: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bundle %q root %s is not a directory", name, root)
	}
	return &dirBundle{name: name, root: root}, nil
}

// Count returns the number of units a descriptor expands to: one for a
// file path, the number of matching files for a directory path, zero for
// a path that does not exist.
func (p *FSProvider) Count(path string, kind model.AssetKind, h loader.Handle) int {
	b, ok := h.(*dirBundle)
	if !ok {
		return 0
	}
	full := filepath.Join(b.root, filepath.FromSlash(path))
	info, err := os.Stat(full)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return 1
	}
	files, err := p.listMatching(b, path, kind)
	if err != nil {
		return 0
	}
	return len(files)
}

// LoadDirectory reads every matching file under path with bounded
// concurrency, reporting a sub-count after each completed file.
func (p *FSProvider) LoadDirectory(ctx context.Context, h loader.Handle, path string, kind model.AssetKind, onProgress func(done, total int)) ([]model.Asset, error) {
	b, ok := h.(*dirBundle)
	if !ok {
		return nil, fmt.Errorf("foreign handle %T", h)
	}

	files, err := p.listMatching(b, path, kind)
	if err != nil {
		return nil, err
	}

	assets := make([]model.Asset, len(files))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallel)

	for i, rel := range files {
		g.Go(func() error {
			asset, err := p.loadOne(ctx, b, rel, kind)
			if err != nil {
				return err
			}
			assets[i] = asset
			if onProgress != nil {
				onProgress(int(done.Add(1)), len(files))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}

// LoadSingle reads one file.
func (p *FSProvider) LoadSingle(ctx context.Context, h loader.Handle, path string, kind model.AssetKind) (model.Asset, error) {
	b, ok := h.(*dirBundle)
	if !ok {
		return model.Asset{}, fmt.Errorf("foreign handle %T", h)
	}
	return p.loadOne(ctx, b, path, kind)
}

// loadOne reads and decodes a single bundle-relative file.
func (p *FSProvider) loadOne(ctx context.Context, b *dirBundle, rel string, kind model.AssetKind) (model.Asset, error) {
	if err := ctx.Err(); err != nil {
		return model.Asset{}, err
	}
	data, err := os.ReadFile(filepath.Join(b.root, filepath.FromSlash(rel)))
	if err != nil {
		return model.Asset{}, fmt.Errorf("read %s:%s: %w", b.name, rel, err)
	}
	return decodeAsset(p.decode, kind, b.name, rel, data)
}

// listMatching walks the directory under path and returns the sorted
// bundle-relative paths of files matching the asset kind.
func (p *FSProvider) listMatching(b *dirBundle, path string, kind model.AssetKind) ([]string, error) {
	dir := filepath.Join(b.root, filepath.FromSlash(path))

	var files []string
	err := filepath.WalkDir(dir, func(full string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesKind(kind, d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(b.root, full)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s:%s: %w", b.name, path, err)
	}

	sort.Strings(files)
	return files, nil
}
