package bundle

import (
	"context"
	"fmt"
	"strings"

	"github.com/handiism/assetbatch/internal/loader"
	"github.com/handiism/assetbatch/internal/model"
)

// Mux routes bundle operations to the filesystem or HTTP provider based
// on each bundle's configured root: roots starting with http:// or
// https:// are remote, everything else is a local directory.
type Mux struct {
	fs     *FSProvider
	http   *HTTPProvider
	remote map[string]bool
}

// NewProvider builds a Source over a mixed mapping of directory roots and
// base URLs, as read from the settings file.
func NewProvider(roots map[string]string, parallelReads int, decode DecodeSettings) *Mux {
	dirs := map[string]string{}
	urls := map[string]string{}
	remote := map[string]bool{}

	for name, root := range roots {
		if strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://") {
			urls[name] = root
			remote[name] = true
		} else {
			dirs[name] = root
		}
	}

	return &Mux{
		fs:     NewFSProvider(dirs, parallelReads, decode),
		http:   NewHTTPProvider(urls, parallelReads, decode),
		remote: remote,
	}
}

// Resolve routes by bundle name.
func (m *Mux) Resolve(ctx context.Context, name string) (loader.Handle, error) {
	if m.remote[name] {
		return m.http.Resolve(ctx, name)
	}
	return m.fs.Resolve(ctx, name)
}

// Count routes by handle origin.
func (m *Mux) Count(path string, kind model.AssetKind, h loader.Handle) int {
	if _, ok := h.(*urlBundle); ok {
		return m.http.Count(path, kind, h)
	}
	return m.fs.Count(path, kind, h)
}

// LoadDirectory routes by handle origin.
func (m *Mux) LoadDirectory(ctx context.Context, h loader.Handle, path string, kind model.AssetKind, onProgress func(done, total int)) ([]model.Asset, error) {
	switch h.(type) {
	case *urlBundle:
		return m.http.LoadDirectory(ctx, h, path, kind, onProgress)
	case *dirBundle:
		return m.fs.LoadDirectory(ctx, h, path, kind, onProgress)
	}
	return nil, fmt.Errorf("foreign handle %T", h)
}

// LoadSingle routes by handle origin.
func (m *Mux) LoadSingle(ctx context.Context, h loader.Handle, path string, kind model.AssetKind) (model.Asset, error) {
	switch h.(type) {
	case *urlBundle:
		return m.http.LoadSingle(ctx, h, path, kind)
	case *dirBundle:
		return m.fs.LoadSingle(ctx, h, path, kind)
	}
	return model.Asset{}, fmt.Errorf("foreign handle %T", h)
}
