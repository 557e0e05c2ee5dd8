package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/handiism/assetbatch/internal/loader"
	"github.com/handiism/assetbatch/internal/model"
)

// Store is an in-memory asset registry and the loader's sink.
//
// Assets are indexed by (kind, path) and additionally grouped by batch
// tag, so a caller can retrieve one asset or everything a batch loaded.
// All methods are safe for concurrent use.
//
// Example usage:
//
//	store := registry.NewStore()
//	ldr := loader.New(source, store, log)
//	// ... run a batch with Tag "level-2" ...
//
//	sprite, ok := store.Get(model.KindImage, "sprites/slime.png")
//	all := store.ByTag("level-2")
type Store struct {
	mu     sync.RWMutex
	assets map[model.AssetID]model.Asset
	byTag  map[string][]model.AssetID
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		assets: make(map[model.AssetID]model.Asset),
		byTag:  make(map[string][]model.AssetID),
	}
}

// RegisterLoaded stores a finished item's assets under the batch tag.
// Re-registering a key overwrites the previous asset; the tag index only
// records keys new to that tag.
func (s *Store) RegisterLoaded(assets []model.Asset, h loader.Handle, batchTag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range assets {
		key := a.Key()
		if _, exists := s.assets[key]; !exists {
			s.byTag[batchTag] = append(s.byTag[batchTag], key)
		}
		s.assets[key] = a
	}
}

// Get returns the asset stored under (kind, path).
func (s *Store) Get(kind model.AssetKind, path string) (model.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assets[model.AssetID{Kind: kind, Path: path}]
	return a, ok
}

// ByPrefix returns every asset of the given kind whose path equals the
// prefix or sits below it, sorted by path. An empty prefix matches the
// whole kind.
func (s *Store) ByPrefix(kind model.AssetKind, prefix string) []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Asset
	for id, a := range s.assets {
		if id.Kind != kind {
			continue
		}
		if prefix != "" && id.Path != prefix && !strings.HasPrefix(id.Path, prefix+"/") {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ByTag returns every asset a batch registered, in registration order.
func (s *Store) ByTag(tag string) []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.byTag[tag]
	out := make([]model.Asset, 0, len(keys))
	for _, key := range keys {
		if a, ok := s.assets[key]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of stored assets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}
