package bundle

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/handiism/assetbatch/internal/model"
)

// writeFixture creates a resources root with a few text and raw files.
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"dialog/intro.txt":  "hello",
		"dialog/outro.txt":  "bye",
		"dialog/notes.md":   "n",
		"dialog/skip.dat":   "x",
		"tables/items.json": "{}",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func newTestProvider(t *testing.T, root string) *FSProvider {
	t.Helper()
	return NewFSProvider(map[string]string{"resources": root}, 2, DecodeSettings{})
}

func TestFSProvider_Resolve(t *testing.T) {
	root := writeFixture(t)
	p := newTestProvider(t, root)

	h, err := p.Resolve(context.Background(), "resources")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if h.Name() != "resources" {
		t.Errorf("Name() = %q, want %q", h.Name(), "resources")
	}

	if _, err := p.Resolve(context.Background(), "missing"); err == nil {
		t.Error("Resolve of unconfigured bundle should fail")
	}
}

func TestFSProvider_Count(t *testing.T) {
	root := writeFixture(t)
	p := newTestProvider(t, root)
	h, _ := p.Resolve(context.Background(), "resources")

	tests := []struct {
		name string
		path string
		kind model.AssetKind
		want int
	}{
		{"text files in dialog", "dialog", model.KindText, 3},
		{"raw takes everything", "dialog", model.KindRaw, 4},
		{"single file", "tables/items.json", model.KindText, 1},
		{"missing path", "nope", model.KindText, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Count(tt.path, tt.kind, h); got != tt.want {
				t.Errorf("Count(%q, %q) = %d, want %d", tt.path, tt.kind, got, tt.want)
			}
		})
	}
}

func TestFSProvider_LoadDirectory(t *testing.T) {
	root := writeFixture(t)
	p := newTestProvider(t, root)
	h, _ := p.Resolve(context.Background(), "resources")

	var mu sync.Mutex
	var reports []int
	assets, err := p.LoadDirectory(context.Background(), h, "dialog", model.KindText, func(done, total int) {
		mu.Lock()
		reports = append(reports, done)
		mu.Unlock()
		if total != 3 {
			t.Errorf("progress total = %d, want 3", total)
		}
	})
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}

	if len(assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(assets))
	}
	// Sorted bundle-relative paths.
	if assets[0].Path != "dialog/intro.txt" {
		t.Errorf("assets[0].Path = %q", assets[0].Path)
	}
	if assets[0].Bundle != "resources" {
		t.Errorf("assets[0].Bundle = %q", assets[0].Bundle)
	}
	if len(reports) != 3 {
		t.Errorf("got %d progress reports, want 3", len(reports))
	}
}

func TestFSProvider_LoadSingle(t *testing.T) {
	root := writeFixture(t)
	p := newTestProvider(t, root)
	h, _ := p.Resolve(context.Background(), "resources")

	asset, err := p.LoadSingle(context.Background(), h, "dialog/intro.txt", model.KindText)
	if err != nil {
		t.Fatalf("LoadSingle() error = %v", err)
	}
	if string(asset.Data) != "hello" {
		t.Errorf("Data = %q, want %q", asset.Data, "hello")
	}

	if _, err := p.LoadSingle(context.Background(), h, "dialog/missing.txt", model.KindText); err == nil {
		t.Error("LoadSingle of missing file should fail")
	}
}
