package registry

import (
	"testing"

	"github.com/handiism/assetbatch/internal/model"
)

func asset(kind model.AssetKind, path, data string) model.Asset {
	return model.Asset{Kind: kind, Bundle: "resources", Path: path, Data: []byte(data)}
}

func TestStore_RegisterAndGet(t *testing.T) {
	s := NewStore()
	s.RegisterLoaded([]model.Asset{
		asset(model.KindText, "dialog/intro.txt", "hello"),
		asset(model.KindText, "dialog/outro.txt", "bye"),
	}, nil, "batch-1")

	got, ok := s.Get(model.KindText, "dialog/intro.txt")
	if !ok {
		t.Fatal("Get() returned ok = false")
	}
	if string(got.Data) != "hello" {
		t.Errorf("Data = %q, want %q", got.Data, "hello")
	}

	if _, ok := s.Get(model.KindImage, "dialog/intro.txt"); ok {
		t.Error("kind is part of the key; lookup under wrong kind should miss")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStore_ByTag(t *testing.T) {
	s := NewStore()
	s.RegisterLoaded([]model.Asset{asset(model.KindText, "a.txt", "a")}, nil, "first")
	s.RegisterLoaded([]model.Asset{asset(model.KindText, "b.txt", "b")}, nil, "second")
	s.RegisterLoaded([]model.Asset{asset(model.KindText, "c.txt", "c")}, nil, "second")

	if got := len(s.ByTag("second")); got != 2 {
		t.Errorf("ByTag(second) returned %d assets, want 2", got)
	}
	if got := len(s.ByTag("missing")); got != 0 {
		t.Errorf("ByTag(missing) returned %d assets, want 0", got)
	}
}

func TestStore_OverwriteKeepsSingleTagEntry(t *testing.T) {
	s := NewStore()
	s.RegisterLoaded([]model.Asset{asset(model.KindText, "a.txt", "v1")}, nil, "t")
	s.RegisterLoaded([]model.Asset{asset(model.KindText, "a.txt", "v2")}, nil, "t")

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	got, _ := s.Get(model.KindText, "a.txt")
	if string(got.Data) != "v2" {
		t.Errorf("Data = %q, want %q", got.Data, "v2")
	}
	if got := len(s.ByTag("t")); got != 1 {
		t.Errorf("ByTag(t) returned %d entries, want 1", got)
	}
}

func TestStore_ByPrefix(t *testing.T) {
	s := NewStore()
	s.RegisterLoaded([]model.Asset{
		asset(model.KindText, "dialog/intro.txt", "a"),
		asset(model.KindText, "dialog/outro.txt", "b"),
		asset(model.KindText, "dialogue.txt", "c"),
		asset(model.KindImage, "dialog/portrait.png", "d"),
	}, nil, "t")

	got := s.ByPrefix(model.KindText, "dialog")
	if len(got) != 2 {
		t.Fatalf("ByPrefix(dialog) returned %d assets, want 2", len(got))
	}
	if got[0].Path != "dialog/intro.txt" || got[1].Path != "dialog/outro.txt" {
		t.Errorf("ByPrefix not sorted by path: %q, %q", got[0].Path, got[1].Path)
	}

	if got := s.ByPrefix(model.KindText, "dialog/intro.txt"); len(got) != 1 {
		t.Errorf("exact-path prefix returned %d assets, want 1", len(got))
	}
	if got := s.ByPrefix(model.KindText, ""); len(got) != 3 {
		t.Errorf("empty prefix returned %d text assets, want 3", len(got))
	}
}
