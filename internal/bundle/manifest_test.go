package bundle

import (
	"testing"

	"github.com/handiism/assetbatch/internal/model"
)

func TestManifest_Match(t *testing.T) {
	m := &Manifest{
		Bundle: "level-2",
		Entries: []ManifestEntry{
			{Path: "sprites/slime.png"},
			{Path: "sprites/bat.png"},
			{Path: "sprites/readme.txt"},
			{Path: "bgm/cave.mp3"},
		},
	}

	tests := []struct {
		name string
		path string
		kind model.AssetKind
		want []string
	}{
		{
			name: "images under sprites",
			path: "sprites",
			kind: model.KindImage,
			want: []string{"sprites/bat.png", "sprites/slime.png"},
		},
		{
			name: "exact file",
			path: "bgm/cave.mp3",
			kind: model.KindAudio,
			want: []string{"bgm/cave.mp3"},
		},
		{
			name: "empty path selects whole bundle",
			path: "",
			kind: model.KindImage,
			want: []string{"sprites/bat.png", "sprites/slime.png"},
		},
		{
			name: "no matches",
			path: "sprites",
			kind: model.KindAudio,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.match(tt.path, tt.kind)
			if len(got) != len(tt.want) {
				t.Fatalf("match(%q, %q) = %v, want %v", tt.path, tt.kind, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchesKind(t *testing.T) {
	tests := []struct {
		kind model.AssetKind
		name string
		want bool
	}{
		{model.KindImage, "slime.png", true},
		{model.KindImage, "slime.PNG", true},
		{model.KindImage, "cave.mp3", false},
		{model.KindAudio, "cave.mp3", true},
		{model.KindText, "items.json", true},
		{model.KindRaw, "anything.bin", true},
	}

	for _, tt := range tests {
		if got := matchesKind(tt.kind, tt.name); got != tt.want {
			t.Errorf("matchesKind(%q, %q) = %v, want %v", tt.kind, tt.name, got, tt.want)
		}
	}
}
