package model

import "testing"

func TestDescriptor_Normalized(t *testing.T) {
	tests := []struct {
		name       string
		in         AssetDescriptor
		wantBundle string
		wantIsFile bool
	}{
		{
			name:       "empty bundle gets default",
			in:         AssetDescriptor{Kind: KindImage, Path: "sprites"},
			wantBundle: DefaultBundle,
			wantIsFile: false,
		},
		{
			name:       "explicit bundle preserved",
			in:         AssetDescriptor{Kind: KindAudio, Path: "bgm/title.mp3", IsFile: true, Bundle: "music"},
			wantBundle: "music",
			wantIsFile: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Bundle != tt.wantBundle {
				t.Errorf("Bundle = %q, want %q", got.Bundle, tt.wantBundle)
			}
			if got.IsFile != tt.wantIsFile {
				t.Errorf("IsFile = %v, want %v", got.IsFile, tt.wantIsFile)
			}
		})
	}
}

func TestItemKey_NoSeparatorAmbiguity(t *testing.T) {
	// "a:b"+"c" and "a"+"b:c" must be distinct keys even though their
	// string forms collide.
	k1 := ItemKey{Bundle: "a:b", Path: "c"}
	k2 := ItemKey{Bundle: "a", Path: "b:c"}

	if k1 == k2 {
		t.Error("distinct composite keys compare equal")
	}
	if k1.String() != k2.String() {
		t.Logf("string forms differ: %q vs %q", k1, k2)
	}
}

func TestItemKey_KindDistinguishesSamePath(t *testing.T) {
	k1 := ItemKey{Bundle: "resources", Path: "shared", Kind: KindText}
	k2 := ItemKey{Bundle: "resources", Path: "shared", Kind: KindRaw}

	if k1 == k2 {
		t.Error("keys with different kinds compare equal")
	}
}

func TestNewLoadItem(t *testing.T) {
	d := AssetDescriptor{Kind: KindText, Path: "dialog", Bundle: "level-1"}
	item := NewLoadItem(d, 7)

	if item.Status != StatusWait {
		t.Errorf("Status = %v, want %v", item.Status, StatusWait)
	}
	if item.Expected != 7 {
		t.Errorf("Expected = %d, want 7", item.Expected)
	}
	if item.Key() != (ItemKey{Bundle: "level-1", Path: "dialog", Kind: KindText}) {
		t.Errorf("Key() = %v", item.Key())
	}
}

func TestItemStatus_String(t *testing.T) {
	tests := []struct {
		status ItemStatus
		want   string
	}{
		{StatusWait, "wait"},
		{StatusLoading, "loading"},
		{StatusFinish, "finish"},
		{StatusError, "error"},
		{ItemStatus(42), "status(42)"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
