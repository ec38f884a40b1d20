package audio

import (
	"os"
	"path/filepath"
	"testing"

	"chordcrack/internal/chords"
	"chordcrack/internal/game"
)

func TestAssetKey(t *testing.T) {
	library := NewLibrary("assets")
	chord := chords.Chord{ID: "Em", AudioKey: "e_minor"}

	tests := []struct {
		name string
		kind game.HintKind
		want string
	}{
		{
			name: "full chord",
			kind: game.HintFullChord,
			want: "e_minor_full",
		},
		{
			name: "slow chord",
			kind: game.HintSlowChord,
			want: "e_minor_slow",
		},
		{
			name: "single strings",
			kind: game.HintSingleStrings,
			want: "e_minor_strings",
		},
		{
			name: "jumbled frets replays full strum",
			kind: game.HintJumbledFrets,
			want: "e_minor_full",
		},
		{
			name: "finger reveal replays full strum",
			kind: game.HintFingerReveal,
			want: "e_minor_full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := library.AssetKey(chord, tt.kind); got != tt.want {
				t.Errorf("AssetKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	library := NewLibrary(dir)

	// A real clip resolves
	if err := os.WriteFile(filepath.Join(dir, "e_minor_full.mp3"), []byte("mp3"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := library.Path("e_minor_full"); err != nil {
		t.Errorf("Path() rejected valid key: %v", err)
	}

	tests := []struct {
		name string
		key  string
	}{
		{"empty key", ""},
		{"parent traversal", "../secret"},
		{"slash in key", "sub/clip"},
		{"backslash in key", `sub\clip`},
		{"missing clip", "h_minor_full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := library.Path(tt.key); err == nil {
				t.Errorf("Path(%q) expected error, got nil", tt.key)
			}
		})
	}
}
