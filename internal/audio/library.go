package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"chordcrack/internal/chords"
	"chordcrack/internal/game"
)

// Library resolves chord hint tiers to pre-recorded audio clips on disk.
// Clips are studio recordings shipped with the app: a full strum, a slow
// arpeggiated take and a per-string take for every chord in the catalog.
type Library struct {
	assetsDir string
}

// NewLibrary creates a library over the given assets directory
func NewLibrary(assetsDir string) *Library {
	return &Library{assetsDir: assetsDir}
}

// AssetKey returns the clip key for a chord at a hint tier. The jumbled-fret
// and finger-reveal tiers are visual hints, so they replay the full strum.
func (l *Library) AssetKey(chord chords.Chord, kind game.HintKind) string {
	switch kind {
	case game.HintSlowChord:
		return chord.AudioKey + "_slow"
	case game.HintSingleStrings:
		return chord.AudioKey + "_strings"
	default:
		return chord.AudioKey + "_full"
	}
}

// Path returns the on-disk path for an asset key, rejecting keys that would
// escape the assets directory.
func (l *Library) Path(assetKey string) (string, error) {
	if assetKey == "" || strings.ContainsAny(assetKey, "/\\") || strings.Contains(assetKey, "..") {
		return "", fmt.Errorf("invalid asset key: %q", assetKey)
	}

	path := filepath.Join(l.assetsDir, assetKey+".mp3")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("asset %s not found: %w", assetKey, err)
	}
	return path, nil
}

// VerifyAssets checks at startup that every catalog chord has its three clip
// variants, logging any gaps. Missing clips are a packaging problem, not a
// runtime failure.
func (l *Library) VerifyAssets(table *chords.Table) {
	kinds := []game.HintKind{game.HintFullChord, game.HintSlowChord, game.HintSingleStrings}

	missing := 0
	for _, cat := range []chords.Category{chords.CategoryBasic, chords.CategoryBarre, chords.CategoryBlues, chords.CategoryPower} {
		for _, chord := range table.ByCategory(cat) {
			for _, kind := range kinds {
				key := l.AssetKey(chord, kind)
				if _, err := l.Path(key); err != nil {
					log.Printf("Warning: missing audio clip %s.mp3", key)
					missing++
				}
			}
		}
	}

	if missing == 0 {
		log.Println("All chord audio clips present")
	}
}
