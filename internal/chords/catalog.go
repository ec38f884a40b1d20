package chords

import (
	"math/rand"
	"sort"
)

// Category groups chords by difficulty tier
type Category string

const (
	CategoryBasic Category = "basic" // open major/minor shapes, daily challenge pool
	CategoryBarre Category = "barre"
	CategoryBlues Category = "blues" // dominant 7th shapes
	CategoryPower Category = "power"
)

// FingerPosition is one fretted or open string within a chord shape.
// Strings are named low to high: E, A, D, G, B, e. Muted strings are omitted.
type FingerPosition struct {
	String string `json:"string"`
	Fret   int    `json:"fret"`
}

// Chord is an immutable catalog entry
type Chord struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Category  Category         `json:"category"`
	Positions []FingerPosition `json:"positions"`
	AudioKey  string           `json:"audioKey"`
}

// Frets returns the fret numbers of the chord's positions, in string order
func (c Chord) Frets() []int {
	frets := make([]int, len(c.Positions))
	for i, pos := range c.Positions {
		frets[i] = pos.Fret
	}
	return frets
}

// FrettedIndexes returns the indexes of non-open positions (fret > 0)
func (c Chord) FrettedIndexes() []int {
	var indexes []int
	for i, pos := range c.Positions {
		if pos.Fret > 0 {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Table is the chord lookup table, populated once at startup and never mutated
type Table struct {
	byID     map[string]Chord
	basicIDs []string
}

func newTable(entries []Chord) *Table {
	t := &Table{byID: make(map[string]Chord, len(entries))}
	for _, c := range entries {
		t.byID[c.ID] = c
		if c.Category == CategoryBasic {
			t.basicIDs = append(t.basicIDs, c.ID)
		}
	}
	sort.Strings(t.basicIDs)
	return t
}

// Lookup returns the chord for an ID
func (t *Table) Lookup(id string) (Chord, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// ByCategory returns all chords in a category, sorted by ID
func (t *Table) ByCategory(cat Category) []Chord {
	var out []Chord
	for _, c := range t.byID {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BasicIDs returns the IDs of the daily-challenge pool (open major/minor chords)
func (t *Table) BasicIDs() []string {
	out := make([]string, len(t.basicIDs))
	copy(out, t.basicIDs)
	return out
}

// RandomBasic draws a chord uniformly from the basic pool
func (t *Table) RandomBasic(rng *rand.Rand) Chord {
	id := t.basicIDs[rng.Intn(len(t.basicIDs))]
	return t.byID[id]
}

var defaultTable = newTable(catalogEntries)

// Default returns the built-in chord table
func Default() *Table {
	return defaultTable
}
