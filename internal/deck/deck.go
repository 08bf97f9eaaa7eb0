// Package deck assembles the renderer-facing artifact of a run: the
// matched songs in presentation order, each with its parsed sections,
// plus an alphabetical title index.
package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/lyrics"
)

// Item is one matched song with its sections, in presentation order.
type Item struct {
	Song           domain.SongRecord
	Sections       []domain.Section
	NeedsAttention bool
}

// Deck is the wire format handed to the renderer.
type Deck struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Songs       []Song       `json:"songs"`
	Index       []IndexEntry `json:"index"`
}

// Song mirrors one matched library song. Songs that need attention
// keep an empty section list so the renderer can show a placeholder.
type Song struct {
	ID             string    `json:"id"`
	Number         *int      `json:"number,omitempty"`
	Title          string    `json:"title"`
	NeedsAttention bool      `json:"needs_attention,omitempty"`
	Sections       []Section `json:"sections"`
}

// Section is one slide-sized block of lines. Index is present on
// numbered verses; parts of a split section share it.
type Section struct {
	Kind  string   `json:"kind"`
	Index *int     `json:"index,omitempty"`
	Lines []string `json:"lines"`
}

// IndexEntry points from an alphabetized title to the song's position
// in Songs, zero-based.
type IndexEntry struct {
	Title    string `json:"title"`
	Number   *int   `json:"number,omitempty"`
	Position int    `json:"position"`
}

// Build assembles a deck from items, keeping their order. The index is
// sorted on the case- and diacritic-insensitive form of each title;
// untitled songs are indexed by their opening lyric line.
func Build(items []Item, generatedAt time.Time) *Deck {
	d := &Deck{
		GeneratedAt: generatedAt,
		Songs:       make([]Song, 0, len(items)),
	}

	for _, it := range items {
		s := Song{
			ID:             it.Song.ID,
			Number:         it.Song.Number,
			Title:          it.Song.Title,
			NeedsAttention: it.NeedsAttention,
			Sections:       make([]Section, 0, len(it.Sections)),
		}
		for _, sec := range it.Sections {
			s.Sections = append(s.Sections, Section{
				Kind:  strings.ToLower(sec.Kind.String()),
				Index: sec.Index,
				Lines: sec.Lines,
			})
		}
		d.Songs = append(d.Songs, s)
	}

	d.Index = buildIndex(items)
	return d
}

func buildIndex(items []Item) []IndexEntry {
	type keyed struct {
		entry IndexEntry
		key   string
	}

	ks := make([]keyed, 0, len(items))
	for i, it := range items {
		title := it.Song.Title
		if title == "" {
			title = lyrics.FirstLine(it.Song.Lyrics)
		}
		if title == "" {
			title = "(untitled)"
		}
		ks = append(ks, keyed{
			entry: IndexEntry{Title: title, Number: it.Song.Number, Position: i},
			key:   domain.NormalizeText(title),
		})
	}

	// Stable sort keeps presentation order between identical titles.
	sort.SliceStable(ks, func(a, b int) bool { return ks[a].key < ks[b].key })

	out := make([]IndexEntry, len(ks))
	for i, k := range ks {
		out[i] = k.entry
	}
	return out
}

// WriteJSON writes the deck as indented JSON.
func (d *Deck) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return nil
}

// WriteFile replaces the artifact at path via a temp file and rename,
// so a crash mid-write never leaves a torn deck behind.
func (d *Deck) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace deck: %w", err)
	}
	return nil
}
