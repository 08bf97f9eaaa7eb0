// Package songbase loads the song library from a songbase JSON export
// and serves lookups over it. The export carries a flat song list plus
// per-book maps from song identifiers to hymn numbers; the first book
// is the primary hymnal and supplies the numeric references.
//
// Loading is tolerant: records that cannot be used are skipped, logged
// and counted, never fatal. Only a library with zero usable songs is
// an error.
package songbase

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// SkippedRecord describes a library record the store refused to index.
type SkippedRecord struct {
	Index  int
	Title  string
	Reason string
}

// Store is an in-memory, read-only view of a loaded library.
type Store struct {
	log      *slog.Logger
	songs    []domain.SongRecord
	byID     map[string]int
	byNumber map[int][]int
	skipped  []SkippedRecord
}

// Load reads a library file from disk. See New for the semantics.
func Load(path string, logger *slog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	defer f.Close()

	return New(f, logger)
}

// New decodes a songbase export and indexes it. Malformed records are
// skipped with a warning; the remainder stays usable. New fails only
// when the document itself cannot be decoded or contains no usable
// songs, in which case the error wraps domain.ErrEmptyLibrary.
func New(r io.Reader, logger *slog.Logger) (*Store, error) {
	var file libraryFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}

	s := &Store{
		log:      logger.With("adapter", "songbase"),
		byID:     make(map[string]int),
		byNumber: make(map[int][]int),
	}

	for i, rec := range file.Songs {
		title := strings.TrimSpace(rec.Title)
		if reason := recordProblem(rec, title); reason != "" {
			s.skip(i, title, reason)
			continue
		}

		id := strconv.FormatInt(rec.ID, 10)
		if _, dup := s.byID[id]; dup {
			s.skip(i, title, "duplicate id "+id)
			continue
		}

		s.byID[id] = len(s.songs)
		s.songs = append(s.songs, domain.SongRecord{
			ID:     id,
			Title:  title,
			Lyrics: rec.Lyrics,
		})
	}

	if len(s.songs) == 0 {
		return nil, fmt.Errorf("library has %d records: %w", len(file.Songs), domain.ErrEmptyLibrary)
	}

	if len(file.Books) > 0 {
		s.applyNumbers(file.Books[0])
		if len(file.Books) > 1 {
			s.log.Debug("hymn numbers taken from first book only", "books", len(file.Books))
		}
	}

	s.log.Info("library loaded",
		"songs", len(s.songs),
		"skipped", len(s.skipped),
		"numbered", len(s.byNumber),
	)
	return s, nil
}

// recordProblem reports why a record is unusable, or "" if it is fine.
// A record with neither a title nor lyrics carries nothing to match or
// render, so it is dropped rather than indexed as an empty shell.
func recordProblem(rec fileSong, title string) string {
	if rec.ID <= 0 {
		return "missing id"
	}
	if title == "" && strings.TrimSpace(rec.Lyrics) == "" {
		return "no title and no lyrics"
	}
	return ""
}

func (s *Store) skip(index int, title, reason string) {
	s.skipped = append(s.skipped, SkippedRecord{Index: index, Title: title, Reason: reason})
	s.log.Warn("skipping library record", "index", index, "title", title, "reason", reason)
}

// applyNumbers folds the primary book's hymn numbers into the loaded
// songs. Entries for unknown songs or with non-numeric numbers are
// ignored with a warning. Several songs may share one number; the
// per-number index keeps them in library order.
func (s *Store) applyNumbers(book fileBook) {
	for id, numStr := range book.Songs {
		num, err := strconv.Atoi(strings.TrimSpace(numStr))
		if err != nil || num <= 0 {
			s.log.Warn("ignoring non-numeric hymn number",
				"book", book.Name, "song_id", id, "number", numStr)
			continue
		}

		idx, ok := s.byID[id]
		if !ok {
			s.log.Warn("hymn number references unknown song",
				"book", book.Name, "song_id", id, "number", num)
			continue
		}

		n := num
		s.songs[idx].Number = &n
	}

	for idx := range s.songs {
		if num := s.songs[idx].Number; num != nil {
			s.byNumber[*num] = append(s.byNumber[*num], idx)
		}
	}
}

// ByNumber returns every song whose numeric reference equals num, in
// library order. The slice is empty when the number is unassigned.
func (s *Store) ByNumber(num int) []domain.SongRecord {
	idxs := s.byNumber[num]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]domain.SongRecord, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, s.songs[idx])
	}
	return out
}

// ByID resolves a song identifier. Unknown identifiers yield an error
// wrapping domain.ErrNotFound so callers can treat them as misses.
func (s *Store) ByID(id string) (domain.SongRecord, error) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.SongRecord{}, fmt.Errorf("song id %q: %w", id, domain.ErrNotFound)
	}
	return s.songs[idx], nil
}

// All returns the usable songs in library order. Callers must treat
// the slice as read-only.
func (s *Store) All() []domain.SongRecord {
	return s.songs
}

// Len reports the number of usable songs.
func (s *Store) Len() int {
	return len(s.songs)
}

// Skipped reports the records dropped during loading, in file order.
func (s *Store) Skipped() []SkippedRecord {
	return s.skipped
}
