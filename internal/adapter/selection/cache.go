// Package selection persists manual song choices between runs so an
// ambiguous query answered once is never asked again.
//
// The cache is a small JSON object mapping normalized query text to
// the chosen song identifier. Opening never fails: a missing or
// unreadable file yields an empty cache, because losing old selections
// must not stop a run. Writes go through a temp file and rename so a
// crash mid-write cannot corrupt previous decisions.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// Cache stores manual selections keyed by normalized query text.
// Safe for use from multiple goroutines.
type Cache struct {
	log  *slog.Logger
	path string

	mu      sync.Mutex
	entries map[string]string
}

// Open loads the cache file at path, or starts empty when the file is
// missing or unreadable.
func Open(path string, logger *slog.Logger) *Cache {
	c := &Cache{
		log:     logger.With("adapter", "selection"),
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		c.log.Debug("no selection cache yet", "path", path)
		return c
	case err != nil:
		c.log.Warn("selection cache unreadable, starting empty", "path", path, "error", err)
		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.log.Warn("selection cache corrupt, starting empty", "path", path, "error", err)
		c.entries = make(map[string]string)
		return c
	}

	c.log.Debug("selection cache loaded", "path", path, "entries", len(c.entries))
	return c
}

// Get looks up the cached choice for a query. The query is normalized
// before the lookup, so any formatting variant of the same line hits.
func (c *Cache) Get(query string) (string, bool) {
	key := domain.NormalizeText(query)
	if key == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.entries[key]
	return id, ok
}

// Put records a choice and writes the cache through to disk so the
// decision survives a crash later in the run. A query that normalizes
// to nothing is not cacheable and is dropped with a log entry.
func (c *Cache) Put(query, songID string) error {
	key := domain.NormalizeText(query)
	if key == "" {
		c.log.Debug("query not cacheable", "query", query)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = songID
	if err := c.save(); err != nil {
		return fmt.Errorf("persist selection: %w", err)
	}

	c.log.Debug("selection cached", "query", key, "song_id", songID, "entries", len(c.entries))
	return nil
}

// Len reports the number of stored selections.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// save writes the entries to disk. Caller must hold mu.
func (c *Cache) save() error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
