package selection

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cachePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "selected_songs.json")
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	c := Open(cachePath(t), newTestLogger())
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Get("anything"); ok {
		t.Error("Get on empty cache reported a hit")
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := cachePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Open(path, newTestLogger())
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCache_PutThenGet(t *testing.T) {
	t.Parallel()

	c := Open(cachePath(t), newTestLogger())
	if err := c.Put("Amazing Grace (Hymn 999)", "101"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	id, ok := c.Get("Amazing Grace (Hymn 999)")
	if !ok || id != "101" {
		t.Errorf("Get = (%q, %v), want (101, true)", id, ok)
	}

	// Lookups go through normalization, so formatting variants hit too.
	id, ok = c.Get("amazing   grace   hymn 999")
	if !ok || id != "101" {
		t.Errorf("Get normalized variant = (%q, %v), want (101, true)", id, ok)
	}

	if _, ok := c.Get("Some Other Song"); ok {
		t.Error("Get for an unknown query reported a hit")
	}
}

func TestCache_PutPersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := cachePath(t)

	c := Open(path, newTestLogger())
	if err := c.Put("Blessed Assurance", "102"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Put writes through immediately; no explicit flush exists.
	reopened := Open(path, newTestLogger())
	id, ok := reopened.Get("blessed assurance")
	if !ok || id != "102" {
		t.Errorf("Get after reopen = (%q, %v), want (102, true)", id, ok)
	}
	if reopened.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reopened.Len())
	}
}

func TestCache_FileIsNormalizedJSON(t *testing.T) {
	t.Parallel()

	path := cachePath(t)

	c := Open(path, newTestLogger())
	if err := c.Put("What a Friend We Have in Jesus", "104"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cache file: %v", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("cache file is not a JSON object: %v", err)
	}
	if got := entries["what a friend we have in jesus"]; got != "104" {
		t.Errorf("stored under wrong key or value: %v", entries)
	}

	// The temp file must not be left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestCache_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "cache", "selected_songs.json")

	c := Open(path, newTestLogger())
	if err := c.Put("His Loving-Kindness", "7"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("cache file missing: %v", err)
	}
}

func TestCache_UncacheableQueryDropped(t *testing.T) {
	t.Parallel()

	path := cachePath(t)

	c := Open(path, newTestLogger())
	if err := c.Put("!!!", "9"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Get("???"); ok {
		t.Error("punctuation-only queries must not share a cache slot")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("nothing should be written for an uncacheable query")
	}
}

func TestCache_OverwriteUpdatesChoice(t *testing.T) {
	t.Parallel()

	c := Open(cachePath(t), newTestLogger())
	if err := c.Put("Shared Number", "1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("Shared Number", "2"); err != nil {
		t.Fatal(err)
	}

	id, _ := c.Get("Shared Number")
	if id != "2" {
		t.Errorf("Get = %q, want latest choice 2", id)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
