// Package match resolves target-list queries to library songs.
//
// Matching runs in tiers, first success wins: unique hymn number,
// exact title or opening line, fuzzy title, and finally a cached or
// interactive manual choice. Matching never fails; every outcome is
// expressed in the returned MatchResult.
package match

import (
	"log/slog"

	"github.com/heartmarshall/songdeck/internal/domain"
)

type library interface {
	ByNumber(num int) []domain.SongRecord
	ByID(id string) (domain.SongRecord, error)
	All() []domain.SongRecord
}

type selections interface {
	Get(query string) (string, bool)
	Put(query, songID string) error
}

type chooser interface {
	Choose(query domain.Query, candidates []domain.Candidate) (domain.SongRecord, bool)
}

// Config tunes the fuzzy tier.
type Config struct {
	// MinScore is the similarity floor for fuzzy candidates, on a 0-1
	// scale. Zero means the default of 0.8.
	MinScore float64
	// MaxCandidates caps the list offered for manual choice. Zero
	// means the default of 10.
	MaxCandidates int
}

const (
	defaultMinScore      = 0.8
	defaultMaxCandidates = 10
)

// withDefaults fills unset or out-of-range fields.
func (c Config) withDefaults() Config {
	if c.MinScore <= 0 || c.MinScore > 1 {
		c.MinScore = defaultMinScore
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = defaultMaxCandidates
	}
	return c
}

// Service implements the tiered song matcher.
type Service struct {
	log *slog.Logger
	lib library
	sel selections
	ask chooser
	cfg Config
}

// NewService creates a new match service.
func NewService(logger *slog.Logger, lib library, sel selections, ask chooser, cfg Config) *Service {
	return &Service{
		log: logger.With("service", "match"),
		lib: lib,
		sel: sel,
		ask: ask,
		cfg: cfg.withDefaults(),
	}
}
