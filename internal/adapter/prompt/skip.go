package prompt

import (
	"log/slog"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// AutoSkip declines every choice. It stands in for the terminal when
// no interactive console is attached, turning every ambiguous query
// into a reported skip instead of a hung run.
type AutoSkip struct {
	log *slog.Logger
}

// NewAutoSkip returns a chooser that never selects anything.
func NewAutoSkip(logger *slog.Logger) *AutoSkip {
	return &AutoSkip{log: logger.With("adapter", "prompt")}
}

// Choose skips the query and notes how many candidates went unseen.
func (a *AutoSkip) Choose(query domain.Query, candidates []domain.Candidate) (domain.SongRecord, bool) {
	a.log.Info("ambiguous query skipped in non-interactive mode",
		"query", query.Raw, "candidates", len(candidates))
	return domain.SongRecord{}, false
}
