package match

import (
	"context"
	"log/slog"
	"sort"

	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/lyrics"
)

// Match resolves one query against the library. The result is always
// one of: Matched, Ambiguous (offered candidates, user declined), or
// Unmatched. Only a manual choice mutates the selection cache.
func (s *Service) Match(ctx context.Context, q domain.Query) domain.MatchResult {
	var scope []domain.SongRecord

	// 1. Numeric reference: a unique hit wins outright; several songs
	// sharing the number narrow the title tiers to those songs.
	if q.Number != nil {
		byNum := s.lib.ByNumber(*q.Number)
		switch {
		case len(byNum) == 1:
			s.log.DebugContext(ctx, "matched by number",
				slog.String("query", q.Raw),
				slog.String("song_id", byNum[0].ID),
			)
			return domain.Matched(byNum[0], domain.MatchByNumber)
		case len(byNum) > 1:
			scope = byNum
		}
	}
	if scope == nil {
		scope = s.lib.All()
	}

	title := domain.NormalizeText(q.Title)
	if title == "" {
		s.log.DebugContext(ctx, "query has no usable title", slog.String("query", q.Raw))
		return domain.NoMatch()
	}

	// 2. Exact title, or exact opening line for songs indexed by their
	// first words rather than a title.
	var exact []domain.SongRecord
	for _, song := range scope {
		if domain.NormalizeText(song.Title) == title ||
			domain.NormalizeText(lyrics.FirstLine(song.Lyrics)) == title {
			exact = append(exact, song)
		}
	}
	if len(exact) == 1 {
		s.log.DebugContext(ctx, "matched by exact title",
			slog.String("query", q.Raw),
			slog.String("song_id", exact[0].ID),
		)
		return domain.Matched(exact[0], domain.MatchByExactTitle)
	}
	// Several exact hits narrow the field to those songs, like a shared
	// number does above. They all score 1.0 and go to manual choice.
	if len(exact) > 1 {
		scope = exact
	}

	// 3. Fuzzy scoring over titles and opening lines.
	candidates := s.fuzzyCandidates(q, scope)
	switch len(candidates) {
	case 0:
		s.log.DebugContext(ctx, "no candidate above threshold", slog.String("query", q.Raw))
		return domain.NoMatch()
	case 1:
		s.log.DebugContext(ctx, "matched by fuzzy title",
			slog.String("query", q.Raw),
			slog.String("song_id", candidates[0].Song.ID),
			slog.Float64("score", candidates[0].Score),
		)
		return domain.Matched(candidates[0].Song, domain.MatchByFuzzyTitle)
	}

	// 4. Ambiguity: a cached decision first, an interactive one last.
	return s.resolveAmbiguous(ctx, q, candidates)
}

// fuzzyCandidates scores every song in scope against the query title
// and keeps those at or above the floor, best first. Ties keep
// library order; the list is capped for the prompt.
func (s *Service) fuzzyCandidates(q domain.Query, scope []domain.SongRecord) []domain.Candidate {
	var out []domain.Candidate
	for _, song := range scope {
		score := domain.Similarity(q.Title, song.Title)
		if byLine := domain.Similarity(q.Title, lyrics.FirstLine(song.Lyrics)); byLine > score {
			score = byLine
		}
		if score >= s.cfg.MinScore {
			out = append(out, domain.Candidate{Song: song, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > s.cfg.MaxCandidates {
		out = out[:s.cfg.MaxCandidates]
	}
	return out
}

// resolveAmbiguous settles a multi-candidate query. A cached selection
// is reused only while its song still exists; otherwise the chooser
// decides and a confirmed choice is written back to the cache.
func (s *Service) resolveAmbiguous(ctx context.Context, q domain.Query, candidates []domain.Candidate) domain.MatchResult {
	if id, ok := s.sel.Get(q.Raw); ok {
		song, err := s.lib.ByID(id)
		if err == nil {
			s.log.DebugContext(ctx, "reusing cached selection",
				slog.String("query", q.Raw),
				slog.String("song_id", id),
			)
			return domain.Matched(song, domain.MatchByManualChoice)
		}
		s.log.WarnContext(ctx, "cached selection no longer in library",
			slog.String("query", q.Raw),
			slog.String("song_id", id),
		)
	}

	song, ok := s.ask.Choose(q, candidates)
	if !ok {
		s.log.InfoContext(ctx, "ambiguous query left unresolved",
			slog.String("query", q.Raw),
			slog.Int("candidates", len(candidates)),
		)
		return domain.AmbiguousMatch(candidates)
	}

	if err := s.sel.Put(q.Raw, song.ID); err != nil {
		// The match stands even when the cache write does not.
		s.log.WarnContext(ctx, "could not persist selection",
			slog.String("query", q.Raw),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "matched by manual choice",
		slog.String("query", q.Raw),
		slog.String("song_id", song.ID),
	)
	return domain.Matched(song, domain.MatchByManualChoice)
}
