// Package pipeline drives one preparation run end to end: every
// target query is matched against the song library in list order,
// matched lyrics are parsed into sections on a bounded worker pool,
// and the outcome is aggregated into a Result for the deck builder
// and the run report.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/lyrics"
	"github.com/heartmarshall/songdeck/pkg/ctxutil"
)

// Reasons a target line ends up in the unmatched list.
const (
	// ReasonNoMatch means no library song came close enough.
	ReasonNoMatch = "no_match"
	// ReasonAmbiguousSkipped means several songs matched and no
	// choice was made between them.
	ReasonAmbiguousSkipped = "ambiguous_skipped"
)

type matcher interface {
	Match(ctx context.Context, q domain.Query) domain.MatchResult
}

const (
	defaultMaxSectionLines = lyrics.DefaultMaxLines
	defaultParseWorkers    = 4
)

// Config controls a single run.
type Config struct {
	// MaxSectionLines is the split threshold passed to the lyrics
	// parser. Values below 1 fall back to the parser default.
	MaxSectionLines int
	// ParseWorkers bounds the concurrent parse stage. Values below 1
	// fall back to a small default.
	ParseWorkers int
}

func (c Config) withDefaults() Config {
	if c.MaxSectionLines < 1 {
		c.MaxSectionLines = defaultMaxSectionLines
	}
	if c.ParseWorkers < 1 {
		c.ParseWorkers = defaultParseWorkers
	}
	return c
}

// Entry is one matched target, in target-list order, with its lyrics
// already broken into sections.
type Entry struct {
	// Position is the 1-based position of the query in the target
	// list, shared with UnmatchedQuery so the report can interleave.
	Position int
	Query    domain.Query
	Song     domain.SongRecord
	Kind     domain.MatchKind
	Sections []domain.Section
}

// NeedsAttention reports whether parsing produced no usable sections,
// which means the slides for this song have to be fixed by hand.
func (e Entry) NeedsAttention() bool {
	return len(e.Sections) == 0
}

// UnmatchedQuery is a target line that resolved to no song.
type UnmatchedQuery struct {
	Position int
	Query    string
	Reason   string
}

// Result aggregates a finished run. Entries keeps the target-list
// order; NeedsAttention holds indexes into Entries.
type Result struct {
	RunID          uuid.UUID
	Entries        []Entry
	Unmatched      []UnmatchedQuery
	NeedsAttention []int
	Duration       time.Duration
}

// Pipeline runs the match and parse stages over a target list.
type Pipeline struct {
	log *slog.Logger
	mat matcher
	cfg Config
}

// New creates a pipeline on top of a matcher.
func New(log *slog.Logger, mat matcher, cfg Config) *Pipeline {
	return &Pipeline{
		log: log,
		mat: mat,
		cfg: cfg.withDefaults(),
	}
}

// Run processes the queries in order and returns the aggregated
// result. Individual queries never fail the run; the only error is
// context cancellation, and the partial result is returned with it.
func (p *Pipeline) Run(ctx context.Context, queries []domain.Query) (*Result, error) {
	res := &Result{}
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		res.RunID = id
	} else {
		res.RunID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, res.RunID)
	}

	log := p.log.With(slog.String("run_id", res.RunID.String()))
	start := time.Now()
	log.Info("run started", slog.Int("targets", len(queries)))

	// 1. Match every target sequentially. Matching may prompt the
	// operator, so at most one query is in flight at a time.
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		m := p.mat.Match(ctx, q)
		switch m.Status {
		case domain.MatchStatusMatched:
			res.Entries = append(res.Entries, Entry{
				Position: i + 1,
				Query:    q,
				Song:     *m.Song,
				Kind:     m.Kind,
			})
		case domain.MatchStatusAmbiguous:
			res.Unmatched = append(res.Unmatched, UnmatchedQuery{
				Position: i + 1,
				Query:    q.Raw,
				Reason:   ReasonAmbiguousSkipped,
			})
		default:
			res.Unmatched = append(res.Unmatched, UnmatchedQuery{
				Position: i + 1,
				Query:    q.Raw,
				Reason:   ReasonNoMatch,
			})
		}
	}

	// 2. Parse matched lyrics concurrently. Every worker owns exactly
	// one entry slot, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.ParseWorkers)
	for i := range res.Entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			e := &res.Entries[i]
			parsed := lyrics.Parse(e.Song.Lyrics, p.cfg.MaxSectionLines)
			e.Sections = parsed.Sections
			for _, w := range parsed.Warnings {
				log.Warn("lyrics need review",
					slog.String("song_id", e.Song.ID),
					slog.String("title", e.Song.Title),
					slog.String("detail", w),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	// 3. Flag matched songs whose lyrics produced nothing. They stay
	// in the deck so the operator sees them next to their neighbors.
	for i, e := range res.Entries {
		if e.NeedsAttention() {
			res.NeedsAttention = append(res.NeedsAttention, i)
			log.Warn("no sections parsed",
				slog.String("song_id", e.Song.ID),
				slog.String("title", e.Song.Title),
			)
		}
	}

	res.Duration = time.Since(start)
	log.Info("run finished",
		slog.Int("matched", len(res.Entries)),
		slog.Int("unmatched", len(res.Unmatched)),
		slog.Int("needs_attention", len(res.NeedsAttention)),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
