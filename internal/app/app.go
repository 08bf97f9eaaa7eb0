package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/songdeck/internal/adapter/prompt"
	"github.com/heartmarshall/songdeck/internal/adapter/selection"
	"github.com/heartmarshall/songdeck/internal/adapter/songbase"
	"github.com/heartmarshall/songdeck/internal/app/pipeline"
	"github.com/heartmarshall/songdeck/internal/config"
	"github.com/heartmarshall/songdeck/internal/deck"
	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/service/match"
	"github.com/heartmarshall/songdeck/internal/target"
)

// Options carries command-line overrides applied on top of the loaded
// configuration. Empty fields leave the configured value in place.
type Options struct {
	ConfigPath     string
	TargetsPath    string
	LibraryPath    string
	CachePath      string
	OutputPath     string
	NonInteractive bool
}

type chooser interface {
	Choose(query domain.Query, candidates []domain.Candidate) (domain.SongRecord, bool)
}

// Run is the application entry point. It loads configuration,
// initializes the logger, builds the library store, selection cache,
// matcher and pipeline, processes the target list, writes the deck
// artifact and prints the run report to stdout.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	logger := NewLogger(cfg.Log)

	logger.Info("starting songdeck",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if opts.TargetsPath == "" {
		return domain.NewValidationError("targets", "required")
	}
	lines, err := target.ReadFile(opts.TargetsPath)
	if err != nil {
		return err
	}
	queries := make([]domain.Query, len(lines))
	for i, line := range lines {
		queries[i] = target.Parse(line)
	}

	lib, err := songbase.Load(cfg.Library.Path, logger)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	cache := selection.Open(cfg.Cache.Path, logger)

	var ask chooser
	if cfg.Pipeline.NonInteractive {
		ask = prompt.NewAutoSkip(logger)
	} else {
		ask = prompt.NewTerminal(os.Stdin, os.Stdout, logger)
	}

	svc := match.NewService(logger, lib, cache, ask, match.Config{
		MinScore:      cfg.Matcher.MinScore,
		MaxCandidates: cfg.Matcher.MaxCandidates,
	})

	p := pipeline.New(logger, svc, pipeline.Config{
		MaxSectionLines: cfg.Parser.MaxSectionLines,
		ParseWorkers:    cfg.Pipeline.ParseWorkers,
	})

	res, err := p.Run(ctx, queries)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	items := make([]deck.Item, 0, len(res.Entries))
	for _, e := range res.Entries {
		items = append(items, deck.Item{
			Song:           e.Song,
			Sections:       e.Sections,
			NeedsAttention: e.NeedsAttention(),
		})
	}
	d := deck.Build(items, time.Now())
	if err := d.WriteFile(cfg.Output.Path); err != nil {
		return err
	}

	if err := pipeline.WriteReport(os.Stdout, res, lib.Skipped()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("songdeck finished",
		slog.String("deck", cfg.Output.Path),
		slog.Int("songs", len(res.Entries)),
		slog.Int("unmatched", len(res.Unmatched)),
		slog.Int("cached_selections", cache.Len()),
	)
	return nil
}

// applyOverrides folds non-empty CLI flags into the configuration.
func applyOverrides(cfg *config.Config, opts Options) {
	if opts.LibraryPath != "" {
		cfg.Library.Path = opts.LibraryPath
	}
	if opts.CachePath != "" {
		cfg.Cache.Path = opts.CachePath
	}
	if opts.OutputPath != "" {
		cfg.Output.Path = opts.OutputPath
	}
	if opts.NonInteractive {
		cfg.Pipeline.NonInteractive = true
	}
}
