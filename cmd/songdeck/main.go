// Command songdeck prepares a song deck for a slideshow: it matches a
// plain-text target list against a songbase library export, breaks the
// matched lyrics into slide-sized sections and writes a JSON deck
// artifact plus a run report.
//
// Flags:
//
//	--targets          path to the target list, one query per line (required)
//	--library          path to the library JSON (overrides config)
//	--cache            path to the manual-selection cache (overrides config)
//	--out              path for the deck artifact (overrides config)
//	--non-interactive  never prompt; skip ambiguous queries
//	--config           path to a YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/songdeck/internal/app"
	"github.com/heartmarshall/songdeck/internal/domain"
)

func main() {
	targetsFlag := flag.String("targets", "", "path to the target list (required)")
	libraryFlag := flag.String("library", "", "path to the library JSON (overrides config)")
	cacheFlag := flag.String("cache", "", "path to the manual-selection cache (overrides config)")
	outFlag := flag.String("out", "", "path for the deck artifact (overrides config)")
	nonInteractiveFlag := flag.Bool("non-interactive", false, "never prompt; skip ambiguous queries")
	configFlag := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if *targetsFlag == "" {
		flag.Usage()
		log.Fatal("the --targets flag is required")
	}

	// An interrupt cancels the run; no deck is written for a cancelled run.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err := app.Run(ctx, app.Options{
		ConfigPath:     *configFlag,
		TargetsPath:    *targetsFlag,
		LibraryPath:    *libraryFlag,
		CachePath:      *cacheFlag,
		OutputPath:     *outFlag,
		NonInteractive: *nonInteractiveFlag,
	})
	if err != nil {
		// A validation failure lists every bad field, one per line.
		var valErr *domain.ValidationError
		if errors.As(err, &valErr) {
			for _, fe := range valErr.Errors {
				log.Printf("songdeck: %s: %s", fe.Field, fe.Message)
			}
			os.Exit(1)
		}
		log.Fatalf("songdeck: %v", err)
	}
}
