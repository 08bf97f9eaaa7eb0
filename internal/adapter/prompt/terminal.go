// Package prompt implements the chooser consulted when a query matches
// several songs and no cached selection exists.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/lyrics"
)

const snippetLen = 80

// Terminal asks the user to pick a candidate by number on a line-based
// console. Zero, a blank line or end of input all mean "skip this
// query"; anything else that is not a listed number is re-asked.
type Terminal struct {
	log *slog.Logger
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal returns a chooser reading answers from in and writing
// the candidate list to out.
func NewTerminal(in io.Reader, out io.Writer, logger *slog.Logger) *Terminal {
	return &Terminal{
		log: logger.With("adapter", "prompt"),
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Choose renders the candidates and blocks until the user answers or
// the input ends. The second return value is false when the user
// skipped the query.
func (t *Terminal) Choose(query domain.Query, candidates []domain.Candidate) (domain.SongRecord, bool) {
	fmt.Fprintf(t.out, "\n%d songs match %q:\n", len(candidates), query.Raw)
	for i, c := range candidates {
		fmt.Fprintf(t.out, "  [%d] %s\n", i+1, describe(c))
		if snip := snippet(c.Song.Lyrics); snip != "" {
			fmt.Fprintf(t.out, "      %s\n", snip)
		}
	}

	for {
		fmt.Fprintf(t.out, "Select 1-%d, or 0 to skip: ", len(candidates))
		if !t.in.Scan() {
			fmt.Fprintln(t.out)
			t.log.Debug("input closed, skipping query", "query", query.Raw)
			return domain.SongRecord{}, false
		}

		answer := strings.TrimSpace(t.in.Text())
		if answer == "" || answer == "0" {
			t.log.Debug("query skipped by user", "query", query.Raw)
			return domain.SongRecord{}, false
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Fprintf(t.out, "Enter a number between 0 and %d.\n", len(candidates))
			continue
		}

		chosen := candidates[n-1]
		t.log.Debug("candidate chosen",
			"query", query.Raw, "song_id", chosen.Song.ID, "title", chosen.Song.Title)
		return chosen.Song, true
	}
}

// describe renders one candidate line: title, hymn number when known,
// and the similarity score that put it on the list.
func describe(c domain.Candidate) string {
	var b strings.Builder
	b.WriteString(c.Song.Title)
	if c.Song.Title == "" {
		b.WriteString("(untitled)")
	}
	if c.Song.Number != nil {
		fmt.Fprintf(&b, "  #%d", *c.Song.Number)
	}
	fmt.Fprintf(&b, "  (%.2f)", c.Score)
	return b.String()
}

// snippet gives a one-line taste of the lyrics so near-identical
// titles can be told apart.
func snippet(raw string) string {
	line := lyrics.FirstLine(raw)
	runes := []rune(line)
	if len(runes) <= snippetLen {
		return line
	}
	return string(runes[:snippetLen]) + "..."
}
