package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/songdeck/internal/adapter/songbase"
	"github.com/heartmarshall/songdeck/internal/domain"
	"github.com/heartmarshall/songdeck/internal/lyrics"
)

var kindLabels = map[domain.MatchKind]string{
	domain.MatchByNumber:       "by number",
	domain.MatchByExactTitle:   "by exact title",
	domain.MatchByFuzzyTitle:   "by fuzzy title",
	domain.MatchByManualChoice: "by manual choice",
}

var reasonLabels = map[string]string{
	ReasonNoMatch:          "no close match in the library",
	ReasonAmbiguousSkipped: "several candidates, none chosen",
}

// WriteReport renders the operator-facing summary of a finished run:
// the matched songs with the tier that found each one, the queries
// left unmatched, the songs whose lyrics need manual attention, and
// the library records skipped at load time.
func WriteReport(w io.Writer, res *Result, skipped []songbase.SkippedRecord) error {
	var b strings.Builder

	total := len(res.Entries) + len(res.Unmatched)
	fmt.Fprintf(&b, "Matched %d of %d targets in %s.\n",
		len(res.Entries), total, res.Duration.Round(time.Millisecond))
	if line := kindSummary(res.Entries); line != "" {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if len(res.Entries) > 0 {
		b.WriteString("\nMatched:\n")
		for _, e := range res.Entries {
			fmt.Fprintf(&b, "%4d. %s", e.Position, displayTitle(e.Song))
			if e.Song.Number != nil {
				fmt.Fprintf(&b, "  #%d", *e.Song.Number)
			}
			fmt.Fprintf(&b, "  (%s)\n", kindLabels[e.Kind])
		}
	}

	if len(res.Unmatched) > 0 {
		fmt.Fprintf(&b, "\nUnmatched (%d):\n", len(res.Unmatched))
		for _, u := range res.Unmatched {
			reason := reasonLabels[u.Reason]
			if reason == "" {
				reason = u.Reason
			}
			fmt.Fprintf(&b, "%4d. %q: %s\n", u.Position, u.Query, reason)
		}
	}

	if len(res.NeedsAttention) > 0 {
		fmt.Fprintf(&b, "\nNeeds attention (%d):\n", len(res.NeedsAttention))
		for _, i := range res.NeedsAttention {
			e := res.Entries[i]
			fmt.Fprintf(&b, "%4d. %s: no sections parsed from lyrics\n", e.Position, displayTitle(e.Song))
		}
	}

	if len(skipped) > 0 {
		fmt.Fprintf(&b, "\nLibrary records skipped (%d):\n", len(skipped))
		for _, r := range skipped {
			title := r.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(&b, "  record %d %s: %s\n", r.Index, title, r.Reason)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// kindSummary counts matched entries per tier, in tier order.
func kindSummary(entries []Entry) string {
	counts := make(map[domain.MatchKind]int)
	for _, e := range entries {
		counts[e.Kind]++
	}

	order := []domain.MatchKind{
		domain.MatchByNumber,
		domain.MatchByExactTitle,
		domain.MatchByFuzzyTitle,
		domain.MatchByManualChoice,
	}
	var parts []string
	for _, k := range order {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", kindLabels[k], n))
		}
	}
	return strings.Join(parts, ", ")
}

// displayTitle falls back to the opening lyric line for untitled songs.
func displayTitle(s domain.SongRecord) string {
	if s.Title != "" {
		return s.Title
	}
	if line := lyrics.FirstLine(s.Lyrics); line != "" {
		return line
	}
	return "(untitled)"
}
