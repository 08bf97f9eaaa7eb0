package lyrics

import (
	"strings"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// Structure applies the chorus-repetition convention to parsed
// sections. With exactly one distinct chorus, source order is kept and
// a copy of that chorus is inserted after every verse not already
// followed by one; a refrain printed before the first verse keeps its
// opening position. With several distinct choruses the source order is
// authoritative and kept untouched.
func Structure(sections []domain.Section) []domain.Section {
	hasVerse := false
	var choruses []domain.Section
	for _, s := range sections {
		switch s.Kind {
		case domain.SectionVerse:
			hasVerse = true
		case domain.SectionChorus:
			choruses = append(choruses, s)
		}
	}

	if len(choruses) == 0 || !hasVerse {
		return sections
	}

	// Repeated identical chorus blocks count as one variant.
	distinct := make(map[string]struct{}, len(choruses))
	for _, c := range choruses {
		distinct[domain.NormalizeText(strings.Join(c.Lines, "\n"))] = struct{}{}
	}
	if len(distinct) > 1 {
		return sections
	}

	// The first written copy is the one inserted after uncovered verses.
	chorus := choruses[0]
	out := make([]domain.Section, 0, len(sections)*2)
	for i, s := range sections {
		out = append(out, s)
		if s.Kind != domain.SectionVerse {
			continue
		}
		if i+1 < len(sections) && sections[i+1].Kind == domain.SectionChorus {
			continue
		}
		out = append(out, chorus)
	}
	return out
}
