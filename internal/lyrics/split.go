package lyrics

import "github.com/heartmarshall/songdeck/internal/domain"

// SplitLong splits any section longer than maxLines into consecutive
// sections of at most maxLines lines, in original line order. Chunks
// keep the section kind, and verse chunks share the parent's index.
// A maxLines below 1 disables splitting.
func SplitLong(sections []domain.Section, maxLines int) []domain.Section {
	if maxLines < 1 {
		return sections
	}

	out := make([]domain.Section, 0, len(sections))
	for _, s := range sections {
		if len(s.Lines) <= maxLines {
			out = append(out, s)
			continue
		}
		for start := 0; start < len(s.Lines); start += maxLines {
			end := min(start+maxLines, len(s.Lines))
			out = append(out, domain.Section{Kind: s.Kind, Index: s.Index, Lines: s.Lines[start:end]})
		}
	}
	return out
}
