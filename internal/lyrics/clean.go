package lyrics

import (
	"regexp"
	"strings"
)

var chordRe = regexp.MustCompile(`\[[^\]]*\]`)

// Clean strips songbase markup from raw lyric text: comment lines
// (first non-blank character '#') are dropped and inline [chord]
// tokens removed. Leading indentation is preserved because section
// classification depends on it; trailing whitespace is trimmed.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		line = chordRe.ReplaceAllString(line, "")
		out = append(out, strings.TrimRight(line, " \t\r"))
	}
	return strings.Join(out, "\n")
}

// FirstLine returns the first non-empty content line of raw lyric
// text, cleaned and trimmed, with a leading verse-number token ("1.")
// stripped. Songs indexed by their opening line are matched on this.
func FirstLine(raw string) string {
	for _, line := range strings.Split(Clean(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := verseNumRe.FindString(line); m != "" {
			line = strings.TrimSpace(line[len(m):])
			if line == "" {
				continue
			}
		}
		return line
	}
	return ""
}
