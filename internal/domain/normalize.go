package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and strips combining marks, so
// "Café" folds to "Cafe" before the ASCII filter below.
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeText prepares free text for matching and cache keys:
//   - folds diacritics to their ASCII base
//   - drops punctuation and any remaining non-ASCII runes
//   - converts to lowercase
//   - collapses whitespace runs into single spaces and trims
//
// Two titles that differ only in typography normalize to the same string.
func NormalizeText(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case r > unicode.MaxASCII:
			// Unfoldable runes contribute nothing, like punctuation.
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
