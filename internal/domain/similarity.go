package domain

import "github.com/agnivade/levenshtein"

// Similarity scores how close two strings are on a 0..1 scale using
// edit distance over their normalized forms. Identical normalized
// forms score 1, two empty forms included; an empty form against a
// non-empty one scores 0.
func Similarity(a, b string) float64 {
	na := NormalizeText(a)
	nb := NormalizeText(b)
	if na == nb {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	// Normalized strings are pure ASCII, so byte length equals rune count.
	longest := len(na)
	if len(nb) > longest {
		longest = len(nb)
	}
	dist := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(dist)/float64(longest)
}
