// Package lyrics converts one song's raw lyric text into ordered,
// presentation-ready verse and chorus sections.
// Pure functions: text in, domain sections out. No library dependencies.
package lyrics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/songdeck/internal/domain"
)

// DefaultMaxLines is the section length limit applied by Parse unless
// the caller overrides it. Longer sections are split, not truncated.
const DefaultMaxLines = 9

var verseNumRe = regexp.MustCompile(`^(\d+)\.\s*`)

// Result holds parsed sections plus formatting ambiguities worth
// surfacing to a human. Warnings never fail a parse.
type Result struct {
	Sections []domain.Section
	Warnings []string
}

// Parse runs the full parsing pipeline on one song's raw lyric text:
// clean, segment into sections, apply the chorus-repetition
// convention, split oversized sections. A song that yields no sections
// returns an empty Result rather than an error; the caller decides how
// to surface it.
func Parse(raw string, maxLines int) Result {
	res := ParseSections(raw)
	res.Sections = SplitLong(Structure(res.Sections), maxLines)
	return res
}

type blockKind int

const (
	blockVerse blockKind = iota
	blockChorus
	blockUnlabeled
)

// block is one blank-line-delimited run of lines with its provisional
// classification.
type block struct {
	kind  blockKind
	index *int
	lines []string
}

// ParseSections cleans raw lyric text and segments it into classified
// verse and chorus sections in source order. Classification per block:
// a leading "N." token marks a numbered verse, uniform indentation
// marks a chorus. Anything else is unlabeled: the sole non-verse block
// of a song is its chorus, otherwise the block is folded into the
// nearest preceding verse (or kept as an unnumbered verse when there
// is none) and a warning is recorded.
func ParseSections(raw string) Result {
	var res Result

	blocks := segment(Clean(raw))
	if len(blocks) == 0 {
		return res
	}

	nonVerse := 0
	for _, b := range blocks {
		if b.kind != blockVerse {
			nonVerse++
		}
	}

	sections := make([]*domain.Section, 0, len(blocks))
	lastVerse := -1
	for _, b := range blocks {
		switch b.kind {
		case blockVerse:
			sections = append(sections, &domain.Section{Kind: domain.SectionVerse, Index: b.index, Lines: b.lines})
			lastVerse = len(sections) - 1

		case blockChorus:
			sections = append(sections, &domain.Section{Kind: domain.SectionChorus, Lines: b.lines})

		case blockUnlabeled:
			if nonVerse == 1 {
				sections = append(sections, &domain.Section{Kind: domain.SectionChorus, Lines: b.lines})
				break
			}
			if lastVerse >= 0 {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("unlabeled block %q folded into preceding verse", b.lines[0]))
				sections[lastVerse].Lines = append(sections[lastVerse].Lines, b.lines...)
				break
			}
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("unlabeled block %q has no preceding verse, kept as unnumbered verse", b.lines[0]))
			sections = append(sections, &domain.Section{Kind: domain.SectionVerse, Lines: b.lines})
			lastVerse = len(sections) - 1
		}
	}

	for _, s := range sections {
		if s.HasContent() {
			res.Sections = append(res.Sections, *s)
		}
	}
	return res
}

// segment splits cleaned text into provisional blocks on runs of blank
// lines.
func segment(text string) []block {
	var blocks []block
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, classify(current))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// classify assigns a provisional kind to one block of non-blank lines.
func classify(lines []string) block {
	// Numbered verse: the first line starts (unindented) with "N.".
	if m := verseNumRe.FindStringSubmatch(lines[0]); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			content := make([]string, 0, len(lines))
			if rest := strings.TrimSpace(lines[0][len(m[0]):]); rest != "" {
				content = append(content, rest)
			}
			for _, line := range lines[1:] {
				content = append(content, strings.TrimSpace(line))
			}
			return block{kind: blockVerse, index: &n, lines: content}
		}
	}

	// Chorus: every line is indented.
	indented := true
	for _, line := range lines {
		if line[0] != ' ' && line[0] != '\t' {
			indented = false
			break
		}
	}
	if indented {
		content := make([]string, len(lines))
		for i, line := range lines {
			content[i] = strings.TrimSpace(line)
		}
		return block{kind: blockChorus, lines: content}
	}

	content := make([]string, len(lines))
	for i, line := range lines {
		content[i] = strings.TrimSpace(line)
	}
	return block{kind: blockUnlabeled, lines: content}
}
