package domain

import "strings"

// SectionKind distinguishes verse and chorus sections.
type SectionKind string

const (
	SectionVerse  SectionKind = "VERSE"
	SectionChorus SectionKind = "CHORUS"
)

func (k SectionKind) String() string { return string(k) }

func (k SectionKind) IsValid() bool {
	switch k {
	case SectionVerse, SectionChorus:
		return true
	}
	return false
}

// Section is one presentation-ready block of lyric lines. Index is set
// on numbered verses only; sub-sections produced by splitting an
// oversized section share their parent's index.
type Section struct {
	Kind  SectionKind
	Index *int
	Lines []string
}

// HasContent reports whether the section carries at least one non-empty line.
func (s Section) HasContent() bool {
	for _, line := range s.Lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
