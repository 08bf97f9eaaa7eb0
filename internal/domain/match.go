package domain

// MatchStatus selects the populated variant of a MatchResult.
type MatchStatus string

const (
	MatchStatusMatched   MatchStatus = "MATCHED"
	MatchStatusAmbiguous MatchStatus = "AMBIGUOUS"
	MatchStatusUnmatched MatchStatus = "UNMATCHED"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusMatched, MatchStatusAmbiguous, MatchStatusUnmatched:
		return true
	}
	return false
}

// MatchKind records which tier of the matcher produced a matched song.
type MatchKind string

const (
	MatchByNumber       MatchKind = "BY_NUMBER"
	MatchByExactTitle   MatchKind = "BY_EXACT_TITLE"
	MatchByFuzzyTitle   MatchKind = "BY_FUZZY_TITLE"
	MatchByManualChoice MatchKind = "BY_MANUAL_CHOICE"
)

func (k MatchKind) String() string { return string(k) }

func (k MatchKind) IsValid() bool {
	switch k {
	case MatchByNumber, MatchByExactTitle, MatchByFuzzyTitle, MatchByManualChoice:
		return true
	}
	return false
}

// Candidate is a scored library song considered for an ambiguous query.
type Candidate struct {
	Song  SongRecord
	Score float64
}

// MatchResult is the tagged outcome of matching one query. Exactly one
// variant is populated, selected by Status; consumers must switch on
// Status exhaustively rather than inspect the variant fields.
type MatchResult struct {
	Status MatchStatus

	// Matched variant.
	Song *SongRecord
	Kind MatchKind

	// Ambiguous variant: scored candidates, best score first.
	Candidates []Candidate
}

// Matched builds the matched variant.
func Matched(song SongRecord, kind MatchKind) MatchResult {
	return MatchResult{Status: MatchStatusMatched, Song: &song, Kind: kind}
}

// AmbiguousMatch builds the ambiguous variant. Candidate order is kept
// as given by the caller.
func AmbiguousMatch(candidates []Candidate) MatchResult {
	return MatchResult{Status: MatchStatusAmbiguous, Candidates: candidates}
}

// NoMatch builds the unmatched variant.
func NoMatch() MatchResult {
	return MatchResult{Status: MatchStatusUnmatched}
}
