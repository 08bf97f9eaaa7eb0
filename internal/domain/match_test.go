package domain

import "testing"

func TestMatchResult_Constructors(t *testing.T) {
	t.Parallel()

	song := SongRecord{ID: "7", Title: "Blessed Assurance"}

	matched := Matched(song, MatchByNumber)
	if matched.Status != MatchStatusMatched {
		t.Errorf("Matched status = %s, want %s", matched.Status, MatchStatusMatched)
	}
	if matched.Song == nil || matched.Song.ID != "7" {
		t.Errorf("Matched song = %+v, want ID 7", matched.Song)
	}
	if matched.Kind != MatchByNumber {
		t.Errorf("Matched kind = %s, want %s", matched.Kind, MatchByNumber)
	}
	if len(matched.Candidates) != 0 {
		t.Errorf("Matched candidates = %d, want none", len(matched.Candidates))
	}

	ambiguous := AmbiguousMatch([]Candidate{{Song: song, Score: 0.9}})
	if ambiguous.Status != MatchStatusAmbiguous {
		t.Errorf("AmbiguousMatch status = %s, want %s", ambiguous.Status, MatchStatusAmbiguous)
	}
	if ambiguous.Song != nil {
		t.Errorf("AmbiguousMatch song = %+v, want nil", ambiguous.Song)
	}
	if len(ambiguous.Candidates) != 1 {
		t.Errorf("AmbiguousMatch candidates = %d, want 1", len(ambiguous.Candidates))
	}

	unmatched := NoMatch()
	if unmatched.Status != MatchStatusUnmatched {
		t.Errorf("NoMatch status = %s, want %s", unmatched.Status, MatchStatusUnmatched)
	}
	if unmatched.Song != nil || len(unmatched.Candidates) != 0 {
		t.Errorf("NoMatch carries variant data: %+v", unmatched)
	}
}

func TestMatchKind_IsValid(t *testing.T) {
	t.Parallel()

	valid := []MatchKind{MatchByNumber, MatchByExactTitle, MatchByFuzzyTitle, MatchByManualChoice}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("MatchKind(%s).IsValid() = false, want true", k)
		}
	}
	if MatchKind("BY_GUESS").IsValid() {
		t.Error("MatchKind(BY_GUESS).IsValid() = true, want false")
	}
}

func TestMatchStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []MatchStatus{MatchStatusMatched, MatchStatusAmbiguous, MatchStatusUnmatched}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("MatchStatus(%s).IsValid() = false, want true", s)
		}
	}
	if MatchStatus("PENDING").IsValid() {
		t.Error("MatchStatus(PENDING).IsValid() = true, want false")
	}
}
