package lyrics

import (
	"reflect"
	"testing"

	"github.com/heartmarshall/songdeck/internal/domain"
)

func TestStructure_SingleChorusRepeatedAfterEveryVerse(t *testing.T) {
	in := []domain.Section{
		verse(1, "v1"),
		chorus("c"),
		verse(2, "v2"),
		verse(3, "v3"),
	}

	got := Structure(in)

	assertSections(t, got, []domain.Section{
		verse(1, "v1"),
		chorus("c"),
		verse(2, "v2"),
		chorus("c"),
		verse(3, "v3"),
		chorus("c"),
	})
}

func TestStructure_OpeningChorusStaysFirst(t *testing.T) {
	// A refrain printed before the first verse opens the song; copies
	// are added only after verses not already followed by one.
	in := []domain.Section{
		chorus("refrain line"),
		verse(1, "v1"),
		verse(2, "v2"),
	}

	got := Structure(in)

	assertSections(t, got, []domain.Section{
		chorus("refrain line"),
		verse(1, "v1"),
		chorus("refrain line"),
		verse(2, "v2"),
		chorus("refrain line"),
	})
}

func TestStructure_LateChorusCoversEarlierVerses(t *testing.T) {
	in := []domain.Section{
		verse(1, "v1"),
		verse(2, "v2"),
		chorus("c"),
	}

	got := Structure(in)

	assertSections(t, got, []domain.Section{
		verse(1, "v1"),
		chorus("c"),
		verse(2, "v2"),
		chorus("c"),
	})
}

func TestStructure_IdenticalChorusBlocksCountAsOneVariant(t *testing.T) {
	// The same chorus written out twice is one variant, so repetition
	// still applies; each written copy keeps its place and wording.
	in := []domain.Section{
		verse(1, "v1"),
		chorus("My chorus line"),
		verse(2, "v2"),
		chorus("my  chorus line"),
		verse(3, "v3"),
	}

	got := Structure(in)

	assertSections(t, got, []domain.Section{
		verse(1, "v1"),
		chorus("My chorus line"),
		verse(2, "v2"),
		chorus("my  chorus line"),
		verse(3, "v3"),
		chorus("My chorus line"),
	})
}

func TestStructure_DistinctChorusesKeepSourceOrder(t *testing.T) {
	in := []domain.Section{
		chorus("first refrain"),
		verse(1, "v1"),
		chorus("second refrain"),
		verse(2, "v2"),
	}

	got := Structure(in)

	if !reflect.DeepEqual(got, in) {
		t.Errorf("sections reordered:\ngot:  %+v\nwant: %+v", got, in)
	}
}

func TestStructure_NoChorusUnchanged(t *testing.T) {
	in := []domain.Section{verse(1, "v1"), verse(2, "v2")}

	got := Structure(in)

	if !reflect.DeepEqual(got, in) {
		t.Errorf("sections changed:\ngot:  %+v\nwant: %+v", got, in)
	}
}

func TestStructure_LoneChorusEmittedOnce(t *testing.T) {
	in := []domain.Section{chorus("only refrain")}

	got := Structure(in)

	assertSections(t, got, []domain.Section{chorus("only refrain")})
}

func TestStructure_Empty(t *testing.T) {
	if got := Structure(nil); len(got) != 0 {
		t.Errorf("Structure(nil) = %+v, want empty", got)
	}
}
