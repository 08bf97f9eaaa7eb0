package domain

import "testing"

func TestSectionKind_IsValid(t *testing.T) {
	t.Parallel()

	if !SectionVerse.IsValid() || !SectionChorus.IsValid() {
		t.Error("built-in section kinds must be valid")
	}
	if SectionKind("BRIDGE").IsValid() {
		t.Error("SectionKind(BRIDGE).IsValid() = true, want false")
	}
}

func TestSection_HasContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section Section
		want    bool
	}{
		{name: "normal lines", section: Section{Kind: SectionVerse, Lines: []string{"line one"}}, want: true},
		{name: "no lines", section: Section{Kind: SectionChorus}, want: false},
		{name: "only blank lines", section: Section{Kind: SectionVerse, Lines: []string{"", "  ", "\t"}}, want: false},
		{name: "blank then content", section: Section{Kind: SectionVerse, Lines: []string{"", "text"}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.section.HasContent(); got != tt.want {
				t.Errorf("HasContent() = %v, want %v", got, tt.want)
			}
		})
	}
}
