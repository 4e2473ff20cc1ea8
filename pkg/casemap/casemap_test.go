package casemap

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMapper_ToUpper(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		input    string
		expected string
	}{
		{language.Und, "once upon", "ONCE UPON"},
		{language.Und, "önce ûpon", "ÖNCE ÛPON"},
		{language.German, "straße", "STRAßE"}, // ß would expand to SS
		{language.Turkish, "istanbul", "İSTANBUL"},
		{language.Und, "istanbul", "ISTANBUL"},
	}

	for _, tt := range tests {
		span := []rune(tt.input)
		New(tt.tag).ToUpper(span)
		if got := string(span); got != tt.expected {
			t.Errorf("ToUpper[%v](%q) = %q, want %q", tt.tag, tt.input, got, tt.expected)
		}
	}
}

func TestMapper_ToLower(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		input    string
		expected string
	}{
		{language.Und, "ONCE", "once"},
		{language.Und, "ŒNCE", "œnce"},
		{language.Turkish, "ISPARTA", "ısparta"},
	}

	for _, tt := range tests {
		span := []rune(tt.input)
		New(tt.tag).ToLower(span)
		if got := string(span); got != tt.expected {
			t.Errorf("ToLower[%v](%q) = %q, want %q", tt.tag, tt.input, got, tt.expected)
		}
	}
}

func TestMapper_ToTitle(t *testing.T) {
	tests := []struct {
		input       string
		isWordStart bool
		expected    string
	}{
		{"once", true, "Once"},
		{"once", false, "once"},
		{"ONCE", true, "ONCE"},
		{"ǆungla", true, "ǅungla"}, // titlecase digraph
		{"", true, ""},
	}

	m := New(language.Und)
	for _, tt := range tests {
		span := []rune(tt.input)
		m.ToTitle(span, tt.isWordStart)
		if got := string(span); got != tt.expected {
			t.Errorf("ToTitle(%q, %v) = %q, want %q", tt.input, tt.isWordStart, got, tt.expected)
		}
	}
}

func TestMapper_KeepsLength(t *testing.T) {
	inputs := []string{"ß", "ŉ", "ﬁ", "İ"}

	for _, tag := range []language.Tag{language.Und, language.German, language.Turkish} {
		m := New(tag)
		for _, in := range inputs {
			for _, conv := range []func([]rune){m.ToUpper, m.ToLower, func(s []rune) { m.ToTitle(s, true) }} {
				span := []rune(in)
				conv(span)
				if len(span) != len([]rune(in)) {
					t.Errorf("mapping %q changed its length", in)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("tr")
	if err != nil {
		t.Fatalf("Parse(tr) error = %v", err)
	}
	if got := m.Language().String(); got != "tr" {
		t.Errorf("Parse(tr).Language() = %v, want tr", got)
	}

	m, err = Parse("")
	if err != nil || m.Language().String() != "und" {
		t.Errorf("Parse(\"\") = %v, %v; want und, nil", m, err)
	}

	if _, err := Parse("not a tag!"); err == nil {
		t.Error("Parse of an invalid tag should fail")
	}
}
