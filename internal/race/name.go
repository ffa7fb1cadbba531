package race

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameFormatter normalizes participant display names using the case mapping
// rules of a single locale. Use language.Und for locale-neutral mapping.
type NameFormatter struct {
	lower cases.Caser
	title cases.Caser
}

// NewNameFormatter creates a formatter for the given locale.
func NewNameFormatter(tag language.Tag) *NameFormatter {
	return &NameFormatter{
		lower: cases.Lower(tag),
		title: cases.Title(tag),
	}
}

// Format lower-cases the whole input, then title-cases the letter at the
// start of the string and any letter immediately following a space or a
// hyphen. Consecutive delimiters are not collapsed; casing is purely local
// to each boundary. Format is pure, total over any input, and idempotent.
//
//	"ola nordmann"   -> "Ola Nordmann"
//	"anne-lise holm" -> "Anne-Lise Holm"
func (f *NameFormatter) Format(raw string) string {
	lowered := f.lower.String(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	atBoundary := true
	for _, r := range lowered {
		if atBoundary {
			// Title-casing a non-letter leaves it unchanged, so no
			// letter check is needed here.
			b.WriteString(f.title.String(string(r)))
		} else {
			b.WriteRune(r)
		}
		atBoundary = r == ' ' || r == '-'
	}
	return b.String()
}
