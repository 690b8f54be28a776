package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase title-cases each letter run of a name, leaving digits,
// separators, and any other non-letter characters in place.
func ToTitleCase(s string) string {
	caser := cases.Title(language.English)
	var builder strings.Builder
	start := -1
	flush := func(end int) {
		if start >= 0 {
			builder.WriteString(caser.String(s[start:end]))
			start = -1
		}
	}
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		builder.WriteRune(r)
	}
	flush(len(s))
	return builder.String()
}
