package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name trims and collapses whitespace and title-cases every word.
func Name(s string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
