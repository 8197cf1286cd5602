package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseVariants returns the case forms of a token in a fixed order: lower,
// UPPER, Title, and Capitalized (first rune uppercased, remainder kept).
// Duplicates collapse, so a single-case token yields three variants.
//
// Title and Capitalized differ on mixed-case tokens: Title("rexDOG") is
// "Rexdog" while Capitalized("rexDOG") is "RexDOG". Both forms show up in
// real passwords, so both are generated.
func CaseVariants(token string) []string {
	if token == "" {
		return nil
	}

	variants := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	add(strings.ToLower(token))
	add(strings.ToUpper(token))
	add(cases.Title(language.Und).String(token))

	// Capitalized form only applies when the token starts with a letter.
	if r, size := utf8.DecodeRuneInString(token); unicode.IsLetter(r) {
		add(string(unicode.ToUpper(r)) + token[size:])
	}

	return variants
}
