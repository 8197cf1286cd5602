package wordlist

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Tokenizer splits raw keyword strings into base tokens and enriches them
// with dictionary lemmas. A keyword like "rexs-toys" becomes the tokens
// "rexs", "rex", "toys", "toy".
type Tokenizer struct {
	// lemmatizer maps inflected words to their base forms. Nil when the
	// dictionary failed to load; tokens then pass through unlemmatized.
	lemmatizer *golem.Lemmatizer
}

// NewTokenizer creates a Tokenizer with the embedded English dictionary.
// A dictionary load failure is a degraded mode, not an error: expansion
// still works, it just misses lemma variants.
func NewTokenizer() *Tokenizer {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return &Tokenizer{}
	}
	return &Tokenizer{lemmatizer: lemmatizer}
}

// Lemmatizing reports whether lemma enrichment is active.
func (t *Tokenizer) Lemmatizing() bool {
	return t.lemmatizer != nil
}

// Tokenize splits each input on whitespace, "_", and "-", appends the lemma
// of each token when available, and returns the tokens deduplicated in
// first-seen order.
func (t *Tokenizer) Tokenize(inputs []string) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(inputs))

	add := func(token string) {
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, input := range inputs {
		for _, token := range strings.FieldsFunc(input, isTokenSeparator) {
			add(token)
			if t.lemmatizer != nil {
				add(t.lemmatizer.Lemma(token))
			}
		}
	}

	return tokens
}

// isTokenSeparator reports whether r separates tokens inside a keyword.
func isTokenSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
