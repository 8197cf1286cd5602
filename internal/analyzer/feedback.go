package analyzer

import (
	"strings"

	"github.com/nao1215/passaudit/internal/model"
)

// maxSuggestions bounds how many remediation hints a single estimate carries.
// Beyond three the advice stops being read.
const maxSuggestions = 3

// matchKindForPattern normalizes an estimator pattern name and dictionary
// name into an advice kind (the keys of the model advice table).
func matchKindForPattern(pattern, dictionary string) string {
	switch strings.ToLower(pattern) {
	case "dictionary":
		return dictionaryKind(dictionary)
	case "l33t":
		return "leet"
	case "spatial", "repeat", "sequence", "date", "bruteforce":
		return strings.ToLower(pattern)
	default:
		// Unknown kinds fall through to the advice table default.
		return strings.ToLower(pattern)
	}
}

// dictionaryKind refines a dictionary match by the wordlist it hit.
// Dictionary names differ in casing between matcher versions, so the
// comparison is case-insensitive with separators stripped.
func dictionaryKind(dictionary string) string {
	name := strings.ToLower(strings.ReplaceAll(dictionary, "_", ""))
	switch name {
	case "passwords":
		return "dictionary_passwords"
	case "malenames", "femalenames", "surname", "surnames":
		return "dictionary_names"
	case "userinputs":
		return "user_input"
	default:
		return "dictionary"
	}
}

// dominantMatch picks the match to warn about: the one covering the most of
// the password, ties broken by the weaker advice level.
func dominantMatch(matches []model.PatternMatch) model.PatternMatch {
	dominant := matches[0]
	dominantLevel := model.GetAdviceInfo(dominant.Kind).Level
	for _, m := range matches[1:] {
		level := model.GetAdviceInfo(m.Kind).Level
		switch {
		case len(m.Token) > len(dominant.Token):
			dominant, dominantLevel = m, level
		case len(m.Token) == len(dominant.Token) && level < dominantLevel:
			dominant, dominantLevel = m, level
		}
	}
	return dominant
}

// adviseFromMatches fills Warning and Suggestions from the matched patterns.
// Advice only fires for scores of 2 or below: a strong password should not
// be nagged about an incidental two-letter dictionary hit.
func adviseFromMatches(est *Estimate) {
	if est.Score > 2 || len(est.Matches) == 0 {
		return
	}

	dominant := dominantMatch(est.Matches)
	info := model.GetAdviceInfo(dominant.Kind)
	est.Warning = info.Impact
	est.Suggestions = appendSuggestion(est.Suggestions, info.Recommendation)

	// Collect advice for the remaining distinct kinds, weakest first.
	seen := map[string]bool{dominant.Kind: true}
	for level := model.LevelVeryWeak; level <= model.LevelFair; level++ {
		for _, m := range est.Matches {
			if seen[m.Kind] {
				continue
			}
			kindInfo := model.GetAdviceInfo(m.Kind)
			if kindInfo.Level != level {
				continue
			}
			seen[m.Kind] = true
			est.Suggestions = appendSuggestion(est.Suggestions, kindInfo.Recommendation)
			if len(est.Suggestions) >= maxSuggestions {
				return
			}
		}
	}
}

// appendSuggestion appends s unless it is empty, already present, or the
// suggestion budget is spent.
func appendSuggestion(suggestions []string, s string) []string {
	if s == "" || len(suggestions) >= maxSuggestions {
		return suggestions
	}
	for _, existing := range suggestions {
		if existing == s {
			return suggestions
		}
	}
	return append(suggestions, s)
}
