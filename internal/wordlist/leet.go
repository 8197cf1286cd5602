package wordlist

import "unicode"

// leetTable maps letters to their common substitution characters. The
// original character is always kept as the first option during expansion,
// so the unmangled token is always among the variants.
var leetTable = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!'},
	'l': {'1', '|'},
	'o': {'0'},
	's': {'5', '$'},
	't': {'7'},
	'z': {'2'},
}

// LeetVariants returns leetspeak substitutions of token, at most budget of
// them. Substitution options per character are the character itself plus
// its leetTable entries (looked up case-insensitively), and the variants
// are the cartesian product of those options in rightmost-varies-fastest
// order. The first variant is always the unmodified token.
//
// The budget bounds the fan-out: a token like "salesattestation" would
// otherwise expand into hundreds of thousands of variants.
func LeetVariants(token string, budget int) []string {
	if budget <= 0 {
		return []string{token}
	}

	runes := []rune(token)
	options := make([][]rune, len(runes))
	for i, r := range runes {
		opts := []rune{r}
		if subs, ok := leetTable[unicode.ToLower(r)]; ok {
			opts = append(opts, subs...)
		}
		options[i] = opts
	}

	variants := make([]string, 0, budget)
	indexes := make([]int, len(runes))
	buf := make([]rune, len(runes))
	for {
		for i, idx := range indexes {
			buf[i] = options[i][idx]
		}
		variants = append(variants, string(buf))
		if len(variants) >= budget {
			break
		}

		// Advance the rightmost position, carrying leftward on overflow.
		pos := len(indexes) - 1
		for pos >= 0 {
			indexes[pos]++
			if indexes[pos] < len(options[pos]) {
				break
			}
			indexes[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return variants
}
