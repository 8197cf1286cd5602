package analyzer

import "math"

// ShannonEntropy returns the Shannon entropy of the character distribution
// in s, scaled by the string length in runes. The per-character entropy
// -sum(p_i * log2(p_i)) measures how evenly characters are used; scaling by
// length turns it into a bit estimate for the whole string.
//
// This measures character variety, not guessability: "Password1!" has decent
// Shannon entropy and terrible real-world strength. It is reported alongside
// the estimator score, never instead of it.
func ShannonEntropy(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	freq := make(map[rune]int, len(runes))
	for _, r := range runes {
		freq[r]++
	}

	length := float64(len(runes))
	var perChar float64
	for _, count := range freq {
		p := float64(count) / length
		perChar -= p * math.Log2(p)
	}

	return perChar * length
}

// CharsetBits returns the naive entropy upper bound log2(distinct) * length,
// treating every position as an independent draw from the set of characters
// actually used. This is the basis of the heuristic estimator's score.
func CharsetBits(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
	}

	return math.Log2(float64(len(distinct))) * float64(len(runes))
}
