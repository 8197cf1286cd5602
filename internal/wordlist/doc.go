// Package wordlist generates targeted password candidate lists from
// personal keywords.
//
// # Purpose
//
// Attackers who know a target rarely brute-force blindly; they expand the
// names, pets, and dates they know into the mangled forms people actually
// use. This package performs the same expansion for authorized audits so a
// defender can test whether any of those forms is a real password.
//
// # Pipeline
//
// Generation runs as ordered expansion stages over a capped,
// insertion-ordered candidate set:
//  1. Tokenize: split raw keywords on whitespace, "_", and "-", dedupe,
//     and append dictionary lemmas ("running" also yields "run").
//  2. Case expansion: lower, UPPER, Title, and Capitalized forms.
//  3. Leetspeak expansion: bounded character substitution (a->4, e->3, ...).
//  4. Separator joins: ordered pairs of candidates joined with each
//     configured separator.
//  5. Year decoration: full-year suffix, two-digit suffix, full-year prefix.
//
// Every stage deduplicates, generation stops as soon as the size cap is
// reached, and output order is deterministic for a given input.
//
// # Usage
//
//	gen := wordlist.NewGenerator(
//		wordlist.WithYears(wordlist.ParseYears("1990-1995,2024")),
//		wordlist.WithMaxSize(10000),
//	)
//	result, err := gen.Generate(ctx, []string{"rex", "dallas"})
//
// # Security Considerations
//
// The produced file is attack tooling input. The writer creates it with
// mode 0600, and callers log only counts and checksums, never candidate
// values.
package wordlist
