// Package analyzer provides password strength estimation.
//
// # Architecture
//
// This package implements the Estimator interface for each scoring strategy,
// allowing the Analyzer to run them interchangeably and to fall back from a
// failed primary estimator to the naive one in a uniform way.
//
// Design decision: Each estimator is implemented as a separate type rather
// than one configurable scorer because:
//  1. Scoring strategies share nothing but their result shape
//  2. Type safety - each estimator can have strategy-specific helpers
//  3. Easier testing - each estimator can be tested in isolation
//  4. The fallback chain stays a composition, not a flag tangle
//
// # Estimators
//
// The following estimators are provided:
//   - ZxcvbnEstimator: pattern matching (dictionaries, keyboard walks,
//     repeats, sequences, dates) with realistic guess entropy
//   - HeuristicEstimator: charset-size entropy, the degraded mode used
//     when pattern matching is unavailable or fails
//
// # Usage
//
// The Analyzer orchestrates estimation, fingerprinting, and advice:
//
//	a := analyzer.NewAnalyzer()
//	report, err := a.Analyze(ctx, "hunter2", []string{"rex", "1990"})
//
// # Security Considerations
//
// Everything here runs offline against in-memory strings:
//   - Passwords are never written to disk or network
//   - Log attributes carry fingerprints, never raw passwords
//   - Reports exclude password material from serialization
package analyzer
