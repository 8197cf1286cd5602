// Package model defines the core data structures used throughout passaudit.
//
// This package contains the following main types:
//   - AnalysisReport: The result of a single password strength analysis
//   - BatchReport: Aggregated results for a list of analyzed passwords
//   - GenerationReport: Metadata about a produced wordlist
//   - StrengthLevel: The bounded 0-4 strength classification
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyzer, wordlist, report, database) need
// to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage. Fields that would leak password material (the password
// itself, matched substrings) are excluded from serialization.
package model
