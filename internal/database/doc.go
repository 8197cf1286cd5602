// Package database provides SQLite-based storage for passaudit.
//
// This package implements the AuditDB, which stores:
//   - Analysis records keyed by password fingerprint for trend queries
//   - Wordlist generation runs with their output checksums
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
//
// Passwords never reach this package: analyses carry only the truncated
// fingerprint and derived metrics, and the report JSON excludes the
// password and matched tokens at the serialization layer.
package database
