package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/passaudit/internal/model"
)

// AuditDB provides SQLite-based storage for analysis results and wordlist
// generation runs.
//
// Design decision: We use a single database file for both analyses and
// wordlist runs rather than separate files. The audit trail of one
// engagement usually spans both, and a single file simplifies history
// queries and backup/restore operations.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "passaudit.db")

	// Check if we should create the database or require it to exist
	if !opts.CreateIfNotExists {
		// Check if database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		// Ensure directory exists
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	// SQLite doesn't benefit from multiple connections for writes,
	// but multiple readers can improve performance
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{
		db:     db,
		dbPath: dbPath,
	}

	// Enable WAL mode if requested
	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Create tables
	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	-- Analyses store one row per password strength analysis.
	-- Only the fingerprint and derived metrics are stored; the report JSON
	-- excludes the password and any matched tokens.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fingerprint TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		score INTEGER NOT NULL,
		entropy_bits REAL NOT NULL,
		crack_time_seconds REAL NOT NULL,
		crack_time_display TEXT NOT NULL,
		estimator TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_fingerprint ON analyses(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);

	-- Wordlist runs record generation outcomes for auditability.
	-- The produced candidates live only in the output file.
	CREATE TABLE IF NOT EXISTS wordlist_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		keywords TEXT NOT NULL,
		candidate_count INTEGER NOT NULL,
		max_size INTEGER NOT NULL,
		truncated INTEGER NOT NULL DEFAULT 0,
		output_path TEXT,
		checksum TEXT,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON wordlist_runs(timestamp);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// AnalysisRecord is one stored analysis row without the full report payload.
// It is used for history listings where parsing the report JSON per row
// would be wasteful.
type AnalysisRecord struct {
	// ID is the unique identifier of the analysis in the database.
	ID int64 `json:"id"`

	// Fingerprint is the truncated SHA3-256 digest identifying the password.
	Fingerprint string `json:"fingerprint"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`

	// Score is the bounded 0-4 strength score.
	Score int `json:"score"`

	// EntropyBits is the guess entropy the estimator assigned.
	EntropyBits float64 `json:"entropy_bits"`

	// CrackTimeSeconds estimates offline cracking time in seconds.
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is the human-readable crack time.
	CrackTimeDisplay string `json:"crack_time_display"`

	// Estimator names the estimator that produced the score.
	Estimator string `json:"estimator"`
}

// SaveAnalysis stores one analysis result.
// The report is serialized with encoding/json, so the password and matched
// tokens never reach the database: both carry json:"-" tags in the model.
func (adb *AuditDB) SaveAnalysis(ctx context.Context, report *model.AnalysisReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO analyses (fingerprint, score, entropy_bits, crack_time_seconds, crack_time_display, estimator, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = adb.db.ExecContext(ctx, query,
		report.Fingerprint,
		report.Score,
		report.GuessBits,
		report.CrackTimeSeconds,
		report.CrackTimeDisplay,
		report.Estimator,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// AnalysisHistory retrieves all stored analyses for a fingerprint, newest first.
// Rows inserted within the same second are ordered by insertion id so the
// latest analysis always comes first.
func (adb *AuditDB) AnalysisHistory(ctx context.Context, fingerprint string) ([]AnalysisRecord, error) {
	query := `
	SELECT id, fingerprint, timestamp, score, entropy_bits, crack_time_seconds, crack_time_display, estimator
	FROM analyses
	WHERE fingerprint = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := adb.db.QueryContext(ctx, query, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var results []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var timestamp string

		err := rows.Scan(
			&record.ID,
			&record.Fingerprint,
			&timestamp,
			&record.Score,
			&record.EntropyBits,
			&record.CrackTimeSeconds,
			&record.CrackTimeDisplay,
			&record.Estimator,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}

		record.Timestamp = parseTimestamp(timestamp)
		results = append(results, record)
	}

	return results, rows.Err()
}

// ListAnalyses retrieves the most recent analyses across all fingerprints,
// newest first. A limit of zero or less returns all records.
func (adb *AuditDB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	query := `
	SELECT id, fingerprint, timestamp, score, entropy_bits, crack_time_seconds, crack_time_display, estimator
	FROM analyses
	ORDER BY timestamp DESC, id DESC
	`
	args := make([]interface{}, 0, 1)

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := adb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var timestamp string

		err := rows.Scan(
			&record.ID,
			&record.Fingerprint,
			&timestamp,
			&record.Score,
			&record.EntropyBits,
			&record.CrackTimeSeconds,
			&record.CrackTimeDisplay,
			&record.Estimator,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}

		record.Timestamp = parseTimestamp(timestamp)
		results = append(results, record)
	}

	return results, rows.Err()
}

// Trend describes how the stored score for a fingerprint moved between the
// two most recent analyses.
type Trend int

const (
	// TrendUnknown means fewer than two analyses are stored.
	TrendUnknown Trend = iota

	// TrendImproved means the latest score is higher than the previous one.
	TrendImproved

	// TrendWorsened means the latest score is lower than the previous one.
	TrendWorsened

	// TrendUnchanged means the latest two scores are equal.
	TrendUnchanged
)

// String returns the human-readable trend.
func (t Trend) String() string {
	switch t {
	case TrendImproved:
		return "improved"
	case TrendWorsened:
		return "worsened"
	case TrendUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// ScoreTrend reports how the score for a fingerprint moved between the two
// most recent analyses. With fewer than two stored analyses the trend is
// TrendUnknown.
func (adb *AuditDB) ScoreTrend(ctx context.Context, fingerprint string) (Trend, error) {
	query := `
	SELECT score FROM analyses
	WHERE fingerprint = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 2
	`

	rows, err := adb.db.QueryContext(ctx, query, fingerprint)
	if err != nil {
		return TrendUnknown, fmt.Errorf("failed to query score trend: %w", err)
	}
	defer rows.Close()

	scores := make([]int, 0, 2)
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return TrendUnknown, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return TrendUnknown, err
	}

	if len(scores) < 2 {
		return TrendUnknown, nil
	}

	latest, previous := scores[0], scores[1]
	switch {
	case latest > previous:
		return TrendImproved, nil
	case latest < previous:
		return TrendWorsened, nil
	default:
		return TrendUnchanged, nil
	}
}

// WordlistRunRecord is one stored wordlist generation run without the full
// report payload.
type WordlistRunRecord struct {
	// ID is the unique identifier of the run in the database.
	ID int64 `json:"id"`

	// Timestamp is when the run was performed.
	Timestamp time.Time `json:"timestamp"`

	// Keywords are the seed keywords joined for compact listings.
	Keywords string `json:"keywords"`

	// CandidateCount is the number of candidates written.
	CandidateCount int `json:"candidate_count"`

	// MaxSize is the size cap the run was performed under.
	MaxSize int `json:"max_size"`

	// Truncated is true when the size cap stopped the expansion early.
	Truncated bool `json:"truncated"`

	// OutputPath is where the wordlist was written.
	OutputPath string `json:"output_path,omitempty"`

	// Checksum is the SHA3-256 digest (hex) of the written file.
	Checksum string `json:"checksum,omitempty"`
}

// SaveWordlistRun stores the outcome of one wordlist generation run.
func (adb *AuditDB) SaveWordlistRun(ctx context.Context, report *model.GenerationReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO wordlist_runs (keywords, candidate_count, max_size, truncated, output_path, checksum, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = adb.db.ExecContext(ctx, query,
		report.KeywordSummary(),
		report.Candidates,
		report.MaxSize,
		report.Truncated,
		report.OutputPath,
		report.Checksum,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save wordlist run: %w", err)
	}

	return nil
}

// ListWordlistRuns retrieves the most recent wordlist runs, newest first.
// A limit of zero or less returns all records.
func (adb *AuditDB) ListWordlistRuns(ctx context.Context, limit int) ([]WordlistRunRecord, error) {
	query := `
	SELECT id, timestamp, keywords, candidate_count, max_size, truncated, output_path, checksum
	FROM wordlist_runs
	ORDER BY timestamp DESC, id DESC
	`
	args := make([]interface{}, 0, 1)

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := adb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wordlist runs: %w", err)
	}
	defer rows.Close()

	var results []WordlistRunRecord
	for rows.Next() {
		var record WordlistRunRecord
		var timestamp string
		var outputPath sql.NullString
		var checksum sql.NullString

		err := rows.Scan(
			&record.ID,
			&timestamp,
			&record.Keywords,
			&record.CandidateCount,
			&record.MaxSize,
			&record.Truncated,
			&outputPath,
			&checksum,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wordlist run: %w", err)
		}

		record.Timestamp = parseTimestamp(timestamp)
		record.OutputPath = outputPath.String
		record.Checksum = checksum.String
		results = append(results, record)
	}

	return results, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	// Return zero time if no format matches
	// This is a fallback to avoid breaking functionality for edge cases
	return time.Time{}
}
