package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/passaudit/internal/config"
	"github.com/nao1215/passaudit/internal/database"
	"github.com/spf13/cobra"
)

// defaultHistoryLimit bounds the recent listings.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
// This command queries analyses and wordlist runs stored in the audit database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [fingerprint]",
		Short: "Show stored audit history",
		Long: `History lists analyses and wordlist runs recorded in the audit database.

Without arguments it lists recent analyses across all fingerprints.
With a fingerprint argument it lists every analysis of that password,
newest first, and reports whether the score improved, worsened, or stayed
unchanged between the latest two analyses.

Passwords themselves are never stored; the fingerprint is the truncated
SHA3-256 digest printed by the analyze command.

Examples:
  # List recent analyses
  passaudit history

  # List the last 50 analyses
  passaudit history --limit 50

  # Show all analyses of one password and its score trend
  passaudit history a1b2c3d4e5f6

  # List wordlist generation runs
  passaudit history --runs

  # Machine-readable output
  passaudit history -j`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// Listing flags
	cmd.Flags().Int("limit", defaultHistoryLimit,
		"Maximum number of rows to list (0 lists all)")
	cmd.Flags().Bool("runs", false,
		"List wordlist generation runs instead of analyses")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output history in JSON format")

	// Database flags
	cmd.Flags().String("db-dir", "",
		"Directory for the audit database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	listRuns, err := cmd.Flags().GetBool("runs")
	if err != nil {
		return err
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Open database
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Handle --runs flag
	if listRuns {
		return listGenerationRuns(ctx, db, limit, jsonOutput)
	}

	// Handle fingerprint argument
	if len(args) > 0 {
		return showFingerprintHistory(ctx, db, args[0], jsonOutput)
	}

	return listRecentAnalyses(ctx, db, limit, jsonOutput)
}

// listRecentAnalyses lists the most recent analyses across all fingerprints.
func listRecentAnalyses(ctx context.Context, db *database.AuditDB, limit int, jsonOutput bool) error {
	records, err := db.ListAnalyses(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if jsonOutput {
		return outputHistoryJSON(records)
	}

	if len(records) == 0 {
		fmt.Println("No analyses found in the audit database.")
		fmt.Println("\nUse 'passaudit analyze' to analyze a password.")
		return nil
	}

	fmt.Printf("Recent analyses (%d):\n\n", len(records))
	printAnalysisTable(records)
	fmt.Println("\nUse 'passaudit history <fingerprint>' to see all analyses of one password.")

	return nil
}

// showFingerprintHistory lists every analysis of one fingerprint together
// with the score trend between the latest two.
func showFingerprintHistory(ctx context.Context, db *database.AuditDB, fingerprint string, jsonOutput bool) error {
	records, err := db.AnalysisHistory(ctx, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	trend, err := db.ScoreTrend(ctx, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to get score trend: %w", err)
	}

	if jsonOutput {
		return outputHistoryJSON(fingerprintHistory{
			Fingerprint: fingerprint,
			Trend:       trend.String(),
			Analyses:    records,
		})
	}

	if len(records) == 0 {
		fmt.Printf("No analyses found for %s\n", fingerprint)
		fmt.Println("\nUse 'passaudit analyze' to analyze a password.")
		return nil
	}

	fmt.Printf("Analysis history for %s (%d analyses):\n\n", fingerprint, len(records))
	printAnalysisTable(records)

	if trend != database.TrendUnknown {
		fmt.Printf("\nTrend: %s\n", formatTrend(trend))
	}

	return nil
}

// listGenerationRuns lists recorded wordlist generation runs.
func listGenerationRuns(ctx context.Context, db *database.AuditDB, limit int, jsonOutput bool) error {
	records, err := db.ListWordlistRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list wordlist runs: %w", err)
	}

	if jsonOutput {
		return outputHistoryJSON(records)
	}

	if len(records) == 0 {
		fmt.Println("No wordlist runs found in the audit database.")
		fmt.Println("\nUse 'passaudit wordlist' to generate a wordlist.")
		return nil
	}

	fmt.Printf("Wordlist runs (%d):\n\n", len(records))
	fmt.Printf("  %-6s  %-20s  %-10s  %-9s  %s\n",
		"ID", "DATE", "CANDIDATES", "TRUNCATED", "KEYWORDS")
	fmt.Println("  " + strings.Repeat("-", 70))

	for _, record := range records {
		truncated := "no"
		if record.Truncated {
			truncated = "yes"
		}
		fmt.Printf("  %-6d  %-20s  %-10d  %-9s  %s\n",
			record.ID,
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.CandidateCount,
			truncated,
			record.Keywords,
		)
	}

	return nil
}

// printAnalysisTable prints analysis records as an aligned table.
func printAnalysisTable(records []database.AnalysisRecord) {
	fmt.Printf("  %-12s  %-20s  %-5s  %-8s  %-10s  %s\n",
		"FINGERPRINT", "DATE", "SCORE", "ENTROPY", "ESTIMATOR", "CRACK TIME")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, record := range records {
		fmt.Printf("  %-12s  %-20s  %-5d  %-8.1f  %-10s  %s\n",
			record.Fingerprint,
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.Score,
			record.EntropyBits,
			record.Estimator,
			record.CrackTimeDisplay,
		)
	}
}

// formatTrend formats the score trend for display.
func formatTrend(trend database.Trend) string {
	switch trend {
	case database.TrendImproved:
		return "IMPROVED (score increased)"
	case database.TrendWorsened:
		return "WORSENED (score decreased)"
	case database.TrendUnchanged:
		return "UNCHANGED"
	default:
		return "UNKNOWN"
	}
}

// fingerprintHistory is the JSON shape for per-fingerprint history output.
type fingerprintHistory struct {
	// Fingerprint identifies the analyzed password.
	Fingerprint string `json:"fingerprint"`

	// Trend is how the score moved between the latest two analyses.
	Trend string `json:"trend"`

	// Analyses are the stored records, newest first.
	Analyses []database.AnalysisRecord `json:"analyses"`
}

// outputHistoryJSON writes history records as indented JSON to stdout.
func outputHistoryJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
