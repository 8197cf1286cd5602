package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/passaudit/internal/config"
	"github.com/nao1215/passaudit/internal/database"
	"github.com/nao1215/passaudit/internal/model"
	"github.com/nao1215/passaudit/internal/wordlist"
	"github.com/spf13/cobra"
)

// NewWordlistCmd creates the wordlist command.
func NewWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Generate a targeted wordlist from personal keywords",
		Long: `Wordlist expands personal keywords into password candidates.

Each keyword is tokenized and expanded with case variants, leetspeak
substitutions, separator combinations, and year decorations. The result
is deduplicated, capped, and written one candidate per line with a
SHA3-256 checksum for chain of custody.

Recurring engagement settings can live in a configuration file profile;
CLI flags always override profile values.

Examples:
  # Generate from personal keywords
  passaudit wordlist -i alice,rex,acme

  # Decorate with specific years
  passaudit wordlist -i rex -y "1990-1995,2024"

  # Disable leetspeak, cap at 10000 candidates
  passaudit wordlist -i rex --no-leet --max-size 10000

  # Use an engagement profile from the config file
  passaudit wordlist -i rex -p corporate

  # Print the generation report as JSON
  passaudit wordlist -i rex -j

Configuration file (.passaudit) example:
  defaults:
    separators: ["", "_", "-", "."]
  profiles:
    corporate:
      years: "2018-2026"
      maxSize: 100000
    ctf:
      leet: false
      maxSize: 5000`,
		Args: cobra.NoArgs,
		RunE: runWordlistCmd,
	}

	// Seed keyword flags
	cmd.Flags().StringSliceP("inputs", "i", nil,
		"Seed keywords to expand (names, pets, dates)")

	// Expansion flags
	cmd.Flags().StringP("years", "y", "",
		"Years for decoration: comma-separated years and FROM-TO ranges (default: current year window)")
	cmd.Flags().StringSliceP("separators", "s", wordlist.DefaultSeparators(),
		"Joiner strings for combining token pairs")
	cmd.Flags().Bool("no-leet", false,
		"Disable leetspeak substitution")
	cmd.Flags().Int("leet-max", wordlist.DefaultLeetBudget,
		"Per-token leetspeak variant budget")
	cmd.Flags().Int("max-size", wordlist.DefaultMaxSize,
		"Hard cap on produced candidates")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Output file path for the wordlist")
	cmd.Flags().BoolP("json", "j", false,
		"Print the generation report in JSON format")

	// Configuration file flags
	cmd.Flags().StringP("profile", "p", "",
		"Named profile from the configuration file")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .passaudit in current or home directory)")

	// Database flags
	cmd.Flags().Bool("no-save", false,
		"Do not record the run in the audit database")

	return cmd
}

// runWordlistCmd executes the wordlist command.
func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	// Build config from profile and flags
	cfg, err := buildWordlistConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runWordlist(ctx, cfg, logger)
}

// buildWordlistConfig creates a Config from the configuration file profile
// and wordlist command flags. Precedence, lowest first: built-in defaults,
// config file defaults, selected profile, explicitly set CLI flags.
func buildWordlistConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Inputs, err = cmd.Flags().GetStringSlice("inputs")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	profileName, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	// Load profiles from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip profiles if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Profiles, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else if profileName != "" {
		// A profile was requested but no config file exists to define it
		return nil, fmt.Errorf("%w: %s (no configuration file found)", config.ErrProfileNotFound, profileName)
	}

	// Apply file defaults and the selected profile before flags so that
	// explicitly set flags win below
	if cfg.Profiles != nil {
		profile, ok := cfg.Profiles.GetProfile(profileName)
		if profileName != "" && !ok {
			return nil, fmt.Errorf("%w: %s", config.ErrProfileNotFound, profileName)
		}
		cfg.ApplyProfile(profile)
	}

	if cmd.Flags().Changed("years") {
		cfg.Years, err = cmd.Flags().GetString("years")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("separators") {
		cfg.Separators, err = cmd.Flags().GetStringSlice("separators")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("no-leet") {
		noLeet, err := cmd.Flags().GetBool("no-leet")
		if err != nil {
			return nil, err
		}
		cfg.Leet = !noLeet
	}

	if cmd.Flags().Changed("leet-max") {
		cfg.LeetMax, err = cmd.Flags().GetInt("leet-max")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("max-size") {
		cfg.MaxSize, err = cmd.Flags().GetInt("max-size")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputPath, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runWordlist executes the generation.
func runWordlist(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Inputs) == 0 {
		return config.ErrNoInputs
	}

	// Keyword values are personal context; log the count only
	logger.Info("starting wordlist generation",
		"keywords", len(cfg.Inputs),
		"maxSize", cfg.MaxSize,
		"leet", cfg.Leet,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	years := wordlist.ParseYears(cfg.Years)

	gen := wordlist.NewGenerator(
		wordlist.WithYears(years),
		wordlist.WithSeparators(cfg.Separators),
		wordlist.WithLeet(cfg.Leet),
		wordlist.WithLeetBudget(cfg.LeetMax),
		wordlist.WithMaxSize(cfg.MaxSize),
		wordlist.WithLogger(logger),
	)

	startTime := time.Now()
	result, err := gen.Generate(ctx, cfg.Inputs)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	checksum, err := wordlist.WriteFile(cfg.OutputPath, result.Candidates)
	if err != nil {
		return fmt.Errorf("failed to write wordlist: %w", err)
	}

	genReport := model.NewGenerationReport(cfg.Inputs)
	genReport.BaseTokens = len(result.BaseTokens)
	genReport.Candidates = len(result.Candidates)
	genReport.Truncated = result.Truncated
	genReport.MaxSize = cfg.MaxSize
	genReport.Years = years
	genReport.Separators = cfg.Separators
	genReport.LeetEnabled = cfg.Leet
	genReport.LeetMax = cfg.LeetMax
	genReport.OutputPath = cfg.OutputPath
	genReport.Checksum = checksum
	genReport.Duration = time.Since(startTime)

	if err := outputGenerationReport(cfg, genReport); err != nil {
		return err
	}

	return saveGenerationReport(ctx, db, genReport, logger)
}

// outputGenerationReport prints the generation summary.
func outputGenerationReport(cfg *config.Config, genReport *model.GenerationReport) error {
	if cfg.JSONReport {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(genReport)
	}

	fmt.Printf("Wordlist written to %s\n\n", genReport.OutputPath)
	fmt.Printf("  Seed keywords:  %d\n", len(genReport.Keywords))
	fmt.Printf("  Base tokens:    %d\n", genReport.BaseTokens)
	fmt.Printf("  Candidates:     %d\n", genReport.Candidates)
	if genReport.Truncated {
		fmt.Printf("  Truncated:      yes (size cap %d reached)\n", genReport.MaxSize)
	}
	fmt.Printf("  SHA3-256:       %s\n", genReport.Checksum)
	fmt.Printf("  Elapsed:        %s\n", genReport.Duration.Round(time.Millisecond))

	return nil
}

// saveGenerationReport persists a wordlist run to the audit database.
// A nil database means saving is disabled and the call is a no-op.
func saveGenerationReport(ctx context.Context, db *database.AuditDB, genReport *model.GenerationReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	if err := db.SaveWordlistRun(ctx, genReport); err != nil {
		return fmt.Errorf("failed to save wordlist run: %w", err)
	}

	logger.Info("wordlist run saved to database",
		"candidates", genReport.Candidates,
		"output", genReport.OutputPath,
	)
	return nil
}
