// Package main provides the entry point for the passaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passaudit",
		Short: "Password strength analysis and targeted wordlist generation",
		Long: `Passaudit analyzes password strength and generates targeted wordlists
for authorized security audits.

Analysis scores passwords 0-4 with pattern matching (dictionary words,
keyboard walks, dates, repeats), reports entropy and estimated crack time,
and suggests concrete improvements. Wordlist generation expands personal
keywords (names, pets, dates) with case, leetspeak, separator, and year
transformations for targeted password audits.

Passwords are identified by fingerprint only; the raw password is never
logged or stored.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewWordlistCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewTUICmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
