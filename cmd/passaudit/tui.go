package main

import (
	"github.com/nao1215/passaudit/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal interface",
		Long: `Tui starts an interactive terminal interface for passaudit.

A menu offers password analysis and wordlist generation. The password
input is masked and results are shown inline. Press esc to return to
the menu, q or ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run()
		},
	}
}
