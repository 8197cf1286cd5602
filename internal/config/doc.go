// Package config provides configuration structures and utilities for passaudit.
// It defines the analysis and wordlist generation options, the .passaudit
// profile file format, and XDG directory helpers for the audit database.
package config
