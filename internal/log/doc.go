// Package log provides secure logging functionality with automatic sanitization
// of password material, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of password-bearing attributes
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// passaudit handles raw passwords in memory throughout an analysis, so the
// SecureHandler automatically blanks anything password-shaped in log output:
//   - Attribute keys naming passwords, passphrases, candidates, or secrets
//   - Credential-shaped values detected by pattern matching (JWTs, bearer
//     and basic auth strings, private key markers)
//
// Even in verbose mode, such values are masked to prevent a debug session
// from writing audited passwords into shell history or log files. Truncated
// fingerprints and file checksums are intentionally left loggable; they are
// the supported way to reference a password in logs.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("analysis finished",
//	    "password", "hunter2",        // Will be masked
//	    "fingerprint", "a1b2c3d4e5f6", // Stays visible
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
