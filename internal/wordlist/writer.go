package wordlist

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/sha3"
)

// WriteFile writes candidates to path, one per line, and returns the
// SHA3-256 checksum of the written bytes. The checksum lets an audit trail
// prove which list a later cracking run actually used.
//
// The file is created with mode 0600 and parent directories with 0750: a
// targeted wordlist maps a person to their likely passwords and must not
// be world-readable.
func WriteFile(path string, candidates []string) (string, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create wordlist file: %w", err)
	}

	hash := sha3.New256()
	writer := bufio.NewWriter(io.MultiWriter(file, hash))
	for _, candidate := range candidates {
		if _, err := writer.WriteString(candidate); err != nil {
			break
		}
		if err := writer.WriteByte('\n'); err != nil {
			break
		}
	}

	// A failed write sticks in the buffered writer, so Flush reports it.
	flushErr := writer.Flush()
	closeErr := file.Close()
	if flushErr != nil {
		return "", fmt.Errorf("failed to write wordlist file: %w", flushErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close wordlist file: %w", closeErr)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
