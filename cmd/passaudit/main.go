// Package main provides the entry point for the passaudit CLI.
//
// Passaudit analyzes password strength and generates targeted wordlists
// for authorized security audits.
//
// Usage:
//
//	passaudit analyze <password>
//	passaudit wordlist -i <keyword,keyword,...>
//
// See --help for all available options.
package main

// main is the entry point for passaudit.
func main() {
	Execute()
}
