// Package tui provides the interactive terminal interface.
//
// The root Model routes between a main menu and two form views, one for
// single password analysis and one for wordlist generation. Results render
// inline; esc returns to the menu and ctrl+c quits from anywhere.
//
// Passwords typed into the analyze form are masked on screen and never
// reach a log or the filesystem. Leaving the form rebuilds it so entered
// secrets do not linger in memory between visits.
package tui
