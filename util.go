package main

import (
	"strings"
)

//
// Various utility functions used by the room graph, handlers, etc.
//

// normalize lower-cases and trims a token the same way player input is
// normalized, so stored keys and typed words compare equal.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isQuit reports whether a normalized line asks to leave the game.
func isQuit(line string) bool {
	switch line {
	case "quit", "exit", "bye":
		return true
	}
	return false
}
