// Package termsize reports the width of the attached terminal.
package termsize

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when no width can be determined.
const DefaultWidth = 80

// Width returns the column count of the terminal on fd. It falls back to
// $COLUMNS and then to DefaultWidth; the result is always positive.
func Width(fd uintptr) int {
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		return w
	}
	return FromEnv(os.Getenv("COLUMNS"))
}

// FromEnv parses a $COLUMNS value, returning DefaultWidth when it is not a
// positive integer.
func FromEnv(columns string) int {
	n, err := strconv.Atoi(strings.TrimSpace(columns))
	if err != nil || n <= 0 {
		return DefaultWidth
	}
	return n
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
