// Package terminal sizes generated maps to fit the current terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Smallest map the CLI will fit to a terminal
const (
	MinMapWidth  = 15
	MinMapHeight = 7
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// MapSize returns the largest odd map size that fits the terminal once
// reserveCols columns and reserveRows rows are kept free for other output.
func MapSize(reserveCols, reserveRows int) (width, height int) {
	termWidth, termHeight := GetSize()
	return FitMapSize(termWidth, termHeight, reserveCols, reserveRows)
}

// FitMapSize does the arithmetic behind MapSize for a known terminal size
func FitMapSize(termWidth, termHeight, reserveCols, reserveRows int) (width, height int) {
	width = termWidth - reserveCols
	height = termHeight - reserveRows

	if width < MinMapWidth {
		width = MinMapWidth
	}
	if height < MinMapHeight {
		height = MinMapHeight
	}

	// Odd sizes keep the outer wall ring on the odd room grid
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}
	return width, height
}
