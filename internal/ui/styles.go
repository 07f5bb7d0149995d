package ui

import (
	"fmt"

	"github.com/ccnlabs/helpdesk/internal/model"
)

// ANSI256 color codes for ticket status badges.
const (
	colorOpen       = 203 // red
	colorAssigned   = 74  // blue
	colorInProgress = 220 // gold
	colorClosed     = 245 // gray
)

var noColor bool

// RenderStatus returns the status display name colored by state.
func RenderStatus(s model.Status) string {
	name := s.DisplayName()
	if noColor {
		return name
	}
	var code int
	switch s {
	case model.StatusOpen:
		code = colorOpen
	case model.StatusAssigned:
		code = colorAssigned
	case model.StatusInProgress:
		code = colorInProgress
	case model.StatusClosed:
		code = colorClosed
	default:
		return name
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, name)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
