package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ShouldUseColor reports whether stdout should get ANSI color. The
// NO_COLOR and CLICOLOR conventions take precedence over TTY detection.
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		// https://no-color.org — any value disables color.
		return false
	}
	switch strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) {
	case "", "0":
		// not forced
	default:
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ReadPassword reads a line from the terminal without echoing it.
func ReadPassword() (string, error) {
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
