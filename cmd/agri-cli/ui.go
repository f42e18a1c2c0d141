// Package main provides UI utilities for the agriculture assistant CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// UI provides user-friendly output utilities.
type UI struct {
	noColor  bool
	jsonMode bool
}

// NewUI creates a new UI instance.
func NewUI(jsonMode, noColor bool) *UI {
	return &UI{noColor: noColor, jsonMode: jsonMode}
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
	}
}

// Info prints an informational message.
func (ui *UI) Info(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("• %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgCyan).Printf("• %s\n", fmt.Sprintf(format, args...))
	}
}

// Heading prints a bold section heading.
func (ui *UI) Heading(text string) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Println(text)
	} else {
		color.New(color.Bold).Println(text)
	}
}

// Spinner starts an indeterminate spinner with a message. Returns a
// stop function. In JSON mode the spinner is a no-op.
func (ui *UI) Spinner(message string) func() {
	if ui.jsonMode {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	if !ui.noColor {
		_ = s.Color("cyan")
	}
	s.Start()
	return s.Stop
}
