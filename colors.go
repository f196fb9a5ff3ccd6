// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme holds the palette used for tree rendering and the explorer
type ColorScheme struct {
	RedNode     lipgloss.Color
	BlackNode   lipgloss.Color
	PlainNode   lipgloss.Color
	Highlight   lipgloss.Color
	Branch      lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Title       lipgloss.Color
	TextMuted   lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI sequences for plain fmt output; reset by InitializeColors
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG format is typically "foreground;background"
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := os.Getenv(env); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		RedNode:     lipgloss.Color("160"),
		BlackNode:   lipgloss.Color("16"),
		PlainNode:   lipgloss.Color("18"),
		Highlight:   lipgloss.Color("166"),
		Branch:      lipgloss.Color("244"),
		Border:      lipgloss.Color("250"),
		BorderFocus: lipgloss.Color("25"),
		Title:       lipgloss.Color("25"),
		TextMuted:   lipgloss.Color("240"),
		Success:     lipgloss.Color("28"),
		Error:       lipgloss.Color("160"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		RedNode:     lipgloss.Color("203"),
		BlackNode:   lipgloss.Color("252"),
		PlainNode:   lipgloss.Color("117"),
		Highlight:   lipgloss.Color("220"),
		Branch:      lipgloss.Color("240"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Title:       lipgloss.Color("39"),
		TextMuted:   lipgloss.Color("245"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
