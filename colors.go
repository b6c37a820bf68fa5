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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
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
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

// Palette styles diagnostic lines. A disabled palette returns text as is.
type Palette struct {
	enabled bool
	err     lipgloss.Style
}

// NewPalette builds styles for the stream w. The renderer drops colors on
// its own when w is not a terminal.
func NewPalette(w io.Writer, enabled bool) *Palette {
	if !enabled {
		return &Palette{}
	}

	r := lipgloss.NewRenderer(w)
	// Darker colors on light backgrounds, bright ones on dark.
	errColor := lipgloss.Color("9")
	if detectTerminalMode() == TerminalModeLight {
		errColor = lipgloss.Color("1")
	}

	return &Palette{
		enabled: true,
		err:     r.NewStyle().Foreground(errColor).Bold(true),
	}
}

func (p *Palette) Error(text string) string {
	if !p.enabled {
		return text
	}
	return p.err.Render(text)
}
