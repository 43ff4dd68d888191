/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tui

import "github.com/charmbracelet/lipgloss"

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

type styles struct {
	title, heading, help, status, errText, up, down, warning, unknown, pane, focusedPane lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		errText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)),
		up: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		down: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		unknown: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaComment)).
			Foreground(lipgloss.Color(draculaForeground)),
		focusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Foreground(lipgloss.Color(draculaForeground)),
	}
}

func (s *styles) forStatus(status string) lipgloss.Style {
	switch status {
	case "up":
		return s.up
	case "down", "critical":
		return s.down
	case "warning":
		return s.warning
	default:
		return s.unknown
	}
}

func (s *styles) accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple))
}
