package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Questboard theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconRocket  = "🚀"
	IconQuest   = "🕹️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconStar    = "⭐"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconWave    = "👋"
)

var (
	cPrimary = lipgloss.Color("45")  // cyan
	cAccent  = lipgloss.Color("39")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2     = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
	Key    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn   = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Strike = lipgloss.NewStyle().Strikethrough(true).Foreground(cMuted)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// DisplayName substitutes the placeholder for blank usernames. Applied only
// at render time; stored usernames are never rewritten.
func DisplayName(username string) string {
	if strings.TrimSpace(username) == "" {
		return "Anonymous"
	}
	return username
}

// XPBar renders a fixed-width progress bar like [####------].
func XPBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
