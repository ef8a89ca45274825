package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lingobee/lingobee/internal/ledger"
	"github.com/lingobee/lingobee/internal/ui/components"
	"github.com/lingobee/lingobee/internal/ui/theme"
)

// Block-letter title.
const titleFull = `██╗     ██╗███╗   ██╗ ██████╗  ██████╗ ██████╗ ███████╗███████╗
██║     ██║████╗  ██║██╔════╝ ██╔═══██╗██╔══██╗██╔════╝██╔════╝
██║     ██║██╔██╗ ██║██║  ███╗██║   ██║██████╔╝█████╗  █████╗
██║     ██║██║╚██╗██║██║   ██║██║   ██║██╔══██╗██╔══╝  ██╔══╝
███████╗██║██║ ╚████║╚██████╔╝╚██████╔╝██████╔╝███████╗███████╗
╚══════╝╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝╚══════╝`

const titleCompact = "🐝 L · I · N · G · O · B · E · E 🐝"

const tagline = "Learn a language, one bee-sized bite at a time"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 66 {
		w = 66
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}

	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the progression dashboard in a bordered box.
func renderStatsBar(l ledger.Ledger, completed, total, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	nodeStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", l.Level)),
			xpStyle.Render(fmt.Sprintf("%dxp", l.XP)),
			streakStyle.Render(fmt.Sprintf("★%d", l.StreakDays)),
			nodeStyle.Render(fmt.Sprintf("%d/%d", completed, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", l.Level)),
			xpStyle.Render(fmt.Sprintf("⚡ %d/%d XP", l.XP, ledger.LevelThreshold)),
			streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", l.StreakDays)),
			nodeStyle.Render(fmt.Sprintf("🍯 %d/%d NODES", completed, total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderXPBar shows how close the user is to the next level.
func renderXPBar(l ledger.Ledger, cw int) string {
	bar := components.NewProgressBar("Next level", l.XP, ledger.LevelThreshold, true, cw-4)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(bar.View())
}

// menuButtonWidth is the fixed width for menu buttons.
const menuButtonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(menuButtonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(menuButtonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderCentered centers the home content within the available area.
func renderCentered(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
