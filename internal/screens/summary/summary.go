package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingobee/lingobee/internal/router"
	"github.com/lingobee/lingobee/internal/screen"
	"github.com/lingobee/lingobee/internal/ui/components"
	"github.com/lingobee/lingobee/internal/ui/layout"
	"github.com/lingobee/lingobee/internal/ui/theme"
)

// Outcome is everything the summary shows about a finished session.
type Outcome struct {
	NodeTitle    string
	Completed    bool
	CorrectCount int
	Total        int
	HeartsLeft   int
	Duration     time.Duration

	// Reward fields are zero when the session was not completed.
	XPGained   int
	LeveledUp  bool
	Level      int
	StreakDays int
}

// SummaryScreen displays the result of a practice session.
type SummaryScreen struct {
	outcome Outcome
	btn     components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(outcome Outcome) *SummaryScreen {
	s := &SummaryScreen{outcome: outcome}
	s.btn = components.NewButton("CONTINUE", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	s.btn, cmd = s.btn.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	o := s.outcome

	var b strings.Builder
	b.WriteString("\n")

	if o.Completed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Node complete! 🎉"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Out of hearts"))
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(o.NodeTitle))
	b.WriteString("\n\n")

	mins := int(o.Duration.Minutes())
	secs := int(o.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d/%d        Hearts left: %d        Time: %d:%02d",
		o.CorrectCount, o.Total, o.HeartsLeft, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if o.Completed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("+%d XP", o.XPGained)))
		b.WriteString("\n")

		if o.LeveledUp {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render(fmt.Sprintf("Level up! You are now level %d 🐝", o.Level)))
			b.WriteString("\n")
		}

		dayWord := "days"
		if o.StreakDays == 1 {
			dayWord = "day"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Streak: %d %s", o.StreakDays, dayWord)))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Finish every question to earn this node's XP."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.btn.View()))
	b.WriteString("\n")

	return b.String()
}
