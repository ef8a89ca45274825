package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type pressedMsg struct{}

func pressCmd() tea.Cmd {
	return func() tea.Msg { return pressedMsg{} }
}

func TestButton_EnterFiresOnPress(t *testing.T) {
	b := NewButton("CONTINUE", true, pressCmd)

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from pressing a focused button")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Fatalf("cmd produced %T, want pressedMsg", cmd())
	}
}

func TestButton_UnfocusedIgnoresInput(t *testing.T) {
	b := NewButton("CONTINUE", false, pressCmd)

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("unfocused button should not fire")
	}
}

func TestButton_ViewShowsLabel(t *testing.T) {
	b := NewButton("CONTINUE", true, nil)
	if !strings.Contains(b.View(), "CONTINUE") {
		t.Error("view missing label")
	}
}

func TestProgressBar_CountReadout(t *testing.T) {
	p := NewProgressBar("Next level", 95, 100, true, 40)

	view := p.View()
	if !strings.Contains(view, "Next level") {
		t.Error("view missing label")
	}
	if !strings.Contains(view, "95/100") {
		t.Error("view missing count readout")
	}
}

func TestProgressBar_ClampsFill(t *testing.T) {
	tests := []struct {
		name    string
		current int
		goal    int
	}{
		{"overflow", 150, 100},
		{"negative", -5, 100},
		{"zero goal", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgressBar("", tt.current, tt.goal, false, 30)
			if got := lipgloss.Width(p.View()); got != 30 {
				t.Errorf("rendered width = %d, want 30", got)
			}
		})
	}
}
