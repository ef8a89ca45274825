package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lingobee/lingobee/internal/ui/theme"
)

// Button is a single focusable action. Enter or space triggers OnPress
// while focused; an unfocused button ignores input.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, focused bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Focused: focused,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render(" ▸ " + b.Label + " ")
	}
	return theme.ButtonInactive.Render("   " + b.Label + " ")
}
