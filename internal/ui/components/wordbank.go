package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingobee/lingobee/internal/ui/theme"
)

// WordBank renders a sentence-building selector: the answer assembled so
// far on top, the remaining word chips below with a movable cursor. It is
// a pure view over externally owned word lists; the owning screen applies
// selections and calls SetWords to resync.
type WordBank struct {
	Available []string
	Selected  []string
	Cursor    int
	Disabled  bool
}

// NewWordBank creates a word bank over the given slices.
func NewWordBank(available, selected []string) WordBank {
	return WordBank{
		Available: available,
		Selected:  selected,
	}
}

// SetWords replaces both lists and clamps the cursor.
func (w *WordBank) SetWords(available, selected []string) {
	w.Available = available
	w.Selected = selected
	if w.Cursor >= len(available) {
		w.Cursor = len(available) - 1
	}
	if w.Cursor < 0 {
		w.Cursor = 0
	}
}

// Focused returns the word under the cursor, if any.
func (w WordBank) Focused() (string, bool) {
	if w.Disabled || len(w.Available) == 0 {
		return "", false
	}
	return w.Available[w.Cursor], true
}

// LastSelected returns the most recently selected word, if any.
func (w WordBank) LastSelected() (string, bool) {
	if len(w.Selected) == 0 {
		return "", false
	}
	return w.Selected[len(w.Selected)-1], true
}

// Update moves the cursor. Selection itself is handled by the owner.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	if w.Disabled {
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if w.Cursor > 0 {
			w.Cursor--
		}
	case "right", "l":
		if w.Cursor < len(w.Available)-1 {
			w.Cursor++
		}
	}

	return w, nil
}

// View renders the answer line and the remaining chips.
func (w WordBank) View() string {
	var b strings.Builder

	answer := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your answer:") + " "
	if len(w.Selected) == 0 {
		answer += lipgloss.NewStyle().Foreground(theme.Border).Render("____ ____ ____")
	} else {
		chips := make([]string, 0, len(w.Selected))
		for _, word := range w.Selected {
			chips = append(chips, theme.WordChip.Render(word))
		}
		answer += lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	}
	b.WriteString(answer)
	b.WriteString("\n\n")

	if len(w.Available) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("(all words used)"))
		return b.String()
	}

	chips := make([]string, 0, len(w.Available))
	for i, word := range w.Available {
		switch {
		case w.Disabled:
			chips = append(chips, theme.WordChipUsed.Render(word))
		case i == w.Cursor:
			chips = append(chips, theme.WordChipFocused.Render(word))
		default:
			chips = append(chips, theme.WordChip.Render(word))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, chips...))

	return b.String()
}
