package practicemap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/router"
	"github.com/lingobee/lingobee/internal/screen"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/lingobee/lingobee/internal/ui/components"
	"github.com/lingobee/lingobee/internal/ui/layout"
	"github.com/lingobee/lingobee/internal/ui/theme"
)

type rowKind int

const (
	rowUnitHeader rowKind = iota
	rowSectionHeader
	rowNode
)

type row struct {
	kind      rowKind
	unit      *curriculum.Unit
	section   *curriculum.Section
	node      *curriculum.Node
	sectionID string
}

type statusesLoadedMsg struct {
	Statuses map[string]curriculum.NodeStatus
	Err      error
}

// StartQuiz builds the screen that runs a practice session for a node.
// Injected so the map does not depend on the quiz screen's wiring.
type StartQuiz func(node *curriculum.Node, sectionID string) screen.Screen

// MapScreen displays the curriculum organized by unit and section, with
// each node's lock state.
type MapScreen struct {
	curriculum *curriculum.Curriculum
	repo       store.ProgressRepo
	userID     string
	startQuiz  StartQuiz

	rows         []row
	cursor       int
	scrollOffset int
	statuses     map[string]curriculum.NodeStatus
	loaded       bool
	errMsg       string
	spinner      components.Spinner
}

var _ screen.Screen = (*MapScreen)(nil)
var _ screen.KeyHintProvider = (*MapScreen)(nil)

// New creates a new MapScreen.
func New(c *curriculum.Curriculum, repo store.ProgressRepo, userID string, startQuiz StartQuiz) *MapScreen {
	var rows []row
	units := c.Units()
	for i := range units {
		u := &units[i]
		rows = append(rows, row{kind: rowUnitHeader, unit: u})
		for j := range u.Sections {
			sec := &u.Sections[j]
			rows = append(rows, row{kind: rowSectionHeader, section: sec})
			for k := range sec.Nodes {
				rows = append(rows, row{kind: rowNode, node: &sec.Nodes[k], sectionID: sec.ID})
			}
		}
	}

	s := &MapScreen{
		curriculum: c,
		repo:       repo,
		userID:     userID,
		startQuiz:  startQuiz,
		rows:       rows,
		spinner:    components.NewSpinner(),
	}

	for i, r := range s.rows {
		if r.kind == rowNode {
			s.cursor = i
			break
		}
	}

	return s
}

// Init reloads lock states. Runs again when the map regains focus, so a
// freshly completed node shows up without restarting the app.
func (s *MapScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		completed, err := s.repo.CompletedNodeIDs(context.Background(), s.userID)
		if err != nil {
			return statusesLoadedMsg{Err: err}
		}
		return statusesLoadedMsg{Statuses: curriculum.ResolveAccess(s.curriculum, completed)}
	}
	return tea.Batch(load, s.spinner.Init())
}

func (s *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.statuses = msg.Statuses
			s.errMsg = ""
			if !s.loaded {
				s.snapToNextNode()
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSection()
		case "shift+tab":
			s.prevSection()
		case "enter":
			return s, s.selectNode()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if !s.loaded {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *MapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n" + s.spinner.View() + " Loading your progress...")
	}
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowUnitHeader:
			lines = append(lines, s.renderUnitHeader(r.unit, width))
		case rowSectionHeader:
			lines = append(lines, s.renderSectionHeader(r.section, width))
		case rowNode:
			lines = append(lines, s.renderNodeRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *MapScreen) Title() string {
	return "Practice Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Section"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

// snapToNextNode puts the cursor on the first node still open to play,
// so launching the map lands on where the user left off.
func (s *MapScreen) snapToNextNode() {
	for i, r := range s.rows {
		if r.kind != rowNode {
			continue
		}
		if s.statuses[r.node.ID] == curriculum.StatusUnlocked {
			s.cursor = i
			return
		}
	}
}

// moveCursor moves the cursor by delta, skipping header rows.
func (s *MapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowNode {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSection jumps the cursor to the first node of the next section.
func (s *MapScreen) nextSection() {
	current := s.rows[s.cursor].sectionID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowNode && s.rows[i].sectionID != current {
			s.cursor = i
			return
		}
	}
}

// prevSection jumps the cursor to the first node of the previous section.
func (s *MapScreen) prevSection() {
	current := s.rows[s.cursor].sectionID

	prevStart := -1
	var prevSection string
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowNode && s.rows[i].sectionID != current {
			prevSection = s.rows[i].sectionID
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowNode || s.rows[i].sectionID != prevSection {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowNode {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *MapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the headers above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind != rowNode {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectNode handles enter on the current node. Locked nodes are inert;
// completed nodes can be replayed.
func (s *MapScreen) selectNode() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowNode || r.node == nil {
		return nil
	}
	if s.statuses[r.node.ID] == curriculum.StatusLocked {
		return nil
	}

	quizScreen := s.startQuiz(r.node, r.sectionID)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizScreen}
	}
}

// renderUnitHeader renders a unit banner row.
func (s *MapScreen) renderUnitHeader(u *curriculum.Unit, width int) string {
	name := fmt.Sprintf("UNIT %d  %s", u.Number, strings.ToUpper(u.Title))
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

// renderSectionHeader renders a section header row.
func (s *MapScreen) renderSectionHeader(sec *curriculum.Section, width int) string {
	title := sec.Title
	if s.sectionDone(sec) {
		title += "  ✓"
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(0, 0, 0, 4).
		Render(title)
}

func (s *MapScreen) sectionDone(sec *curriculum.Section) bool {
	for _, n := range sec.Nodes {
		if s.statuses[n.ID] != curriculum.StatusCompleted {
			return false
		}
	}
	return len(sec.Nodes) > 0
}

// renderNodeRow renders a single node row.
func (s *MapScreen) renderNodeRow(r row, selected bool, width int) string {
	if r.node == nil {
		return ""
	}

	status := s.statuses[r.node.ID]
	icon := status.Icon()
	label := status.Label()
	reward := fmt.Sprintf("+%d xp", r.node.XPReward)

	padding := 6
	iconWidth := 3
	rewardWidth := 8
	labelWidth := 10
	spacing := 4
	titleWidth := width - padding - iconWidth - rewardWidth - labelWidth - spacing
	if titleWidth < 10 {
		titleWidth = 10
	}

	title := r.node.Title
	if len(title) > titleWidth {
		title = title[:titleWidth-1] + "…"
	}

	var titleStyle, rewardStyle, labelStyle lipgloss.Style
	if selected {
		titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		rewardStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch status {
		case curriculum.StatusCompleted:
			titleStyle = lipgloss.NewStyle().Foreground(theme.Success)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case curriculum.StatusUnlocked:
			titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			rewardStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	titlePadded := fmt.Sprintf("%-*s", titleWidth, title)
	return fmt.Sprintf("    %s%s %s  %s  %s",
		cursor,
		icon,
		titleStyle.Render(titlePadded),
		rewardStyle.Render(reward),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)
}
