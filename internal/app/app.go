package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/progress"
	engine "github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/router"
	"github.com/lingobee/lingobee/internal/screen"
	"github.com/lingobee/lingobee/internal/screens/home"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/lingobee/lingobee/internal/ui/layout"
)

// Options carries the wired services the TUI runs on.
type Options struct {
	Curriculum *curriculum.Curriculum
	Repo       store.ProgressRepo
	Events     store.EventRepo
	Recorder   *progress.Recorder
	UserID     string
	Shuffler   engine.Shuffler
}

type headerStatsMsg struct {
	Stats layout.HeaderStats
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Curriculum: opts.Curriculum,
		Repo:       opts.Repo,
		Events:     opts.Events,
		Recorder:   opts.Recorder,
		UserID:     opts.UserID,
		Shuffler:   opts.Shuffler,
	})
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeaderStats())
}

// loadHeaderStats refreshes the level/XP/streak shown in the header.
func (m AppModel) loadHeaderStats() tea.Cmd {
	repo := m.opts.Repo
	userID := m.opts.UserID
	return func() tea.Msg {
		l, err := repo.Ledger(context.Background(), userID)
		if err != nil {
			return nil
		}
		return headerStatsMsg{Stats: layout.HeaderStats{
			Level:      l.Level,
			XP:         l.XP,
			StreakDays: l.StreakDays,
		}}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.stats = msg.Stats
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Screen transitions can follow a recorded completion; refresh
		// the header alongside.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok {
				return m, h.HandleEscape()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
