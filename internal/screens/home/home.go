package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/ledger"
	"github.com/lingobee/lingobee/internal/progress"
	engine "github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/router"
	"github.com/lingobee/lingobee/internal/screen"
	"github.com/lingobee/lingobee/internal/screens/history"
	"github.com/lingobee/lingobee/internal/screens/practicemap"
	quizscreen "github.com/lingobee/lingobee/internal/screens/quiz"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/lingobee/lingobee/internal/ui/components"
)

// Deps are the services the home screen wires into the rest of the app.
type Deps struct {
	Curriculum *curriculum.Curriculum
	Repo       store.ProgressRepo
	Events     store.EventRepo
	Recorder   *progress.Recorder
	UserID     string
	Shuffler   engine.Shuffler
}

type statsLoadedMsg struct {
	Ledger ledger.Ledger
	Stats  store.PracticeStats
	Err    error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	ledger     ledger.Ledger
	stats      store.PracticeStats
	nodeCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:      deps,
		nodeCount: deps.Curriculum.NodeCount(),
	}

	startQuiz := func(node *curriculum.Node, sectionID string) screen.Screen {
		return quizscreen.New(node, sectionID, quizscreen.Deps{
			UserID:   deps.UserID,
			Repo:     deps.Repo,
			Events:   deps.Events,
			Recorder: deps.Recorder,
			Shuffler: deps.Shuffler,
		})
	}

	menuLabels := []string{"PRACTICE", "HISTORY", "QUIT"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practicemap.New(deps.Curriculum, deps.Repo, deps.UserID, startQuiz),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events, deps.UserID)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	h.menuLabels = menuLabels
	return h
}

// Init loads the ledger and lifetime stats for the dashboard. Runs again
// each time the home screen regains focus.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		l, err := h.deps.Repo.Ledger(ctx, h.deps.UserID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		stats, err := h.deps.Repo.Stats(ctx, h.deps.UserID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Ledger: l, Stats: stats}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.ledger = msg.Ledger
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 20 || width < 70
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(
		h.ledger, h.stats.TotalNodesCompleted, h.nodeCount, cw, compact))
	if !compact {
		sections = append(sections, renderXPBar(h.ledger, cw))
	}
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))

	return renderCentered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
