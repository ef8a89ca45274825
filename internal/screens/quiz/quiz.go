package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/progress"
	engine "github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/router"
	"github.com/lingobee/lingobee/internal/screen"
	"github.com/lingobee/lingobee/internal/screens/summary"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/lingobee/lingobee/internal/ui/components"
	"github.com/lingobee/lingobee/internal/ui/layout"
)

// Deps are the services a quiz screen needs to run and record a session.
type Deps struct {
	UserID   string
	Repo     store.ProgressRepo
	Events   store.EventRepo
	Recorder *progress.Recorder
	Shuffler engine.Shuffler
}

// QuizScreen runs one word-bank practice session for a node.
type QuizScreen struct {
	node      *curriculum.Node
	sectionID string
	deps      Deps

	sess      *engine.Session
	bank      components.WordBank
	spinner   components.Spinner
	sessionID string
	startTime time.Time

	confirmQuit bool
	saving      bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a quiz screen for the given node.
func New(node *curriculum.Node, sectionID string, deps Deps) *QuizScreen {
	s := &QuizScreen{
		node:      node,
		sectionID: sectionID,
		deps:      deps,
		spinner:   components.NewSpinner(),
		sessionID: uuid.New().String(),
		startTime: time.Now(),
	}

	sess, err := engine.NewSession(node.Questions, deps.Shuffler)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.sess = sess
	s.bank = components.NewWordBank(sess.Available(), sess.Selected())
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.sess == nil {
		return nil
	}
	return func() tea.Msg {
		err := s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			UserID:    s.deps.UserID,
			NodeID:    s.node.ID,
			Action:    "start",
		})
		return startLoggedMsg{Err: err}
	}
}

func (s *QuizScreen) Title() string {
	return s.node.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.sess != nil && s.sess.Result() == engine.Answering {
		return []layout.KeyHint{
			{Key: "←→", Description: "Move"},
			{Key: "Space", Description: "Pick word"},
			{Key: "Backspace", Description: "Undo"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
	}
}

// HandleEscape opens the quit confirmation instead of popping outright.
func (s *QuizScreen) HandleEscape() tea.Cmd {
	if s.errMsg != "" {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.confirmQuit {
		s.confirmQuit = false
		return nil
	}
	if !s.saving {
		s.confirmQuit = true
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startLoggedMsg:
		// A failed audit write never blocks practice.
		return s, nil

	case recordedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.showSummary(msg.Result)

	case exhaustedLoggedMsg:
		s.saving = false
		return s, s.showSummary(progress.Result{})

	case abandonLoggedMsg:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.saving {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.saving {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.logAbandon()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.Result() {
	case engine.Answering:
		return s.handleAnsweringKey(msg)

	case engine.Correct, engine.Incorrect:
		// Feedback overlay: any key moves on.
		if err := s.sess.Advance(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.sess.Result() == engine.Complete {
			s.saving = true
			return s, tea.Batch(s.recordCompletion(), s.spinner.Init())
		}
		s.syncBank()
		return s, nil

	case engine.Exhausted:
		s.saving = true
		return s, tea.Batch(s.logExhausted(), s.spinner.Init())
	}

	return s, nil
}

func (s *QuizScreen) handleAnsweringKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "space":
		if word, ok := s.bank.Focused(); ok {
			s.sess.SelectWord(word)
			s.syncBank()
		}
	case "backspace":
		if word, ok := s.bank.LastSelected(); ok {
			s.sess.DeselectWord(word)
			s.syncBank()
		}
	case "enter":
		if _, err := s.sess.Check(); err != nil {
			if errors.Is(err, engine.ErrEmptySelection) {
				return s, nil
			}
			s.errMsg = err.Error()
		}
	default:
		var cmd tea.Cmd
		s.bank, cmd = s.bank.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) syncBank() {
	s.bank.SetWords(s.sess.Available(), s.sess.Selected())
}

// recordCompletion logs the terminal event and persists the reward.
func (s *QuizScreen) recordCompletion() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.sessionID,
			UserID:          s.deps.UserID,
			NodeID:          s.node.ID,
			Action:          "complete",
			QuestionsServed: s.sess.Total(),
			CorrectAnswers:  s.sess.CorrectCount(),
			HeartsLeft:      s.sess.Hearts(),
			DurationSecs:    int(now.Sub(s.startTime).Seconds()),
		})

		stats, err := s.deps.Repo.Stats(ctx, s.deps.UserID)
		if err != nil {
			return recordedMsg{Err: err}
		}
		continued := progress.StreakContinued(stats.LastPracticeDate, now)

		res, err := s.deps.Recorder.Record(ctx, s.deps.UserID, s.node, s.sectionID, s.sess, continued)
		return recordedMsg{Result: res, Err: err}
	}
}

// logExhausted records the out-of-hearts ending. No reward is written.
func (s *QuizScreen) logExhausted() tea.Cmd {
	return func() tea.Msg {
		err := s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			UserID:          s.deps.UserID,
			NodeID:          s.node.ID,
			Action:          "exhausted",
			QuestionsServed: s.sess.Index() + 1,
			CorrectAnswers:  s.sess.CorrectCount(),
			HeartsLeft:      0,
			DurationSecs:    int(time.Since(s.startTime).Seconds()),
		})
		return exhaustedLoggedMsg{Err: err}
	}
}

func (s *QuizScreen) logAbandon() tea.Cmd {
	return func() tea.Msg {
		_ = s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			UserID:          s.deps.UserID,
			NodeID:          s.node.ID,
			Action:          "abandon",
			QuestionsServed: s.sess.Index() + 1,
			CorrectAnswers:  s.sess.CorrectCount(),
			HeartsLeft:      s.sess.Hearts(),
			DurationSecs:    int(time.Since(s.startTime).Seconds()),
		})
		return abandonLoggedMsg{}
	}
}

func (s *QuizScreen) showSummary(res progress.Result) tea.Cmd {
	outcome := summary.Outcome{
		NodeTitle:    s.node.Title,
		Completed:    s.sess.Result() == engine.Complete,
		CorrectCount: s.sess.CorrectCount(),
		Total:        s.sess.Total(),
		HeartsLeft:   s.sess.Hearts(),
		Duration:     time.Since(s.startTime),
		XPGained:     res.XPGained,
		LeveledUp:    res.LeveledUp,
		Level:        res.LedgerAfter.Level,
		StreakDays:   res.LedgerAfter.StreakDays,
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(outcome)}
	}
}
