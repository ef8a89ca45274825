package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lingobee/lingobee/internal/router"
)

func TestView_CompletedShowsReward(t *testing.T) {
	s := New(Outcome{
		NodeTitle:    "Greetings",
		Completed:    true,
		CorrectCount: 3,
		Total:        3,
		HeartsLeft:   4,
		Duration:     95 * time.Second,
		XPGained:     10,
		LeveledUp:    true,
		Level:        2,
		StreakDays:   5,
	})

	view := s.View(100, 30)

	for _, want := range []string{
		"Node complete",
		"Greetings",
		"Correct: 3/3",
		"Hearts left: 4",
		"1:35",
		"+10 XP",
		"level 2",
		"Streak: 5 days",
		"CONTINUE",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_StreakSingular(t *testing.T) {
	s := New(Outcome{
		NodeTitle:  "Greetings",
		Completed:  true,
		Total:      3,
		StreakDays: 1,
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "Streak: 1 day") || strings.Contains(view, "1 days") {
		t.Errorf("streak line not singular: %q", view)
	}
}

func TestUpdate_EnterLeavesSummary(t *testing.T) {
	s := New(Outcome{NodeTitle: "Greetings", Completed: true, Total: 3})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("cmd produced %T, want router.PopScreenMsg", cmd())
	}
}

func TestView_ExhaustedHidesReward(t *testing.T) {
	s := New(Outcome{
		NodeTitle:    "Greetings",
		Completed:    false,
		CorrectCount: 1,
		Total:        3,
		HeartsLeft:   0,
		Duration:     40 * time.Second,
	})

	view := s.View(100, 30)

	if !strings.Contains(view, "Out of hearts") {
		t.Error("view missing failure headline")
	}
	if strings.Contains(view, "XP") && !strings.Contains(view, "earn this node's XP") {
		t.Error("failed session should not show an XP award")
	}
	if strings.Contains(view, "Level up") {
		t.Error("failed session should not show a level up")
	}
}
