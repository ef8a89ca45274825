package curriculum

import (
	"strings"
	"testing"
)

func validQuestion(id string) Question {
	return Question{
		ID:             id,
		Sentence:       "Aku suka lebah",
		AvailableWords: []string{"I", "love", "bees"},
		CorrectAnswer:  []string{"I", "love", "bees"},
	}
}

func TestNew_RejectsDuplicateNodeIDs(t *testing.T) {
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S", Nodes: []Node{
			{ID: "n1", Title: "A", XPReward: 10, Questions: []Question{validQuestion("q1")}},
			{ID: "n1", Title: "B", XPReward: 10, Questions: []Question{validQuestion("q2")}},
		}},
	}}})
	if err == nil || !strings.Contains(err.Error(), "duplicate node ID") {
		t.Errorf("err = %v, want duplicate node ID error", err)
	}
}

func TestNew_RejectsEmptySection(t *testing.T) {
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S"},
	}}})
	if err == nil || !strings.Contains(err.Error(), "no nodes") {
		t.Errorf("err = %v, want empty section error", err)
	}
}

func TestNew_RejectsNegativeReward(t *testing.T) {
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S", Nodes: []Node{
			{ID: "n1", Title: "A", XPReward: -5, Questions: []Question{validQuestion("q1")}},
		}},
	}}})
	if err == nil || !strings.Contains(err.Error(), "XPReward") {
		t.Errorf("err = %v, want XPReward error", err)
	}
}

func TestNew_RejectsUnsolvableQuestion(t *testing.T) {
	q := Question{
		ID:             "q1",
		Sentence:       "Aku suka lebah",
		AvailableWords: []string{"I", "love"},
		CorrectAnswer:  []string{"I", "love", "bees"},
	}
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S", Nodes: []Node{
			{ID: "n1", Title: "A", XPReward: 10, Questions: []Question{q}},
		}},
	}}})
	if err == nil || !strings.Contains(err.Error(), "not in available words") {
		t.Errorf("err = %v, want unsolvable question error", err)
	}
}

func TestNew_RejectsDuplicateAnswerTokenBeyondBank(t *testing.T) {
	// "love" appears twice in the answer but only once in the bank.
	q := Question{
		ID:             "q1",
		Sentence:       "x",
		AvailableWords: []string{"love", "I"},
		CorrectAnswer:  []string{"I", "love", "love"},
	}
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S", Nodes: []Node{
			{ID: "n1", Title: "A", XPReward: 10, Questions: []Question{q}},
		}},
	}}})
	if err == nil || !strings.Contains(err.Error(), "not in available words") {
		t.Errorf("err = %v, want unsolvable question error", err)
	}
}

func TestNew_CollectsAllErrors(t *testing.T) {
	_, err := New([]Unit{{Number: 1, Title: "U", Sections: []Section{
		{ID: "s1", Title: "S"},
		{ID: "s1", Title: "S2", Nodes: []Node{
			{ID: "n1", Title: "A", XPReward: -1, Questions: []Question{validQuestion("q1")}},
		}},
	}}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"no nodes", "duplicate section ID", "XPReward"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}
