package quiz

import (
	"errors"
	"testing"

	"github.com/lingobee/lingobee/internal/curriculum"
)

func beeQuestion(id string) curriculum.Question {
	return curriculum.Question{
		ID:             id,
		Sentence:       "Aku suka lebah",
		Instruction:    "Translate to English",
		AvailableWords: []string{"I", "love", "bees"},
		CorrectAnswer:  []string{"I", "love", "bees"},
	}
}

func newTestSession(t *testing.T, questions ...curriculum.Question) *Session {
	t.Helper()
	s, err := NewSession(questions, IdentityShuffler{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func selectAll(s *Session, words ...string) {
	for _, w := range words {
		s.SelectWord(w)
	}
}

func TestNewSession_NoQuestions(t *testing.T) {
	_, err := NewSession(nil, IdentityShuffler{})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))

	if s.Hearts() != InitialHearts {
		t.Errorf("Hearts = %d, want %d", s.Hearts(), InitialHearts)
	}
	if s.Result() != Answering {
		t.Errorf("Result = %v, want Answering", s.Result())
	}
	if s.CorrectCount() != 0 {
		t.Errorf("CorrectCount = %d, want 0", s.CorrectCount())
	}
	if got := len(s.Available()); got != 3 {
		t.Errorf("len(Available) = %d, want 3", got)
	}
}

func TestShuffle_DoesNotMutateQuestion(t *testing.T) {
	q := beeQuestion("q1")
	s, err := NewSession([]curriculum.Question{q}, NewShuffler())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	_ = s

	want := []string{"I", "love", "bees"}
	for i, w := range q.AvailableWords {
		if w != want[i] {
			t.Fatalf("question word list mutated: %v", q.AvailableWords)
		}
	}
}

func TestCheck_CorrectOrder(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))
	selectAll(s, "I", "love", "bees")

	ok, err := s.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok || s.Result() != Correct {
		t.Errorf("got ok=%v result=%v, want correct", ok, s.Result())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount())
	}
	if s.Hearts() != InitialHearts {
		t.Errorf("Hearts = %d, want %d (unchanged)", s.Hearts(), InitialHearts)
	}
}

func TestCheck_CaseInsensitive(t *testing.T) {
	q := beeQuestion("q1")
	q.AvailableWords = []string{"i", "LOVE", "Bees"}
	s := newTestSession(t, q)
	selectAll(s, "i", "LOVE", "Bees")

	ok, err := s.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Error("case-insensitive comparison failed")
	}
}

func TestCheck_WrongOrderSpendsHeart(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))
	selectAll(s, "bees", "love", "I")

	ok, err := s.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok || s.Result() != Incorrect {
		t.Errorf("got ok=%v result=%v, want incorrect", ok, s.Result())
	}
	if s.Hearts() != InitialHearts-1 {
		t.Errorf("Hearts = %d, want %d", s.Hearts(), InitialHearts-1)
	}

	// Retry reloads the same question with the full bank restored.
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Result() != Answering {
		t.Errorf("Result = %v, want Answering after retry", s.Result())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0 (same question)", s.Index())
	}
	if got := len(s.Available()); got != 3 {
		t.Errorf("len(Available) = %d, want 3 after reshuffle", got)
	}
	if got := len(s.Selected()); got != 0 {
		t.Errorf("len(Selected) = %d, want 0 after reshuffle", got)
	}
}

func TestCheck_EmptySelection(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))

	_, err := s.Check()
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
	if s.Hearts() != InitialHearts || s.Result() != Answering {
		t.Error("state mutated by rejected check")
	}
}

func TestCheck_WhileShowingResult(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))
	selectAll(s, "I", "love", "bees")
	if _, err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	_, err := s.Check()
	var ite *IllegalTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want IllegalTransitionError", err)
	}
	if ite.Op != "check" {
		t.Errorf("Op = %q, want check", ite.Op)
	}
}

func TestSelectWord_NoOpDuringResult(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))
	selectAll(s, "bees", "love", "I")
	if _, err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}

	before := len(s.Selected())
	s.SelectWord("I")
	s.DeselectWord("bees")
	if len(s.Selected()) != before {
		t.Error("selection changed while showing result")
	}
}

func TestSelectWord_MovesSingleOccurrence(t *testing.T) {
	q := curriculum.Question{
		ID:             "q1",
		Sentence:       "x",
		AvailableWords: []string{"la", "la", "land"},
		CorrectAnswer:  []string{"la", "la", "land"},
	}
	s := newTestSession(t, q)

	s.SelectWord("la")
	if got := len(s.Available()); got != 2 {
		t.Errorf("len(Available) = %d, want 2 (one occurrence moved)", got)
	}
	s.DeselectWord("la")
	if got := len(s.Available()); got != 3 {
		t.Errorf("len(Available) = %d, want 3 after deselect", got)
	}
}

func TestSelectWord_UnknownWord(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))
	s.SelectWord("wasps")
	if got := len(s.Selected()); got != 0 {
		t.Errorf("len(Selected) = %d, want 0", got)
	}
}

func TestExhaustion(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"))

	for i := 0; i < InitialHearts; i++ {
		selectAll(s, "bees", "love", "I")
		ok, err := s.Check()
		if err != nil {
			t.Fatalf("Check %d: %v", i, err)
		}
		if ok {
			t.Fatalf("Check %d unexpectedly correct", i)
		}
		if i < InitialHearts-1 {
			if s.Result() != Incorrect {
				t.Fatalf("Result = %v after miss %d, want Incorrect", s.Result(), i)
			}
			if err := s.Advance(); err != nil {
				t.Fatalf("Advance %d: %v", i, err)
			}
		}
	}

	if s.Hearts() != 0 {
		t.Errorf("Hearts = %d, want 0", s.Hearts())
	}
	if s.Result() != Exhausted {
		t.Errorf("Result = %v, want Exhausted", s.Result())
	}

	// Terminal: no retries.
	if err := s.Advance(); err == nil {
		t.Error("Advance from Exhausted succeeded, want error")
	}
}

func TestFullSession(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"), beeQuestion("q2"), beeQuestion("q3"))

	for i := 0; i < 3; i++ {
		selectAll(s, "I", "love", "bees")
		ok, err := s.Check()
		if err != nil {
			t.Fatalf("Check %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("Check %d incorrect", i)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}

	if s.Result() != Complete {
		t.Errorf("Result = %v, want Complete", s.Result())
	}
	if s.CorrectCount() != 3 {
		t.Errorf("CorrectCount = %d, want 3", s.CorrectCount())
	}
	if err := s.Advance(); err == nil {
		t.Error("Advance from Complete succeeded, want error")
	}
}

func TestSessionSurvivesWrongThenRight(t *testing.T) {
	s := newTestSession(t, beeQuestion("q1"), beeQuestion("q2"))

	// Miss q1 once, then get it.
	selectAll(s, "love", "I", "bees")
	if _, err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	selectAll(s, "I", "love", "bees")
	if _, err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	selectAll(s, "I", "love", "bees")
	if _, err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if s.Result() != Complete || s.CorrectCount() != 2 {
		t.Errorf("got result=%v correct=%d, want Complete/2", s.Result(), s.CorrectCount())
	}
	if s.Hearts() != InitialHearts-1 {
		t.Errorf("Hearts = %d, want %d", s.Hearts(), InitialHearts-1)
	}
}
