package quiz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lingobee/lingobee/internal/curriculum"
)

// InitialHearts is the per-session error budget. Hearts are session
// state, not persisted: every new session starts with a full set.
const InitialHearts = 5

var (
	// ErrNoQuestions means a node resolved to zero questions. This is a
	// content problem, not a gameplay failure, and is surfaced before a
	// session ever starts.
	ErrNoQuestions = errors.New("node has no questions")

	// ErrEmptySelection means Check was called with nothing selected.
	ErrEmptySelection = errors.New("no words selected")
)

// IllegalTransitionError reports an operation invoked in a state that
// does not permit it. No session state is mutated.
type IllegalTransitionError struct {
	Op    string
	State Result
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

// Result is the session's current evaluation state.
type Result int

const (
	Answering Result = iota // Building an answer from the word bank
	Correct                 // Last check was right; Advance moves on
	Incorrect               // Last check was wrong; Advance retries
	Exhausted               // Hearts ran out; terminal, no reward
	Complete                // Every question answered correctly; terminal
)

func (r Result) String() string {
	switch r {
	case Answering:
		return "answering"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Exhausted:
		return "exhausted"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session is one practice attempt at a node. It is strictly sequential:
// the mutex guards against overlapping calls on the same session, but a
// session still models a single user interaction stream. Sessions are
// never persisted; abandoning one is always safe.
type Session struct {
	mu sync.Mutex

	questions []curriculum.Question
	shuffler  Shuffler

	index     int
	hearts    int
	correct   int
	selected  []string
	available []string
	result    Result
}

// NewSession starts a session over the node's questions with full hearts
// and the first question's word bank shuffled.
func NewSession(questions []curriculum.Question, shuffler Shuffler) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if shuffler == nil {
		shuffler = NewShuffler()
	}

	s := &Session{
		questions: questions,
		shuffler:  shuffler,
		hearts:    InitialHearts,
	}
	s.loadQuestion()
	return s, nil
}

// loadQuestion resets the selection and deals a fresh shuffle of the
// current question's word bank. The question itself is never mutated.
func (s *Session) loadQuestion() {
	q := s.questions[s.index]
	s.available = s.shuffler.Shuffle(q.AvailableWords)
	s.selected = nil
	s.result = Answering
}

// Current returns the question being answered.
func (s *Session) Current() curriculum.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.questions)
}

// Hearts returns the remaining error budget.
func (s *Session) Hearts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hearts
}

// CorrectCount returns how many questions have been answered correctly.
func (s *Session) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

// Result returns the current evaluation state.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Selected returns a copy of the words selected so far, in order.
func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Available returns a copy of the words still in the bank, in dealt order.
func (s *Session) Available() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.available))
	copy(out, s.available)
	return out
}

// SelectWord moves one occurrence of word from the bank to the answer.
// No-op outside the Answering state or when the word is not available:
// taps while feedback is showing must not change the committed answer.
func (s *Session) SelectWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != Answering {
		return
	}
	for i, w := range s.available {
		if w == word {
			s.available = append(s.available[:i], s.available[i+1:]...)
			s.selected = append(s.selected, word)
			return
		}
	}
}

// DeselectWord moves one occurrence of word from the answer back to the
// bank. No-op outside the Answering state.
func (s *Session) DeselectWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != Answering {
		return
	}
	for i, w := range s.selected {
		if w == word {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			s.available = append(s.available, word)
			return
		}
	}
}

// Check commits the current selection as the answer. On a wrong answer a
// heart is spent; spending the last heart ends the session as Exhausted.
func (s *Session) Check() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != Answering {
		return false, &IllegalTransitionError{Op: "check", State: s.result}
	}
	if len(s.selected) == 0 {
		return false, ErrEmptySelection
	}

	if CheckAnswer(s.selected, s.questions[s.index].CorrectAnswer) {
		s.correct++
		s.result = Correct
		return true, nil
	}

	s.hearts--
	if s.hearts <= 0 {
		s.result = Exhausted
	} else {
		s.result = Incorrect
	}
	return false, nil
}

// Advance moves past a Correct or Incorrect evaluation. After Correct it
// loads the next question, or ends the session as Complete when the last
// question is done. After Incorrect it reloads the same question with a
// fresh shuffle: a question must be answered correctly before the
// session can progress past it.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.result {
	case Correct:
		if s.index+1 < len(s.questions) {
			s.index++
			s.loadQuestion()
		} else {
			s.result = Complete
		}
		return nil
	case Incorrect:
		s.loadQuestion()
		return nil
	default:
		return &IllegalTransitionError{Op: "advance", State: s.result}
	}
}
