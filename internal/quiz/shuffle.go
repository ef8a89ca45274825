package quiz

import "math/rand"

// Shuffler randomizes word-bank order. Injected so tests can supply a
// deterministic implementation.
type Shuffler interface {
	// Shuffle returns a shuffled copy; the input is never mutated.
	Shuffle(words []string) []string
}

// randShuffler is the default math/rand backed shuffler.
type randShuffler struct{}

// NewShuffler returns the default random shuffler.
func NewShuffler() Shuffler {
	return randShuffler{}
}

func (randShuffler) Shuffle(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// IdentityShuffler preserves word order. Useful in tests and scripted
// playthroughs.
type IdentityShuffler struct{}

func (IdentityShuffler) Shuffle(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
