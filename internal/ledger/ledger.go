package ledger

import "errors"

// LevelThreshold is the XP required to advance one level.
const LevelThreshold = 100

// ErrNegativeXP is returned when ApplyXP is called with a negative gain.
var ErrNegativeXP = errors.New("xp gain must be non-negative")

// Ledger is a user's persistent XP, level, and streak state.
// XP is always in [0, LevelThreshold): overflow is consumed into Level
// at the moment it is applied, never banked.
type Ledger struct {
	XP         int
	Level      int
	StreakDays int
}

// New returns the starting ledger for a fresh user.
func New() Ledger {
	return Ledger{XP: 0, Level: 1, StreakDays: 0}
}

// ApplyXP adds gained XP to the ledger, carrying each full threshold into
// a level-up. A single large gain can cross several thresholds, so the
// carry loops rather than checking once. The receiver is not mutated.
func ApplyXP(l Ledger, gained int) (Ledger, error) {
	if gained < 0 {
		return l, ErrNegativeXP
	}

	total := l.XP + gained
	level := l.Level
	for total >= LevelThreshold {
		total -= LevelThreshold
		level++
	}

	return Ledger{XP: total, Level: level, StreakDays: l.StreakDays}, nil
}
