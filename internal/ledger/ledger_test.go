package ledger

import (
	"errors"
	"testing"
)

func TestApplyXP_NoLevelUp(t *testing.T) {
	l, err := ApplyXP(Ledger{XP: 40, Level: 2, StreakDays: 3}, 30)
	if err != nil {
		t.Fatalf("ApplyXP: %v", err)
	}
	if l.XP != 70 || l.Level != 2 {
		t.Errorf("got xp=%d level=%d, want xp=70 level=2", l.XP, l.Level)
	}
	if l.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3 (unchanged)", l.StreakDays)
	}
}

func TestApplyXP_SingleLevelUp(t *testing.T) {
	l, err := ApplyXP(Ledger{XP: 95, Level: 1}, 10)
	if err != nil {
		t.Fatalf("ApplyXP: %v", err)
	}
	if l.XP != 5 || l.Level != 2 {
		t.Errorf("got xp=%d level=%d, want xp=5 level=2", l.XP, l.Level)
	}
}

func TestApplyXP_MultiLevelGain(t *testing.T) {
	// A single reward spanning several thresholds must level up once per
	// threshold crossed, not once total.
	l, err := ApplyXP(Ledger{XP: 50, Level: 1}, 260)
	if err != nil {
		t.Fatalf("ApplyXP: %v", err)
	}
	if l.XP != 10 || l.Level != 4 {
		t.Errorf("got xp=%d level=%d, want xp=10 level=4", l.XP, l.Level)
	}
}

func TestApplyXP_ZeroIsIdentity(t *testing.T) {
	before := Ledger{XP: 42, Level: 7, StreakDays: 12}
	after, err := ApplyXP(before, 0)
	if err != nil {
		t.Fatalf("ApplyXP: %v", err)
	}
	if after != before {
		t.Errorf("ApplyXP(l, 0) = %+v, want %+v", after, before)
	}
}

func TestApplyXP_NegativeGain(t *testing.T) {
	before := Ledger{XP: 42, Level: 7}
	after, err := ApplyXP(before, -1)
	if !errors.Is(err, ErrNegativeXP) {
		t.Fatalf("err = %v, want ErrNegativeXP", err)
	}
	if after != before {
		t.Errorf("ledger mutated on error: %+v", after)
	}
}

func TestApplyXP_Invariants(t *testing.T) {
	// For any starting xp in [0,100) and gain in [0,1000], the result stays
	// in [0,100) and the level delta equals the thresholds crossed.
	for xp0 := 0; xp0 < LevelThreshold; xp0 += 7 {
		for gained := 0; gained <= 1000; gained += 37 {
			l, err := ApplyXP(Ledger{XP: xp0, Level: 1}, gained)
			if err != nil {
				t.Fatalf("ApplyXP(%d, %d): %v", xp0, gained, err)
			}
			if l.XP < 0 || l.XP >= LevelThreshold {
				t.Errorf("ApplyXP(%d, %d).XP = %d, out of range", xp0, gained, l.XP)
			}
			wantDelta := (xp0 + gained) / LevelThreshold
			if l.Level-1 != wantDelta {
				t.Errorf("ApplyXP(%d, %d) level delta = %d, want %d", xp0, gained, l.Level-1, wantDelta)
			}
		}
	}
}
