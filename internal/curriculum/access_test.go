package curriculum

import "testing"

// testCurriculum builds a 2-unit, 2-section, 2-node tree with a trivial
// question per node.
func testCurriculum(t *testing.T) *Curriculum {
	t.Helper()

	q := Question{
		ID:             "q",
		Sentence:       "Aku suka lebah",
		AvailableWords: []string{"I", "love", "bees"},
		CorrectAnswer:  []string{"I", "love", "bees"},
	}
	node := func(id string) Node {
		nq := q
		nq.ID = id + "-q"
		return Node{ID: id, Title: id, XPReward: 10, Questions: []Question{nq}}
	}

	c, err := New([]Unit{
		{Number: 1, Title: "Unit 1", Sections: []Section{
			{ID: "s0", Title: "S0", Nodes: []Node{node("n00"), node("n01")}},
			{ID: "s1", Title: "S1", Nodes: []Node{node("n10"), node("n11")}},
		}},
		{Number: 2, Title: "Unit 2", Sections: []Section{
			{ID: "s2", Title: "S2", Nodes: []Node{node("n20"), node("n21")}},
			{ID: "s3", Title: "S3", Nodes: []Node{node("n30"), node("n31")}},
		}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func setOf(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestResolveAccess_EmptyCompletionSet(t *testing.T) {
	c := testCurriculum(t)
	statuses := ResolveAccess(c, nil)

	if statuses["n00"] != StatusUnlocked {
		t.Errorf("n00 = %v, want unlocked", statuses["n00"])
	}
	for _, id := range []string{"n01", "n10", "n11", "n20", "n21", "n30", "n31"} {
		if statuses[id] != StatusLocked {
			t.Errorf("%s = %v, want locked", id, statuses[id])
		}
	}
}

func TestResolveAccess_WithinSection(t *testing.T) {
	c := testCurriculum(t)
	statuses := ResolveAccess(c, setOf("n00"))

	if statuses["n00"] != StatusCompleted {
		t.Errorf("n00 = %v, want completed", statuses["n00"])
	}
	if statuses["n01"] != StatusUnlocked {
		t.Errorf("n01 = %v, want unlocked", statuses["n01"])
	}
	// Next section stays locked until all of s0 is done.
	if statuses["n10"] != StatusLocked {
		t.Errorf("n10 = %v, want locked", statuses["n10"])
	}
}

func TestResolveAccess_SectionBoundary(t *testing.T) {
	c := testCurriculum(t)
	statuses := ResolveAccess(c, setOf("n00", "n01"))

	if statuses["n10"] != StatusUnlocked {
		t.Errorf("n10 = %v, want unlocked", statuses["n10"])
	}
	if statuses["n11"] != StatusLocked {
		t.Errorf("n11 = %v, want locked", statuses["n11"])
	}
	if statuses["n20"] != StatusLocked {
		t.Errorf("n20 = %v, want locked", statuses["n20"])
	}
}

func TestResolveAccess_UnitBoundary(t *testing.T) {
	c := testCurriculum(t)
	statuses := ResolveAccess(c, setOf("n00", "n01", "n10", "n11"))

	// The last section of unit 1 is complete, so unit 2 opens.
	if statuses["n20"] != StatusUnlocked {
		t.Errorf("n20 = %v, want unlocked", statuses["n20"])
	}
	if statuses["n21"] != StatusLocked {
		t.Errorf("n21 = %v, want locked", statuses["n21"])
	}
	if statuses["n30"] != StatusLocked {
		t.Errorf("n30 = %v, want locked", statuses["n30"])
	}
}

func TestResolveAccess_CompletedAlwaysReported(t *testing.T) {
	c := testCurriculum(t)
	// n20 completed out of order (e.g. content reordered after the fact).
	statuses := ResolveAccess(c, setOf("n20"))

	if statuses["n20"] != StatusCompleted {
		t.Errorf("n20 = %v, want completed regardless of position", statuses["n20"])
	}
}

func TestResolveAccess_Deterministic(t *testing.T) {
	c := testCurriculum(t)
	completed := setOf("n00", "n01", "n10")

	first := ResolveAccess(c, completed)
	for i := 0; i < 5; i++ {
		again := ResolveAccess(c, completed)
		for id, st := range first {
			if again[id] != st {
				t.Fatalf("run %d: %s = %v, want %v", i, id, again[id], st)
			}
		}
	}
}

func TestFirstOpenNode(t *testing.T) {
	c := testCurriculum(t)
	sec := c.Units()[0].Sections[0]

	statuses := ResolveAccess(c, setOf("n00"))
	if n := FirstOpenNode(sec, statuses); n == nil || n.ID != "n01" {
		t.Errorf("FirstOpenNode = %v, want n01", n)
	}

	statuses = ResolveAccess(c, setOf("n00", "n01"))
	if n := FirstOpenNode(sec, statuses); n == nil || n.ID != "n00" {
		t.Errorf("FirstOpenNode (all done) = %v, want n00", n)
	}
}

func TestSectionCompleted(t *testing.T) {
	c := testCurriculum(t)
	sec := c.Units()[0].Sections[0]

	if SectionCompleted(sec, setOf("n00")) {
		t.Error("section reported complete with one node missing")
	}
	if !SectionCompleted(sec, setOf("n00", "n01")) {
		t.Error("section not reported complete with all nodes done")
	}
}
