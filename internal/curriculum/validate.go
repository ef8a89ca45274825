package curriculum

import (
	"fmt"
	"strings"
)

// validateUnits performs all structural checks on the curriculum tree.
// Returns a combined error describing all problems found, or nil if valid.
func validateUnits(units []Unit) error {
	var errs []string

	if len(units) == 0 {
		errs = append(errs, "curriculum has no units")
	}

	sectionIDs := make(map[string]bool)
	nodeIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)

	for _, u := range units {
		if len(u.Sections) == 0 {
			errs = append(errs, fmt.Sprintf("unit %d has no sections", u.Number))
		}
		for _, sec := range u.Sections {
			if sec.ID == "" {
				errs = append(errs, fmt.Sprintf("unit %d contains a section with empty ID", u.Number))
				continue
			}
			if sectionIDs[sec.ID] {
				errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
			}
			sectionIDs[sec.ID] = true

			if len(sec.Nodes) == 0 {
				errs = append(errs, fmt.Sprintf("section %q has no nodes", sec.ID))
			}
			for _, n := range sec.Nodes {
				if n.ID == "" {
					errs = append(errs, fmt.Sprintf("section %q contains a node with empty ID", sec.ID))
					continue
				}
				if nodeIDs[n.ID] {
					errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
				}
				nodeIDs[n.ID] = true

				if n.XPReward < 0 {
					errs = append(errs, fmt.Sprintf("node %q: XPReward must be >= 0, got %d", n.ID, n.XPReward))
				}
				for _, q := range n.Questions {
					errs = append(errs, validateQuestion(n.ID, q, questionIDs)...)
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateQuestion checks a single question and returns any problems.
func validateQuestion(nodeID string, q Question, seen map[string]bool) []string {
	var errs []string
	prefix := fmt.Sprintf("node %q question %q", nodeID, q.ID)

	if q.ID == "" {
		return []string{fmt.Sprintf("node %q contains a question with empty ID", nodeID)}
	}
	if seen[q.ID] {
		errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
	}
	seen[q.ID] = true

	if len(q.AvailableWords) == 0 {
		errs = append(errs, prefix+": no available words")
	}
	if len(q.CorrectAnswer) == 0 {
		errs = append(errs, prefix+": no correct answer")
	}

	// Every answer token must be drawable from the word bank, counting
	// duplicates, or the question is unsolvable.
	remaining := make(map[string]int, len(q.AvailableWords))
	for _, w := range q.AvailableWords {
		remaining[strings.ToLower(w)]++
	}
	for _, w := range q.CorrectAnswer {
		lw := strings.ToLower(w)
		if remaining[lw] == 0 {
			errs = append(errs, fmt.Sprintf("%s: answer token %q not in available words", prefix, w))
			continue
		}
		remaining[lw]--
	}

	return errs
}
