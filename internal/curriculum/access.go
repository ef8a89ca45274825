package curriculum

// ResolveAccess classifies every node as locked, unlocked, or completed
// given a completion set. Pure function of its inputs: curriculum order
// is the only sequencing truth, no timestamps.
//
// Rules:
//   - the very first node of the whole curriculum is always reachable
//   - a node is unlocked when the node before it in its section is completed
//   - the first node of a section is unlocked when the previous section
//     (in curriculum order, crossing unit boundaries) is fully completed
//   - a completed node is reported completed regardless of position
func ResolveAccess(c *Curriculum, completed map[string]bool) map[string]NodeStatus {
	statuses := make(map[string]NodeStatus, c.NodeCount())

	// Entry to the first section is always open; each later section opens
	// only once the section before it is fully completed.
	entryOpen := true
	for _, unit := range c.units {
		for _, sec := range unit.Sections {
			allDone := true
			for i, n := range sec.Nodes {
				switch {
				case completed[n.ID]:
					statuses[n.ID] = StatusCompleted
				case i == 0 && entryOpen:
					statuses[n.ID] = StatusUnlocked
					allDone = false
				case i > 0 && completed[sec.Nodes[i-1].ID]:
					statuses[n.ID] = StatusUnlocked
					allDone = false
				default:
					statuses[n.ID] = StatusLocked
					allDone = false
				}
			}
			if len(sec.Nodes) == 0 {
				allDone = false
			}
			entryOpen = allDone
		}
	}

	return statuses
}

// SectionCompleted reports whether every node of the section is completed.
func SectionCompleted(sec Section, completed map[string]bool) bool {
	if len(sec.Nodes) == 0 {
		return false
	}
	for _, n := range sec.Nodes {
		if !completed[n.ID] {
			return false
		}
	}
	return true
}

// FirstOpenNode returns the first node of the section that is not yet
// completed, or the first node when all are completed.
func FirstOpenNode(sec Section, statuses map[string]NodeStatus) *Node {
	if len(sec.Nodes) == 0 {
		return nil
	}
	for i := range sec.Nodes {
		if statuses[sec.Nodes[i].ID] != StatusCompleted {
			return &sec.Nodes[i]
		}
	}
	return &sec.Nodes[0]
}
