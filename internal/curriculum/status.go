package curriculum

// NodeStatus classifies a node relative to a user's completion set.
// There is exactly one derivation (ResolveAccess); screens never
// re-derive lock state themselves.
type NodeStatus int

const (
	StatusLocked    NodeStatus = iota // A preceding node or section is unfinished
	StatusUnlocked                    // Reachable but not yet completed
	StatusCompleted                   // Present in the completion set
)

// Icon returns the display icon for the status.
func (s NodeStatus) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusUnlocked:
		return "🔓"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for the status.
func (s NodeStatus) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusUnlocked:
		return "Unlocked"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
