package quiz

import "github.com/lingobee/lingobee/internal/progress"

// startLoggedMsg is sent after the session start event is persisted.
type startLoggedMsg struct {
	Err error
}

// recordedMsg is sent when a completed session has been persisted.
type recordedMsg struct {
	Result progress.Result
	Err    error
}

// exhaustedLoggedMsg is sent after an out-of-hearts session is logged.
type exhaustedLoggedMsg struct {
	Err error
}

// abandonLoggedMsg is sent after an abandoned session is logged.
type abandonLoggedMsg struct{}
