package app

// State is the loop state.
type State uint8

const (
	StateRunning State = iota
	StateIdleWaiting
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateIdleWaiting:
		return "idle-waiting"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}
