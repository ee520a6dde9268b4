package state

// SessionState represents the current state of a sandbox session
type SessionState int

const (
	StateLoading SessionState = iota
	StatePlaying
	StatePaused
	StateReplaying
	StateFinished
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Active reports whether the session advances the simulation
func (s SessionState) Active() bool {
	return s == StatePlaying || s == StateReplaying
}
