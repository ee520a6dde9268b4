package entity

// ActorState is the discrete locomotion state of an actor
type ActorState int

const (
	StateGrounded ActorState = iota
	StateAscending
	StateFalling
	StateFloating
)

// AllStates lists every ActorState in declaration order
var AllStates = []ActorState{StateGrounded, StateAscending, StateFalling, StateFloating}

// String returns the string representation of the actor state
func (s ActorState) String() string {
	switch s {
	case StateGrounded:
		return "Grounded"
	case StateAscending:
		return "Ascending"
	case StateFalling:
		return "Falling"
	case StateFloating:
		return "Floating"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared states
func (s ActorState) Valid() bool {
	return s >= StateGrounded && s <= StateFloating
}
