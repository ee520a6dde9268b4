package system

import (
	"sync"

	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Command is a request handed to the tick thread from any goroutine
type Command interface {
	isCommand()
}

// ToggleFloatCommand requests a floating toggle
type ToggleFloatCommand struct{}

func (ToggleFloatCommand) isCommand() {}

// ContactCommand carries a collision reported by the physics provider
type ContactCommand struct {
	Contact entity.Contact
}

func (ContactCommand) isCommand() {}

// PauseCommand requests a pause
type PauseCommand struct{}

func (PauseCommand) isCommand() {}

// ResumeCommand requests a resume
type ResumeCommand struct{}

func (ResumeCommand) isCommand() {}

// CommandQueue is a goroutine-safe FIFO drained once per tick
type CommandQueue struct {
	mu    sync.Mutex
	items []Command
	spare []Command
}

// NewCommandQueue creates an empty queue
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		items: make([]Command, 0, 8),
		spare: make([]Command, 0, 8),
	}
}

// Push appends a command. Safe from any goroutine.
func (q *CommandQueue) Push(cmd Command) {
	q.mu.Lock()
	q.items = append(q.items, cmd)
	q.mu.Unlock()
}

// Drain hands every queued command to fn in push order.
// Commands pushed while fn runs are kept for the next drain.
// Only the tick thread may drain.
func (q *CommandQueue) Drain(fn func(Command)) {
	q.mu.Lock()
	batch := q.items
	q.items = q.spare[:0]
	q.mu.Unlock()

	for _, cmd := range batch {
		fn(cmd)
	}

	// recycle the batch slice
	clear(batch)
	q.mu.Lock()
	q.spare = batch[:0]
	q.mu.Unlock()
}

// Len returns the number of queued commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
