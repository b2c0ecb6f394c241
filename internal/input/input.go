package input

import (
	"sync"

	"FlyCam/internal/camera"
)

type Kind int

const (
	// CursorMoved carries an absolute cursor position in screen coordinates.
	CursorMoved Kind = iota
	// Move carries one movement intent for the current frame.
	Move
	// LookReset drops the look baseline, e.g. when pointer capture ends.
	LookReset
)

type Event struct {
	Kind      Kind
	X, Y      float64
	Direction camera.Direction
	Scale     float32 // multiplies dt for Move; zero means 1
}

func Cursor(x, y float64) Event {
	return Event{Kind: CursorMoved, X: x, Y: y}
}

func Movement(direction camera.Direction, scale float32) Event {
	return Event{Kind: Move, Direction: direction, Scale: scale}
}

func Reset() Event {
	return Event{Kind: LookReset}
}

// Queue buffers events from callbacks or other goroutines until the render
// thread drains them.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	spare   []Event
}

func NewQueue() *Queue {
	return &Queue{
		pending: make([]Event, 0, 64),
		spare:   make([]Event, 0, 64),
	}
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Drain returns every pending event in push order and empties the queue.
// The returned slice is only valid until the next Drain.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
