package replay

import (
	"log/slog"
	"sync"
)

// EventKind names a pointer action.
type EventKind string

// Pointer actions recorded by Recorder.
const (
	EventMove    EventKind = "move"
	EventPress   EventKind = "press"
	EventRelease EventKind = "release"
)

// Event is one recorded pointer action.
type Event struct {
	Kind EventKind
	At   Point
}

// Recorder is an in-memory Pointer. It stores every action and logs it at
// debug level, which makes it usable both as a dry-run device and in tests.
// It is safe for concurrent use.
type Recorder struct {
	Logger *slog.Logger

	mu      sync.Mutex
	pos     Point
	pressed bool
	events  []Event
}

// NewRecorder returns a Recorder positioned at start.
func NewRecorder(start Point, logger *slog.Logger) *Recorder {
	return &Recorder{Logger: logger, pos: start}
}

// Position returns the current pointer position.
func (r *Recorder) Position() Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pos
}

// MoveTo records a move.
func (r *Recorder) MoveTo(p Point) error {
	r.mu.Lock()
	r.pos = p
	r.mu.Unlock()
	r.record(EventMove, p)

	return nil
}

// Press records a button press at the current position.
func (r *Recorder) Press() error {
	r.mu.Lock()
	r.pressed = true
	p := r.pos
	r.mu.Unlock()
	r.record(EventPress, p)

	return nil
}

// Release records a button release at the current position.
func (r *Recorder) Release() error {
	r.mu.Lock()
	r.pressed = false
	p := r.pos
	r.mu.Unlock()
	r.record(EventRelease, p)

	return nil
}

// Pressed reports whether the button is currently held.
func (r *Recorder) Pressed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pressed
}

// Events returns a copy of all recorded actions.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

func (r *Recorder) record(kind EventKind, p Point) {
	r.mu.Lock()
	r.events = append(r.events, Event{Kind: kind, At: p})
	r.mu.Unlock()
	if r.Logger != nil {
		r.Logger.Debug("pointer", slog.String("event", string(kind)), slog.Float64("x", p.X), slog.Float64("y", p.Y))
	}
}
