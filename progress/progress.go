package progress

import (
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives status and progress notifications from a running algorithm.
// Calls are synchronous; implementations should return quickly.
type Sink interface {
	StatusChanged(status string)
	ProgressChanged(step, total int)
}

// Nop is a Sink that ignores every notification.
type Nop struct{}

// StatusChanged does nothing.
func (Nop) StatusChanged(string) {}

// ProgressChanged does nothing.
func (Nop) ProgressChanged(int, int) {}

// Kind distinguishes the two notification types.
type Kind int

const (
	// Status marks a StatusChanged notification.
	Status Kind = iota
	// Progress marks a ProgressChanged notification.
	Progress
)

// Event is one recorded notification.
type Event struct {
	Kind   Kind
	Status string // set for Status events
	Step   int    // set for Progress events
	Total  int    // set for Progress events
}

// Recorder is a Sink that stores every event. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// StatusChanged records a Status event.
func (r *Recorder) StatusChanged(status string) {
	r.mu.Lock()
	r.events = append(r.events, Event{Kind: Status, Status: status})
	r.mu.Unlock()
}

// ProgressChanged records a Progress event.
func (r *Recorder) ProgressChanged(step, total int) {
	r.mu.Lock()
	r.events = append(r.events, Event{Kind: Progress, Step: step, Total: total})
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Statuses returns the recorded status strings in arrival order.
func (r *Recorder) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, e := range r.events {
		if e.Kind == Status {
			out = append(out, e.Status)
		}
	}

	return out
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Logger is a Sink that writes status events at Info level and progress
// events at Debug level, tagged with a component field.
type Logger struct {
	log       zerolog.Logger
	component string
}

// NewLogger returns a Logger sink writing through log.
func NewLogger(log zerolog.Logger, component string) *Logger {
	return &Logger{log: log, component: component}
}

// StatusChanged logs the new phase.
func (l *Logger) StatusChanged(status string) {
	l.log.Info().Str("component", l.component).Msg(status)
}

// ProgressChanged logs step/total.
func (l *Logger) ProgressChanged(step, total int) {
	l.log.Debug().
		Str("component", l.component).
		Int("step", step).
		Int("total", total).
		Msg("progress")
}
