package event

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Recorder keeps every published event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish stores the event.
func (r *Recorder) Publish(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(t Type) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// LogSink writes one JSON object per event to a logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish writes the event as a JSON line.
func (s *LogSink) Publish(_ context.Context, event Event) {
	if s == nil || s.logger == nil {
		return
	}
	line, err := json.Marshal(event)
	if err != nil {
		s.logger.Printf("marshal %s event: %v", event.Type, err)
		return
	}
	s.logger.Print(string(line))
}
