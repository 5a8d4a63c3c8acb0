// Package notify defines how workflow outcomes reach the presentation layer.
// The core never talks to the user; it hands a message and a severity to a
// caller-supplied Sink.
package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Notification struct {
	Message  string
	Severity Severity
}

// Sink receives notifications. Implementations must not block for long;
// they are called while the caller waits for the operation result.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, n Notification)

func (f SinkFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Sink = SinkFunc(func(context.Context, Notification) {})

type logSink struct {
	logger *slog.Logger
}

// NewLogSink writes notifications as structured log lines to w.
func NewLogSink(w io.Writer) Sink {
	if w == nil {
		return Discard
	}
	return &logSink{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

func (s *logSink) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	switch n.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "notification", "severity", string(n.Severity), "message", n.Message)
}

// Recorder keeps every notification in memory. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Fanout delivers each notification to every non-nil sink in order.
func Fanout(sinks ...Sink) Sink {
	var live []Sink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return SinkFunc(func(ctx context.Context, n Notification) {
		for _, s := range live {
			s.Notify(ctx, n)
		}
	})
}
