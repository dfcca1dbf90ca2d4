package responder

import (
	"io"
	"log/slog"
	"time"
)

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets the logger instance for the responder.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		r.logger = logger
	}
}

// WithOutput sets the writer inspected payloads are printed to.
func WithOutput(w io.Writer) Option {
	return func(r *Responder) {
		r.output = w
	}
}

// WithSink archives every inspected payload.
func WithSink(sink PayloadSink) Option {
	return func(r *Responder) {
		r.sink = sink
	}
}

// WithSleep replaces the blocking delay function.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Responder) {
		r.sleep = sleep
	}
}
