package caller

import (
	"log/slog"
	"time"
)

type Option func(*Caller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Caller) {
		c.logger = logger
	}
}

// WithURL sets the endpoint to call.
func WithURL(url string) Option {
	return func(c *Caller) {
		c.url = url
	}
}

// WithMethod sets the request method. Only GET and POST are accepted.
func WithMethod(method string) Option {
	return func(c *Caller) {
		c.method = method
	}
}

// WithTimeout bounds the whole exchange, response body included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Caller) {
		c.timeout = timeout
	}
}

// WithFatalCodes lists the status codes classified as ErrFatal.
func WithFatalCodes(codes ...int) Option {
	return func(c *Caller) {
		c.fatalCodes = codes
	}
}
