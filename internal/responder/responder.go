// Package responder implements the delay responder: every accepted request is held for a fixed,
// variant-specific delay and then acknowledged with a constant plain-text body.
package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/isometry/delay-responder/internal/helpers"
	"github.com/isometry/delay-responder/internal/models"
)

// Acknowledgement is the body returned for every handled request.
const Acknowledgement = "It's ok!\n"

// Methods lists the accepted request methods. HEAD is answered like GET and OPTIONS without a delay.
var Methods = []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPost}

// PayloadSink receives a copy of every inspected payload.
type PayloadSink interface {
	Capture(ctx context.Context, variant string, payload []byte) error
}

// Responder holds requests for the delay of its Variant before acknowledging them.
type Responder struct {
	variant Variant
	logger  *slog.Logger
	output  io.Writer
	sink    PayloadSink
	sleep   func(time.Duration)
}

// New creates a Responder serving the given variant.
func New(variant Variant, opts ...Option) *Responder {
	_inst := &Responder{variant: variant}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.output == nil {
		_inst.output = os.Stdout
	}
	if _inst.sleep == nil {
		_inst.sleep = time.Sleep
	}
	return _inst
}

// Variant returns the preset served by the responder.
func (r *Responder) Variant() Variant {
	return r.variant
}

// Respond handles a single request. The delay is not interruptible: ctx is only handed to the payload sink.
func (r *Responder) Respond(ctx context.Context, req models.Request) (models.Response, error) {
	logger := r.logger.With(slog.String("variant", r.variant.Name), slog.String("method", req.Method))

	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	case http.MethodOptions:
		return models.Response{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Allow": strings.Join(Methods, ", ")},
		}, nil
	default:
		logger.Debug("rejecting request...", "reason", "method not allowed")
		return models.Response{StatusCode: http.StatusMethodNotAllowed}, &MethodNotAllowedError{Method: req.Method}
	}

	if r.variant.InspectBody {
		if err := r.inspect(ctx, logger, req.Body); err != nil {
			logger.Warn("failed to inspect request body", slog.Any("error", err))
			return models.Response{StatusCode: http.StatusBadRequest}, err
		}
	}

	logger.Debug("delaying response...", slog.Duration("delay", r.variant.Delay))
	started := time.Now()
	r.sleep(r.variant.Delay)
	logger.Info("acknowledged request", slog.Duration("elapsed", time.Since(started)))

	return models.Response{
		Body:       Acknowledgement,
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
	}, nil
}

// inspect prints the compact JSON form of body on the output. An absent body prints null.
func (r *Responder) inspect(ctx context.Context, logger *slog.Logger, body string) error {
	if strings.TrimSpace(body) == "" {
		_, _ = fmt.Fprintln(r.output, "null")
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(body)); err != nil {
		return &InvalidPayloadError{Err: err}
	}
	_, _ = fmt.Fprintln(r.output, buf.String())
	logger.Debug("inspected request body", slog.String("payload", helpers.Truncate(buf.String(), 256)))

	if r.sink != nil {
		if err := r.sink.Capture(ctx, r.variant.Name, buf.Bytes()); err != nil {
			helpers.OnceAMinute.Do(func() {
				logger.Warn("failed to capture payload", slog.Any("error", err))
			})
		}
	}
	return nil
}
