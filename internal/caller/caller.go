// Package caller sends a single request to a slow endpoint and classifies the outcome the way a queue
// processor would: success, retryable failure or fatal failure.
package caller

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/isometry/delay-responder/internal/helpers"
	"github.com/pkg/errors"
)

// Defaults applied by NewCaller.
const (
	DefaultMethod  = http.MethodPost
	DefaultTimeout = 120 * time.Second
)

// Result describes a completed exchange.
type Result struct {
	StatusCode int
	Body       string
	Elapsed    time.Duration
}

type Caller struct {
	logger     *slog.Logger
	client     *http.Client
	url        string
	method     string
	timeout    time.Duration
	fatalCodes []int
}

// NewCaller validates the options and returns a Caller.
func NewCaller(opts ...Option) (*Caller, error) {
	_inst := &Caller{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.method == "" {
		_inst.method = DefaultMethod
	}
	if _inst.timeout == 0 {
		_inst.timeout = DefaultTimeout
	}

	if _inst.url == "" {
		return nil, errors.Wrap(ErrConfig, "url is mandatory")
	}
	if !slices.Contains([]string{http.MethodGet, http.MethodPost}, _inst.method) {
		return nil, errors.Wrapf(ErrConfig, "method %q is not supported", _inst.method)
	}

	_inst.client = &http.Client{Timeout: _inst.timeout}
	return _inst, nil
}

// Call sends body to the configured endpoint and waits for the answer, at most for the configured timeout.
func (c *Caller) Call(ctx context.Context, body []byte) (Result, error) {
	logger := c.logger.With(slog.String("url", c.url), slog.String("method", c.method))

	req, err := http.NewRequestWithContext(ctx, c.method, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.Wrapf(ErrFatal, "failed to build request: %v", err)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("calling...", slog.Duration("timeout", c.timeout))
	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Elapsed: time.Since(started)}, errors.Wrapf(ErrFail, "request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	result := Result{StatusCode: resp.StatusCode, Body: string(respBody), Elapsed: time.Since(started)}
	if err != nil {
		return result, errors.Wrapf(ErrFail, "failed to read response: %v", err)
	}
	logger.Info("call completed", slog.Int("status", result.StatusCode), slog.Duration("elapsed", result.Elapsed))

	switch {
	case slices.Contains(c.fatalCodes, resp.StatusCode):
		return result, errors.Wrapf(ErrFatal, "response status code %d", resp.StatusCode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return result, nil
	default:
		return result, errors.Wrapf(ErrFail, "response status code %d", resp.StatusCode)
	}
}
