package runtime

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/isometry/delay-responder/internal/helpers"
	"github.com/isometry/delay-responder/internal/models"
	"github.com/isometry/delay-responder/internal/responder"
	"github.com/pkg/errors"
)

// RequestIDHeader carries the identifier assigned to every HTTP request.
const RequestIDHeader = "X-Request-Id"

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPath sets the single route the HTTP runtime answers on.
func WithPath(path string) Option {
	return func(r *Runtime) {
		r.path = path
	}
}

// WithLambdaPayloadType sets the API Gateway payload format expected by Lambda.
func WithLambdaPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

// WithIOTimeout sets the read and idle timeouts of the HTTP server. It also bounds graceful shutdown.
func WithIOTimeout(timeout time.Duration) Option {
	return func(r *Runtime) {
		r.ioTimeout = timeout
	}
}

type Runtime struct {
	*responder.Responder
	logger      *slog.Logger
	path        string
	payloadType string
	ioTimeout   time.Duration
}

// NewRuntime creates a new runtime instance
func NewRuntime(rsp *responder.Responder, opts ...Option) *Runtime {
	_inst := &Runtime{Responder: rsp}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.path == "" {
		_inst.path = "/"
	}
	if _inst.payloadType == "" {
		_inst.payloadType = PayloadAPIGatewayV2
	}
	if _inst.ioTimeout == 0 {
		_inst.ioTimeout = 5 * time.Second
	}
	return _inst
}

// Router returns the route table: the responder's methods on the configured path.
func (r *Runtime) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(r.path, r.ServeHTTP).Methods(responder.Methods...)
	return router
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	requestID := uuid.NewString()
	logger := r.logger.With(slog.String("requestId", requestID))
	resp.Header().Set(RequestIDHeader, requestID)

	logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))
	headers := make(map[string]string)
	for k, v := range req.Header {
		headers[strings.ToLower(k)] = v[0]
	}

	var body []byte
	if req.Body != nil && r.Variant().InspectBody {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			logger.Error("failed to read request body", slog.Any("error", err))
			helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
			return
		}
	}

	result, err := r.Respond(req.Context(), models.Request{
		Method:  req.Method,
		Path:    req.URL.Path,
		Body:    string(body),
		Headers: headers,
	})
	if err != nil {
		logger.Warn("request failed", slog.Int("status", result.StatusCode), slog.Any("error", err))
	}
	helpers.RespondHTTP(result, err, resp)
}

// NewServer returns the HTTP server for addr.
// The write timeout leaves room for the full delay so responses are never cut short.
func (r *Runtime) NewServer(addr string) *http.Server {
	return &http.Server{
		Handler:      r.Router(),
		Addr:         addr,
		ReadTimeout:  r.ioTimeout,
		IdleTimeout:  r.ioTimeout,
		WriteTimeout: r.Variant().Delay + r.ioTimeout,
	}
}

// Run listens on addr and serves until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	return r.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the server down gracefully.
// Requests still in flight once the I/O timeout has passed are closed.
func (r *Runtime) Serve(ctx context.Context, ln net.Listener) error {
	s := r.NewServer(ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("Serving...", "address", ln.Addr().String(), "path", r.path,
			"variant", r.Variant().Name, "delay", r.Variant().Delay.String(), "timeout", r.ioTimeout.String())
		errCh <- s.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.ioTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return errors.Wrap(err, "failed to shut down gracefully")
		}
		// requests still sleeping past the shutdown window are cut off
		r.logger.Warn("in-flight requests interrupted", slog.Duration("timeout", r.ioTimeout))
		_ = s.Close()
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
