package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nrednav/cuid2"

	"github.com/waferhq/wafer/core/binder"
	"github.com/waferhq/wafer/core/cookie"
	"github.com/waferhq/wafer/core/form"
	"github.com/waferhq/wafer/core/logger"
	"github.com/waferhq/wafer/core/response"
	"github.com/waferhq/wafer/core/route"
	"github.com/waferhq/wafer/core/session"
)

// Dispatcher drives a request through decoding, session resolution,
// routing, argument binding, handler invocation, and response
// normalization. It is the module's http.Handler.
type Dispatcher struct {
	routes   *route.Registry
	sessions *session.Store
	log      *slog.Logger
	ws       map[string]WebSocketFunc
	upgrader websocket.Upgrader
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithUpgrader overrides the websocket upgrader, e.g. for origin checks.
func WithUpgrader(up websocket.Upgrader) Option {
	return func(d *Dispatcher) {
		d.upgrader = up
	}
}

// New creates a Dispatcher over the given handler registry and session
// store.
func New(routes *route.Registry, sessions *session.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		routes:   routes,
		sessions: sessions,
		log:      logger.Discard(),
		ws:       make(map[string]WebSocketFunc),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := d.log.With(logger.Component("dispatch"), logger.RequestID(cuid2.Generate()))

	cookies := cookie.Parse(r.Header.Get("Cookie"))
	sess, _, err := d.sessions.Resolve(cookies[cookie.SessionCookieName])
	if err != nil {
		log.Error("session resolution failed", logger.Error(err))
		d.emitError(w, "", 500, log)
		return
	}
	token := sess.Token()

	if websocket.IsWebSocketUpgrade(r) {
		d.serveWebSocket(w, r, sess, log)
		return
	}

	handler, positional, err := d.routes.Resolve(r.URL.Path)
	if err != nil {
		d.emitError(w, token, 404, log)
		return
	}

	fields := make(form.Fields)
	files := make(form.Files)
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			log.Warn("body read failed", logger.Error(err))
			d.emitError(w, token, 400, log)
			return
		}
		fields, files, err = form.Decode(raw, r.Header.Get("Content-Type"))
		if err != nil {
			log.Warn("body decode failed", logger.Error(err))
			d.emitError(w, token, 400, log)
			return
		}
	}

	args, err := binder.Bind(handler.Params, positional, r.URL.Query(), fields, files, sess.Values())
	if err != nil {
		var missing binder.MissingParameterError
		if errors.As(err, &missing) {
			d.emitBody(w, token, 400,
				fmt.Sprintf("400 Bad Request: Missing required parameter '%s'", missing.Name), log)
			return
		}
		d.emitError(w, token, 400, log)
		return
	}

	// The fallback handler matching with nothing bound against a non-empty
	// path means nothing actually matched.
	if handler.Name == route.FallbackName && len(args) == 0 && len(route.SplitPath(r.URL.Path)) > 0 {
		d.emitError(w, token, 404, log)
		return
	}

	ctx := newContext(r, positional, fields, files, sess)
	res, err := invoke(handler, ctx, args)
	if err != nil {
		// Detail stays server-side; the client sees an opaque 500.
		var pe *panicError
		if errors.As(err, &pe) {
			log.Error("handler panicked", "handler", handler.Name, "value", pe.value, "stack", string(pe.stack))
		} else {
			log.Error("handler failed", "handler", handler.Name, logger.Error(err))
		}
		d.emitError(w, token, 500, log)
		return
	}

	norm, err := response.Normalize(res, token)
	if err != nil {
		log.Error("invalid handler response", "handler", handler.Name, logger.Error(err))
		d.emitError(w, token, 500, log)
		return
	}

	d.emit(w, norm, log)
	log.Info("request handled",
		"method", r.Method,
		"path", r.URL.Path,
		"handler", handler.Name,
		"status", norm.Status,
		logger.Elapsed(start),
	)
}

// invoke calls the handler, converting a panic into an error so a broken
// handler cannot take down the server.
func invoke(h *route.Handler, ctx route.Context, args []any) (res response.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &panicError{value: p, stack: debug.Stack()}
		}
	}()
	return h.Fn(ctx, args)
}

// emit writes one normalized response to the transport. For streamed
// bodies, chunks are flushed as they are produced; a producer or write
// failure after the response has started cannot become a fresh error
// response, so it is surfaced as a late failure and the body is truncated.
func (d *Dispatcher) emit(w http.ResponseWriter, norm response.Normalized, log *slog.Logger) {
	header := w.Header()
	for _, h := range norm.Headers {
		header.Add(h.Name, h.Value)
	}
	w.WriteHeader(norm.Status)

	if norm.Stream != nil {
		flusher, _ := w.(http.Flusher)
		for chunk := range norm.Stream {
			if _, err := w.Write(chunk); err != nil {
				log.Error("late response failure", logger.Error(err))
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		return
	}

	if len(norm.Buffered) > 0 {
		if _, err := w.Write(norm.Buffered); err != nil {
			log.Error("late response failure", logger.Error(err))
		}
	}
}

// emitError emits a canonical error response whose body is the status line.
func (d *Dispatcher) emitError(w http.ResponseWriter, token string, status int, log *slog.Logger) {
	d.emitBody(w, token, status, response.StatusLine(status), log)
}

// emitBody emits an error response with an explicit body. Error responses
// go through the same normalization as handler responses, so they carry the
// session cookie and a content type like any other.
func (d *Dispatcher) emitBody(w http.ResponseWriter, token string, status int, body string, log *slog.Logger) {
	norm, err := response.Normalize(response.StatusBody(status, body), token)
	if err != nil {
		// Unreachable: a string body always normalizes.
		http.Error(w, response.StatusLine(500), 500)
		return
	}
	d.emit(w, norm, log)
}
