package dispatch

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/waferhq/wafer/core/logger"
	"github.com/waferhq/wafer/core/route"
	"github.com/waferhq/wafer/core/session"
)

// WebSocketFunc drives an upgraded connection. The context carries the same
// request view ordinary handlers get; the function owns the connection
// until it returns.
type WebSocketFunc func(ctx route.Context, conn *websocket.Conn) error

const closeWriteTimeout = time.Second

// wsFallbackName catches upgrade requests with an empty path. Websocket
// handlers live in their own namespace, so the HTTP fallback name does not
// apply here.
const wsFallbackName = "default"

// HandleWebSocket registers a websocket handler under a route name.
// Selection follows the same first-segment rule as HTTP handlers.
func (d *Dispatcher) HandleWebSocket(name string, fn WebSocketFunc) {
	if name == "" || fn == nil {
		panic("dispatch: invalid websocket handler registration")
	}
	d.ws[name] = fn
}

// serveWebSocket upgrades the connection and hands it to the handler named
// by the first path segment. With no matching handler the connection is
// accepted and immediately closed, mirroring plain-HTTP fallback behavior
// without inventing a body.
func (d *Dispatcher) serveWebSocket(w http.ResponseWriter, r *http.Request, sess *session.Session, log *slog.Logger) {
	segments := route.SplitPath(r.URL.Path)
	name := wsFallbackName
	var pathParams []string
	if len(segments) > 0 {
		name = segments[0]
		pathParams = segments[1:]
	}

	fn, ok := d.ws[name]

	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		log.Warn("websocket upgrade failed", logger.Error(err))
		return
	}
	defer conn.Close()

	if !ok {
		d.closeWith(conn, websocket.CloseNormalClosure, log)
		return
	}

	ctx := newContext(r, pathParams, nil, nil, sess)
	if err := fn(ctx, conn); err != nil {
		log.Error("websocket handler failed", "handler", name, logger.Error(err))
		d.closeWith(conn, websocket.CloseInternalServerErr, log)
	}
}

func (d *Dispatcher) closeWith(conn *websocket.Conn, code int, log *slog.Logger) {
	msg := websocket.FormatCloseMessage(code, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout)); err != nil {
		log.Debug("websocket close failed", logger.Error(err))
	}
}
