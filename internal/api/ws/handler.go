package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/id"
	"github.com/nooros/backend/internal/shared/types"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Message types
const (
	TypeSnapshot = "snapshot"
	TypePing     = "ping"
	TypePong     = "pong"
	TypeViewport = "viewport"
	TypeError    = "error"
	TypeSystem   = "system"
)

// Frame is a server to client message
type Frame struct {
	Type      string            `json:"type"`
	Snapshot  *desktop.Snapshot `json:"snapshot,omitempty"`
	Message   string            `json:"message,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Handler streams desktop snapshots over WebSocket
type Handler struct {
	desktop  *desktop.Controller
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. An empty origin list or "*"
// accepts every origin.
func NewHandler(ctrl *desktop.Controller, logger *zap.Logger, metrics *monitoring.Metrics, origins []string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		desktop: ctrl,
		logger:  logger,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(origins),
		},
	}
}

func originChecker(origins []string) func(*http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || len(allowed) == 0 || allowed[origin]
	}
}

// conn serializes writes to one client
type conn struct {
	id id.ConnectionID
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return fn()
}

// frameQueue holds one pending snapshot per client. A newer snapshot
// replaces an unsent one, and a snapshot older than the last one queued is
// dropped so a slow reader never goes backwards.
type frameQueue struct {
	mu   sync.Mutex
	ch   chan desktop.Snapshot
	last uint64
	seen bool
}

func newFrameQueue() *frameQueue {
	return &frameQueue{ch: make(chan desktop.Snapshot, 1)}
}

func (q *frameQueue) push(s desktop.Snapshot) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.seen && s.Version < q.last {
		return
	}
	q.last, q.seen = s.Version, true

	select {
	case <-q.ch:
	default:
	}
	q.ch <- s
}

// HandleConnection upgrades the request and streams snapshots until the
// client goes away
func (h *Handler) HandleConnection(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	client := &conn{id: id.NewConnectionID(), ws: ws}
	log := h.logger.With(zap.String("conn_id", client.id.String()))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}
	log.Info("Stream connected")
	defer log.Info("Stream disconnected")

	frames := newFrameQueue()
	push := frames.push

	done := make(chan struct{})
	writerDone := make(chan struct{})
	go h.writeLoop(client, frames.ch, done, writerDone, log)

	h.send(client, Frame{Type: TypeSystem, Message: "connected"})
	unsubscribe := h.desktop.Subscribe(push)

	h.readLoop(client, push, log)

	unsubscribe()
	close(done)
	<-writerDone
	ws.Close()
}

func (h *Handler) readLoop(client *conn, push func(desktop.Snapshot), log *zap.Logger) {
	client.ws.SetReadLimit(maxMessageSize)
	client.ws.SetReadDeadline(time.Now().Add(pongWait))
	client.ws.SetPongHandler(func(string) error {
		return client.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg types.WSMessage
		if err := client.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("WebSocket read error", zap.Error(err))
			}
			return
		}
		client.ws.SetReadDeadline(time.Now().Add(pongWait))
		h.record("in", msg.Type)

		switch msg.Type {
		case TypePing:
			h.send(client, Frame{Type: TypePong})
		case TypeSnapshot:
			push(h.desktop.Snapshot())
		case TypeViewport:
			if msg.Width <= 0 || msg.Height <= 0 {
				h.send(client, Frame{Type: TypeError, Message: "viewport needs positive width and height"})
				continue
			}
			// The resulting snapshot arrives through the subscription.
			h.desktop.SetViewport(msg.Width, msg.Height)
		default:
			h.send(client, Frame{Type: TypeError, Message: "unknown message type"})
		}
	}
}

func (h *Handler) writeLoop(client *conn, frames <-chan desktop.Snapshot, done <-chan struct{}, writerDone chan<- struct{}, log *zap.Logger) {
	defer close(writerDone)
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snap := <-frames:
			if err := h.send(client, Frame{Type: TypeSnapshot, Snapshot: &snap}); err != nil {
				log.Debug("Snapshot write failed", zap.Error(err))
				client.ws.Close()
				return
			}
		case <-ticker.C:
			err := client.write(func() error {
				return client.ws.WriteMessage(websocket.PingMessage, nil)
			})
			if err != nil {
				client.ws.Close()
				return
			}
		case <-done:
			client.write(func() error {
				return client.ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			})
			return
		}
	}
}

func (h *Handler) send(client *conn, f Frame) error {
	f.Timestamp = time.Now().UnixMilli()
	err := client.write(func() error {
		return client.ws.WriteJSON(f)
	})
	if err == nil {
		h.record("out", f.Type)
	}
	return err
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
