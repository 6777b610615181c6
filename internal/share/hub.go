package share

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"LocalPaint/internal/paint"
)

const (
	writeWait = 2 * time.Second

	// Ops a viewer may fall behind by before it is dropped.
	sendBuffer = 256
)

// peer is one connection and the queue feeding its writer goroutine.
type peer struct {
	conn *websocket.Conn
	send chan Op
}

// Hub fans Ops out to every connected viewer. Broadcast never waits on
// the network; each viewer has its own writer goroutine.
type Hub struct {
	upgrader websocket.Upgrader

	mu       sync.Mutex
	viewers  map[*peer]bool
	snapshot func() []Op
}

// NewHub returns a hub with no viewers.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     noOrigin,
		},
		viewers: make(map[*peer]bool),
	}
}

// noOrigin accepts only requests without an Origin header. Browsers
// always send one; the desktop viewer does not.
func noOrigin(r *http.Request) bool {
	return r.Header.Get("Origin") == ""
}

func (h *Hub) setSnapshot(f func() []Op) {
	h.mu.Lock()
	h.snapshot = f
	h.mu.Unlock()
}

// ServeHTTP upgrades the request, queues the current snapshot and keeps
// the connection registered until the viewer goes away. Anything the
// viewer sends is discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		paint.Logger().Warn("share: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	addr := conn.RemoteAddr().String()

	// Snapshot and registration happen under one lock so no Op falls
	// between them. The queue is sized to hold the whole snapshot.
	h.mu.Lock()
	var snap []Op
	if h.snapshot != nil {
		snap = h.snapshot()
	}
	v := &peer{conn: conn, send: make(chan Op, len(snap)+sendBuffer)}
	for _, op := range snap {
		v.send <- op
	}
	h.viewers[v] = true
	n := len(h.viewers)
	h.mu.Unlock()
	paint.Logger().Info("share: viewer connected", "remote", addr, "viewers", n, "snapshot", len(snap))

	go v.writeLoop()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(v)
	paint.Logger().Info("share: viewer disconnected", "remote", addr)
}

// writeLoop drains the queue onto the connection until the queue is
// closed or a write fails.
func (v *peer) writeLoop() {
	defer v.conn.Close()
	for op := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteJSON(op); err != nil {
			return
		}
	}
	v.conn.SetWriteDeadline(time.Now().Add(writeWait))
	v.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// drop unregisters v. Callers hold h.mu.
func (h *Hub) drop(v *peer) {
	if !h.viewers[v] {
		return
	}
	delete(h.viewers, v)
	close(v.send)
}

func (h *Hub) remove(v *peer) {
	h.mu.Lock()
	h.drop(v)
	h.mu.Unlock()
	v.conn.Close()
}

// Broadcast queues op for every viewer. Viewers whose queue is full are
// dropped rather than waited on.
func (h *Hub) Broadcast(op Op) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		select {
		case v.send <- op:
		default:
			paint.Logger().Warn("share: dropping slow viewer", "remote", v.conn.RemoteAddr().String())
			h.drop(v)
			v.conn.Close()
		}
	}
}

// Len is the number of connected viewers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		h.drop(v)
		v.conn.Close()
	}
}
