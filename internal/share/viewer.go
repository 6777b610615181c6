package share

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"LocalPaint/internal/paint"
)

// Viewer replays a hub's Ops onto a local surface.
type Viewer struct {
	conn    *websocket.Conn
	surface paint.Surface
	// host handle -> local handle
	handles map[paint.Handle]paint.Handle
}

// Dial connects to the hub behind link (a share link or ws:// URL).
func Dial(ctx context.Context, link string, s paint.Surface) (*Viewer, error) {
	url := WebsocketURL(link)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("share: dial %s: %w", url, err)
	}
	return NewViewer(conn, s), nil
}

// NewViewer replays Ops read from conn onto s.
func NewViewer(conn *websocket.Conn, s paint.Surface) *Viewer {
	return &Viewer{
		conn:    conn,
		surface: s,
		handles: make(map[paint.Handle]paint.Handle),
	}
}

// Run reads Ops until the connection drops or ctx is done. Each Op is
// applied through exec, which lets a UI apply them on its own thread;
// pass nil to apply inline.
func (v *Viewer) Run(ctx context.Context, exec func(func())) error {
	if exec == nil {
		exec = func(f func()) { f() }
	}
	stop := context.AfterFunc(ctx, func() { v.conn.Close() })
	defer stop()

	for {
		var op Op
		if err := v.conn.ReadJSON(&op); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("share: read: %w", err)
		}
		exec(func() {
			if err := v.Apply(op); err != nil {
				paint.Logger().Warn("share: apply failed", "op", op.Type, "handle", op.Handle, "err", err)
			}
		})
	}
}

// Apply performs one Op on the local surface. A create for a handle
// already drawn, or a delete for one never seen, is ignored: a viewer
// that joins while the host is drawing can receive an Op twice.
func (v *Viewer) Apply(op Op) error {
	switch op.Type {
	case OpCreate:
		if op.Shape == nil {
			return fmt.Errorf("create %d without shape", op.Handle)
		}
		if _, ok := v.handles[op.Handle]; ok {
			return nil
		}
		local, err := op.Shape.Draw(v.surface)
		if err != nil {
			return err
		}
		v.handles[op.Handle] = local
	case OpDelete:
		local, ok := v.handles[op.Handle]
		if !ok {
			return nil
		}
		if err := v.surface.Delete(local); err != nil {
			return err
		}
		delete(v.handles, op.Handle)
	default:
		return fmt.Errorf("unknown op %q", op.Type)
	}
	return nil
}

// Close drops the connection.
func (v *Viewer) Close() error {
	return v.conn.Close()
}
