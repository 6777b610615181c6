package share

import (
	"sync"

	"LocalPaint/internal/paint"
)

// Mirror is a paint.Surface that draws on an inner surface and publishes
// every change to a Hub. It remembers what is visible so late viewers
// can be sent a snapshot.
type Mirror struct {
	inner paint.Surface
	hub   *Hub
	clock clock

	mu      sync.Mutex
	visible map[paint.Handle]paint.Shape
	order   []paint.Handle
}

var _ paint.Surface = (*Mirror)(nil)

// NewMirror wraps inner. hub may be nil, in which case nothing is
// published but the snapshot is still kept.
func NewMirror(inner paint.Surface, hub *Hub) *Mirror {
	m := &Mirror{
		inner:   inner,
		hub:     hub,
		visible: make(map[paint.Handle]paint.Shape),
	}
	if hub != nil {
		hub.setSnapshot(m.Snapshot)
	}
	return m
}

func (m *Mirror) CreateLine(x1, y1, x2, y2 int, c paint.RGB, width int) (paint.Handle, error) {
	h, err := m.inner.CreateLine(x1, y1, x2, y2, c, width)
	if err != nil {
		return 0, err
	}
	m.created(h, paint.Line(paint.Pt(x1, y1), paint.Pt(x2, y2), c, width))
	return h, nil
}

func (m *Mirror) CreateOval(x1, y1, x2, y2 int, fill, outline paint.RGB) (paint.Handle, error) {
	h, err := m.inner.CreateOval(x1, y1, x2, y2, fill, outline)
	if err != nil {
		return 0, err
	}
	m.created(h, paint.Oval(x1, y1, x2, y2, fill, outline))
	return h, nil
}

func (m *Mirror) Delete(h paint.Handle) error {
	if err := m.inner.Delete(h); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.visible, h)
	for i, o := range m.order {
		if o == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	op := m.clock.stamp(Op{Type: OpDelete, Handle: h})
	m.mu.Unlock()
	m.publish(op)
	return nil
}

func (m *Mirror) created(h paint.Handle, s paint.Shape) {
	m.mu.Lock()
	m.visible[h] = s
	m.order = append(m.order, h)
	op := m.clock.stamp(Op{Type: OpCreate, Handle: h, Shape: &s})
	m.mu.Unlock()
	m.publish(op)
}

func (m *Mirror) publish(op Op) {
	if m.hub != nil {
		m.hub.Broadcast(op)
	}
}

// Snapshot returns create Ops for everything visible, oldest first.
func (m *Mirror) Snapshot() []Op {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := make([]Op, 0, len(m.order))
	for _, h := range m.order {
		s := m.visible[h]
		ops = append(ops, Op{Type: OpCreate, Handle: h, Shape: &s, Lamport: m.clock.n.Load(), Site: siteID})
	}
	return ops
}
