package paint

import "fmt"

// Entry is one recorded primitive: the handle it currently has on the
// surface and the shape needed to draw it again.
type Entry struct {
	Handle Handle
	Shape  Shape
}

// History keeps the undo and redo stacks. An entry lives in exactly one
// of them; entries on the redo stack are not on the surface.
type History struct {
	surface Surface
	undo    []Entry
	redo    []Entry
}

// NewHistory returns an empty history deleting from and redrawing onto s.
func NewHistory(s Surface) *History {
	return &History{surface: s}
}

// Record pushes a freshly created primitive. Anything waiting to be
// redone is discarded, since the new primitive starts a new branch.
func (h *History) Record(handle Handle, shape Shape) {
	h.undo = append(h.undo, Entry{Handle: handle, Shape: shape})
	h.redo = h.redo[:0]
}

// Undo removes the most recent primitive from the surface. It does
// nothing when the history is empty.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return nil
	}
	e := h.undo[len(h.undo)-1]
	if err := h.surface.Delete(e.Handle); err != nil {
		return fmt.Errorf("undo %s: %w", e.Shape.Kind, err)
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)
	Logger().Debug("paint: undo", "handle", e.Handle, "kind", e.Shape.Kind)
	return nil
}

// Redo draws the most recently undone primitive again. The surface hands
// out a new handle for it. It does nothing when there is nothing to redo.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return nil
	}
	e := h.redo[len(h.redo)-1]
	handle, err := e.Shape.Draw(h.surface)
	if err != nil {
		return fmt.Errorf("redo %s: %w", e.Shape.Kind, err)
	}
	h.redo = h.redo[:len(h.redo)-1]
	e.Handle = handle
	h.undo = append(h.undo, e)
	Logger().Debug("paint: redo", "handle", e.Handle, "kind", e.Shape.Kind)
	return nil
}

// Len is the number of undoable primitives.
func (h *History) Len() int { return len(h.undo) }

// RedoLen is the number of redoable primitives.
func (h *History) RedoLen() int { return len(h.redo) }

// Entries returns the undo stack, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.undo))
	copy(out, h.undo)
	return out
}

// RedoEntries returns the redo stack, most recently undone last.
func (h *History) RedoEntries() []Entry {
	out := make([]Entry, len(h.redo))
	copy(out, h.redo)
	return out
}
