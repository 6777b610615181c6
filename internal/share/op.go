// Package share streams the primitives drawn in one LocalPaint window to
// read-only viewers on the local network.
package share

import (
	"sync/atomic"

	"github.com/google/uuid"

	"LocalPaint/internal/paint"
)

// OpType is the kind of change an Op carries.
type OpType string

const (
	OpCreate OpType = "create"
	OpDelete OpType = "delete"
)

// Op is one surface change as sent over the wire. Handle is the host's
// handle; viewers map it to their own.
type Op struct {
	Type    OpType       `json:"type"`
	Handle  paint.Handle `json:"handle"`
	Shape   *paint.Shape `json:"shape,omitempty"`
	Lamport uint64       `json:"lamport"`
	Site    string       `json:"site"`
}

// siteID names this process in every Op it emits.
var siteID = uuid.NewString()

// SiteID returns the id stamped on Ops from this process.
func SiteID() string { return siteID }

// clock is a Lamport counter for outgoing Ops.
type clock struct {
	n atomic.Uint64
}

func (c *clock) stamp(op Op) Op {
	op.Lamport = c.n.Add(1)
	op.Site = siteID
	return op
}
