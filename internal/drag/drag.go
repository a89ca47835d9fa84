package drag

import (
	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
)

type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Target is the window a controller moves.
type Target interface {
	// Position returns the layer-relative top-left corner.
	Position() geom.Point
	// Limit returns the highest valid top-left corner inside the layer.
	Limit() geom.Point
	MoveTo(p geom.Point)
	Raise()
}

// Controller turns a press on a window handle and the following document-level
// moves into clamped position updates for its target.
type Controller struct {
	doc    *input.Document
	target Target

	state        State
	startPointer geom.Point
	startPos     geom.Point
	release      func()
}

func New(doc *input.Document, target Target) *Controller {
	return &Controller{
		doc:    doc,
		target: target,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Press begins a drag. Only the primary button starts one. It reports whether
// a drag started.
func (c *Controller) Press(p input.Pointer) bool {
	if p.Button != input.ButtonPrimary || c.state == StateDragging {
		return false
	}

	// One gesture per document. A press while another window is still
	// dragging means its release was lost.
	if c.doc.Len() > 0 {
		c.doc.Leave()
	}

	c.target.Raise()

	c.state = StateDragging
	c.startPointer = p.Point()
	c.startPos = c.target.Position()
	c.release = c.doc.Listen(c)

	return true
}

// PointerMove implements input.Listener.
func (c *Controller) PointerMove(p input.Pointer) {
	if c.state != StateDragging {
		return
	}

	next := c.startPos.Add(p.Point().Sub(c.startPointer))
	limit := c.target.Limit()
	c.target.MoveTo(geom.Point{
		X: geom.Clamp(next.X, 0, limit.X),
		Y: geom.Clamp(next.Y, 0, limit.Y),
	})
}

// PointerRelease implements input.Listener.
func (c *Controller) PointerRelease(p input.Pointer) {
	c.Cancel()
}

// Cancel returns to idle and drops the document listener.
func (c *Controller) Cancel() {
	c.state = StateIdle
	if c.release != nil {
		c.release()
		c.release = nil
	}
}
