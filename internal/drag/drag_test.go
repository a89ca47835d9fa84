package drag

import (
	"testing"

	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	pos    geom.Point
	limit  geom.Point
	raised int
	moves  int
}

func (f *fakeTarget) Position() geom.Point { return f.pos }
func (f *fakeTarget) Limit() geom.Point    { return f.limit }
func (f *fakeTarget) MoveTo(p geom.Point)  { f.pos = p; f.moves++ }
func (f *fakeTarget) Raise()               { f.raised++ }

func newController(pos geom.Point) (*Controller, *fakeTarget, *input.Document) {
	doc := input.NewDocument()
	target := &fakeTarget{pos: pos, limit: geom.Point{X: 480, Y: 340}}
	return New(doc, target), target, doc
}

func TestPressStartsDrag(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})

	require.True(t, c.Press(input.Pointer{X: 130, Y: 110}))

	assert.Equal(t, StateDragging, c.State())
	assert.Equal(t, 1, target.raised)
	assert.Equal(t, 1, doc.Len())
}

func TestPressIgnoresOtherButtons(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})

	assert.False(t, c.Press(input.Pointer{X: 130, Y: 110, Button: input.ButtonSecondary}))
	assert.False(t, c.Press(input.Pointer{X: 130, Y: 110, Button: input.ButtonAuxiliary}))

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, target.raised)
	assert.Equal(t, 0, doc.Len())
}

func TestMoveAppliesDeltaFromStart(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})
	c.Press(input.Pointer{X: 130, Y: 110})

	doc.Move(input.Pointer{X: 140, Y: 120})
	assert.Equal(t, geom.Point{X: 110, Y: 110}, target.pos)

	// Repeated moves reflect only the latest pointer location.
	doc.Move(input.Pointer{X: 150, Y: 125})
	doc.Move(input.Pointer{X: 150, Y: 125})
	assert.Equal(t, geom.Point{X: 120, Y: 115}, target.pos)

	doc.Move(input.Pointer{X: 130, Y: 110})
	assert.Equal(t, geom.Point{X: 100, Y: 100}, target.pos)
}

func TestMoveClampsToLayer(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})
	c.Press(input.Pointer{X: 0, Y: 0})

	doc.Move(input.Pointer{X: -500, Y: -500})
	assert.Equal(t, geom.Point{X: 0, Y: 0}, target.pos)

	doc.Move(input.Pointer{X: 5000, Y: 5000})
	assert.Equal(t, geom.Point{X: 480, Y: 340}, target.pos)
}

func TestReleaseEndsDragAnywhere(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})
	c.Press(input.Pointer{X: 130, Y: 110})

	doc.Release(input.Pointer{X: 900, Y: 900})

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, doc.Len())

	doc.Move(input.Pointer{X: 200, Y: 200})
	assert.Equal(t, 0, target.moves)
}

func TestRepressUsesClampedPosition(t *testing.T) {
	c, target, doc := newController(geom.Point{X: 100, Y: 100})

	c.Press(input.Pointer{X: 0, Y: 0})
	doc.Move(input.Pointer{X: -300, Y: 0})
	doc.Release(input.Pointer{X: -300, Y: 0})
	require.Equal(t, geom.Point{X: 0, Y: 100}, target.pos)

	c.Press(input.Pointer{X: 10, Y: 10})
	doc.Move(input.Pointer{X: 30, Y: 10})

	assert.Equal(t, geom.Point{X: 20, Y: 100}, target.pos)
}

func TestLeaveTearsDownListener(t *testing.T) {
	c, _, doc := newController(geom.Point{X: 100, Y: 100})
	c.Press(input.Pointer{X: 130, Y: 110})

	doc.Leave()

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, doc.Len())
}

func TestPressWhileDraggingKeepsSingleListener(t *testing.T) {
	c, _, doc := newController(geom.Point{X: 100, Y: 100})

	c.Press(input.Pointer{X: 130, Y: 110})
	c.Press(input.Pointer{X: 130, Y: 110})

	assert.Equal(t, 1, doc.Len())
}

func TestDraggingOneTargetLeavesOthers(t *testing.T) {
	doc := input.NewDocument()
	a := &fakeTarget{pos: geom.Point{X: 10, Y: 10}, limit: geom.Point{X: 500, Y: 500}}
	b := &fakeTarget{pos: geom.Point{X: 50, Y: 50}, limit: geom.Point{X: 500, Y: 500}}
	ca, _ := New(doc, a), New(doc, b)

	ca.Press(input.Pointer{X: 10, Y: 10})
	doc.Move(input.Pointer{X: 60, Y: 70})
	doc.Release(input.Pointer{X: 60, Y: 70})

	assert.Equal(t, geom.Point{X: 60, Y: 70}, a.pos)
	assert.Equal(t, geom.Point{X: 50, Y: 50}, b.pos)
	assert.Equal(t, 0, b.raised)
}

func TestPressEndsOtherGesture(t *testing.T) {
	doc := input.NewDocument()
	a := &fakeTarget{pos: geom.Point{X: 10, Y: 10}, limit: geom.Point{X: 500, Y: 500}}
	b := &fakeTarget{pos: geom.Point{X: 50, Y: 50}, limit: geom.Point{X: 500, Y: 500}}
	ca, cb := New(doc, a), New(doc, b)

	require.True(t, ca.Press(input.Pointer{X: 10, Y: 10}))
	require.True(t, cb.Press(input.Pointer{X: 50, Y: 50}))

	assert.Equal(t, StateIdle, ca.State())
	assert.Equal(t, StateDragging, cb.State())
	assert.Equal(t, 1, doc.Len())

	doc.Move(input.Pointer{X: 150, Y: 150})

	assert.Equal(t, geom.Point{X: 10, Y: 10}, a.pos)
	assert.Equal(t, geom.Point{X: 150, Y: 150}, b.pos)
}
