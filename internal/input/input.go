// Package input models the pointer and keyboard events a desktop reacts to,
// independent of how a platform dispatches them.
package input

import "github.com/ItsNotGoodName/webdesk/internal/geom"

type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// Pointer is a pointer event in viewport pixels.
type Pointer struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button Button `json:"button"`
}

func (p Pointer) Point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

type Key string

const KeyEscape Key = "Escape"

// Listener receives document-level pointer events for the duration of a
// gesture.
type Listener interface {
	PointerMove(p Pointer)
	PointerRelease(p Pointer)
}

type entry struct {
	id       int
	listener Listener
}

// Document is the document-wide listener set. It is not safe for concurrent
// use; it belongs to the goroutine that dispatches input.
type Document struct {
	lastID    int
	listeners []entry
	last      Pointer
}

func NewDocument() *Document {
	return &Document{}
}

// Listen registers l until the returned release function is called. Calling
// release more than once is harmless.
func (d *Document) Listen(l Listener) (release func()) {
	d.lastID++
	id := d.lastID
	d.listeners = append(d.listeners, entry{id: id, listener: l})

	return func() {
		for i, e := range d.listeners {
			if e.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

func (d *Document) Len() int {
	return len(d.listeners)
}

func (d *Document) Move(p Pointer) {
	d.last = p
	for _, e := range d.snapshot() {
		e.listener.PointerMove(p)
	}
}

func (d *Document) Release(p Pointer) {
	d.last = p
	for _, e := range d.snapshot() {
		e.listener.PointerRelease(p)
	}
}

// Leave ends every gesture at the last known pointer position. It is used when
// the pointer leaves the document or the platform loses it.
func (d *Document) Leave() {
	d.Release(d.last)
	d.listeners = nil
}

func (d *Document) snapshot() []entry {
	snap := make([]entry, len(d.listeners))
	copy(snap, d.listeners)
	return snap
}
