// Package wm stacks, places and focuses floating windows over an abstract
// surface.
//
// A Manager is not safe for concurrent use. Every method runs to completion on
// the goroutine that dispatches the desktop's input.
package wm

import (
	"errors"

	"github.com/ItsNotGoodName/webdesk/internal/drag"
	"github.com/ItsNotGoodName/webdesk/internal/geom"
)

var ErrNoContent = errors.New("no content")

// FocusTarget identifies an element that can hold input focus. The empty
// target means nothing.
type FocusTarget string

// Content is what a provider supplies for a key.
type Content[T any] struct {
	Title string
	Node  T
	// Size is optional, the manager's default size is used when zero.
	Size geom.Size
}

type Provider[T any] interface {
	Content(key string) (Content[T], bool)
}

type ProviderFunc[T any] func(key string) (Content[T], bool)

func (fn ProviderFunc[T]) Content(key string) (Content[T], bool) {
	return fn(key)
}

// Surface is the platform side of the manager. Mount and Raise leave the given
// window as the only focused one.
type Surface[T any] interface {
	// Layer returns the size of the layer windows are placed in.
	Layer() geom.Size
	Mount(w *Window[T])
	Unmount(w *Window[T])
	Raise(w *Window[T])
	Place(w *Window[T])
	// FocusFirst moves input focus to the first focusable control of w.
	FocusFirst(w *Window[T])
	// Active returns the element that currently has input focus.
	Active() FocusTarget
	// Alive reports whether t can still receive focus.
	Alive(t FocusTarget) bool
	Restore(t FocusTarget)
}

type Window[T any] struct {
	Key      string
	Title    string
	Z        int
	Position geom.Point
	Size     geom.Size
	Focused  bool
	Node     T

	handle *drag.Controller
}

// Handle returns the drag controller attached to the window's title bar.
func (w *Window[T]) Handle() *drag.Controller {
	return w.handle
}
