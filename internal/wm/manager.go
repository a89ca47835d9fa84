package wm

import (
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/webdesk/internal/drag"
	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
	"github.com/ItsNotGoodName/webdesk/internal/registry"
)

type Options struct {
	// Narrow reports whether the viewport is below the mobile breakpoint.
	Narrow  func() bool
	ZBase   int
	Cascade geom.CascadeSpec
	Size    geom.Size
}

var DefaultOptions = Options{
	ZBase:   10,
	Cascade: geom.DefaultCascade,
	Size:    geom.Size{W: 520, H: 360},
}

// Manager owns the open windows of one desktop session.
//
// Only the element focused before the most recent fresh Open is remembered.
// When windows are opened in a nested sequence and closed out of order,
// closing restores that single target once and then nothing.
type Manager[T any] struct {
	surface Surface[T]
	doc     *input.Document
	opts    Options

	windows    *registry.Registry[*Window[T]]
	topZ       int
	beforeOpen FocusTarget
}

func NewManager[T any](surface Surface[T], doc *input.Document, opts Options) *Manager[T] {
	if opts.Narrow == nil {
		opts.Narrow = func() bool { return false }
	}
	if opts.Size == (geom.Size{}) {
		opts.Size = DefaultOptions.Size
	}
	if opts.Cascade == (geom.CascadeSpec{}) {
		opts.Cascade = DefaultOptions.Cascade
	}

	return &Manager[T]{
		surface: surface,
		doc:     doc,
		opts:    opts,
		windows: registry.New[*Window[T]](),
		topZ:    opts.ZBase,
	}
}

// Open focuses the window for key, creating it from provider when it is not
// open yet. A non-empty title overrides the provider's title.
func (m *Manager[T]) Open(key, title string, provider Provider[T]) (*Window[T], error) {
	if w, ok := m.windows.Get(key); ok {
		m.Focus(key)
		m.surface.FocusFirst(w)
		return w, nil
	}

	if provider == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrNoContent)
	}
	content, ok := provider.Content(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNoContent)
	}

	m.beforeOpen = m.surface.Active()

	if title == "" {
		title = content.Title
	}
	size := content.Size
	if size == (geom.Size{}) {
		size = m.opts.Size
	}
	layer := m.surface.Layer()
	size = geom.Fit(layer, size, m.opts.Cascade.Margin)

	w := &Window[T]{
		Key:   key,
		Title: title,
		Size:  size,
		Node:  content.Node,
	}
	w.handle = drag.New(m.doc, handleTarget[T]{m: m, key: key})

	if m.opts.Narrow() {
		w.Position = geom.Center(layer, size, m.opts.Cascade.Margin)
	} else {
		w.Position = geom.Cascade(layer, size, m.windows.Len(), m.opts.Cascade)
	}

	m.bringToFront(w)

	if err := m.windows.Put(key, w); err != nil {
		return nil, err
	}

	m.surface.Mount(w)
	m.surface.FocusFirst(w)

	slog.Debug("Opened window", "key", key, "z", w.Z, "x", w.Position.X, "y", w.Position.Y)

	return w, nil
}

// Focus raises the window for key above every other window.
func (m *Manager[T]) Focus(key string) {
	w, ok := m.windows.Get(key)
	if !ok {
		return
	}

	m.bringToFront(w)
	m.surface.Raise(w)
}

func (m *Manager[T]) bringToFront(w *Window[T]) {
	m.topZ++
	w.Z = m.topZ

	for _, other := range m.windows.Values() {
		other.Focused = false
	}
	w.Focused = true
}

// Close removes the window for key and gives input focus back to the element
// that held it before the last window was opened.
func (m *Manager[T]) Close(key string) {
	w, ok := m.windows.Get(key)
	if !ok {
		return
	}

	w.handle.Cancel()
	m.surface.Unmount(w)
	m.windows.Remove(key)

	if w.Focused {
		if top := m.Topmost(); top != nil {
			top.Focused = true
			m.surface.Raise(top)
		}
	}

	if m.beforeOpen != "" && m.surface.Alive(m.beforeOpen) {
		m.surface.Restore(m.beforeOpen)
		m.beforeOpen = ""
	}

	slog.Debug("Closed window", "key", key)
}

func (m *Manager[T]) CloseTopmost() {
	if top := m.Topmost(); top != nil {
		m.Close(top.Key)
	}
}

// RepositionForViewport re-centers every window when the viewport is narrow.
func (m *Manager[T]) RepositionForViewport() {
	if !m.opts.Narrow() {
		return
	}

	layer := m.surface.Layer()
	for _, w := range m.windows.Values() {
		w.Position = geom.Center(layer, w.Size, m.opts.Cascade.Margin)
		m.surface.Place(w)
	}
}

// Move places the window for key at p, clamped to the layer.
func (m *Manager[T]) Move(key string, p geom.Point) {
	w, ok := m.windows.Get(key)
	if !ok {
		return
	}

	p = geom.ClampPoint(p, m.surface.Layer(), w.Size, 0)
	if p == w.Position {
		return
	}

	w.Position = p
	m.surface.Place(w)
}

func (m *Manager[T]) Get(key string) (*Window[T], bool) {
	return m.windows.Get(key)
}

func (m *Manager[T]) Len() int {
	return m.windows.Len()
}

// Windows returns the open windows in the order they were opened.
func (m *Manager[T]) Windows() []*Window[T] {
	return m.windows.Values()
}

// Topmost returns the window with the highest z-order or nil.
func (m *Manager[T]) Topmost() *Window[T] {
	var top *Window[T]
	for _, w := range m.windows.Values() {
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

// handleTarget lets a drag controller move its window without holding a
// pointer to it.
type handleTarget[T any] struct {
	m   *Manager[T]
	key string
}

func (h handleTarget[T]) Position() geom.Point {
	if w, ok := h.m.windows.Get(h.key); ok {
		return w.Position
	}
	return geom.Point{}
}

func (h handleTarget[T]) Limit() geom.Point {
	w, ok := h.m.windows.Get(h.key)
	if !ok {
		return geom.Point{}
	}
	_, hi := geom.Bounds(h.m.surface.Layer(), w.Size, 0)
	return hi
}

func (h handleTarget[T]) MoveTo(p geom.Point) {
	h.m.Move(h.key, p)
}

func (h handleTarget[T]) Raise() {
	h.m.Focus(h.key)
}
