package desktop

import (
	"strings"

	"github.com/ItsNotGoodName/webdesk/internal/content"
	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/wm"
)

// Focus targets inside a window are written "win:<key>#<element>". Anything
// else belongs to the desktop.
const (
	windowTargetPrefix = "win:"
	elementFirst       = "first"
)

func WindowTarget(key, element string) wm.FocusTarget {
	return wm.FocusTarget(windowTargetPrefix + key + "#" + element)
}

func targetWindow(t wm.FocusTarget) (string, bool) {
	rest, ok := strings.CutPrefix(string(t), windowTargetPrefix)
	if !ok {
		return "", false
	}
	key, _, _ := strings.Cut(rest, "#")
	return key, true
}

// recorder is the wm.Surface of a remote browser. It keeps what the browser is
// known to show and records every operation for the next frame.
type recorder struct {
	layer   geom.Size
	active  wm.FocusTarget
	mounted map[string]struct{}
	ops     []Op
}

var _ wm.Surface[content.Node] = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{
		mounted: make(map[string]struct{}),
	}
}

func (r *recorder) flush() []Op {
	ops := r.ops
	r.ops = nil
	return ops
}

func (r *recorder) Layer() geom.Size {
	return r.layer
}

func (r *recorder) Mount(w *wm.Window[content.Node]) {
	r.mounted[w.Key] = struct{}{}
	node := w.Node
	r.ops = append(r.ops, Op{
		Op:      OpMount,
		Key:     w.Key,
		Title:   w.Title,
		Node:    &node,
		Z:       w.Z,
		X:       w.Position.X,
		Y:       w.Position.Y,
		W:       w.Size.W,
		H:       w.Size.H,
		Focused: w.Focused,
	})
}

func (r *recorder) Unmount(w *wm.Window[content.Node]) {
	delete(r.mounted, w.Key)
	if key, ok := targetWindow(r.active); ok && key == w.Key {
		r.active = ""
	}
	r.ops = append(r.ops, Op{Op: OpUnmount, Key: w.Key})
}

func (r *recorder) Raise(w *wm.Window[content.Node]) {
	r.ops = append(r.ops, Op{Op: OpRaise, Key: w.Key, Z: w.Z, Focused: w.Focused})
}

func (r *recorder) Place(w *wm.Window[content.Node]) {
	r.ops = append(r.ops, Op{Op: OpPlace, Key: w.Key, X: w.Position.X, Y: w.Position.Y})
}

func (r *recorder) FocusFirst(w *wm.Window[content.Node]) {
	r.focus(WindowTarget(w.Key, elementFirst))
}

func (r *recorder) Active() wm.FocusTarget {
	return r.active
}

func (r *recorder) Alive(t wm.FocusTarget) bool {
	if t == "" {
		return false
	}
	key, ok := targetWindow(t)
	if !ok {
		return true
	}
	_, ok = r.mounted[key]
	return ok
}

func (r *recorder) Restore(t wm.FocusTarget) {
	r.focus(t)
}

func (r *recorder) focus(t wm.FocusTarget) {
	r.active = t
	r.ops = append(r.ops, Op{Op: OpFocus, Target: t})
}
