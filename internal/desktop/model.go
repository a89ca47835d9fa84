// Package desktop runs one browser desktop session on top of the window
// manager.
package desktop

import (
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/webdesk/internal/config"
	"github.com/ItsNotGoodName/webdesk/internal/content"
	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
	"github.com/ItsNotGoodName/webdesk/internal/wm"
)

type Model struct {
	ID string

	breakpoint int
	viewport   geom.Size
	provider   content.Provider
	doc        *input.Document
	surface    *recorder
	windows    *wm.Manager[content.Node]
}

func NewModel(id string, cfg config.Config) *Model {
	m := &Model{
		ID:         id,
		breakpoint: cfg.Desktop.Breakpoint,
		provider:   content.NewProvider(cfg),
		doc:        input.NewDocument(),
		surface:    newRecorder(),
	}
	m.windows = wm.NewManager[content.Node](m.surface, m.doc, wm.Options{
		Narrow:  m.narrow,
		ZBase:   cfg.Desktop.ZBase,
		Cascade: cfg.Desktop.Cascade,
		Size:    cfg.Desktop.Window,
	})
	return m
}

// narrow is false until the browser has reported its viewport.
func (m *Model) narrow() bool {
	return m.viewport.W > 0 && m.viewport.W < m.breakpoint
}

// Hello is the first frame a browser receives.
func (m *Model) Hello() Frame {
	return Frame{
		Type:       FrameHello,
		Session:    m.ID,
		Breakpoint: m.breakpoint,
		Icons:      m.provider.Icons(),
	}
}

// Update applies msg and returns the operations the browser has to replay.
func (m *Model) Update(msg Msg) (Frame, error) {
	err := m.update(msg)
	return Frame{Type: FrameOps, Ops: m.surface.flush()}, err
}

func (m *Model) update(msg Msg) error {
	switch msg := msg.(type) {
	case Viewport:
		m.viewport = geom.Size{W: msg.Width, H: msg.Height}
		m.surface.layer = msg.Layer.Size()
		m.windows.RepositionForViewport()
	case PointerDown:
		w, ok := m.windows.Get(msg.Window)
		if !ok {
			return nil
		}
		if msg.Region == RegionHandle && w.Handle().Press(msg.Pointer) {
			return nil
		}
		m.windows.Focus(w.Key)
	case PointerMove:
		m.doc.Move(msg.Pointer)
	case PointerUp:
		m.doc.Release(msg.Pointer)
	case PointerLeave:
		m.doc.Leave()
	case KeyDown:
		if msg.Key == input.KeyEscape {
			m.windows.CloseTopmost()
		}
	case Open:
		if _, err := m.windows.Open(msg.Key, msg.Title, m.provider); err != nil {
			return err
		}
	case CloseWindow:
		m.windows.Close(msg.Key)
	case CloseTopmost:
		m.windows.CloseTopmost()
	case FocusIn:
		m.surface.active = msg.Target
	case Snapshot:
	default:
		slog.Warn("Unhandled message", "package", "desktop", "session", m.ID, "type", fmt.Sprintf("%T", msg))
	}
	return nil
}

// Windows returns the open windows in the order they were opened.
func (m *Model) Windows() []WindowView {
	views := make([]WindowView, 0, m.windows.Len())
	for _, w := range m.windows.Windows() {
		views = append(views, viewOf(w))
	}
	return views
}

// Dragging reports whether a window is being dragged.
func (m *Model) Dragging() bool {
	return m.doc.Len() > 0
}
