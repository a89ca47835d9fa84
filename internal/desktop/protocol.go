package desktop

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ItsNotGoodName/webdesk/internal/content"
	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
	"github.com/ItsNotGoodName/webdesk/internal/wm"
)

var ErrUnknownMessage = errors.New("unknown message")

// Msg is anything the desktop model reacts to.
type Msg interface{}

type Region string

const (
	RegionBody   Region = "body"
	RegionHandle Region = "handle"
)

type (
	// Viewport reports the browser viewport and the window layer inside it.
	Viewport struct {
		Width  int
		Height int
		Layer  geom.Rect
	}
	// PointerDown is a press. Window is empty when the press hit the desktop.
	PointerDown struct {
		Pointer input.Pointer
		Window  string
		Region  Region
	}
	PointerMove struct {
		Pointer input.Pointer
	}
	PointerUp struct {
		Pointer input.Pointer
	}
	// PointerLeave means the pointer left the document mid gesture.
	PointerLeave struct{}
	KeyDown      struct {
		Key input.Key
	}
	Open struct {
		Key   string
		Title string
	}
	CloseWindow struct {
		Key string
	}
	CloseTopmost struct{}
	// FocusIn reports which element holds input focus.
	FocusIn struct {
		Target wm.FocusTarget
	}
	// Snapshot changes nothing, it is used to read the model through a Loop.
	Snapshot struct{}
)

// clientMessage is the JSON the browser sends.
type clientMessage struct {
	Type   string     `json:"type"`
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Button int        `json:"button"`
	Window string     `json:"window"`
	Region Region     `json:"region"`
	Key    string     `json:"key"`
	Title  string     `json:"title"`
	Target string     `json:"target"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Layer  *geom.Rect `json:"layer"`
}

// Decode parses one message from the browser.
func Decode(data []byte) (Msg, error) {
	var m clientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	pointer := input.Pointer{X: m.X, Y: m.Y, Button: input.Button(m.Button)}

	switch m.Type {
	case "viewport":
		layer := geom.Rect{W: m.Width, H: m.Height}
		if m.Layer != nil {
			layer = *m.Layer
		}
		return Viewport{Width: m.Width, Height: m.Height, Layer: layer}, nil
	case "pointerdown":
		return PointerDown{Pointer: pointer, Window: m.Window, Region: m.Region}, nil
	case "pointermove":
		return PointerMove{Pointer: pointer}, nil
	case "pointerup":
		return PointerUp{Pointer: pointer}, nil
	case "pointerleave":
		return PointerLeave{}, nil
	case "keydown":
		return KeyDown{Key: input.Key(m.Key)}, nil
	case "open":
		return Open{Key: m.Key, Title: m.Title}, nil
	case "close":
		return CloseWindow{Key: m.Key}, nil
	case "focusin":
		return FocusIn{Target: wm.FocusTarget(m.Target)}, nil
	default:
		return nil, fmt.Errorf("%q: %w", m.Type, ErrUnknownMessage)
	}
}

type FrameType string

const (
	FrameHello FrameType = "hello"
	FrameOps   FrameType = "ops"
)

// Frame is what the browser receives.
type Frame struct {
	Type       FrameType      `json:"type"`
	Session    string         `json:"session,omitempty"`
	Breakpoint int            `json:"breakpoint,omitempty"`
	Icons      []content.Icon `json:"icons,omitempty"`
	Ops        []Op           `json:"ops,omitempty"`
}

type OpKind string

const (
	OpMount   OpKind = "mount"
	OpUnmount OpKind = "unmount"
	OpRaise   OpKind = "raise"
	OpPlace   OpKind = "place"
	OpFocus   OpKind = "focus"
)

type Op struct {
	Op      OpKind         `json:"op"`
	Key     string         `json:"key,omitempty"`
	Title   string         `json:"title,omitempty"`
	Node    *content.Node  `json:"node,omitempty"`
	Z       int            `json:"z,omitempty"`
	X       int            `json:"x"`
	Y       int            `json:"y"`
	W       int            `json:"w,omitempty"`
	H       int            `json:"h,omitempty"`
	Focused bool           `json:"focused,omitempty"`
	Target  wm.FocusTarget `json:"target,omitempty"`
}

// WindowView is a read-only copy of a window.
type WindowView struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Z       int    `json:"z"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	Focused bool   `json:"focused"`
}

func viewOf(w *wm.Window[content.Node]) WindowView {
	return WindowView{
		Key:     w.Key,
		Title:   w.Title,
		Z:       w.Z,
		X:       w.Position.X,
		Y:       w.Position.Y,
		W:       w.Size.W,
		H:       w.Size.H,
		Focused: w.Focused,
	}
}
