package geom

import "math"

type (
	Point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	Size struct {
		W int `json:"w"`
		H int `json:"h"`
	}

	Rect struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	}
)

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Clamp bounds n to [min, max]. When min > max, which happens when a window
// is larger than its layer, min wins.
func Clamp(n, min, max int) int {
	if n > max {
		n = max
	}
	if n < min {
		n = min
	}
	return n
}

// Bounds returns the lowest and highest top-left corner a window of size win
// can take inside layer while keeping margin pixels from every edge.
func Bounds(layer, win Size, margin int) (lo, hi Point) {
	lo = Point{X: margin, Y: margin}
	hi = Point{X: layer.W - win.W - margin, Y: layer.H - win.H - margin}
	return
}

func ClampPoint(p Point, layer, win Size, margin int) Point {
	lo, hi := Bounds(layer, win, margin)
	return Point{
		X: Clamp(p.X, lo.X, hi.X),
		Y: Clamp(p.Y, lo.Y, hi.Y),
	}
}

// Fit shrinks win so it keeps margin pixels from every edge of layer. A zero
// layer dimension is unknown and leaves that dimension alone.
func Fit(layer, win Size, margin int) Size {
	if w := layer.W - 2*margin; layer.W > 0 && w > 0 && win.W > w {
		win.W = w
	}
	if h := layer.H - 2*margin; layer.H > 0 && h > 0 && win.H > h {
		win.H = h
	}
	return win
}

// Center places win horizontally centered and at one third of the free
// vertical space so that desktop icons near the top stay visible.
func Center(layer, win Size, margin int) Point {
	left := int(math.Round(float64(layer.W-win.W) / 2))
	top := int(math.Round(float64(layer.H-win.H) / 3))
	return ClampPoint(Point{X: left, Y: top}, layer, win, margin)
}

type CascadeSpec struct {
	Origin Point `json:"origin" yaml:"origin"`
	Step   Point `json:"step" yaml:"step"`
	Margin int   `json:"margin" yaml:"margin"`
}

var DefaultCascade = CascadeSpec{
	Origin: Point{X: 28, Y: 28},
	Step:   Point{X: 22, Y: 18},
	Margin: 8,
}

// Cascade offsets the index-th window diagonally from the origin.
func Cascade(layer, win Size, index int, c CascadeSpec) Point {
	p := Point{
		X: c.Origin.X + index*c.Step.X,
		Y: c.Origin.Y + index*c.Step.Y,
	}
	return ClampPoint(p, layer, win, c.Margin)
}
