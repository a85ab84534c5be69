// Package layout turns validated document requests into pages of absolute
// draw commands measured in millimetres. Nothing here paints; a renderer
// walks Page.Commands in order.
package layout

import (
	"math"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

// PtToMm converts typographic points to millimetres.
const PtToMm = 25.4 / 72

// epsilon absorbs float noise when comparing positions.
const epsilon = 1e-6

// Box is a rectangle in millimetres with its origin at the top left.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Inset shrinks b by the margins.
func (b Box) Inset(m document.Margins) Box {
	return Box{
		X:      b.X + m.Left,
		Y:      b.Y + m.Top,
		Width:  b.Width - m.Left - m.Right,
		Height: b.Height - m.Top - m.Bottom,
	}
}

// InsetAll shrinks b by d on every side.
func (b Box) InsetAll(d float64) Box {
	return b.Inset(document.Margins{Top: d, Right: d, Bottom: d, Left: d})
}

// SplitTop cuts a band of height h off the top of b.
func (b Box) SplitTop(h float64) (top, rest Box) {
	h = math.Min(h, b.Height)
	top = Box{X: b.X, Y: b.Y, Width: b.Width, Height: h}
	rest = Box{X: b.X, Y: b.Y + h, Width: b.Width, Height: b.Height - h}
	return top, rest
}

// SplitBottom cuts a band of height h off the bottom of b.
func (b Box) SplitBottom(h float64) (rest, bottom Box) {
	h = math.Min(h, b.Height)
	rest = Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height - h}
	bottom = Box{X: b.X, Y: b.Bottom() - h, Width: b.Width, Height: h}
	return rest, bottom
}

// SplitLeft cuts a column of width w off the left of b.
func (b Box) SplitLeft(w float64) (left, rest Box) {
	w = math.Min(w, b.Width)
	left = Box{X: b.X, Y: b.Y, Width: w, Height: b.Height}
	rest = Box{X: b.X + w, Y: b.Y, Width: b.Width - w, Height: b.Height}
	return left, rest
}

// Contains reports whether o lies inside b.
func (b Box) Contains(o Box) bool {
	return o.X >= b.X-epsilon && o.Y >= b.Y-epsilon &&
		o.Right() <= b.Right()+epsilon && o.Bottom() <= b.Bottom()+epsilon
}

// Overlaps reports whether the interiors of b and o intersect.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right()-epsilon && o.X < b.Right()-epsilon &&
		b.Y < o.Bottom()-epsilon && o.Y < b.Bottom()-epsilon
}

// Union returns the smallest box holding b and o.
func (b Box) Union(o Box) Box {
	x := math.Min(b.X, o.X)
	y := math.Min(b.Y, o.Y)
	return Box{
		X:      x,
		Y:      y,
		Width:  math.Max(b.Right(), o.Right()) - x,
		Height: math.Max(b.Bottom(), o.Bottom()) - y,
	}
}

// Font specifies a font face.
type Font struct {
	Family string  `json:"family"`
	Style  string  `json:"style,omitempty"` // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 `json:"size"`            // points
}

func (f Font) Bold() bool {
	return f.Style == "B" || f.Style == "BI"
}

// WithStyle returns f with another style.
func (f Font) WithStyle(style string) Font {
	f.Style = style
	return f
}

// WithSize returns f at another size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

const helvetica = "Helvetica"

func regular(size float64) Font { return Font{Family: helvetica, Size: size} }
func bold(size float64) Font    { return Font{Family: helvetica, Style: "B", Size: size} }
func italic(size float64) Font  { return Font{Family: helvetica, Style: "I", Size: size} }

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	navy      = Color{R: 31, G: 58, B: 147}
	white     = Color{R: 255, G: 255, B: 255}
	lightGray = Color{R: 235, G: 235, B: 235}
	black     = Color{}
)

// Align is a horizontal alignment inside a box.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)
