package layout

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Command is one drawing primitive. The set is closed: Text, Rect, Line,
// Circle, Table and Image.
type Command interface {
	// Kind is the JSON "type" discriminator.
	Kind() string
	// Bounds is the area the command may paint.
	Bounds() Box
	// Translate returns a copy moved by (dx, dy).
	Translate(dx, dy float64) Command

	isCommand()
}

const (
	kindText   = "text"
	kindRect   = "rect"
	kindLine   = "line"
	kindCircle = "circle"
	kindTable  = "table"
	kindImage  = "image"
)

// Text is a single line of text. Y is the top of the line box. With a
// non-zero Width the content is aligned inside [X, X+Width].
type Text struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width,omitempty"`
	Content string  `json:"content"`
	Font    Font    `json:"font"`
	Align   Align   `json:"align,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

func (t Text) Kind() string { return kindText }

func (t Text) Bounds() Box {
	w := t.Width
	if w == 0 {
		w = TextWidth(t.Content, t.Font)
	}
	return Box{X: t.X, Y: t.Y, Width: w, Height: LineHeight(t.Font)}
}

func (t Text) Translate(dx, dy float64) Command {
	t.X += dx
	t.Y += dy
	return t
}

func (Text) isCommand() {}

// Rect is a rectangle. Style is "D" (outline), "F" (fill) or "DF".
type Rect struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Style     string  `json:"style"`
	Radius    float64 `json:"radius,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	Fill      *Color  `json:"fill,omitempty"`
}

func (r Rect) Kind() string { return kindRect }
func (r Rect) Bounds() Box  { return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height} }

func (r Rect) Translate(dx, dy float64) Command {
	r.X += dx
	r.Y += dy
	return r
}

func (Rect) isCommand() {}

// Line is a straight stroke.
type Line struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	LineWidth float64 `json:"line_width,omitempty"`
	Dashed    bool    `json:"dashed,omitempty"`
}

func (l Line) Kind() string { return kindLine }

func (l Line) Bounds() Box {
	b := Box{X: l.X1, Y: l.Y1}
	return b.Union(Box{X: l.X2, Y: l.Y2})
}

func (l Line) Translate(dx, dy float64) Command {
	l.X1 += dx
	l.X2 += dx
	l.Y1 += dy
	l.Y2 += dy
	return l
}

func (Line) isCommand() {}

// Circle is centred on (X, Y).
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	R      float64 `json:"r"`
	Style  string  `json:"style"`
	Dashed bool    `json:"dashed,omitempty"`
}

func (c Circle) Kind() string { return kindCircle }

func (c Circle) Bounds() Box {
	return Box{X: c.X - c.R, Y: c.Y - c.R, Width: 2 * c.R, Height: 2 * c.R}
}

func (c Circle) Translate(dx, dy float64) Command {
	c.X += dx
	c.Y += dy
	return c
}

func (Circle) isCommand() {}

// TableColumn defines a column of a Table.
type TableColumn struct {
	Header string  `json:"header,omitempty"`
	Width  float64 `json:"width"`
	Align  Align   `json:"align,omitempty"`
}

// Table is a bordered grid. RowHeights are precomputed from the wrapped
// cell text; HeaderHeight is zero when no header row is drawn.
type Table struct {
	X            float64       `json:"x"`
	StartY       float64       `json:"start_y"`
	Columns      []TableColumn `json:"columns"`
	Rows         [][]string    `json:"rows"`
	HeaderHeight float64       `json:"header_height,omitempty"`
	RowHeights   []float64     `json:"row_heights"`
	Font         Font          `json:"font"`
	Padding      float64       `json:"padding"`
	HeaderFill   *Color        `json:"header_fill,omitempty"`
	// BoldRows lists row indexes set in bold, e.g. totals.
	BoldRows []int `json:"bold_rows,omitempty"`
}

func (t Table) Kind() string { return kindTable }

func (t Table) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

func (t Table) Height() float64 {
	h := t.HeaderHeight
	for _, rh := range t.RowHeights {
		h += rh
	}
	return h
}

func (t Table) Bounds() Box {
	return Box{X: t.X, Y: t.StartY, Width: t.Width(), Height: t.Height()}
}

func (t Table) Translate(dx, dy float64) Command {
	t.X += dx
	t.StartY += dy
	return t
}

func (Table) isCommand() {}

// Image reserves a box for a logo, photo or seal. Ref names the asset; the
// renderer resolves it.
type Image struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Ref    string  `json:"ref,omitempty"`
	Role   string  `json:"role"` // logo, photo, seal
}

func (i Image) Kind() string { return kindImage }
func (i Image) Bounds() Box  { return Box{X: i.X, Y: i.Y, Width: i.Width, Height: i.Height} }

func (i Image) Translate(dx, dy float64) Command {
	i.X += dx
	i.Y += dy
	return i
}

func (Image) isCommand() {}

// MarshalCommand encodes c with its "type" discriminator.
func MarshalCommand(c Command) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(c.Kind())
	fields["type"] = kind
	return json.Marshal(fields)
}

// UnmarshalCommand decodes a command written by MarshalCommand.
func UnmarshalCommand(b []byte) (Command, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case kindText:
		var c Text
		err := json.Unmarshal(b, &c)
		return c, err
	case kindRect:
		var c Rect
		err := json.Unmarshal(b, &c)
		return c, err
	case kindLine:
		var c Line
		err := json.Unmarshal(b, &c)
		return c, err
	case kindCircle:
		var c Circle
		err := json.Unmarshal(b, &c)
		return c, err
	case kindTable:
		var c Table
		err := json.Unmarshal(b, &c)
		return c, err
	case kindImage:
		var c Image
		err := json.Unmarshal(b, &c)
		return c, err
	}
	return nil, errors.Errorf("unknown command type %q", head.Type)
}

// TranslateAll moves every command by (dx, dy).
func TranslateAll(cmds []Command, dx, dy float64) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = c.Translate(dx, dy)
	}
	return out
}
