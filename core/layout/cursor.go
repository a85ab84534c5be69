package layout

// Cursor is an immutable vertical position inside a region. Every step
// returns a new cursor together with the commands it produced.
type Cursor struct {
	Region Box
	Y      float64
}

func NewCursor(region Box) Cursor {
	return Cursor{Region: region, Y: region.Y}
}

// Skip moves down by h.
func (c Cursor) Skip(h float64) Cursor {
	c.Y += h
	return c
}

// Remaining is the height left in the region; negative once overrun.
func (c Cursor) Remaining() float64 {
	return c.Region.Bottom() - c.Y
}

// Overrun reports whether the cursor has passed the bottom of its region.
func (c Cursor) Overrun() bool {
	return c.Y > c.Region.Bottom()+epsilon
}

// Text sets s in f, wrapped to the region width and aligned.
func (c Cursor) Text(s string, f Font, align Align) (Cursor, []Command) {
	return c.TextIn(c.Region.X, c.Region.Width, s, f, align)
}

// TextIn is Text inside the column [x, x+width].
func (c Cursor) TextIn(x, width float64, s string, f Font, align Align) (Cursor, []Command) {
	lines := Wrap(s, width, f)
	lh := LineHeight(f)
	cmds := make([]Command, 0, len(lines))
	for _, line := range lines {
		cmds = append(cmds, Text{X: x, Y: c.Y, Width: width, Content: line, Font: f, Align: align})
		c.Y += lh
	}
	return c, cmds
}

// Columns sets left and right aligned text on the same line.
func (c Cursor) Columns(left, right string, f Font) (Cursor, []Command) {
	cmds := []Command{
		Text{X: c.Region.X, Y: c.Y, Width: c.Region.Width / 2, Content: left, Font: f, Align: AlignLeft},
		Text{X: c.Region.X + c.Region.Width/2, Y: c.Y, Width: c.Region.Width / 2, Content: right, Font: f, Align: AlignRight},
	}
	return c.Skip(LineHeight(f)), cmds
}

// Rule draws a horizontal line across the region.
func (c Cursor) Rule(lineWidth float64) (Cursor, Command) {
	return c, Line{X1: c.Region.X, Y1: c.Y, X2: c.Region.Right(), Y2: c.Y, LineWidth: lineWidth}
}

// TableSpec describes a table before row heights are known.
type TableSpec struct {
	Columns    []TableColumn
	Rows       [][]string
	Font       Font
	Padding    float64
	Header     bool
	HeaderFill *Color
	BoldRows   []int
	// MinRowHeight is the floor for every row.
	MinRowHeight float64
}

// Table places spec at the cursor and measures every row from its wrapped cells.
func (c Cursor) Table(spec TableSpec) (Cursor, Table) {
	t := Table{
		X:          c.Region.X,
		StartY:     c.Y,
		Columns:    spec.Columns,
		Rows:       spec.Rows,
		Font:       spec.Font,
		Padding:    spec.Padding,
		HeaderFill: spec.HeaderFill,
		BoldRows:   spec.BoldRows,
		RowHeights: make([]float64, len(spec.Rows)),
	}
	if spec.Header {
		headers := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			headers[i] = col.Header
		}
		t.HeaderHeight = rowHeight(headers, spec, spec.Font.WithStyle("B"))
	}
	for i, row := range spec.Rows {
		f := spec.Font
		if contains(spec.BoldRows, i) {
			f = f.WithStyle("B")
		}
		t.RowHeights[i] = rowHeight(row, spec, f)
	}
	return c.Skip(t.Height()), t
}

func rowHeight(cells []string, spec TableSpec, f Font) float64 {
	lines := 1
	for i, cell := range cells {
		if i >= len(spec.Columns) {
			break
		}
		w := spec.Columns[i].Width - 2*spec.Padding
		if n := len(Wrap(cell, w, f)); n > lines {
			lines = n
		}
	}
	h := float64(lines)*LineHeight(f) + 2*spec.Padding
	if h < spec.MinRowHeight {
		h = spec.MinRowHeight
	}
	return h
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
