package layout

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode/code128"
	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

const (
	cardBand      = 10.5
	photoW        = 18.0
	photoH        = 22.0
	minCardFont   = 4.0
	cardFieldSize = 6.0
)

// card zones, relative to the card's top left corner
var (
	photoBox   = Box{X: 3, Y: 12.5, Width: photoW, Height: photoH}
	fieldsBox  = Box{X: 24, Y: 12.5, Width: 58.6, Height: 24}
	barcodeBox = Box{X: 24, Y: 37, Width: 40, Height: 5.5}
)

func layoutCard(req document.Request, cfg document.Config) (Page, error) {
	page := newPage(req, cfg)
	w, h := cfg.PageSize.Width, cfg.PageSize.Height

	page = page.add(
		Rect{X: 0, Y: 0, Width: w, Height: h, Style: "D", Radius: cfg.CornerRadius, LineWidth: 0.2},
		Rect{X: 0, Y: 0, Width: w, Height: cardBand, Style: "F", Fill: &navy},
	)
	page = page.add(cardHeader(req, cfg)...)

	page = page.add(
		Image{X: photoBox.X, Y: photoBox.Y, Width: photoBox.Width, Height: photoBox.Height, Ref: photoRef(req.Record), Role: "photo"},
		Rect{X: photoBox.X, Y: photoBox.Y, Width: photoBox.Width, Height: photoBox.Height, Style: "D", LineWidth: 0.2},
	)

	cur, cmds := cardFields(NewCursor(fieldsBox), req)
	if cur.Overrun() {
		return Page{}, &OverflowError{DocumentType: req.DocumentType, Extent: cur.Y, Limit: fieldsBox.Bottom()}
	}
	page = page.add(cmds...)

	bars, err := Barcode(req.Record.PrimaryID(), barcodeBox)
	if err != nil {
		return Page{}, err
	}
	page = page.add(bars...)
	capY := barcodeBox.Bottom() + 0.2
	page = page.add(Text{X: barcodeBox.X, Y: capY, Width: barcodeBox.Width, Content: req.Record.PrimaryID(), Font: regular(5), Align: AlignCenter})

	page = page.add(cardFooter(req, cfg)...)

	// the card outline itself sits on the page edge
	if err := checkExtent(page, h); err != nil {
		return Page{}, err
	}
	return page, nil
}

func cardHeader(req document.Request, cfg document.Config) []Command {
	var cmds []Command
	textX := cfg.Margins.Left
	if req.School.LogoRef != "" {
		cmds = append(cmds, Image{X: cfg.Margins.Left, Y: 1.5, Width: 7.5, Height: 7.5, Ref: req.School.LogoRef, Role: "logo"})
		textX += 8
	}
	textW := cfg.PageSize.Width - textX - cfg.Margins.Right

	name := strings.ToUpper(req.School.Name)
	nameFont := fit(name, textW, bold(7))
	cmds = append(cmds, Text{X: textX, Y: 1.2, Width: textW, Content: name, Font: nameFont, Align: AlignCenter, Color: &white})

	y := 1.2 + LineHeight(nameFont)
	titleFont := bold(5)
	cmds = append(cmds, Text{X: textX, Y: y, Width: textW, Content: cfg.Title, Font: titleFont, Align: AlignCenter, Color: &white})

	y += LineHeight(titleFont)
	address := joinNonEmpty(", ", req.School.Address, req.School.City)
	cmds = append(cmds, Text{X: textX, Y: y, Width: textW, Content: address, Font: fit(address, textW, regular(4.5)), Align: AlignCenter, Color: &white})
	return cmds
}

// cardFields prints the holder's name followed by "Label: value" lines.
// Mandatory lines wrap and may overrun the zone; optional lines are shrunk
// to a single line and left out once the zone is full.
func cardFields(cur Cursor, req document.Request) (Cursor, []Command) {
	var cmds []Command
	var lines []Command

	name, rows, optional := cardRows(req)
	nameFont := fit(name, cur.Region.Width, bold(7))
	cur, lines = cur.Text(name, nameFont, AlignLeft)
	cmds = append(cmds, lines...)
	cur = cur.Skip(0.5)

	f := regular(cardFieldSize)
	for _, row := range rows {
		cur, lines = cur.Text(row, f, AlignLeft)
		cmds = append(cmds, lines...)
	}
	for _, row := range optional {
		of := fit(row, cur.Region.Width, f)
		if cur.Remaining() < LineHeight(of)-epsilon {
			break
		}
		row = clip(row, cur.Region.Width, of)
		cmds = append(cmds, Text{X: cur.Region.X, Y: cur.Y, Width: cur.Region.Width, Content: row, Font: of, Align: AlignLeft})
		cur = cur.Skip(LineHeight(of))
	}
	return cur, cmds
}

// cardRows returns the display name, the mandatory detail lines and the
// optional detail lines of a card record.
func cardRows(req document.Request) (name string, rows, optional []string) {
	values, _ := document.Fields(req)
	for _, v := range values {
		switch v.Label {
		case "Name":
			name = titleCase(v.Value)
		case "Valid Upto":
			// printed in the footer
		default:
			rows = append(rows, v.Label+": "+v.Value)
		}
	}

	switch rec := req.Record.(type) {
	case document.StudentIDRecord:
		optional = appendOptional(optional, "Blood Group", rec.BloodGroup)
		optional = appendOptional(optional, "Address", rec.Address)
	case document.StaffIDRecord:
		optional = appendOptional(optional, "Department", rec.Department)
		optional = appendOptional(optional, "Blood Group", rec.BloodGroup)
		optional = appendOptional(optional, "Joined", rec.DateOfJoining.Format())
	}
	return name, rows, optional
}

func appendOptional(rows []string, label, value string) []string {
	if strings.TrimSpace(value) == "" {
		return rows
	}
	return append(rows, label+": "+value)
}

func cardFooter(req document.Request, cfg document.Config) []Command {
	var valid string
	switch rec := req.Record.(type) {
	case document.StudentIDRecord:
		valid = rec.ValidUpto.Format()
	case document.StaffIDRecord:
		valid = rec.ValidUpto.Format()
	}

	sigW := 18.6
	sigX := cfg.PageSize.Width - cfg.Margins.Right - sigW
	lineY := 46.0
	return []Command{
		Text{X: cfg.Margins.Left, Y: 46.5, Content: "Valid upto: " + valid, Font: bold(5.5)},
		Line{X1: sigX, Y1: lineY, X2: sigX + sigW, Y2: lineY, LineWidth: 0.2},
		Text{X: sigX, Y: lineY + 0.5, Width: sigW, Content: "Principal", Font: bold(5), Align: AlignCenter},
	}
}

func photoRef(rec document.RecordData) string {
	switch r := rec.(type) {
	case document.StudentIDRecord:
		return r.PhotoRef
	case document.StaffIDRecord:
		return r.PhotoRef
	}
	return ""
}

// fit shrinks f in half point steps until s fits width, down to a floor.
func fit(s string, width float64, f Font) Font {
	for f.Size > minCardFont && TextWidth(s, f) > width {
		f.Size -= 0.5
	}
	return f
}

// clip cuts s to width, ending it with "..." when anything was dropped.
func clip(s string, width float64, f Font) string {
	if TextWidth(s, f) <= width {
		return s
	}
	runes := []rune(strings.TrimSpace(s))
	for len(runes) > 0 && TextWidth(string(runes)+"...", f) > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimSpace(string(runes)) + "..."
}

// BarcodeError is returned when an identifying number cannot be printed as
// a Code 128 barcode, e.g. because it holds non-ASCII characters.
type BarcodeError struct {
	Content string
	Err     error
}

func (e *BarcodeError) Error() string {
	return fmt.Sprintf("%q cannot be encoded as a Code 128 barcode: %v", e.Content, e.Err)
}

func (e *BarcodeError) Unwrap() error { return e.Err }

// Barcode encodes content as Code 128 and returns its bars as filled
// rectangles scaled to box. Adjacent dark modules merge into one bar.
func Barcode(content string, box Box) ([]Command, error) {
	if content == "" {
		return nil, &BarcodeError{Content: content, Err: errors.New("empty content")}
	}
	bc, err := code128.Encode(content)
	if err != nil {
		return nil, &BarcodeError{Content: content, Err: err}
	}
	bounds := bc.Bounds()
	modules := bounds.Dx()
	if modules == 0 {
		return nil, &BarcodeError{Content: content, Err: errors.New("no modules")}
	}
	module := box.Width / float64(modules)

	var cmds []Command
	start := -1
	for x := bounds.Min.X; x <= bounds.Max.X; x++ {
		dark := false
		if x < bounds.Max.X {
			r, _, _, _ := bc.At(x, bounds.Min.Y).RGBA()
			dark = r == 0
		}
		switch {
		case dark && start < 0:
			start = x
		case !dark && start >= 0:
			cmds = append(cmds, Rect{
				X:      box.X + float64(start-bounds.Min.X)*module,
				Y:      box.Y,
				Width:  float64(x-start) * module,
				Height: box.Height,
				Style:  "F",
				Fill:   &black,
			})
			start = -1
		}
	}
	return cmds, nil
}
