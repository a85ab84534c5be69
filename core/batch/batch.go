// Package batch tiles card documents onto printable sheets.
package batch

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

// ErrNoCapacity is returned when not a single card fits on a sheet.
var ErrNoCapacity = errors.New("card does not fit on the sheet")

var (
	ErrNotACard     = errors.New("not a card document")
	ErrCardSizeDiff = errors.New("card size differs from the slot size")
)

const (
	cutMarkGap = 0.5
	cutMarkLen = 1.5
)

// CardConfig describes a sheet and the cards tiled onto it.
type CardConfig struct {
	PageSize document.Size    `json:"page_size" mapstructure:"page_size"`
	Margins  document.Margins `json:"margins" mapstructure:"margins"`
	GapX     float64          `json:"gap_x" mapstructure:"gap_x"`
	GapY     float64          `json:"gap_y" mapstructure:"gap_y"`
	CardSize document.Size    `json:"card_size" mapstructure:"card_size"`
	// CutMarks draws short trim lines at the corners of each filled slot.
	CutMarks bool `json:"cut_marks" mapstructure:"cut_marks"`
}

// DefaultCardConfig tiles landscape CR80 cards on A4 portrait with 5mm gaps,
// two across and four down.
func DefaultCardConfig() CardConfig {
	return CardConfig{
		PageSize: document.A4,
		Margins:  document.A4Margins,
		GapX:     5,
		GapY:     5,
		CardSize: document.CR80.Oriented(document.Landscape),
		CutMarks: true,
	}
}

// Grid returns how many cards fit across and down the printable area.
func (c CardConfig) Grid() (cols, rows int) {
	if c.CardSize.Width <= 0 || c.CardSize.Height <= 0 || c.GapX < 0 || c.GapY < 0 {
		return 0, 0
	}
	availW := c.PageSize.Width - c.Margins.Left - c.Margins.Right
	availH := c.PageSize.Height - c.Margins.Top - c.Margins.Bottom
	cols = int(math.Floor((availW + c.GapX) / (c.CardSize.Width + c.GapX)))
	rows = int(math.Floor((availH + c.GapY) / (c.CardSize.Height + c.GapY)))
	if cols < 0 || rows < 0 {
		return 0, 0
	}
	return cols, rows
}

// Capacity is the number of cards per sheet.
func (c CardConfig) Capacity() int {
	cols, rows := c.Grid()
	return cols * rows
}

// SlotBox returns the position of slot i. The grid is centred inside the
// printable area.
func (c CardConfig) SlotBox(i int) layout.Box {
	cols, rows := c.Grid()
	if cols == 0 {
		return layout.Box{}
	}
	usedW := float64(cols)*c.CardSize.Width + float64(cols-1)*c.GapX
	usedH := float64(rows)*c.CardSize.Height + float64(rows-1)*c.GapY
	availW := c.PageSize.Width - c.Margins.Left - c.Margins.Right
	availH := c.PageSize.Height - c.Margins.Top - c.Margins.Bottom
	x0 := c.Margins.Left + (availW-usedW)/2
	y0 := c.Margins.Top + (availH-usedH)/2

	row, col := i/cols, i%cols
	return layout.Box{
		X:      x0 + float64(col)*(c.CardSize.Width+c.GapX),
		Y:      y0 + float64(row)*(c.CardSize.Height+c.GapY),
		Width:  c.CardSize.Width,
		Height: c.CardSize.Height,
	}
}

func (c CardConfig) orientation() document.Orientation {
	if c.PageSize.Width > c.PageSize.Height {
		return document.Landscape
	}
	return document.Portrait
}

// Slot is one card position on a sheet. Request and Card are nil for an
// empty slot.
type Slot struct {
	Index   int               `json:"index"`
	Row     int               `json:"row"`
	Col     int               `json:"col"`
	Box     layout.Box        `json:"box"`
	Request *document.Request `json:"request,omitempty"`
	Card    *layout.Page      `json:"card,omitempty"`
}

func (s Slot) Empty() bool {
	return s.Card == nil
}

// CardSheet is one printed sheet. Page holds every card's commands moved
// into its slot.
type CardSheet struct {
	Number int         `json:"number"`
	Page   layout.Page `json:"page"`
	Slots  []Slot      `json:"slots"`
}

// Filled counts the populated slots.
func (s CardSheet) Filled() int {
	var n int
	for _, slot := range s.Slots {
		if !slot.Empty() {
			n++
		}
	}
	return n
}

// SlotError reports the input document that could not be placed.
type SlotError struct {
	Index int
	Err   error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("card %d: %v", e.Index+1, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }

// LayoutFunc produces the page of one card document.
type LayoutFunc func(document.Request) (layout.Page, error)

// ComposeSheets lays out every request and tiles the cards row by row in
// input order, starting a new sheet every Capacity cards. Trailing slots of
// the last sheet are kept as empty slots. A nil gen uses layout.Layout.
// Nothing is returned when any card fails.
func ComposeSheets(reqs []document.Request, cfg CardConfig, gen LayoutFunc) ([]CardSheet, error) {
	if gen == nil {
		gen = layout.Layout
	}
	capacity := cfg.Capacity()
	if capacity == 0 {
		return nil, ErrNoCapacity
	}

	cards := make([]layout.Page, len(reqs))
	for i, req := range reqs {
		if !req.DocumentType.IsCard() {
			return nil, &SlotError{Index: i, Err: errors.Wrapf(ErrNotACard, "%s", req.DocumentType)}
		}
		page, err := gen(req)
		if err != nil {
			return nil, &SlotError{Index: i, Err: err}
		}
		if !fits(page, cfg.CardSize) {
			return nil, &SlotError{Index: i, Err: errors.Wrapf(ErrCardSizeDiff, "card is %.2fx%.2fmm, slot is %.2fx%.2fmm",
				page.WidthMm, page.HeightMm, cfg.CardSize.Width, cfg.CardSize.Height)}
		}
		cards[i] = page
	}

	cols, _ := cfg.Grid()
	sheets := make([]CardSheet, 0, (len(reqs)+capacity-1)/capacity)
	for start := 0; start < len(reqs); start += capacity {
		sheet := CardSheet{
			Number: len(sheets) + 1,
			Page: layout.Page{
				Reference:   fmt.Sprintf("sheet %d", len(sheets)+1),
				Orientation: cfg.orientation(),
				WidthMm:     cfg.PageSize.Width,
				HeightMm:    cfg.PageSize.Height,
			},
			Slots: make([]Slot, capacity),
		}
		for i := range sheet.Slots {
			box := cfg.SlotBox(i)
			slot := Slot{Index: i, Row: i / cols, Col: i % cols, Box: box}
			if n := start + i; n < len(reqs) {
				req, card := reqs[n], cards[n]
				slot.Request, slot.Card = &req, &card
				sheet.Page.Commands = append(sheet.Page.Commands, layout.TranslateAll(card.Commands, box.X, box.Y)...)
				if cfg.CutMarks {
					sheet.Page.Commands = append(sheet.Page.Commands, cutMarks(box)...)
				}
			}
			sheet.Slots[i] = slot
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func fits(page layout.Page, size document.Size) bool {
	const tolerance = 1e-6
	return math.Abs(page.WidthMm-size.Width) < tolerance && math.Abs(page.HeightMm-size.Height) < tolerance
}

// cutMarks returns two short trim lines outside each corner of b.
func cutMarks(b layout.Box) []layout.Command {
	var cmds []layout.Command
	for _, x := range []float64{b.X, b.Right()} {
		for _, y := range []float64{b.Y, b.Bottom()} {
			dx, dy := -1.0, -1.0
			if x == b.Right() {
				dx = 1
			}
			if y == b.Bottom() {
				dy = 1
			}
			cmds = append(cmds,
				layout.Line{X1: x + dx*cutMarkGap, Y1: y, X2: x + dx*(cutMarkGap+cutMarkLen), Y2: y, LineWidth: 0.1},
				layout.Line{X1: x, Y1: y + dy*cutMarkGap, X2: x, Y2: y + dy*(cutMarkGap+cutMarkLen), LineWidth: 0.1},
			)
		}
	}
	return cmds
}
