package batch_test

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Santosh-B-Vitana/smsv2-sub002/core/batch"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
	"github.com/Santosh-B-Vitana/smsv2-sub002/tests"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		name       string
		cfg        func() CardConfig
		cols, rows int
	}{
		{name: "default", cfg: DefaultCardConfig, cols: 2, rows: 4},
		{
			name: "no gaps",
			cfg: func() CardConfig {
				c := DefaultCardConfig()
				c.GapX, c.GapY = 0, 0
				return c
			},
			cols: 2, rows: 5,
		},
		{
			name: "landscape sheet",
			cfg: func() CardConfig {
				c := DefaultCardConfig()
				c.PageSize = document.A4.Oriented(document.Landscape)
				return c
			},
			cols: 3, rows: 3,
		},
		{
			name: "card larger than page",
			cfg: func() CardConfig {
				c := DefaultCardConfig()
				c.CardSize = document.Size{Width: 300, Height: 300}
				return c
			},
		},
		{
			name: "invalid card",
			cfg: func() CardConfig {
				c := DefaultCardConfig()
				c.CardSize = document.Size{}
				return c
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg()
			cols, rows := cfg.Grid()
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.rows, rows)
			assert.Equal(t, tt.cols*tt.rows, cfg.Capacity())

			// never more than the plain area bound
			if cfg.CardSize.Width > 0 {
				boundW := int((cfg.PageSize.Width - cfg.Margins.Left - cfg.Margins.Right) / cfg.CardSize.Width)
				boundH := int((cfg.PageSize.Height - cfg.Margins.Top - cfg.Margins.Bottom) / cfg.CardSize.Height)
				assert.LessOrEqual(t, cfg.Capacity(), boundW*boundH)
			}
		})
	}
}

func TestComposeNineCards(t *testing.T) {
	sheets, err := ComposeSheets(testutil.StudentCards(9), DefaultCardConfig(), nil)
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	assert.Equal(t, 1, sheets[0].Number)
	assert.Equal(t, 8, sheets[0].Filled())
	assert.Equal(t, 2, sheets[1].Number)
	assert.Equal(t, 1, sheets[1].Filled())
	require.Len(t, sheets[1].Slots, 8)
	for i, slot := range sheets[1].Slots {
		assert.Equal(t, i != 0, slot.Empty(), "slot %d", i)
	}

	// input order, row major
	for i, slot := range sheets[0].Slots {
		assert.Equal(t, i/2, slot.Row)
		assert.Equal(t, i%2, slot.Col)
		rec := slot.Request.Record.(document.StudentIDRecord)
		assert.Equal(t, testutil.StudentIDRecord(i+1).AdmissionNo, rec.AdmissionNo)
	}
	last := sheets[1].Slots[0].Request.Record.(document.StudentIDRecord)
	assert.Equal(t, "2009", last.AdmissionNo)
}

func TestSlotsStayInsideMargins(t *testing.T) {
	cfg := DefaultCardConfig()
	sheets, err := ComposeSheets(testutil.StudentCards(8), cfg, nil)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	sheet := sheets[0]

	printable := sheet.Page.Box().Inset(cfg.Margins)
	for i, a := range sheet.Slots {
		assert.True(t, printable.Contains(a.Box), "slot %d at %+v", i, a.Box)
		assert.Equal(t, 85.6, a.Box.Width)
		assert.Equal(t, 53.98, a.Box.Height)
		for j, b := range sheet.Slots {
			if i != j {
				assert.False(t, a.Box.Overlaps(b.Box), "slots %d and %d overlap", i, j)
			}
		}
	}

	page := sheet.Page.Box()
	for i, c := range sheet.Page.Commands {
		assert.True(t, page.Contains(c.Bounds()), "command %d at %+v", i, c.Bounds())
	}
}

func TestCardCommandsAreMovedIntoTheirSlot(t *testing.T) {
	cfg := DefaultCardConfig()
	cfg.CutMarks = false
	reqs := testutil.StudentCards(3)
	sheets, err := ComposeSheets(reqs, cfg, nil)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	var total int
	for _, slot := range sheets[0].Slots {
		if slot.Empty() {
			continue
		}
		total += len(slot.Card.Commands)
		for _, c := range slot.Card.Commands {
			assert.True(t, slot.Card.Box().Contains(c.Bounds()))
		}
	}
	assert.Len(t, sheets[0].Page.Commands, total)

	first := sheets[0].Slots[0]
	outline := sheets[0].Page.Commands[0].(layout.Rect)
	assert.Equal(t, first.Box, outline.Bounds())
}

func TestComposeIsDeterministic(t *testing.T) {
	reqs := append(testutil.StudentCards(5), testutil.Request(document.StaffIDCard, document.ICSE))
	a, err := ComposeSheets(reqs, DefaultCardConfig(), nil)
	require.NoError(t, err)
	b, err := ComposeSheets(reqs, DefaultCardConfig(), nil)
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestComposeErrors(t *testing.T) {
	t.Run("not a card", func(t *testing.T) {
		reqs := append(testutil.StudentCards(2), testutil.Request(document.BonafideCertificate, document.CBSE))
		sheets, err := ComposeSheets(reqs, DefaultCardConfig(), nil)
		assert.Nil(t, sheets)
		var sErr *SlotError
		require.True(t, errors.As(err, &sErr))
		assert.Equal(t, 2, sErr.Index)
		assert.True(t, errors.Is(err, ErrNotACard))
		assert.EqualError(t, err, "card 3: bonafide_certificate: not a card document")
	})

	t.Run("invalid card", func(t *testing.T) {
		reqs := testutil.StudentCards(4)
		rec := reqs[1].Record.(document.StudentIDRecord)
		rec.StudentName = ""
		reqs[1].Record = rec

		_, err := ComposeSheets(reqs, DefaultCardConfig(), nil)
		var sErr *SlotError
		require.True(t, errors.As(err, &sErr))
		assert.Equal(t, 1, sErr.Index)
		var vErr *document.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("layout failure", func(t *testing.T) {
		boom := errors.New("boom")
		gen := func(document.Request) (layout.Page, error) { return layout.Page{}, boom }
		_, err := ComposeSheets(testutil.StudentCards(1), DefaultCardConfig(), gen)
		assert.True(t, errors.Is(err, boom))
	})

	t.Run("wrong card size", func(t *testing.T) {
		cfg := DefaultCardConfig()
		cfg.CardSize = document.Size{Width: 80, Height: 50}
		_, err := ComposeSheets(testutil.StudentCards(1), cfg, nil)
		var sErr *SlotError
		assert.True(t, errors.As(err, &sErr))
		assert.True(t, errors.Is(err, ErrCardSizeDiff))
	})

	t.Run("no capacity", func(t *testing.T) {
		cfg := DefaultCardConfig()
		cfg.PageSize = document.Size{Width: 50, Height: 50}
		_, err := ComposeSheets(testutil.StudentCards(1), cfg, nil)
		assert.Equal(t, ErrNoCapacity, err)
	})

	t.Run("empty input", func(t *testing.T) {
		sheets, err := ComposeSheets(nil, DefaultCardConfig(), nil)
		assert.NoError(t, err)
		assert.Empty(t, sheets)
	})
}
