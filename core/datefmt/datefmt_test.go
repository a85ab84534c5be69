package datefmt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "iso", in: "2024-01-05", want: "05/01/2024"},
		{name: "two digit day and month", in: "2023-11-23", want: "23/11/2023"},
		{name: "already formatted", in: "05/01/2024", want: "05/01/2024"},
		{name: "single digits", in: "5/1/2024", want: "05/01/2024"},
		{name: "rfc3339", in: "2024-02-29T10:00:00Z", want: "29/02/2024"},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "impossible day", in: "2023-02-30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.in)
			if tt.wantErr {
				var dErr *InvalidDateError
				require.True(t, errors.As(err, &dErr), "want InvalidDateError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateInWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2024-01-05", want: "5th January, 2024"},
		{in: "2024-03-01", want: "1st March, 2024"},
		{in: "2024-03-02", want: "2nd March, 2024"},
		{in: "2024-03-03", want: "3rd March, 2024"},
		{in: "2024-03-11", want: "11th March, 2024"},
		{in: "2024-03-12", want: "12th March, 2024"},
		{in: "2024-03-13", want: "13th March, 2024"},
		{in: "2024-03-21", want: "21st March, 2024"},
		{in: "2024-03-22", want: "22nd March, 2024"},
		{in: "2024-03-23", want: "23rd March, 2024"},
		{in: "2024-03-31", want: "31st March, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatDateInWords(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatDateInWords("31/31/2024")
	var dErr *InvalidDateError
	assert.True(t, errors.As(err, &dErr))
}

func TestOrdinal(t *testing.T) {
	want := map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 101: "st", 111: "th", 112: "th", 122: "nd"}
	for n, suffix := range want {
		assert.Equal(t, suffix, Ordinal(n), "Ordinal(%d)", n)
	}
}

func TestDateText(t *testing.T) {
	var payload struct {
		DOB    Date `json:"dob"`
		Joined Date `json:"joined"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"dob":"2010-07-15","joined":""}`), &payload))
	assert.Equal(t, New(2010, time.July, 15), payload.DOB)
	assert.True(t, payload.Joined.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dob":"2010-07-15","joined":""}`, string(out))

	err = json.Unmarshal([]byte(`{"dob":"15-07-2010x"}`), &payload)
	var dErr *InvalidDateError
	assert.True(t, errors.As(err, &dErr), "got %v", err)
}

func TestZeroDate(t *testing.T) {
	var d Date
	assert.Equal(t, "", d.Format())
	assert.Equal(t, "", d.InWords())
	assert.Equal(t, "", d.MonthYear())
	assert.Equal(t, "March 2024", MustParse("2024-03-31").MonthYear())
}

func TestSince(t *testing.T) {
	tests := []struct {
		from, to    string
		years, mons int
	}{
		{from: "2015-06-01", to: "2024-03-31", years: 8, mons: 9},
		{from: "2020-01-15", to: "2020-02-14", years: 0, mons: 0},
		{from: "2020-01-15", to: "2020-02-15", years: 0, mons: 1},
		{from: "2019-04-01", to: "2024-04-01", years: 5, mons: 0},
		{from: "2024-04-01", to: "2019-04-01", years: 0, mons: 0},
	}
	for _, tt := range tests {
		y, m := Since(MustParse(tt.from), MustParse(tt.to))
		assert.Equal(t, tt.years, y, "%s → %s years", tt.from, tt.to)
		assert.Equal(t, tt.mons, m, "%s → %s months", tt.from, tt.to)
	}
}
