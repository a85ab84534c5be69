// Package datefmt formats dates the way school records print them:
// DD/MM/YYYY in figures and "5th January, 2024" in words.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the canonical wire form of a Date.
const ISOLayout = "2006-01-02"

var layouts = []string{
	ISOLayout,
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
}

// InvalidDateError is returned when an input cannot be parsed as a date.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Input)
}

// Date is a calendar day without time of day or zone.
// The zero Date means "not provided".
type Date struct {
	t time.Time
}

// New returns the Date for the given calendar day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime drops the time of day from t.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse reads s in one of the accepted layouts.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, &InvalidDateError{Input: s}
}

// MustParse is like Parse but panics on error. For static tables and tests.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }
func (d Date) Time() time.Time { return d.t }
func (d Date) Year() int { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int { return d.t.Day() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }
func (d Date) String() string { return d.ISO() }

// ISO returns YYYY-MM-DD, or "" for the zero Date.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISOLayout)
}

// Format returns DD/MM/YYYY, or "" for the zero Date.
func (d Date) Format() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// InWords returns e.g. "5th January, 2024", or "" for the zero Date.
func (d Date) InWords() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d%s %s, %d", d.Day(), Ordinal(d.Day()), d.Month(), d.Year())
}

// MonthYear returns e.g. "March 2024", or "" for the zero Date.
func (d Date) MonthYear() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", d.Month(), d.Year())
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISO()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Ordinal returns the English ordinal suffix for n: 11-13 take "th",
// otherwise the last digit decides.
func Ordinal(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDate parses s and returns it as DD/MM/YYYY.
func FormatDate(s string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}
	return d.Format(), nil
}

// FormatDateInWords parses s and returns it as "{day}{suffix} {Month}, {year}".
func FormatDateInWords(s string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}
	return d.InWords(), nil
}

// Since returns the whole years and remaining months elapsed from `from` to `to`.
// A partial month is not counted. Negative spans yield zeros.
func Since(from, to Date) (years, months int) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return 0, 0
	}
	total := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		total--
	}
	if total < 0 {
		return 0, 0
	}
	return total / 12, total % 12
}
