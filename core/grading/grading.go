// Package grading maps percentages to board-specific letter grades and
// computes grade points and CGPA.
package grading

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Board is an education board whose grade scale applies.
type Board string

const (
	CBSE  Board = "CBSE"
	ICSE  Board = "ICSE"
	STATE Board = "STATE"
)

// PassPercentage is the minimum percentage to pass a subject on every board.
const PassPercentage = 33.0

// Band is one contiguous percentage range of a grade scale.
// A band matches p when MinMarks <= p < MaxMarks+1; the top band is closed at 100.
type Band struct {
	Grade       string  `json:"grade"`
	MinMarks    float64 `json:"min_marks"`
	MaxMarks    float64 `json:"max_marks"`
	GradePoint  float64 `json:"grade_point"`
	Description string  `json:"description"`
}

var (
	cbseScale = []Band{
		{Grade: "A1", MinMarks: 91, MaxMarks: 100, GradePoint: 10, Description: "Outstanding"},
		{Grade: "A2", MinMarks: 81, MaxMarks: 90, GradePoint: 9, Description: "Excellent"},
		{Grade: "B1", MinMarks: 71, MaxMarks: 80, GradePoint: 8, Description: "Very Good"},
		{Grade: "B2", MinMarks: 61, MaxMarks: 70, GradePoint: 7, Description: "Good"},
		{Grade: "C1", MinMarks: 51, MaxMarks: 60, GradePoint: 6, Description: "Above Average"},
		{Grade: "C2", MinMarks: 41, MaxMarks: 50, GradePoint: 5, Description: "Average"},
		{Grade: "D", MinMarks: 33, MaxMarks: 40, GradePoint: 4, Description: "Pass"},
		{Grade: "E1", MinMarks: 21, MaxMarks: 32, GradePoint: 3, Description: "Needs Improvement"},
		{Grade: "E2", MinMarks: 0, MaxMarks: 20, GradePoint: 2, Description: "Needs Improvement"},
	}

	icseScale = []Band{
		{Grade: "A1", MinMarks: 95, MaxMarks: 100, GradePoint: 10, Description: "Distinction"},
		{Grade: "A2", MinMarks: 90, MaxMarks: 94, GradePoint: 9, Description: "Distinction"},
		{Grade: "B1", MinMarks: 80, MaxMarks: 89, GradePoint: 8, Description: "Very Good"},
		{Grade: "B2", MinMarks: 70, MaxMarks: 79, GradePoint: 7, Description: "Very Good"},
		{Grade: "C1", MinMarks: 60, MaxMarks: 69, GradePoint: 6, Description: "Credit"},
		{Grade: "C2", MinMarks: 50, MaxMarks: 59, GradePoint: 5, Description: "Credit"},
		{Grade: "D1", MinMarks: 45, MaxMarks: 49, GradePoint: 4, Description: "Pass"},
		{Grade: "D2", MinMarks: 40, MaxMarks: 44, GradePoint: 3, Description: "Pass"},
		{Grade: "E", MinMarks: 33, MaxMarks: 39, GradePoint: 2, Description: "Pass"},
		{Grade: "F", MinMarks: 0, MaxMarks: 32, GradePoint: 0, Description: "Fail"},
	}

	scales = map[Board][]Band{
		CBSE:  cbseScale,
		ICSE:  icseScale,
		STATE: cbseScale, // state boards follow the CBSE 9-point scale
	}
)

func init() {
	for board, bands := range scales {
		if err := CheckScale(bands); err != nil {
			panic(fmt.Sprintf("grading: %s scale: %v", board, err))
		}
	}
}

// GradeLookupError is returned for percentages outside [0,100] or unknown boards.
type GradeLookupError struct {
	Percentage float64
	Board      Board
}

func (e *GradeLookupError) Error() string {
	if _, ok := scales[e.Board]; !ok {
		return fmt.Sprintf("no grade scale for board %q", e.Board)
	}
	return fmt.Sprintf("percentage %g is outside [0,100]", e.Percentage)
}

// EmptyInputError is returned by CGPA for an empty grade point list.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + ": empty input"
}

// ErrEmptyInput can be compared with errors.Is against any *EmptyInputError.
var ErrEmptyInput = &EmptyInputError{Op: "grading"}

func (e *EmptyInputError) Is(target error) bool {
	_, ok := target.(*EmptyInputError)
	return ok
}

// ParseBoard normalises a board name ("cbse", " ICSE ").
func ParseBoard(s string) (Board, bool) {
	b := Board(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := scales[b]
	return b, ok
}

// Boards lists the supported boards in a stable order.
func Boards() []Board {
	return []Board{CBSE, ICSE, STATE}
}

// Scale returns a copy of the board's bands, highest first.
func Scale(board Board) ([]Band, error) {
	bands, ok := scales[board]
	if !ok {
		return nil, &GradeLookupError{Board: board}
	}
	out := make([]Band, len(bands))
	copy(out, bands)
	return out, nil
}

// Matches reports whether p falls in the band.
func (b Band) Matches(p float64) bool {
	if b.MaxMarks >= 100 {
		return p >= b.MinMarks && p <= 100
	}
	return p >= b.MinMarks && p < b.MaxMarks+1
}

// Range returns the printable range, e.g. "91-100".
func (b Band) Range() string {
	return fmt.Sprintf("%g-%g", b.MinMarks, b.MaxMarks)
}

// GradeFor returns the single band of the board's scale containing percentage.
func GradeFor(percentage float64, board Board) (Band, error) {
	bands, ok := scales[board]
	if !ok || math.IsNaN(percentage) || percentage < 0 || percentage > 100 {
		return Band{}, &GradeLookupError{Percentage: percentage, Board: board}
	}
	for _, b := range bands {
		if b.Matches(percentage) {
			return b, nil
		}
	}
	// unreachable: scales are checked at init
	return Band{}, &GradeLookupError{Percentage: percentage, Board: board}
}

// Passed reports whether percentage meets the pass mark.
func Passed(percentage float64) bool {
	return percentage >= PassPercentage
}

// MarksError reports marks that cannot form a percentage.
type MarksError struct {
	Obtained float64
	Max      float64
}

func (e *MarksError) Error() string {
	if e.Max <= 0 {
		return fmt.Sprintf("maximum marks must be positive, got %g", e.Max)
	}
	return fmt.Sprintf("obtained marks %g outside [0,%g]", e.Obtained, e.Max)
}

// Percentage returns obtained/max as a percentage rounded to 2 dp.
func Percentage(obtained, max float64) (float64, error) {
	if max <= 0 || obtained < 0 || obtained > max {
		return 0, &MarksError{Obtained: obtained, Max: max}
	}
	return Round2(obtained / max * 100), nil
}

// CGPA returns the arithmetic mean of gradePoints rounded to 2 dp.
func CGPA(gradePoints []float64) (float64, error) {
	if len(gradePoints) == 0 {
		return 0, &EmptyInputError{Op: "cgpa"}
	}
	var sum float64
	for _, gp := range gradePoints {
		sum += gp
	}
	return Round2(sum / float64(len(gradePoints))), nil
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckScale verifies that bands are ordered highest first, contiguous and
// exhaustive over [0,100].
func CheckScale(bands []Band) error {
	if len(bands) == 0 {
		return errors.New("empty scale")
	}
	if bands[0].MaxMarks != 100 {
		return errors.Errorf("top band %s ends at %g, want 100", bands[0].Grade, bands[0].MaxMarks)
	}
	if last := bands[len(bands)-1]; last.MinMarks != 0 {
		return errors.Errorf("bottom band %s starts at %g, want 0", last.Grade, last.MinMarks)
	}
	for i, b := range bands {
		if b.MinMarks > b.MaxMarks {
			return errors.Errorf("band %s: min %g > max %g", b.Grade, b.MinMarks, b.MaxMarks)
		}
		if i == 0 {
			continue
		}
		if prev := bands[i-1]; prev.MinMarks != b.MaxMarks+1 {
			return errors.Errorf("bands %s and %s are not contiguous", b.Grade, prev.Grade)
		}
	}
	return nil
}
