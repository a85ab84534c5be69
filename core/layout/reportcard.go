package layout

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
)

// SubjectResult is one computed row of the marks table.
type SubjectResult struct {
	Subject    string       `json:"subject"`
	MaxMarks   float64      `json:"max_marks"`
	Obtained   float64      `json:"obtained"`
	Percentage float64      `json:"percentage"`
	Band       grading.Band `json:"band"`
}

// Assessment is the computed outcome of a report card.
type Assessment struct {
	Subjects      []SubjectResult `json:"subjects"`
	TotalMax      float64         `json:"total_max"`
	TotalObtained float64         `json:"total_obtained"`
	Percentage    float64         `json:"percentage"`
	Overall       grading.Band    `json:"overall"`
	CGPA          float64         `json:"cgpa"`
	Passed        bool            `json:"passed"`
}

// Assess grades every subject of rec on board's scale and derives the
// overall percentage, grade, CGPA and result.
func Assess(rec document.ReportCardRecord, board document.Board) (Assessment, error) {
	var a Assessment
	if len(rec.Subjects) == 0 {
		return a, &grading.EmptyInputError{Op: "report card subjects"}
	}

	a.Passed = true
	points := make([]float64, 0, len(rec.Subjects))
	for _, s := range rec.Subjects {
		pct, err := grading.Percentage(s.Obtained, s.MaxMarks)
		if err != nil {
			return Assessment{}, errors.Wrapf(err, "subject %s", s.Subject)
		}
		band, err := grading.GradeFor(pct, board)
		if err != nil {
			return Assessment{}, errors.Wrapf(err, "subject %s", s.Subject)
		}
		a.Subjects = append(a.Subjects, SubjectResult{
			Subject:    s.Subject,
			MaxMarks:   s.MaxMarks,
			Obtained:   s.Obtained,
			Percentage: pct,
			Band:       band,
		})
		points = append(points, band.GradePoint)
		a.TotalMax += s.MaxMarks
		a.TotalObtained += s.Obtained
		if !grading.Passed(pct) {
			a.Passed = false
		}
	}

	var err error
	if a.Percentage, err = grading.Percentage(a.TotalObtained, a.TotalMax); err != nil {
		return Assessment{}, err
	}
	if a.Overall, err = grading.GradeFor(a.Percentage, board); err != nil {
		return Assessment{}, err
	}
	if a.CGPA, err = grading.CGPA(points); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (a Assessment) Result() string {
	if a.Passed {
		return "PASS"
	}
	return "NOT QUALIFIED"
}

func reportCardBody(cur Cursor, req document.Request) (Cursor, []Command, error) {
	rec := req.Record.(document.ReportCardRecord)
	a, err := Assess(rec, req.Board)
	if err != nil {
		return cur, nil, err
	}

	var cmds []Command
	var lines []Command

	cur, details, err := fieldTable(cur, req)
	if err != nil {
		return cur, nil, err
	}
	cmds = append(cmds, details)

	rows := make([][]string, 0, len(a.Subjects)+1)
	for _, s := range a.Subjects {
		rows = append(rows, []string{
			s.Subject, marks(s.MaxMarks), marks(s.Obtained), percent(s.Percentage),
			s.Band.Grade, marks(s.Band.GradePoint),
		})
	}
	rows = append(rows, []string{
		"Total", marks(a.TotalMax), marks(a.TotalObtained), percent(a.Percentage), a.Overall.Grade, "",
	})

	numW := 20.0
	cur = cur.Skip(4)
	var t Table
	cur, t = cur.Table(TableSpec{
		Columns: []TableColumn{
			{Header: "Subject", Width: cur.Region.Width - 5*numW, Align: AlignLeft},
			{Header: "Max. Marks", Width: numW, Align: AlignRight},
			{Header: "Obtained", Width: numW, Align: AlignRight},
			{Header: "%", Width: numW, Align: AlignRight},
			{Header: "Grade", Width: numW, Align: AlignCenter},
			{Header: "Grade Point", Width: numW, Align: AlignCenter},
		},
		Rows:       rows,
		Font:       regular(tableSize),
		Padding:    cellPadding,
		Header:     true,
		HeaderFill: &lightGray,
		BoldRows:   []int{len(rows) - 1},
	})
	cmds = append(cmds, t)

	cur = cur.Skip(3)
	summary := []string{
		fmt.Sprintf("Overall Percentage: %s | Overall Grade: %s (%s)", percent(a.Percentage), a.Overall.Grade, a.Overall.Description),
		fmt.Sprintf("CGPA: %.2f | Result: %s", a.CGPA, a.Result()),
	}
	if rec.WorkingDays > 0 {
		attendance, err := grading.Percentage(float64(rec.DaysPresent), float64(rec.WorkingDays))
		if err != nil {
			return cur, nil, errors.Wrap(err, "attendance")
		}
		summary = append(summary, fmt.Sprintf("Attendance: %d / %d days (%s)", rec.DaysPresent, rec.WorkingDays, percent(attendance)))
	}
	if rec.Remarks != "" {
		summary = append(summary, "Class Teacher's Remarks: "+rec.Remarks)
	}
	for i, s := range summary {
		f := regular(9)
		if i < 2 {
			f = bold(9)
		}
		cur, lines = cur.Text(s, f, AlignLeft)
		cmds = append(cmds, lines...)
	}

	cur, lines = gradeLegend(cur.Skip(3), req.Board)
	cmds = append(cmds, lines...)
	return cur, cmds, nil
}

// gradeLegend prints the board's scale as a three row strip.
func gradeLegend(cur Cursor, board document.Board) (Cursor, []Command) {
	bands, err := grading.Scale(board)
	if err != nil {
		return cur, nil
	}
	var cmds []Command
	cur, lines := cur.Text(fmt.Sprintf("Grading Scale (%s)", board), bold(8), AlignLeft)
	cmds = append(cmds, lines...)

	cols := make([]TableColumn, len(bands))
	grades := make([]string, len(bands))
	ranges := make([]string, len(bands))
	points := make([]string, len(bands))
	for i, b := range bands {
		cols[i] = TableColumn{Width: cur.Region.Width / float64(len(bands)), Align: AlignCenter}
		grades[i] = b.Grade
		ranges[i] = b.Range()
		points[i] = marks(b.GradePoint)
	}
	cur, t := cur.Table(TableSpec{
		Columns:  cols,
		Rows:     [][]string{grades, ranges, points},
		Font:     regular(7),
		Padding:  0.8,
		BoldRows: []int{0},
	})
	return cur, append(cmds, t)
}

func marks(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
