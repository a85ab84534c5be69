package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/numwords"
)

const (
	cellPadding = 1.0
	tableSize   = 8.0
	textSize    = 10.0
	serialWidth = 10.0
)

// fieldTable lists every mandatory field as a numbered row, in registry order.
func fieldTable(cur Cursor, req document.Request) (Cursor, Table, error) {
	values, err := document.Fields(req)
	if err != nil {
		return cur, Table{}, err
	}
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{strconv.Itoa(v.Index) + ".", v.Label, v.Value}
	}

	labelW := (cur.Region.Width - serialWidth) * 0.575
	cur, t := cur.Table(TableSpec{
		Columns: []TableColumn{
			{Header: "No.", Width: serialWidth, Align: AlignCenter},
			{Header: "Particulars", Width: labelW, Align: AlignLeft},
			{Header: "Details", Width: cur.Region.Width - serialWidth - labelW, Align: AlignLeft},
		},
		Rows:       rows,
		Font:       regular(tableSize),
		Padding:    cellPadding,
		Header:     true,
		HeaderFill: &lightGray,
	})
	return cur, t, nil
}

func paragraph(cur Cursor, s string) (Cursor, []Command) {
	cur, cmds := cur.Text(s, regular(textSize), AlignLeft)
	return cur.Skip(2), cmds
}

func transferCertificateBody(cur Cursor, req document.Request) (Cursor, []Command, error) {
	rec := req.Record.(document.TCStudentRecord)

	cur, t, err := fieldTable(cur, req)
	if err != nil {
		return cur, nil, err
	}
	cmds := []Command{t}

	cur = cur.Skip(3)
	var lines []Command
	cur, lines = cur.Text("Certified that the above particulars are in accordance with the school admission register.", italic(9), AlignLeft)
	cmds = append(cmds, lines...)
	if rec.Remarks != "" {
		cur, lines = cur.Text("Remarks: "+rec.Remarks, regular(9), AlignLeft)
		cmds = append(cmds, lines...)
	}
	return cur, cmds, nil
}

func bonafideBody(cur Cursor, req document.Request) (Cursor, []Command, error) {
	rec := req.Record.(document.BonafideRecord)
	var cmds []Command
	var lines []Command

	cur, lines = paragraph(cur, fmt.Sprintf(
		"This is to certify that %s, %s of %s, is a bonafide student of this school studying in Class %s during the academic year %s. %s date of birth as per the school admission register is %s (%s).",
		rec.StudentName, rec.Gender.Relation(), rec.ParentName,
		document.ClassSection(rec.Class, rec.Section), rec.AcademicYear,
		titleCase(rec.Gender.Possessive()), rec.DateOfBirth.Format(), rec.DateOfBirth.InWords(),
	))
	cmds = append(cmds, lines...)
	cur, lines = paragraph(cur, fmt.Sprintf(
		"This certificate is issued on request for the purpose of %s.", strings.TrimSuffix(rec.Purpose, ".")))
	cmds = append(cmds, lines...)

	cur, t, err := fieldTable(cur.Skip(2), req)
	if err != nil {
		return cur, nil, err
	}
	return cur, append(cmds, t), nil
}

func salaryBody(cur Cursor, req document.Request) (Cursor, []Command, error) {
	rec := req.Record.(document.StaffCertificateRecord)
	var cmds []Command
	var lines []Command

	cur, lines = paragraph(cur, fmt.Sprintf(
		"This is to certify that %s %s is employed with this school as %s in the Department of %s since %s. %s monthly salary particulars are given below.",
		rec.Gender.Title(), rec.StaffName, rec.Designation, rec.Department,
		rec.DateOfJoining.Format(), titleCase(rec.Gender.Possessive()),
	))
	cmds = append(cmds, lines...)

	cur, t, err := fieldTable(cur, req)
	if err != nil {
		return cur, nil, err
	}
	cmds = append(cmds, t)

	rows := make([][]string, 0, len(rec.Salary)+1)
	for i, c := range rec.Salary {
		rows = append(rows, []string{strconv.Itoa(i+1) + ".", c.Name, numwords.FormatRupees(c.Amount)})
	}
	gross := rec.GrossSalary()
	rows = append(rows, []string{"", "Gross Monthly Salary", numwords.FormatRupees(gross)})

	amountW := 45.0
	cur, t = cur.Skip(4).Table(TableSpec{
		Columns: []TableColumn{
			{Header: "No.", Width: serialWidth, Align: AlignCenter},
			{Header: "Component", Width: cur.Region.Width - serialWidth - amountW, Align: AlignLeft},
			{Header: "Amount", Width: amountW, Align: AlignRight},
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
	cur, lines = cur.Text(fmt.Sprintf("Gross monthly salary: %s (%s)",
		numwords.FormatRupees(gross), numwords.RupeesInWords(gross)), bold(9), AlignLeft)
	cmds = append(cmds, lines...)

	cur = cur.Skip(2)
	cur, lines = paragraph(cur, fmt.Sprintf("This certificate is issued at %s request for the purpose of %s.",
		rec.Gender.Possessive(), strings.TrimSuffix(rec.Purpose, ".")))
	cmds = append(cmds, lines...)
	return cur, cmds, nil
}

func experienceBody(cur Cursor, req document.Request) (Cursor, []Command, error) {
	rec := req.Record.(document.StaffCertificateRecord)
	var cmds []Command
	var lines []Command

	cur, lines = paragraph(cur, fmt.Sprintf(
		"This is to certify that %s %s (Employee ID %s) worked with this school as %s in the Department of %s from %s to %s, a total period of %s.",
		rec.Gender.Title(), rec.StaffName, rec.EmployeeID, rec.Designation, rec.Department,
		rec.DateOfJoining.InWords(), rec.DateOfLeaving.InWords(),
		document.ServicePeriod(rec.DateOfJoining, rec.DateOfLeaving),
	))
	cmds = append(cmds, lines...)
	cur, lines = paragraph(cur, fmt.Sprintf(
		"During %s tenure %s conduct was found to be %s. We wish %s success in all future endeavours.",
		rec.Gender.Possessive(), rec.Gender.Possessive(), strings.ToLower(rec.Conduct), rec.Gender.Object(),
	))
	cmds = append(cmds, lines...)

	cur, t, err := fieldTable(cur.Skip(2), req)
	if err != nil {
		return cur, nil, err
	}
	return cur, append(cmds, t), nil
}
