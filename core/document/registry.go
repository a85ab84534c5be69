package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/datefmt"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/numwords"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Size is a width and height in millimetres.
type Size struct {
	Width  float64 `json:"width_mm"`
	Height float64 `json:"height_mm"`
}

// Oriented returns s rotated so that it matches o.
func (s Size) Oriented(o Orientation) Size {
	if (o == Landscape) != (s.Width > s.Height) {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// Margins in millimetres.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

var (
	// A4 is ISO 216 A4 in portrait.
	A4 = Size{Width: 210, Height: 297}
	// CR80 is the ISO/IEC 7810 ID-1 card in portrait.
	CR80 = Size{Width: 53.98, Height: 85.6}

	A4Margins   = Margins{Top: 10, Right: 15, Bottom: 10, Left: 15}
	CardMargins = Margins{Top: 3, Right: 3, Bottom: 3, Left: 3}
)

// CR80CornerRadius is the ID-1 corner radius in millimetres.
const CR80CornerRadius = 3.18

// Config holds the static layout parameters of one document type.
type Config struct {
	DocumentType DocumentType `json:"document_type"`
	Title        string       `json:"title"`
	Orientation  Orientation  `json:"orientation"`
	PageSize     Size         `json:"page_size"`
	Margins      Margins      `json:"margins"`
	HeaderHeight float64      `json:"header_height"`
	FooterHeight float64      `json:"footer_height"`
	CornerRadius float64      `json:"corner_radius,omitempty"`
	Card         bool         `json:"card"`
	SinglePage   bool         `json:"single_page"`
}

// Printable returns the area inside the margins.
func (c Config) Printable() Size {
	return Size{
		Width:  c.PageSize.Width - c.Margins.Left - c.Margins.Right,
		Height: c.PageSize.Height - c.Margins.Top - c.Margins.Bottom,
	}
}

func certificate(dt DocumentType, title string) Config {
	return Config{
		DocumentType: dt,
		Title:        title,
		Orientation:  Portrait,
		PageSize:     A4,
		Margins:      A4Margins,
		HeaderHeight: 38,
		FooterHeight: 32,
		SinglePage:   true,
	}
}

func card(dt DocumentType, title string) Config {
	return Config{
		DocumentType: dt,
		Title:        title,
		Orientation:  Landscape,
		PageSize:     CR80.Oriented(Landscape),
		Margins:      CardMargins,
		HeaderHeight: 11,
		FooterHeight: 7,
		CornerRadius: CR80CornerRadius,
		Card:         true,
		SinglePage:   true,
	}
}

var configs = map[DocumentType]Config{
	TransferCertificate:   certificate(TransferCertificate, "TRANSFER CERTIFICATE"),
	BonafideCertificate:   certificate(BonafideCertificate, "BONAFIDE CERTIFICATE"),
	SalaryCertificate:     certificate(SalaryCertificate, "SALARY CERTIFICATE"),
	ExperienceCertificate: certificate(ExperienceCertificate, "EXPERIENCE CERTIFICATE"),
	ReportCard:            certificate(ReportCard, "REPORT CARD"),
	StudentIDCard:         card(StudentIDCard, "STUDENT IDENTITY CARD"),
	StaffIDCard:           card(StaffIDCard, "STAFF IDENTITY CARD"),
}

// ConfigFor returns the layout parameters of dt.
func ConfigFor(dt DocumentType) (Config, error) {
	c, ok := configs[dt]
	if !ok {
		return Config{}, errors.Wrapf(ErrUnknownDocumentType, "%q", dt)
	}
	return c, nil
}

// Extractor renders one field of a record; "" means the field is missing.
type Extractor func(RecordData) string

// FieldSpec is one numbered mandatory row of a document.
type FieldSpec struct {
	Index   int       `json:"index"`
	Label   string    `json:"label"`
	Extract Extractor `json:"-"`
}

type fieldKey struct {
	dt    DocumentType
	board Board
}

type field struct {
	label   string
	extract Extractor
}

var fields = map[fieldKey][]FieldSpec{}

func register(dt DocumentType, board Board, defs ...field) {
	specs := make([]FieldSpec, len(defs))
	for i, d := range defs {
		specs[i] = FieldSpec{Index: i + 1, Label: d.label, Extract: d.extract}
	}
	fields[fieldKey{dt, board}] = specs
}

// MandatoryFieldsFor returns a copy of the ordered field list for (dt, board).
func MandatoryFieldsFor(dt DocumentType, board Board) ([]FieldSpec, error) {
	if !dt.Valid() {
		return nil, errors.Wrapf(ErrUnknownDocumentType, "%q", dt)
	}
	specs, ok := fields[fieldKey{dt, board}]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBoard, "%q", board)
	}
	out := make([]FieldSpec, len(specs))
	copy(out, specs)
	return out, nil
}

// tc adapts a transfer certificate accessor to an Extractor.
func tc(f func(TCStudentRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(TCStudentRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func bonafide(f func(BonafideRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(BonafideRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func staff(f func(StaffCertificateRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(StaffCertificateRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func studentID(f func(StudentIDRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(StudentIDRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func staffID(f func(StaffIDRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(StaffIDRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func reportCard(f func(ReportCardRecord) string) Extractor {
	return func(r RecordData) string {
		rec, ok := r.(ReportCardRecord)
		if !ok {
			return ""
		}
		return strings.TrimSpace(f(rec))
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func count(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// ClassSection joins class and section as "X-A".
func ClassSection(class, section string) string {
	class, section = strings.TrimSpace(class), strings.TrimSpace(section)
	if class == "" || section == "" {
		return class
	}
	return class + "-" + section
}

// ServicePeriod renders the years and months between two dates, e.g. "3 years 2 months".
func ServicePeriod(from, to datefmt.Date) string {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return ""
	}
	years, months := datefmt.Since(from, to)
	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 || years == 0 {
		parts = append(parts, plural(months, "month"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Transfer certificate rows, in printed order.
var (
	tcAdmissionNo = field{"Admission Register Serial No.", tc(func(r TCStudentRecord) string { return r.AdmissionNo })}
	tcName        = field{"Name of Pupil", tc(func(r TCStudentRecord) string { return r.StudentName })}
	tcFather      = field{"Father's Name", tc(func(r TCStudentRecord) string { return r.FatherName })}
	tcMother      = field{"Mother's Name", tc(func(r TCStudentRecord) string { return r.MotherName })}
	tcNationality = field{"Nationality", tc(func(r TCStudentRecord) string { return r.Nationality })}
	tcCategory    = field{"Whether the Pupil Belongs to SC/ST/OBC Category", tc(func(r TCStudentRecord) string { return r.Category })}
	tcDOB         = field{"Date of Birth (in figures)", tc(func(r TCStudentRecord) string { return r.DateOfBirth.Format() })}
	tcDOBWords    = field{"Date of Birth (in words)", tc(func(r TCStudentRecord) string { return r.DateOfBirth.InWords() })}
	tcAdmission   = field{"Date of First Admission in the School with Class", tc(func(r TCStudentRecord) string {
		if r.AdmissionDate.IsZero() || strings.TrimSpace(r.AdmissionClass) == "" {
			return ""
		}
		return r.AdmissionDate.Format() + ", Class " + r.AdmissionClass
	})}
	tcLastClass = field{"Class in which the Pupil Last Studied", tc(func(r TCStudentRecord) string { return r.CurrentClass })}
	tcPromotion = field{"Whether Qualified for Promotion to the Higher Class", tc(func(r TCStudentRecord) string {
		if r.QualifiedForPromotion && r.PromotedToClass != "" {
			return "Yes, to Class " + r.PromotedToClass
		}
		return yesNo(r.QualifiedForPromotion)
	})}
	tcLeaving     = field{"Month and Year of Leaving", tc(func(r TCStudentRecord) string { return r.LeavingDate.MonthYear() })}
	tcReason      = field{"Reason for Leaving the School", tc(func(r TCStudentRecord) string { return r.ReasonForLeaving })}
	tcPriorIssued = field{"Whether a Transfer Certificate was Issued Earlier", tc(func(r TCStudentRecord) string { return yesNo(r.PriorTCIssued) })}
	tcPriorDetail = field{"Details of Earlier Transfer Certificate", tc(func(r TCStudentRecord) string {
		if !r.PriorTCIssued {
			return "N/A"
		}
		return r.PriorTCDetails
	})}
	// boards without a separate details row fold the details into the flag
	tcPriorCombined = field{"Whether a Transfer Certificate was Issued Earlier (with details)", tc(func(r TCStudentRecord) string {
		if !r.PriorTCIssued {
			return "No"
		}
		if strings.TrimSpace(r.PriorTCDetails) == "" {
			return ""
		}
		return "Yes, " + r.PriorTCDetails
	})}
	tcLastExam = field{"School/Board Annual Examination Last Taken with Result", tc(func(r TCStudentRecord) string { return r.LastExamination })}
	tcFailed   = field{"Whether Failed, if so Once/Twice in the Same Class", tc(func(r TCStudentRecord) string {
		switch {
		case r.TimesFailed < 0:
			return ""
		case r.TimesFailed == 0:
			return "No"
		case r.TimesFailed == 1:
			return "Once"
		case r.TimesFailed == 2:
			return "Twice"
		default:
			return fmt.Sprintf("%d times", r.TimesFailed)
		}
	})}
	tcWorkingDays = field{"Total No. of Working Days", tc(func(r TCStudentRecord) string { return count(r.WorkingDays) })}
	tcDaysPresent = field{"Total No. of Working Days Present", tc(func(r TCStudentRecord) string {
		if r.WorkingDays <= 0 || r.DaysPresent < 0 || r.DaysPresent > r.WorkingDays {
			return ""
		}
		return strconv.Itoa(r.DaysPresent)
	})}
	tcNCC        = field{"Whether NCC Cadet/Boy Scout/Girl Guide (details may be given)", tc(func(r TCStudentRecord) string { return r.NCCScoutGuide })}
	tcActivities = field{"Games Played or Extra-curricular Activities Taken Part In", tc(func(r TCStudentRecord) string { return r.Activities })}
	tcConduct    = field{"General Conduct", tc(func(r TCStudentRecord) string { return r.Conduct })}
	tcIssued     = field{"Date of Issue of Certificate", tc(func(r TCStudentRecord) string { return r.IssueDate.Format() })}
)

func init() {
	register(TransferCertificate, CBSE,
		tcAdmissionNo, tcName, tcFather, tcMother, tcNationality, tcCategory,
		tcDOB, tcDOBWords, tcAdmission, tcLastClass, tcPromotion, tcLeaving,
		tcReason, tcPriorIssued, tcPriorDetail, tcLastExam, tcFailed,
		tcWorkingDays, tcDaysPresent, tcNCC, tcActivities, tcConduct, tcIssued,
	)
	register(TransferCertificate, ICSE,
		tcAdmissionNo, tcName, tcFather, tcMother, tcNationality, tcCategory,
		tcDOB, tcDOBWords, tcAdmission, tcLastClass, tcPromotion, tcLeaving,
		tcReason, tcPriorCombined, tcLastExam, tcFailed,
		tcWorkingDays, tcDaysPresent, tcNCC, tcActivities, tcConduct, tcIssued,
	)
	register(TransferCertificate, STATE,
		tcAdmissionNo, tcName, tcFather, tcMother, tcNationality, tcCategory,
		tcDOB, tcDOBWords, tcAdmission, tcLastClass, tcPromotion, tcLeaving,
		tcReason, tcPriorIssued, tcPriorDetail, tcLastExam, tcFailed,
		tcWorkingDays, tcDaysPresent, tcActivities, tcConduct, tcIssued,
	)

	for _, board := range Boards() {
		register(BonafideCertificate, board,
			field{"Admission No.", bonafide(func(r BonafideRecord) string { return r.AdmissionNo })},
			field{"Name of Student", bonafide(func(r BonafideRecord) string { return r.StudentName })},
			field{"Father's/Guardian's Name", bonafide(func(r BonafideRecord) string { return r.ParentName })},
			field{"Class and Section", bonafide(func(r BonafideRecord) string { return ClassSection(r.Class, r.Section) })},
			field{"Academic Year", bonafide(func(r BonafideRecord) string { return r.AcademicYear })},
			field{"Date of Birth", bonafide(func(r BonafideRecord) string { return r.DateOfBirth.Format() })},
			field{"Purpose of Certificate", bonafide(func(r BonafideRecord) string { return r.Purpose })},
		)

		register(SalaryCertificate, board,
			field{"Employee ID", staff(func(r StaffCertificateRecord) string { return r.EmployeeID })},
			field{"Name of Employee", staff(func(r StaffCertificateRecord) string { return r.StaffName })},
			field{"Designation", staff(func(r StaffCertificateRecord) string { return r.Designation })},
			field{"Department", staff(func(r StaffCertificateRecord) string { return r.Department })},
			field{"Date of Joining", staff(func(r StaffCertificateRecord) string { return r.DateOfJoining.Format() })},
			field{"Gross Monthly Salary", staff(func(r StaffCertificateRecord) string {
				if r.GrossSalary() == 0 {
					return ""
				}
				return numwords.FormatRupees(r.GrossSalary())
			})},
			field{"Purpose of Certificate", staff(func(r StaffCertificateRecord) string { return r.Purpose })},
		)

		register(ExperienceCertificate, board,
			field{"Employee ID", staff(func(r StaffCertificateRecord) string { return r.EmployeeID })},
			field{"Name of Employee", staff(func(r StaffCertificateRecord) string { return r.StaffName })},
			field{"Designation", staff(func(r StaffCertificateRecord) string { return r.Designation })},
			field{"Department", staff(func(r StaffCertificateRecord) string { return r.Department })},
			field{"Date of Joining", staff(func(r StaffCertificateRecord) string { return r.DateOfJoining.Format() })},
			field{"Date of Relieving", staff(func(r StaffCertificateRecord) string { return r.DateOfLeaving.Format() })},
			field{"Period of Service", staff(func(r StaffCertificateRecord) string { return ServicePeriod(r.DateOfJoining, r.DateOfLeaving) })},
			field{"Conduct", staff(func(r StaffCertificateRecord) string { return r.Conduct })},
		)

		register(StudentIDCard, board,
			field{"Admission No.", studentID(func(r StudentIDRecord) string { return r.AdmissionNo })},
			field{"Name", studentID(func(r StudentIDRecord) string { return r.StudentName })},
			field{"Class", studentID(func(r StudentIDRecord) string { return ClassSection(r.Class, r.Section) })},
			field{"Date of Birth", studentID(func(r StudentIDRecord) string { return r.DateOfBirth.Format() })},
			field{"Parent's Name", studentID(func(r StudentIDRecord) string { return r.ParentName })},
			field{"Contact No.", studentID(func(r StudentIDRecord) string { return r.Phone })},
			field{"Valid Upto", studentID(func(r StudentIDRecord) string { return r.ValidUpto.Format() })},
		)

		register(StaffIDCard, board,
			field{"Employee ID", staffID(func(r StaffIDRecord) string { return r.EmployeeID })},
			field{"Name", staffID(func(r StaffIDRecord) string { return r.StaffName })},
			field{"Designation", staffID(func(r StaffIDRecord) string { return r.Designation })},
			field{"Contact No.", staffID(func(r StaffIDRecord) string { return r.Phone })},
			field{"Valid Upto", staffID(func(r StaffIDRecord) string { return r.ValidUpto.Format() })},
		)

		register(ReportCard, board,
			field{"Admission No.", reportCard(func(r ReportCardRecord) string { return r.AdmissionNo })},
			field{"Roll No.", reportCard(func(r ReportCardRecord) string { return r.RollNo })},
			field{"Name of Student", reportCard(func(r ReportCardRecord) string { return r.StudentName })},
			field{"Father's/Guardian's Name", reportCard(func(r ReportCardRecord) string { return r.ParentName })},
			field{"Class and Section", reportCard(func(r ReportCardRecord) string { return ClassSection(r.Class, r.Section) })},
			field{"Date of Birth", reportCard(func(r ReportCardRecord) string { return r.DateOfBirth.Format() })},
			field{"Academic Year", reportCard(func(r ReportCardRecord) string { return r.AcademicYear })},
			field{"Term", reportCard(func(r ReportCardRecord) string { return r.Term })},
			field{"Subjects Assessed", reportCard(func(r ReportCardRecord) string { return count(len(r.Subjects)) })},
		)
	}
}
