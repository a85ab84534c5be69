package document

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/datefmt"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
)

// DocumentType identifies one kind of regulated printable artifact.
type DocumentType string

const (
	TransferCertificate   DocumentType = "transfer_certificate"
	BonafideCertificate   DocumentType = "bonafide_certificate"
	SalaryCertificate     DocumentType = "salary_certificate"
	ExperienceCertificate DocumentType = "experience_certificate"
	StudentIDCard         DocumentType = "student_id_card"
	StaffIDCard           DocumentType = "staff_id_card"
	ReportCard            DocumentType = "report_card"
)

var documentTypes = []DocumentType{
	TransferCertificate,
	BonafideCertificate,
	SalaryCertificate,
	ExperienceCertificate,
	StudentIDCard,
	StaffIDCard,
	ReportCard,
}

// DocumentTypes lists every supported type in a stable order.
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}

func (dt DocumentType) Valid() bool {
	for _, t := range documentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// IsCard reports whether the type is printed on a CR80 card.
func (dt DocumentType) IsCard() bool {
	return dt == StudentIDCard || dt == StaffIDCard
}

// ParseDocumentType accepts "transfer_certificate", "TransferCertificate",
// "transfer-certificate" and the short aliases "tc", "bonafide", "salary" and
// "experience".
func ParseDocumentType(s string) (DocumentType, bool) {
	var b strings.Builder
	var prev rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	norm := strings.ReplaceAll(b.String(), "__", "_")
	switch norm {
	case "tc":
		return TransferCertificate, true
	case "bonafide":
		return BonafideCertificate, true
	case "salary":
		return SalaryCertificate, true
	case "experience":
		return ExperienceCertificate, true
	}
	dt := DocumentType(norm)
	return dt, dt.Valid()
}

// Board is the education board whose compliance rules apply.
type Board = grading.Board

const (
	CBSE  = grading.CBSE
	ICSE  = grading.ICSE
	STATE = grading.STATE
)

// Boards lists every supported board in a stable order.
func Boards() []Board { return grading.Boards() }

func validBoard(b Board) bool {
	_, ok := grading.ParseBoard(string(b))
	return ok && strings.ToUpper(string(b)) == string(b)
}

// SchoolInfo is the issuing school's letterhead data, loaded once at start.
type SchoolInfo struct {
	Name          string `json:"name" mapstructure:"name" validate:"required,notblank"`
	Address       string `json:"address" mapstructure:"address" validate:"required,notblank"`
	City          string `json:"city,omitempty" mapstructure:"city"`
	Phone         string `json:"phone,omitempty" mapstructure:"phone" validate:"omitempty,min=6"`
	Email         string `json:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	AffiliationNo string `json:"affiliation_no,omitempty" mapstructure:"affiliation_no" validate:"omitempty,refcode"`
	SchoolCode    string `json:"school_code,omitempty" mapstructure:"school_code" validate:"omitempty,refcode"`
	PrincipalName string `json:"principal_name,omitempty" mapstructure:"principal_name"`
	LogoRef       string `json:"logo_ref,omitempty" mapstructure:"logo_ref"`
	SealRef       string `json:"seal_ref,omitempty" mapstructure:"seal_ref"`
}

// IsZero reports whether no letterhead data was supplied.
func (s SchoolInfo) IsZero() bool {
	return s == SchoolInfo{}
}

// Request is one immutable document generation event.
type Request struct {
	DocumentType DocumentType `json:"document_type" validate:"required,doctype"`
	Board        Board        `json:"board" validate:"required,board"`
	School       SchoolInfo   `json:"school"`
	Record       RecordData   `json:"record"`
	IssueDate    datefmt.Date `json:"issue_date"`
}

type rawRequest struct {
	DocumentType DocumentType    `json:"document_type"`
	Board        Board           `json:"board"`
	School       SchoolInfo      `json:"school"`
	Record       json.RawMessage `json:"record"`
	IssueDate    datefmt.Date    `json:"issue_date"`
}

// UnmarshalJSON decodes the record into the variant selected by document_type.
func (r *Request) UnmarshalJSON(b []byte) error {
	var raw rawRequest
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	rec, err := DecodeRecord(raw.DocumentType, raw.Record)
	if err != nil {
		return err
	}
	*r = NewRequest(raw.DocumentType, raw.Board, raw.School, rec, raw.IssueDate)
	return nil
}

// NewRequest builds a request. A transfer certificate record and the request
// share one issue date: see Synced.
func NewRequest(dt DocumentType, board Board, school SchoolInfo, rec RecordData, issued datefmt.Date) Request {
	return Request{
		DocumentType: dt,
		Board:        board,
		School:       school,
		Record:       rec,
		IssueDate:    issued,
	}.Synced()
}

// Synced returns r with the issue date row of a transfer certificate record
// equal to the request issue date. The request date wins when both are set;
// an unset request date is taken from the record.
func (r Request) Synced() Request {
	tc, ok := r.Record.(TCStudentRecord)
	if !ok {
		return r
	}
	if r.IssueDate.IsZero() {
		r.IssueDate = tc.IssueDate
	} else {
		tc.IssueDate = r.IssueDate
	}
	r.Record = tc
	return r
}

// WithSchool returns a copy of r using school when r carries no letterhead.
func (r Request) WithSchool(school SchoolInfo) Request {
	if r.School.IsZero() {
		r.School = school
	}
	return r
}

// Reference returns the identifying number printed under the title,
// e.g. "TC/2024/1042".
func (r Request) Reference() string {
	if tc, ok := r.Record.(TCStudentRecord); ok && tc.CertificateNo != "" {
		return tc.CertificateNo
	}
	id := ""
	if r.Record != nil {
		id = r.Record.PrimaryID()
	}
	return fmt.Sprintf("%s/%04d/%s", referencePrefixes[r.DocumentType], r.IssueDate.Year(), id)
}

var referencePrefixes = map[DocumentType]string{
	TransferCertificate:   "TC",
	BonafideCertificate:   "BC",
	SalaryCertificate:     "SC",
	ExperienceCertificate: "EC",
	StudentIDCard:         "SID",
	StaffIDCard:           "EID",
	ReportCard:            "RC",
}

// ErrUnknownDocumentType is returned for document types outside DocumentTypes.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ErrUnknownBoard is returned for boards outside Boards.
var ErrUnknownBoard = errors.New("unknown board")

// RecordMismatchError is returned when a record variant cannot serve the requested type.
type RecordMismatchError struct {
	DocumentType DocumentType
	Record       string
}

func (e *RecordMismatchError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: record is missing", e.DocumentType)
	}
	return fmt.Sprintf("%s: cannot be generated from a %s", e.DocumentType, e.Record)
}

// DecodeRecord decodes raw JSON into the record variant for dt.
// A null or empty record decodes to nil.
func DecodeRecord(dt DocumentType, raw json.RawMessage) (RecordData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var rec RecordData
	var err error
	switch dt {
	case TransferCertificate:
		var r TCStudentRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case BonafideCertificate:
		var r BonafideRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case SalaryCertificate, ExperienceCertificate:
		var r StaffCertificateRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case StudentIDCard:
		var r StudentIDRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case StaffIDCard:
		var r StaffIDRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case ReportCard:
		var r ReportCardRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	default:
		return nil, errors.Wrapf(ErrUnknownDocumentType, "%q", dt)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s record", dt)
	}
	return rec, nil
}

// RecordData is the closed set of typed records a document can be built from.
type RecordData interface {
	// Serves reports whether the record can produce dt.
	Serves(dt DocumentType) bool
	// PrimaryID is the admission number or employee id.
	PrimaryID() string
	// Kind names the variant for error messages.
	Kind() string

	isRecordData()
}

// TCStudentRecord holds the transfer certificate particulars of a leaving pupil.
type TCStudentRecord struct {
	CertificateNo         string       `json:"certificate_no,omitempty"`
	AdmissionNo           string       `json:"admission_no"`
	StudentName           string       `json:"student_name"`
	FatherName            string       `json:"father_name"`
	MotherName            string       `json:"mother_name"`
	Nationality           string       `json:"nationality"`
	Category              string       `json:"category"`
	DateOfBirth           datefmt.Date `json:"date_of_birth"`
	AdmissionDate         datefmt.Date `json:"admission_date"`
	AdmissionClass        string       `json:"admission_class"`
	CurrentClass          string       `json:"current_class"`
	QualifiedForPromotion bool         `json:"qualified_for_promotion"`
	PromotedToClass       string       `json:"promoted_to_class,omitempty"`
	LeavingDate           datefmt.Date `json:"leaving_date"`
	ReasonForLeaving      string       `json:"reason_for_leaving"`
	PriorTCIssued         bool         `json:"prior_tc_issued"`
	PriorTCDetails        string       `json:"prior_tc_details,omitempty"`
	LastExamination       string       `json:"last_examination"`
	TimesFailed           int          `json:"times_failed"`
	WorkingDays           int          `json:"working_days"`
	DaysPresent           int          `json:"days_present"`
	NCCScoutGuide         string       `json:"ncc_scout_guide"`
	Activities            string       `json:"activities"`
	Conduct               string       `json:"conduct"`
	Remarks               string       `json:"remarks,omitempty"`
	// IssueDate mirrors Request.IssueDate; it is a numbered TC row.
	IssueDate datefmt.Date `json:"issue_date,omitempty"`
}

func (r TCStudentRecord) Serves(dt DocumentType) bool { return dt == TransferCertificate }
func (r TCStudentRecord) PrimaryID() string           { return r.AdmissionNo }
func (r TCStudentRecord) Kind() string                { return "transfer certificate record" }
func (TCStudentRecord) isRecordData()                 {}

// BonafideRecord certifies a pupil's current enrolment.
type BonafideRecord struct {
	AdmissionNo  string       `json:"admission_no"`
	StudentName  string       `json:"student_name"`
	ParentName   string       `json:"parent_name"`
	Gender       Gender       `json:"gender"`
	Class        string       `json:"class"`
	Section      string       `json:"section,omitempty"`
	AcademicYear string       `json:"academic_year"`
	DateOfBirth  datefmt.Date `json:"date_of_birth"`
	Purpose      string       `json:"purpose"`
}

func (r BonafideRecord) Serves(dt DocumentType) bool { return dt == BonafideCertificate }
func (r BonafideRecord) PrimaryID() string           { return r.AdmissionNo }
func (r BonafideRecord) Kind() string                { return "bonafide record" }
func (BonafideRecord) isRecordData()                 {}

// SalaryComponent is one line of a monthly pay breakup, in whole rupees.
type SalaryComponent struct {
	Name   string `json:"name"`
	Amount uint64 `json:"amount"`
}

// StaffCertificateRecord backs salary and experience certificates.
type StaffCertificateRecord struct {
	EmployeeID    string            `json:"employee_id"`
	StaffName     string            `json:"staff_name"`
	Gender        Gender            `json:"gender"`
	Designation   string            `json:"designation"`
	Department    string            `json:"department"`
	DateOfJoining datefmt.Date      `json:"date_of_joining"`
	DateOfLeaving datefmt.Date      `json:"date_of_leaving"`
	Salary        []SalaryComponent `json:"salary,omitempty"`
	Purpose       string            `json:"purpose,omitempty"`
	Conduct       string            `json:"conduct,omitempty"`
}

func (r StaffCertificateRecord) Serves(dt DocumentType) bool {
	return dt == SalaryCertificate || dt == ExperienceCertificate
}
func (r StaffCertificateRecord) PrimaryID() string { return r.EmployeeID }
func (r StaffCertificateRecord) Kind() string      { return "staff certificate record" }
func (StaffCertificateRecord) isRecordData()       {}

// GrossSalary sums the monthly components.
func (r StaffCertificateRecord) GrossSalary() uint64 {
	var total uint64
	for _, c := range r.Salary {
		total += c.Amount
	}
	return total
}

// StudentIDRecord is printed on a student CR80 card.
type StudentIDRecord struct {
	AdmissionNo string       `json:"admission_no"`
	StudentName string       `json:"student_name"`
	Class       string       `json:"class"`
	Section     string       `json:"section,omitempty"`
	DateOfBirth datefmt.Date `json:"date_of_birth"`
	BloodGroup  string       `json:"blood_group,omitempty"`
	ParentName  string       `json:"parent_name"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address,omitempty"`
	ValidUpto   datefmt.Date `json:"valid_upto"`
	PhotoRef    string       `json:"photo_ref,omitempty"`
}

func (r StudentIDRecord) Serves(dt DocumentType) bool { return dt == StudentIDCard }
func (r StudentIDRecord) PrimaryID() string           { return r.AdmissionNo }
func (r StudentIDRecord) Kind() string                { return "student id record" }
func (StudentIDRecord) isRecordData()                 {}

// StaffIDRecord is printed on a staff CR80 card.
type StaffIDRecord struct {
	EmployeeID    string       `json:"employee_id"`
	StaffName     string       `json:"staff_name"`
	Designation   string       `json:"designation"`
	Department    string       `json:"department,omitempty"`
	BloodGroup    string       `json:"blood_group,omitempty"`
	Phone         string       `json:"phone"`
	DateOfJoining datefmt.Date `json:"date_of_joining,omitempty"`
	ValidUpto     datefmt.Date `json:"valid_upto"`
	PhotoRef      string       `json:"photo_ref,omitempty"`
}

func (r StaffIDRecord) Serves(dt DocumentType) bool { return dt == StaffIDCard }
func (r StaffIDRecord) PrimaryID() string           { return r.EmployeeID }
func (r StaffIDRecord) Kind() string                { return "staff id record" }
func (StaffIDRecord) isRecordData()                 {}

// SubjectMarks is one subject row of a report card.
type SubjectMarks struct {
	Subject  string  `json:"subject"`
	MaxMarks float64 `json:"max_marks"`
	Obtained float64 `json:"obtained"`
}

// ReportCardRecord holds one term's assessment of a pupil.
type ReportCardRecord struct {
	AdmissionNo  string         `json:"admission_no"`
	RollNo       string         `json:"roll_no"`
	StudentName  string         `json:"student_name"`
	ParentName   string         `json:"parent_name"`
	Class        string         `json:"class"`
	Section      string         `json:"section,omitempty"`
	AcademicYear string         `json:"academic_year"`
	Term         string         `json:"term"`
	DateOfBirth  datefmt.Date   `json:"date_of_birth"`
	Subjects     []SubjectMarks `json:"subjects"`
	WorkingDays  int            `json:"working_days,omitempty"`
	DaysPresent  int            `json:"days_present,omitempty"`
	Remarks      string         `json:"remarks,omitempty"`
}

func (r ReportCardRecord) Serves(dt DocumentType) bool { return dt == ReportCard }
func (r ReportCardRecord) PrimaryID() string           { return r.AdmissionNo }
func (r ReportCardRecord) Kind() string                { return "report card record" }
func (ReportCardRecord) isRecordData()                 {}

// Gender selects pronouns in certificate wording.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Pronoun returns "He", "She" or "They".
func (g Gender) Pronoun() string {
	switch Gender(strings.ToLower(string(g))) {
	case Male:
		return "He"
	case Female:
		return "She"
	default:
		return "They"
	}
}

// Possessive returns "his", "her" or "their".
func (g Gender) Possessive() string {
	switch Gender(strings.ToLower(string(g))) {
	case Male:
		return "his"
	case Female:
		return "her"
	default:
		return "their"
	}
}

// Object returns "him", "her" or "them".
func (g Gender) Object() string {
	switch Gender(strings.ToLower(string(g))) {
	case Male:
		return "him"
	case Female:
		return "her"
	default:
		return "them"
	}
}

// Relation returns "son", "daughter" or "ward".
func (g Gender) Relation() string {
	switch Gender(strings.ToLower(string(g))) {
	case Male:
		return "son"
	case Female:
		return "daughter"
	default:
		return "ward"
	}
}

// Title returns "Mr.", "Ms." or "Mx.".
func (g Gender) Title() string {
	switch Gender(strings.ToLower(string(g))) {
	case Male:
		return "Mr."
	case Female:
		return "Ms."
	default:
		return "Mx."
	}
}
