package document_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/datefmt"
	. "github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/tests"
)

func TestConfigFor(t *testing.T) {
	tc, err := ConfigFor(TransferCertificate)
	require.NoError(t, err)
	assert.Equal(t, Portrait, tc.Orientation)
	assert.Equal(t, Size{Width: 210, Height: 297}, tc.PageSize)
	assert.Equal(t, Size{Width: 180, Height: 277}, tc.Printable())
	assert.True(t, tc.SinglePage)
	assert.False(t, tc.Card)

	card, err := ConfigFor(StudentIDCard)
	require.NoError(t, err)
	assert.Equal(t, Landscape, card.Orientation)
	assert.Equal(t, Size{Width: 85.6, Height: 53.98}, card.PageSize)
	assert.Equal(t, 3.18, card.CornerRadius)
	assert.True(t, card.Card)

	_, err = ConfigFor("visa_letter")
	assert.True(t, errors.Is(err, ErrUnknownDocumentType))
}

func TestTransferCertificateFieldOrder(t *testing.T) {
	tests := []struct {
		board   Board
		count   int
		absent  string
		present string
	}{
		{board: CBSE, count: 23, present: "Details of Earlier Transfer Certificate"},
		{board: ICSE, count: 22, absent: "Details of Earlier Transfer Certificate"},
		{board: STATE, count: 22, absent: "Whether NCC Cadet/Boy Scout/Girl Guide (details may be given)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.board), func(t *testing.T) {
			specs, err := MandatoryFieldsFor(TransferCertificate, tt.board)
			require.NoError(t, err)
			require.Len(t, specs, tt.count)

			labels := make([]string, len(specs))
			for i, s := range specs {
				assert.Equal(t, i+1, s.Index)
				labels[i] = s.Label
			}
			assert.Equal(t, "Admission Register Serial No.", labels[0])
			assert.Equal(t, "Name of Pupil", labels[1])
			assert.Equal(t, "Father's Name", labels[2])
			assert.Equal(t, "Mother's Name", labels[3])
			assert.Equal(t, "Date of Birth (in figures)", labels[6])
			assert.Equal(t, "Date of Birth (in words)", labels[7])
			assert.Equal(t, "General Conduct", labels[len(labels)-2])
			assert.Equal(t, "Date of Issue of Certificate", labels[len(labels)-1])
			if tt.present != "" {
				assert.Contains(t, labels, tt.present)
			}
			if tt.absent != "" {
				assert.NotContains(t, labels, tt.absent)
			}
		})
	}
}

func TestEveryFieldListIsCompleteForFixtures(t *testing.T) {
	for _, dt := range DocumentTypes() {
		for _, board := range Boards() {
			t.Run(string(dt)+"/"+string(board), func(t *testing.T) {
				specs, err := MandatoryFieldsFor(dt, board)
				require.NoError(t, err)
				require.NotEmpty(t, specs)

				req := testutil.Request(dt, board)
				for i, s := range specs {
					assert.Equal(t, i+1, s.Index)
					assert.NotEmpty(t, s.Label)
					assert.NotEmpty(t, s.Extract(req.Record), "field %d (%s)", s.Index, s.Label)
				}
				assert.NoError(t, Validate(req))
			})
		}
	}
}

func TestMandatoryFieldsForReturnsCopy(t *testing.T) {
	specs, err := MandatoryFieldsFor(BonafideCertificate, CBSE)
	require.NoError(t, err)
	specs[0].Label = "changed"

	again, _ := MandatoryFieldsFor(BonafideCertificate, CBSE)
	assert.Equal(t, "Admission No.", again[0].Label)

	_, err = MandatoryFieldsFor(BonafideCertificate, "IB")
	assert.True(t, errors.Is(err, ErrUnknownBoard))
	_, err = MandatoryFieldsFor("unknown", CBSE)
	assert.True(t, errors.Is(err, ErrUnknownDocumentType))
}

func TestValidateMissingFatherName(t *testing.T) {
	rec := testutil.TCRecord()
	rec.FatherName = ""
	req := NewRequest(TransferCertificate, CBSE, testutil.School(), rec, testutil.IssueDate)

	err := Validate(req)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Equal(t, []MissingFieldError{{Index: 3, Label: "Father's Name"}}, vErr.Violations)
	assert.Contains(t, vErr.Error(), "3. Father's Name")
}

func TestValidateReportsAllViolations(t *testing.T) {
	rec := testutil.TCRecord()
	rec.FatherName = "  "
	rec.Nationality = ""
	rec.DateOfBirth = datefmt.Date{}
	rec.PriorTCIssued = true
	school := testutil.School()
	school.Name = ""
	req := NewRequest(TransferCertificate, CBSE, school, rec, testutil.IssueDate)

	err := Validate(req)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []MissingFieldError{
		{Index: 0, Label: "School Name"},
		{Index: 3, Label: "Father's Name"},
		{Index: 5, Label: "Nationality"},
		{Index: 7, Label: "Date of Birth (in figures)"},
		{Index: 8, Label: "Date of Birth (in words)"},
		{Index: 15, Label: "Details of Earlier Transfer Certificate"},
	}, vErr.Violations)
}

func TestValidateStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr func(error) bool
	}{
		{
			name: "unknown type",
			req:  Request{DocumentType: "visa", Board: CBSE, Record: testutil.TCRecord()},
			wantErr: func(err error) bool {
				return errors.Is(err, ErrUnknownDocumentType)
			},
		},
		{
			name: "unknown board",
			req:  Request{DocumentType: TransferCertificate, Board: "IB", Record: testutil.TCRecord()},
			wantErr: func(err error) bool {
				return errors.Is(err, ErrUnknownBoard)
			},
		},
		{
			name: "mismatched record",
			req:  testutil.Request(TransferCertificate, CBSE),
			wantErr: func(err error) bool {
				var mErr *RecordMismatchError
				return errors.As(err, &mErr) && mErr.Record == "bonafide record"
			},
		},
		{
			name: "missing record",
			req:  Request{DocumentType: ReportCard, Board: ICSE},
			wantErr: func(err error) bool {
				var mErr *RecordMismatchError
				return errors.As(err, &mErr) && strings.Contains(mErr.Error(), "missing")
			},
		},
	}
	tests[2].req.Record = testutil.BonafideRecord()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error %v", err)
		})
	}
}

func TestValidateMissingIssueDate(t *testing.T) {
	req := testutil.Request(BonafideCertificate, STATE)
	req.IssueDate = datefmt.Date{}

	var vErr *ValidationError
	require.True(t, errors.As(Validate(req), &vErr))
	assert.Equal(t, []MissingFieldError{{Label: "Date of Issue"}}, vErr.Violations)
}

func TestTCFieldValues(t *testing.T) {
	values, err := Fields(testutil.Request(TransferCertificate, CBSE))
	require.NoError(t, err)
	byLabel := make(map[string]string, len(values))
	for _, v := range values {
		byLabel[v.Label] = v.Value
	}
	assert.Equal(t, "05/01/2009", byLabel["Date of Birth (in figures)"])
	assert.Equal(t, "5th January, 2009", byLabel["Date of Birth (in words)"])
	assert.Equal(t, "06/04/2015, Class I", byLabel["Date of First Admission in the School with Class"])
	assert.Equal(t, "Yes, to Class X", byLabel["Whether Qualified for Promotion to the Higher Class"])
	assert.Equal(t, "March 2024", byLabel["Month and Year of Leaving"])
	assert.Equal(t, "No", byLabel["Whether a Transfer Certificate was Issued Earlier"])
	assert.Equal(t, "N/A", byLabel["Details of Earlier Transfer Certificate"])
	assert.Equal(t, "No", byLabel["Whether Failed, if so Once/Twice in the Same Class"])
	assert.Equal(t, "28/03/2024", byLabel["Date of Issue of Certificate"])
}

func TestStaffFieldValues(t *testing.T) {
	values, err := Fields(testutil.Request(ExperienceCertificate, CBSE))
	require.NoError(t, err)
	assert.Equal(t, "Period of Service", values[6].Label)
	assert.Equal(t, "7 years 9 months", values[6].Value)

	values, err = Fields(testutil.Request(SalaryCertificate, ICSE))
	require.NoError(t, err)
	assert.Equal(t, "Rs. 45,000", values[5].Value)
}

func TestServicePeriod(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{"2020-01-15", "2021-01-15", "1 year"},
		{"2020-01-15", "2020-02-20", "1 month"},
		{"2020-01-15", "2020-01-20", "0 months"},
		{"2018-05-01", "2021-08-01", "3 years 3 months"},
		{"2021-05-01", "2020-08-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, ServicePeriod(datefmt.MustParse(tt.from), datefmt.MustParse(tt.to)))
		})
	}
}

func TestRequestJSON(t *testing.T) {
	body := `{
		"document_type": "transfer_certificate",
		"board": "ICSE",
		"school": {"name": "Vidya Niketan", "address": "Bengaluru"},
		"issue_date": "2024-03-28",
		"record": {"admission_no": "1042", "student_name": "Aarav Sharma", "date_of_birth": "05/01/2009"}
	}`
	var req Request
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	rec, ok := req.Record.(TCStudentRecord)
	require.True(t, ok, "record is %T", req.Record)
	assert.Equal(t, "Aarav Sharma", rec.StudentName)
	assert.Equal(t, "2009-01-05", rec.DateOfBirth.ISO())
	assert.Equal(t, "2024-03-28", rec.IssueDate.ISO())
	assert.Equal(t, ICSE, req.Board)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	var again Request
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, req, again)
}

func TestRequestJSONErrors(t *testing.T) {
	var req Request
	err := json.Unmarshal([]byte(`{"document_type": "visa", "record": {}}`), &req)
	assert.True(t, errors.Is(err, ErrUnknownDocumentType))

	err = json.Unmarshal([]byte(`{"document_type": "bonafide_certificate", "record": {"date_of_birth": "31/02/2010"}}`), &req)
	var dErr *datefmt.InvalidDateError
	assert.True(t, errors.As(err, &dErr), "got %v", err)
}

func TestRequestReference(t *testing.T) {
	assert.Equal(t, "TC/2024/0117", testutil.Request(TransferCertificate, CBSE).Reference())
	assert.Equal(t, "BC/2024/1188", testutil.Request(BonafideCertificate, CBSE).Reference())
	assert.Equal(t, "EID/2024/EMP-031", testutil.Request(StaffIDCard, CBSE).Reference())
}

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		in   string
		want DocumentType
		ok   bool
	}{
		{"transfer_certificate", TransferCertificate, true},
		{"TransferCertificate", TransferCertificate, true},
		{"StudentIdCard", StudentIDCard, true},
		{"staff-id-card", StaffIDCard, true},
		{"TC", TransferCertificate, true},
		{"salary", SalaryCertificate, true},
		{"visa", "visa", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDocumentType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRequests(t *testing.T) {
	yamlDoc := `
- document_type: student_id_card
  board: CBSE
  issue_date: 2024-03-28
  school:
    name: Vidya Niketan
    address: Bengaluru
  record:
    admission_no: "2001"
    student_name: Riya
    valid_upto: 2025-03-31
- document_type: bonafide_certificate
  board: STATE
  record:
    student_name: Diya Nair
    gender: female
`
	reqs, err := DecodeRequests(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	card, ok := reqs[0].Record.(StudentIDRecord)
	require.True(t, ok)
	assert.Equal(t, "2001", card.AdmissionNo)
	assert.Equal(t, "31/03/2025", card.ValidUpto.Format())
	assert.Equal(t, "2024-03-28", reqs[0].IssueDate.ISO())

	bona, ok := reqs[1].Record.(BonafideRecord)
	require.True(t, ok)
	assert.Equal(t, "She", bona.Gender.Pronoun())

	jsonDoc := `{"document_type": "report_card", "board": "CBSE", "record": {"roll_no": "17"}}`
	reqs, err = DecodeRequests(strings.NewReader(jsonDoc))
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "17", reqs[0].Record.(ReportCardRecord).RollNo)

	_, err = DecodeRequests(strings.NewReader("  "))
	assert.Error(t, err)
}

func TestLoadSchoolInfo(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "school.yaml")
	profile := "school:\n  name: Vidya Niketan Public School\n  address: 14 Lake View Road\n  affiliation_no: \"830412\"\n  principal_name: Dr. Meera Raghavan\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o600))

	info, err := LoadSchoolInfo(path)
	require.NoError(t, err)
	assert.Equal(t, "Vidya Niketan Public School", info.Name)
	assert.Equal(t, "830412", info.AffiliationNo)
	assert.Equal(t, "Dr. Meera Raghavan", info.PrincipalName)

	_, err = LoadSchoolInfo(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestRequestTagValidation(t *testing.T) {
	validate := newValidator()

	assert.NoError(t, testutil.Request(ReportCard, CBSE).Validate(validate))

	req := testutil.Request(ReportCard, CBSE)
	req.Board = "IB"
	req.DocumentType = "visa"
	err := req.Validate(validate)
	var vErrs validator.ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	fields := make([]string, len(vErrs))
	for i, fe := range vErrs {
		fields[i] = fe.Field()
	}
	assert.ElementsMatch(t, []string{"document_type", "board"}, fields)

	school := testutil.School()
	assert.NoError(t, CheckSchool(validate, school))
	school.Email = "not-an-email"
	school.Name = "   "
	err = CheckSchool(validate, school)
	require.True(t, errors.As(err, &vErrs))
	assert.Len(t, vErrs, 2)
}

func TestTCIssueDateFollowsRequest(t *testing.T) {
	req := testutil.Request(TransferCertificate, CBSE)
	req.IssueDate = datefmt.New(2024, 4, 2)

	values, err := Fields(req)
	require.NoError(t, err)
	last := values[len(values)-1]
	assert.Equal(t, FieldValue{Index: 23, Label: "Date of Issue of Certificate", Value: "02/04/2024"}, last)

	rec := req.Synced().Record.(TCStudentRecord)
	assert.True(t, rec.IssueDate.Equal(req.IssueDate))
}

func TestValidateTCWithoutIssueDate(t *testing.T) {
	req := NewRequest(TransferCertificate, CBSE, testutil.School(), testutil.TCRecord(), datefmt.Date{})

	var vErr *ValidationError
	require.True(t, errors.As(Validate(req), &vErr))
	assert.Equal(t, []MissingFieldError{{Index: 23, Label: "Date of Issue of Certificate"}}, vErr.Violations)
}

func TestValidateNegativeTimesFailed(t *testing.T) {
	rec := testutil.TCRecord()
	rec.TimesFailed = -1
	req := NewRequest(TransferCertificate, CBSE, testutil.School(), rec, testutil.IssueDate)

	var vErr *ValidationError
	require.True(t, errors.As(Validate(req), &vErr))
	assert.Equal(t, []MissingFieldError{{Index: 17, Label: "Whether Failed, if so Once/Twice in the Same Class"}}, vErr.Violations)
}
