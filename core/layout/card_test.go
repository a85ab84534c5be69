package layout

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/tests"
)

func texts(p Page) []string {
	var out []string
	for _, c := range p.Commands {
		if t, ok := c.(Text); ok {
			out = append(out, t.Content)
		}
	}
	return out
}

func TestCardsStayOnTheCard(t *testing.T) {
	for _, dt := range []document.DocumentType{document.StudentIDCard, document.StaffIDCard} {
		t.Run(string(dt), func(t *testing.T) {
			page, err := Layout(testutil.Request(dt, document.CBSE))
			require.NoError(t, err)

			assert.Equal(t, document.Landscape, page.Orientation)
			assert.Equal(t, 85.6, page.WidthMm)
			assert.Equal(t, 53.98, page.HeightMm)

			card := page.Box()
			for i, c := range page.Commands {
				assert.True(t, card.Contains(c.Bounds()), "command %d (%s) at %+v", i, c.Kind(), c.Bounds())
			}

			outline, ok := page.Commands[0].(Rect)
			require.True(t, ok)
			assert.Equal(t, document.CR80CornerRadius, outline.Radius)
			assert.Equal(t, card, outline.Bounds())
		})
	}
}

func TestStudentCardContent(t *testing.T) {
	page, err := Layout(testutil.Request(document.StudentIDCard, document.ICSE))
	require.NoError(t, err)

	got := texts(page)
	assert.Contains(t, got, "Student Number 1")
	assert.Contains(t, got, "STUDENT IDENTITY CARD")
	assert.Contains(t, got, "Class: V-A")
	assert.Contains(t, got, "Blood Group: B+")
	assert.Contains(t, got, "Valid upto: 31/03/2025")
	assert.Contains(t, got, "2001")
	assert.NotContains(t, got, "Name: student number 1")

	var photo Image
	for _, c := range page.Commands {
		if img, ok := c.(Image); ok && img.Role == "photo" {
			photo = img
		}
	}
	assert.Equal(t, "photos/2001.jpg", photo.Ref)
	assert.Equal(t, photoBox, photo.Bounds())
	assert.Greater(t, page.Count()[kindRect], 10)
}

func TestStaffCardContent(t *testing.T) {
	page, err := Layout(testutil.Request(document.StaffIDCard, document.STATE))
	require.NoError(t, err)

	got := texts(page)
	assert.Contains(t, got, "Kavita Iyer")
	assert.Contains(t, got, "Designation: PGT Mathematics")
	assert.Contains(t, got, "Joined: 01/06/2016")
	assert.Contains(t, got, "EMP-031")
}

func TestCardFieldsOverflow(t *testing.T) {
	rec := testutil.StudentIDRecord(1)
	for i := 0; i < 8; i++ {
		rec.ParentName += " Venkata Subramanya Ramachandra Lakshminarayana,"
	}
	req := document.NewRequest(document.StudentIDCard, document.CBSE, testutil.School(), rec, testutil.IssueDate)

	_, err := Layout(req)
	var oErr *OverflowError
	require.True(t, errors.As(err, &oErr), "got %v", err)
	assert.Equal(t, fieldsBox.Bottom(), oErr.Limit)
}

// addressLine returns the card line holding the address, if any.
func addressLine(p Page) (Text, bool) {
	for _, c := range p.Commands {
		if txt, ok := c.(Text); ok && strings.HasPrefix(txt.Content, "Address: ") {
			return txt, true
		}
	}
	return Text{}, false
}

func TestCardOptionalLines(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{name: "short", address: "22 MG Road, Bengaluru", want: "Address: 22 MG Road, Bengaluru"},
		{
			name:    "shrunk to one line",
			address: "Flat 12, Third Cross, Sampangi Rama Nagar, Bengaluru 560027",
			want:    "Address: Flat 12, Third Cross, Sampangi Rama Nagar, Bengaluru 560027",
		},
		{name: "clipped", address: strings.Repeat("Flat 12, Third Cross, Second Main, Sampangi Rama Nagar, ", 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.StudentIDRecord(1)
			rec.Address = tt.address
			req := document.NewRequest(document.StudentIDCard, document.CBSE, testutil.School(), rec, testutil.IssueDate)

			page, err := Layout(req)
			require.NoError(t, err)

			line, ok := addressLine(page)
			require.True(t, ok, "address line missing")
			assert.True(t, fieldsBox.Contains(line.Bounds()), "%+v", line.Bounds())
			assert.LessOrEqual(t, TextWidth(line.Content, line.Font), fieldsBox.Width+epsilon)
			assert.GreaterOrEqual(t, line.Font.Size, minCardFont)
			if tt.want != "" {
				assert.Equal(t, tt.want, line.Content)
			} else {
				assert.True(t, strings.HasSuffix(line.Content, "..."), line.Content)
			}
		})
	}
}

func TestCardBarcodeError(t *testing.T) {
	rec := testutil.StudentIDRecord(1)
	rec.AdmissionNo = "ADM-२०२४"
	req := document.NewRequest(document.StudentIDCard, document.CBSE, testutil.School(), rec, testutil.IssueDate)
	require.NoError(t, document.Validate(req))

	_, err := Layout(req)
	var bErr *BarcodeError
	require.True(t, errors.As(err, &bErr), "got %v", err)
	assert.Equal(t, "ADM-२०२४", bErr.Content)
}

func TestBarcode(t *testing.T) {
	box := Box{X: 10, Y: 20, Width: 40, Height: 5}
	bars, err := Barcode("EMP-031", box)
	require.NoError(t, err)
	require.NotEmpty(t, bars)

	var prevRight float64
	for _, c := range bars {
		r := c.(Rect)
		assert.True(t, box.Contains(r.Bounds()), "%+v", r)
		assert.Equal(t, "F", r.Style)
		assert.Greater(t, r.X, prevRight-epsilon)
		prevRight = r.Bounds().Right()
	}

	again, err := Barcode("EMP-031", box)
	require.NoError(t, err)
	assert.Equal(t, bars, again)

	var bErr *BarcodeError
	_, err = Barcode("", box)
	assert.True(t, errors.As(err, &bErr), "got %v", err)
	_, err = Barcode("ADM-२०२४", box)
	assert.True(t, errors.As(err, &bErr), "got %v", err)
}

func TestFit(t *testing.T) {
	f := fit("A VERY LONG SCHOOL NAME THAT WILL NOT FIT", 30, bold(7))
	assert.Less(t, f.Size, 7.0)
	assert.GreaterOrEqual(t, f.Size, minCardFont)

	assert.Equal(t, bold(7), fit("SHORT", 30, bold(7)))
}
