package layout

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

const (
	framePadding = 5.0
	sealRadius   = 11.0
)

// OverflowError is returned when a single-page document does not fit.
type OverflowError struct {
	DocumentType document.DocumentType
	// Extent is the lowest y reached, Limit the lowest y allowed.
	Extent float64
	Limit  float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s does not fit on one page: content reaches %.2fmm, limit is %.2fmm",
		e.DocumentType, e.Extent, e.Limit)
}

// Layout validates req and computes its page. It never returns a partial page.
func Layout(req document.Request) (Page, error) {
	req = req.Synced()
	if err := document.Validate(req); err != nil {
		return Page{}, err
	}
	cfg, err := document.ConfigFor(req.DocumentType)
	if err != nil {
		return Page{}, err
	}
	if cfg.Card {
		return layoutCard(req, cfg)
	}
	return layoutCertificate(req, cfg)
}

func newPage(req document.Request, cfg document.Config) Page {
	return Page{
		DocumentType: req.DocumentType,
		Reference:    req.Reference(),
		Orientation:  cfg.Orientation,
		WidthMm:      cfg.PageSize.Width,
		HeightMm:     cfg.PageSize.Height,
	}
}

type bodyFunc func(cur Cursor, req document.Request) (Cursor, []Command, error)

var bodies = map[document.DocumentType]bodyFunc{
	document.TransferCertificate:   transferCertificateBody,
	document.BonafideCertificate:   bonafideBody,
	document.SalaryCertificate:     salaryBody,
	document.ExperienceCertificate: experienceBody,
	document.ReportCard:            reportCardBody,
}

func layoutCertificate(req document.Request, cfg document.Config) (Page, error) {
	body, ok := bodies[req.DocumentType]
	if !ok {
		return Page{}, errors.Errorf("no page layout for %s", req.DocumentType)
	}

	page := newPage(req, cfg)
	printable := page.Box().Inset(cfg.Margins)
	content := printable.InsetAll(framePadding)
	headerBox, rest := content.SplitTop(cfg.HeaderHeight)
	bodyBox, footerBox := rest.SplitBottom(cfg.FooterHeight)

	page = page.add(frame(printable)...)

	headCur, cmds := header(NewCursor(headerBox), req)
	if headCur.Overrun() {
		return Page{}, &OverflowError{DocumentType: req.DocumentType, Extent: headCur.Y, Limit: headerBox.Bottom()}
	}
	page = page.add(cmds...)

	cur, cmds := title(NewCursor(bodyBox), req, cfg)
	page = page.add(cmds...)

	cur, cmds, err := body(cur, req)
	if err != nil {
		return Page{}, err
	}
	if cur.Overrun() {
		// the body ran into the signature block
		return Page{}, &OverflowError{DocumentType: req.DocumentType, Extent: cur.Y, Limit: bodyBox.Bottom()}
	}
	page = page.add(cmds...)
	page = page.add(footer(footerBox, req)...)

	if err := checkExtent(page, cfg.PageSize.Height-cfg.Margins.Bottom); err != nil {
		return Page{}, err
	}
	return page, nil
}

// checkExtent rejects pages whose commands reach below limit.
func checkExtent(page Page, limit float64) error {
	lowest := page.Extent().Bottom()
	if lowest > limit+epsilon {
		return &OverflowError{DocumentType: page.DocumentType, Extent: lowest, Limit: limit}
	}
	return nil
}

func frame(printable Box) []Command {
	inner := printable.InsetAll(1.5)
	return []Command{
		Rect{X: printable.X, Y: printable.Y, Width: printable.Width, Height: printable.Height, Style: "D", LineWidth: 0.8},
		Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: inner.Height, Style: "D", LineWidth: 0.3},
	}
}

// header sets the school letterhead: logo, name, address, contact and the
// board specific affiliation line.
func header(cur Cursor, req document.Request) (Cursor, []Command) {
	school := req.School
	region := cur.Region
	var cmds []Command

	logo := 24.0
	if school.LogoRef != "" {
		cmds = append(cmds, Image{X: region.X, Y: region.Y + 2, Width: logo, Height: logo, Ref: school.LogoRef, Role: "logo"})
	}
	// text is centred between two logo-wide gutters
	textX, textW := region.X+logo+2, region.Width-2*(logo+2)

	cur = cur.Skip(2)
	var lines []Command
	cur, lines = cur.TextIn(textX, textW, strings.ToUpper(school.Name), bold(16), AlignCenter)
	cmds = append(cmds, lines...)

	address := joinNonEmpty(", ", school.Address, school.City)
	cur, lines = cur.TextIn(textX, textW, address, regular(9), AlignCenter)
	cmds = append(cmds, lines...)

	contact := joinNonEmpty(" | ", prefixed("Phone: ", school.Phone), prefixed("Email: ", school.Email))
	if contact != "" {
		cur, lines = cur.TextIn(textX, textW, contact, regular(8), AlignCenter)
		cmds = append(cmds, lines...)
	}
	if aff := affiliation(req.Board, school); aff != "" {
		cur, lines = cur.TextIn(textX, textW, aff, bold(8), AlignCenter)
		cmds = append(cmds, lines...)
	}

	y := region.Bottom() - 1
	cmds = append(cmds, Line{X1: region.X, Y1: y, X2: region.Right(), Y2: y, LineWidth: 0.6})
	return cur, cmds
}

func affiliation(board document.Board, school document.SchoolInfo) string {
	switch board {
	case document.CBSE:
		return joinNonEmpty(" | ", "Affiliated to CBSE, New Delhi",
			prefixed("Affiliation No. ", school.AffiliationNo), prefixed("School Code ", school.SchoolCode))
	case document.ICSE:
		return joinNonEmpty(" | ", "Affiliated to CISCE, New Delhi",
			prefixed("School Code ", school.SchoolCode))
	default:
		return joinNonEmpty(" | ", "Recognised by the State Board of School Education",
			prefixed("Recognition No. ", school.AffiliationNo), prefixed("UDISE Code ", school.SchoolCode))
	}
}

func title(cur Cursor, req document.Request, cfg document.Config) (Cursor, []Command) {
	var cmds []Command
	cur = cur.Skip(3)

	f := bold(14)
	cur, lines := cur.Text(cfg.Title, f, AlignCenter)
	cmds = append(cmds, lines...)

	w := TextWidth(cfg.Title, f)
	mid := cur.Region.X + cur.Region.Width/2
	cmds = append(cmds, Line{X1: mid - w/2, Y1: cur.Y, X2: mid + w/2, Y2: cur.Y, LineWidth: 0.4})

	cur = cur.Skip(2)
	cur, lines = cur.Columns("Ref. No.: "+req.Reference(), "Date: "+req.IssueDate.Format(), regular(9))
	cmds = append(cmds, lines...)
	return cur.Skip(4), cmds
}

var countersigners = map[document.DocumentType]string{
	document.TransferCertificate:   "Class Teacher",
	document.BonafideCertificate:   "Office Superintendent",
	document.SalaryCertificate:     "Accounts Officer",
	document.ExperienceCertificate: "Administrative Officer",
	document.ReportCard:            "Class Teacher",
}

// footer is the fixed signature and seal block at the bottom of the printable area.
func footer(box Box, req document.Request) []Command {
	f := regular(9)
	lh := LineHeight(f)
	var cmds []Command

	place := req.School.City
	if place == "" {
		place = req.School.Address
	}
	cmds = append(cmds,
		Text{X: box.X, Y: box.Y + 1, Content: "Place: " + place, Font: f},
		Text{X: box.X, Y: box.Y + 1 + lh, Content: "Date: " + req.IssueDate.Format(), Font: f},
	)

	cx, cy := box.X+box.Width/2, box.Y+3+sealRadius
	cmds = append(cmds, Circle{X: cx, Y: cy, R: sealRadius, Style: "D", Dashed: true})
	if req.School.SealRef != "" {
		s := sealRadius * 1.6
		cmds = append(cmds, Image{X: cx - s/2, Y: cy - s/2, Width: s, Height: s, Ref: req.School.SealRef, Role: "seal"})
	}

	sigW := 50.0
	lineY := box.Bottom() - 10
	left := Box{X: box.X, Y: lineY, Width: sigW}
	right := Box{X: box.Right() - sigW, Y: lineY, Width: sigW}
	cmds = append(cmds,
		Line{X1: left.X, Y1: lineY, X2: left.Right(), Y2: lineY, LineWidth: 0.3},
		Text{X: left.X, Y: lineY + 1, Width: sigW, Content: countersigners[req.DocumentType], Font: f, Align: AlignCenter},
		Line{X1: right.X, Y1: lineY, X2: right.Right(), Y2: lineY, LineWidth: 0.3},
		Text{X: right.X, Y: lineY + 1, Width: sigW, Content: "Principal", Font: bold(9), Align: AlignCenter},
	)
	if name := req.School.PrincipalName; name != "" {
		cmds = append(cmds, Text{X: right.X, Y: lineY + 1 + lh, Width: sigW, Content: "(" + name + ")", Font: f, Align: AlignCenter})
	}
	return cmds
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func prefixed(prefix, v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return prefix + v
}

// titleCase capitalises each word, e.g. "aarav sharma" -> "Aarav Sharma".
func titleCase(s string) string {
	// a Caser is stateful, so one is built per call
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
