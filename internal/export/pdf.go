package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"impactindex/internal/model"
)

// Questionnaire items at or above this score are called out in the
// summary document.
const highScoreThreshold = 3

// Letter-page layout in points.
const (
	marginLeft   = 50
	marginTop    = 50
	marginBottom = 70
	indentBody   = 60
	indentBullet = 70
	leading      = 12
)

// doc bundles the fpdf handle with the cp1252 translator; the summary
// title carries an en dash, which the core fonts only reach through the
// translator.
type doc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDoc() *doc {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()
	return &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// SummaryPDF renders the fixed-structure summary document for one
// assessment: project metadata, both questionnaire sections with their
// high-scoring items, and the full group impact list.
func SummaryPDF(result *model.AssessmentResult) ([]byte, error) {
	d := newDoc()
	d.title("Change Impact Assessment – Summary")
	d.projectInfo(result.ProjectInfo)

	d.questionnaireSection(
		"Change Characteristics (CC)",
		fmt.Sprintf("Total CC score: %d / %d (%.1f%%)", result.CC.Total, result.CC.MaxScore, result.CC.Percent),
		"Areas of higher change impact (CC items scored 3 or above):",
		"No CC items scored 3 or above.",
		result.CCDetails,
	)

	d.questionnaireSection(
		"Organizational Attributes (OA)",
		fmt.Sprintf("Total OA score: %d / %d (%.1f%%)", result.OA.Total, result.OA.MaxScore, result.OA.Percent),
		"Areas of higher organizational risk (OA items scored 3 or above):",
		"No OA items scored 3 or above.",
		result.OADetails,
	)

	d.section("Group Impact Summary")
	if len(result.Groups) > 0 {
		d.body("Impacted groups and their degree of impact:", indentBody)
		for _, row := range result.Groups {
			d.body(fmt.Sprintf("- %s (Employees: %d, Aspects impacted: %d, Degree of impact: %.1f)",
				row.GroupName, row.Employees, row.AspectsImpacted, row.Degree), indentBullet)
		}
	} else {
		d.body("No group impact data entered.", indentBody)
	}

	return d.output()
}

// PlanPDF renders the advisory change plan document. Plan lines are
// classified one at a time; a line that fails rich rendering falls back
// to plain text, so one malformed line cannot lose the document.
func PlanPDF(info model.ProjectInfo, planText string) ([]byte, error) {
	d := newDoc()
	d.title("AI-Generated Change Plan")
	d.projectInfo(info)

	d.section("Recommended Change Plan")
	if strings.TrimSpace(planText) == "" {
		d.body("No plan text generated.", indentBody)
		return d.output()
	}

	for _, line := range strings.Split(planText, "\n") {
		kind, content := ClassifyLine(line)
		switch kind {
		case LineBlank:
			d.pdf.Ln(6)
		case LineHeading:
			d.planHeading(content)
		case LineBody:
			html, err := ToBasicHTML(content)
			if err != nil {
				d.body(content, indentBody)
				continue
			}
			d.richBody(html, indentBody)
		}
	}

	return d.output()
}

func (d *doc) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 18, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(12)
}

func (d *doc) section(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetX(marginLeft)
	d.pdf.CellFormat(0, 14, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *doc) subheading(text string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetX(indentBody)
	d.pdf.CellFormat(0, 13, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *doc) planHeading(text string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetX(indentBody)
	d.pdf.CellFormat(0, 14, d.tr(text), "", 1, "L", false, 0, "")
}

// body writes wrapped plain text indented to x; wrapped lines keep the
// indent.
func (d *doc) body(text string, x float64) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetLeftMargin(x)
	d.pdf.SetX(x)
	d.pdf.MultiCell(0, leading, d.tr(text), "", "L", false)
	d.pdf.SetLeftMargin(marginLeft)
}

// richBody writes one basic-HTML line produced by ToBasicHTML, toggling
// the bold style across <b> spans and decoding the escaped entities.
func (d *doc) richBody(html string, x float64) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetLeftMargin(x)
	d.pdf.SetX(x)

	bold := false
	rest := html
	for {
		tag := "<b>"
		if bold {
			tag = "</b>"
		}
		span, after, found := strings.Cut(rest, tag)
		if span != "" {
			style := ""
			if bold {
				style = "B"
			}
			d.pdf.SetFontStyle(style)
			d.pdf.Write(leading, d.tr(unescapeMarkup(span)))
		}
		if !found {
			break
		}
		bold = !bold
		rest = after
	}

	d.pdf.Ln(leading)
	d.pdf.SetFontStyle("")
	d.pdf.SetLeftMargin(marginLeft)
}

// projectInfo renders the metadata block shared by both documents; only
// non-empty fields appear.
func (d *doc) projectInfo(info model.ProjectInfo) {
	d.section("Project information")
	if info.ProjectName != "" {
		d.body("Project: "+info.ProjectName, indentBody)
	}
	if info.OrganizationName != "" {
		d.body("Organization / Dept: "+info.OrganizationName, indentBody)
	}
	if info.SponsorName != "" {
		d.body("Sponsor: "+info.SponsorName, indentBody)
	}
	if info.AssessmentOwner != "" {
		d.body("Assessment completed by: "+info.AssessmentOwner, indentBody)
	}
	if info.Description != "" {
		d.pdf.Ln(6)
		d.pdf.SetFont("Helvetica", "B", 11)
		d.pdf.SetX(marginLeft)
		d.pdf.CellFormat(0, 13, d.tr("Change description"), "", 1, "L", false, 0, "")
		d.body(info.Description, indentBody)
	}
	d.pdf.Ln(10)
}

// questionnaireSection renders one questionnaire block: the total line,
// then either the high-scoring items as bullets or the fixed no-items
// line.
func (d *doc) questionnaireSection(header, totalLine, highHeader, noneLine string, details []model.QuestionScore) {
	d.section(header)
	d.body(totalLine, indentBody)

	anyHigh := false
	for i, q := range details {
		if q.Score < highScoreThreshold {
			continue
		}
		if !anyHigh {
			d.subheading(highHeader)
			anyHigh = true
		}
		d.body(fmt.Sprintf("- [%d] %d) %s", q.Score, i+1, q.Question), indentBullet)
	}
	if !anyHigh {
		d.body(noneLine, indentBody)
	}
	d.pdf.Ln(6)
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}
