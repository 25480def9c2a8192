// Package export renders assessment results into downloadable artifacts:
// the spreadsheet workbook, the summary document and the advisory change
// plan document.
package export

import "strings"

// Default artifact file names, prefixed with a project slug when the
// submission names a project.
const (
	ExcelFileName   = "impact_results.xlsx"
	SummaryFileName = "impact_summary.pdf"
	PlanFileName    = "change_plan.pdf"
)

// FileName prefixes base with a slug of the project name. An empty or
// unsluggable project name leaves base unchanged.
func FileName(projectName, base string) string {
	slug := slugify(projectName)
	if slug == "" {
		return base
	}
	return slug + "_" + base
}

// slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single dash.
func slugify(name string) string {
	var b strings.Builder
	pendingDash := false

	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		} else {
			pendingDash = true
		}
	}

	return b.String()
}
