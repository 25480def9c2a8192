// Package report assembles the tabular views derived from an assessment:
// the group impact table, its top-groups view and the questionnaire
// summary and detail tables used by the exporters.
package report

import (
	"fmt"
	"sort"

	"impactindex/internal/model"
)

// TopGroupCount is the number of rows kept in the top-groups view.
const TopGroupCount = 5

// Table is an ordered header-plus-rows structure shared by the API
// response and the spreadsheet export.
type Table struct {
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

// GroupImpactTable renders impact rows into the display table. Empty
// input yields an empty table with the full header.
func GroupImpactTable(rows []model.ImpactRow) Table {
	t := Table{
		Header: []string{"#", "Group name", "Employees", "Aspects impacted (out of 10)", "Degree of impact (0-5)"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Index, r.GroupName, r.Employees, r.AspectsImpacted, r.Degree})
	}
	return t
}

// TopGroups returns up to limit rows sorted descending by degree of
// impact. The sort is stable, so groups with equal degree keep their
// input order.
func TopGroups(rows []model.ImpactRow, limit int) []model.ImpactRow {
	top := make([]model.ImpactRow, len(rows))
	copy(top, rows)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Degree > top[j].Degree
	})

	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// SummaryTable renders a questionnaire aggregate as Metric/Value rows,
// e.g. SummaryTable("OA", s) for the Organizational Attributes totals.
func SummaryTable(prefix string, s model.ScoreSummary) Table {
	return Table{
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{fmt.Sprintf("Total %s score", prefix), s.Total},
			{fmt.Sprintf("Max %s score", prefix), s.MaxScore},
			{"Percent of max", s.Percent},
		},
	}
}

// DetailTable renders per-question scores in catalog order.
func DetailTable(details []model.QuestionScore) Table {
	t := Table{
		Header: []string{"Question", "Score"},
		Rows:   make([][]any, 0, len(details)),
	}
	for _, d := range details {
		t.Rows = append(t.Rows, []any{d.Question, d.Score})
	}
	return t
}
