package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactindex/internal/model"
)

// TestGroupImpactTable verifies the display table carries the fixed
// header and one row per group in order.
func TestGroupImpactTable(t *testing.T) {
	rows := []model.ImpactRow{
		{Index: 1, GroupName: "Finance", Employees: 40, AspectsImpacted: 2, Degree: 1.0},
		{Index: 2, GroupName: "HR", Employees: 12, AspectsImpacted: 5, Degree: 2.3},
	}

	table := GroupImpactTable(rows)
	require.Equal(t, []string{"#", "Group name", "Employees", "Aspects impacted (out of 10)", "Degree of impact (0-5)"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{1, "Finance", 40, 2, 1.0}, table.Rows[0])
	assert.Equal(t, []any{2, "HR", 12, 5, 2.3}, table.Rows[1])
}

// TestGroupImpactTableEmpty verifies empty input yields an empty table
// that still has the full header.
func TestGroupImpactTableEmpty(t *testing.T) {
	table := GroupImpactTable(nil)
	assert.Len(t, table.Header, 5)
	require.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
}

// TestTopGroups verifies descending order by degree, truncation to the
// limit and stability for equal degrees.
func TestTopGroups(t *testing.T) {
	rows := []model.ImpactRow{
		{Index: 1, GroupName: "A", Degree: 0.5},
		{Index: 2, GroupName: "B", Degree: 4.2},
		{Index: 3, GroupName: "C", Degree: 1.1},
		{Index: 4, GroupName: "D", Degree: 3.0},
		{Index: 5, GroupName: "E", Degree: 2.8},
		{Index: 6, GroupName: "F", Degree: 5.0},
	}

	top := TopGroups(rows, TopGroupCount)
	require.Len(t, top, 5)

	names := make([]string, len(top))
	for i, r := range top {
		names[i] = r.GroupName
	}
	assert.Equal(t, []string{"F", "B", "D", "E", "C"}, names)

	// Input must stay untouched.
	assert.Equal(t, "A", rows[0].GroupName)
}

// TestTopGroupsStableTies verifies groups with equal degree keep their
// original relative order.
func TestTopGroupsStableTies(t *testing.T) {
	rows := []model.ImpactRow{
		{Index: 1, GroupName: "First", Degree: 2.0},
		{Index: 2, GroupName: "Second", Degree: 2.0},
		{Index: 3, GroupName: "Third", Degree: 2.0},
	}

	top := TopGroups(rows, TopGroupCount)
	require.Len(t, top, 3)
	assert.Equal(t, "First", top[0].GroupName)
	assert.Equal(t, "Second", top[1].GroupName)
	assert.Equal(t, "Third", top[2].GroupName)
}

// TestSummaryTable verifies the Metric/Value layout for a questionnaire
// aggregate.
func TestSummaryTable(t *testing.T) {
	table := SummaryTable("OA", model.ScoreSummary{Total: 36, MaxScore: 60, Percent: 60.0})

	require.Equal(t, []string{"Metric", "Value"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []any{"Total OA score", 36}, table.Rows[0])
	assert.Equal(t, []any{"Max OA score", 60}, table.Rows[1])
	assert.Equal(t, []any{"Percent of max", 60.0}, table.Rows[2])
}

// TestDetailTable verifies question order is preserved.
func TestDetailTable(t *testing.T) {
	table := DetailTable([]model.QuestionScore{
		{ID: "OA_1", Question: "First question", Score: 3},
		{ID: "OA_2", Question: "Second question", Score: 5},
	})

	require.Equal(t, []string{"Question", "Score"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{"First question", 3}, table.Rows[0])
	assert.Equal(t, []any{"Second question", 5}, table.Rows[1])
}
