package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"impactindex/internal/model"
)

// TestWorkbook round-trips the generated spreadsheet and checks every
// sheet's layout.
func TestWorkbook(t *testing.T) {
	result := &model.AssessmentResult{
		OA: model.ScoreSummary{Total: 36, MaxScore: 60, Percent: 60.0},
		OADetails: []model.QuestionScore{
			{ID: "OA_1", Question: "Perceived need for change among employees and managers", Score: 3},
			{ID: "OA_2", Question: "Impact of past changes on employees", Score: 5},
		},
		Groups: []model.ImpactRow{
			{Index: 1, GroupName: "Finance", Employees: 40, AspectsImpacted: 2, Degree: 2.3},
			{Index: 2, GroupName: "HR", Employees: 12, AspectsImpacted: 5, Degree: 1.5},
		},
	}

	data, err := Workbook(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetGroupImpact, SheetOASummary, SheetOADetails}, f.GetSheetList())

	rows, err := f.GetRows(SheetGroupImpact)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"#", "Group name", "Employees", "Aspects impacted (out of 10)", "Degree of impact (0-5)"}, rows[0])
	assert.Equal(t, []string{"1", "Finance", "40", "2", "2.3"}, rows[1])
	assert.Equal(t, []string{"2", "HR", "12", "5", "1.5"}, rows[2])

	summary, err := f.GetRows(SheetOASummary)
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"Metric", "Value"}, summary[0])
	assert.Equal(t, []string{"Total OA score", "36"}, summary[1])
	assert.Equal(t, []string{"Max OA score", "60"}, summary[2])
	assert.Equal(t, []string{"Percent of max", "60"}, summary[3])

	details, err := f.GetRows(SheetOADetails)
	require.NoError(t, err)
	require.Len(t, details, 3)
	assert.Equal(t, []string{"Question", "Score"}, details[0])
	assert.Equal(t, []string{"Perceived need for change among employees and managers", "3"}, details[1])
}

// TestWorkbookEmptyGroups verifies the group sheet still carries its
// header when no groups were entered.
func TestWorkbookEmptyGroups(t *testing.T) {
	result := &model.AssessmentResult{
		OA: model.ScoreSummary{Total: 12, MaxScore: 60, Percent: 20.0},
	}

	data, err := Workbook(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetGroupImpact)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "#", rows[0][0])
}
