package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFileName verifies project names turn into slug prefixes and the
// defaults survive unusable names.
func TestFileName(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		base        string
		want        string
	}{
		{"no_project_name", "", ExcelFileName, "impact_results.xlsx"},
		{"simple_name", "CRM Rollout", SummaryFileName, "crm-rollout_impact_summary.pdf"},
		{"punctuation_collapsed", "Acme / Reorg (2026)", PlanFileName, "acme-reorg-2026_change_plan.pdf"},
		{"surrounding_whitespace", "  Billing   Migration  ", ExcelFileName, "billing-migration_impact_results.xlsx"},
		{"only_punctuation", "!!!", SummaryFileName, "impact_summary.pdf"},
		{"mixed_case_digits", "Q3 2026 ERP", ExcelFileName, "q3-2026-erp_impact_results.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.projectName, tt.base))
		})
	}
}
