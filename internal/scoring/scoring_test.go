package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactindex/internal/catalog"
	"impactindex/internal/model"
)

// TestAggregate covers the questionnaire totals, including the fixed
// all-threes scenario and the empty questionnaire edge.
func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		answers       map[string]int
		questionCount int
		wantTotal     int
		wantMax       int
		wantPercent   float64
	}{
		{
			name:          "all_threes_over_twelve_questions",
			answers:       answerSet("CC", 12, 3),
			questionCount: 12,
			wantTotal:     36,
			wantMax:       60,
			wantPercent:   60.0,
		},
		{
			name:          "all_fives",
			answers:       answerSet("OA", 12, 5),
			questionCount: 12,
			wantTotal:     60,
			wantMax:       60,
			wantPercent:   100.0,
		},
		{
			name:          "all_ones",
			answers:       answerSet("CC", 12, 1),
			questionCount: 12,
			wantTotal:     12,
			wantMax:       60,
			wantPercent:   20.0,
		},
		{
			name:          "zero_questions",
			answers:       map[string]int{},
			questionCount: 0,
			wantTotal:     0,
			wantMax:       0,
			wantPercent:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.answers, tt.questionCount)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, tt.wantMax, got.MaxScore)
			assert.InDelta(t, tt.wantPercent, got.Percent, 1e-9)
		})
	}
}

// TestAggregateBounds verifies max = 5n and percent stays within [0, 100]
// for in-range answer sets of varying size.
func TestAggregateBounds(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for score := 1; score <= 5; score++ {
			got := Aggregate(answerSet("Q", n, score), n)
			assert.Equal(t, 5*n, got.MaxScore)
			assert.GreaterOrEqual(t, got.Percent, 0.0)
			assert.LessOrEqual(t, got.Percent, 100.0)
		}
	}
}

// TestGroupImpacts covers the degree formula against the fixed aspect
// list, including the Finance scenario, the all-zero group and the
// fully-impacted group.
func TestGroupImpacts(t *testing.T) {
	aspects := catalog.MustLoad().Aspects

	tests := []struct {
		name         string
		group        model.GroupInput
		wantImpacted int
		wantDegree   float64
	}{
		{
			name: "finance_two_aspects_at_five",
			group: model.GroupInput{
				Name:      "Finance",
				Employees: 40,
				Aspects:   map[string]int{"Processes": 5, "Systems": 5},
			},
			wantImpacted: 2,
			wantDegree:   1.0,
		},
		{
			name:         "all_zero_aspects",
			group:        model.GroupInput{Name: "HR", Aspects: map[string]int{}},
			wantImpacted: 0,
			wantDegree:   0,
		},
		{
			name:         "nil_aspect_map",
			group:        model.GroupInput{Name: "Legal"},
			wantImpacted: 0,
			wantDegree:   0,
		},
		{
			name: "all_aspects_at_five",
			group: model.GroupInput{
				Name:    "IT",
				Aspects: fullAspects(aspects, 5),
			},
			wantImpacted: 10,
			wantDegree:   5.0,
		},
		{
			name: "unknown_aspect_ignored",
			group: model.GroupInput{
				Name:    "Ops",
				Aspects: map[string]int{"Processes": 2, "Morale": 5},
			},
			wantImpacted: 1,
			wantDegree:   0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := GroupImpacts([]model.GroupInput{tt.group}, aspects)
			require.Len(t, rows, 1)
			assert.Equal(t, 1, rows[0].Index)
			assert.Equal(t, tt.group.Name, rows[0].GroupName)
			assert.Equal(t, tt.wantImpacted, rows[0].AspectsImpacted)
			assert.InDelta(t, tt.wantDegree, rows[0].Degree, 1e-9)
		})
	}
}

// TestGroupImpactsEmpty verifies empty input yields an empty, non-nil
// sequence rather than an error state.
func TestGroupImpactsEmpty(t *testing.T) {
	rows := GroupImpacts(nil, catalog.MustLoad().Aspects)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

// TestGroupImpactsOrder verifies rows come back in input order with
// 1-based indexes.
func TestGroupImpactsOrder(t *testing.T) {
	groups := []model.GroupInput{
		{Name: "Finance", Aspects: map[string]int{"Processes": 1}},
		{Name: "HR", Aspects: map[string]int{"Systems": 3}},
		{Name: "IT", Aspects: map[string]int{"Tools": 5}},
	}

	rows := GroupImpacts(groups, catalog.MustLoad().Aspects)
	require.Len(t, rows, 3)
	for i, name := range []string{"Finance", "HR", "IT"} {
		assert.Equal(t, i+1, rows[i].Index)
		assert.Equal(t, name, rows[i].GroupName)
	}
}

// TestDetails verifies the per-question detail keeps catalog order and
// resolves scores by question ID.
func TestDetails(t *testing.T) {
	c := catalog.MustLoad()
	answers := answerSet("OA", 12, 4)
	answers["OA_3"] = 1

	details := Details(c.OA, answers)
	require.Len(t, details, 12)
	assert.Equal(t, "OA_1", details[0].ID)
	assert.Equal(t, c.OA[0].Text, details[0].Question)
	assert.Equal(t, 4, details[0].Score)
	assert.Equal(t, 1, details[2].Score)
}

func answerSet(prefix string, n, score int) map[string]int {
	answers := make(map[string]int, n)
	for i := 1; i <= n; i++ {
		answers[fmt.Sprintf("%s_%d", prefix, i)] = score
	}
	return answers
}

func fullAspects(aspects []string, score int) map[string]int {
	m := make(map[string]int, len(aspects))
	for _, a := range aspects {
		m[a] = score
	}
	return m
}
