// Package scoring holds the pure aggregation functions for questionnaire
// answers and group aspect scores.
package scoring

import (
	"math"

	"impactindex/internal/catalog"
	"impactindex/internal/model"
)

// Aggregate sums an answer set for a questionnaire of questionCount items
// scored up to 5 each. Percent is 0 when the questionnaire is empty.
func Aggregate(answers map[string]int, questionCount int) model.ScoreSummary {
	total := 0
	for _, score := range answers {
		total += score
	}

	maxScore := questionCount * 5
	percent := 0.0
	if maxScore > 0 {
		percent = float64(total) / float64(maxScore) * 100
	}

	return model.ScoreSummary{
		Total:    total,
		MaxScore: maxScore,
		Percent:  percent,
	}
}

// GroupImpacts derives one impact row per group, in input order, numbered
// from 1. Aspects absent from a group's map read as zero; aspect names not
// in the fixed list are ignored. Degree maps the aspect sum onto a 0-5
// scale and is rounded to one decimal.
func GroupImpacts(groups []model.GroupInput, aspects []string) []model.ImpactRow {
	rows := make([]model.ImpactRow, 0, len(groups))
	maxSum := len(aspects) * 5

	for i, g := range groups {
		sum := 0
		impacted := 0
		for _, aspect := range aspects {
			score := g.Aspects[aspect]
			sum += score
			if score > 0 {
				impacted++
			}
		}

		degree := 0.0
		if sum > 0 && maxSum > 0 {
			degree = round1(float64(sum) / float64(maxSum) * 5)
		}

		rows = append(rows, model.ImpactRow{
			Index:           i + 1,
			GroupName:       g.Name,
			Employees:       g.Employees,
			AspectsImpacted: impacted,
			Degree:          degree,
		})
	}

	return rows
}

// Details pairs each catalog question with its submitted score, preserving
// catalog order.
func Details(questions []catalog.Question, answers map[string]int) []model.QuestionScore {
	details := make([]model.QuestionScore, len(questions))
	for i, q := range questions {
		details[i] = model.QuestionScore{
			ID:       q.ID,
			Question: q.Text,
			Score:    answers[q.ID],
		}
	}
	return details
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
