package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"impactindex/internal/llm"
	"impactindex/internal/model"
)

// planTemperature keeps plan output focused while leaving room for
// wording variation between runs.
const planTemperature = 0.4

const planSystemPrompt = "You are an expert change management consultant using the Prosci methodology. " +
	"You specialize in translating change impact assessments into practical, " +
	"role-based change plans for complex organizations."

const planInstructions = "Using the following change impact assessment data, create a concise, high-level change plan. " +
	"The plan should:\n" +
	"- Summarize the overall change and key drivers.\n" +
	"- Highlight which groups are most impacted and how.\n" +
	"- Recommend tailored change tactics for each group based on their impact level.\n" +
	"- Organize tactics into phases (for example: Awareness, Desire, Knowledge, Ability, Reinforcement).\n" +
	"- Be written so that a project sponsor or change manager could use it to guide planning.\n" +
	"- Mark each major section with a leading \"### \" heading.\n" +
	"- Avoid markdown tables; use short paragraphs and dash bullets.\n"

// planProjectInfo carries the project metadata under the snake_case keys
// the prompt payload uses.
type planProjectInfo struct {
	ProjectName      string `json:"project_name"`
	SponsorName      string `json:"sponsor_name"`
	OrganizationName string `json:"organization_name"`
	AssessmentOwner  string `json:"assessment_owner"`
	Description      string `json:"description"`
}

// planGroupRecord keys group rows by their display labels so the model
// sees the same table the report shows.
type planGroupRecord struct {
	Index           int     `json:"#"`
	GroupName       string  `json:"Group name"`
	Employees       int     `json:"Employees"`
	AspectsImpacted int     `json:"Aspects impacted (out of 10)"`
	Degree          float64 `json:"Degree of impact (0-5)"`
}

type planOASummary struct {
	Total    int     `json:"total_oa_score"`
	MaxScore int     `json:"max_oa_score"`
	Percent  float64 `json:"percent_of_max"`
}

type planOADetail struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Score    int    `json:"score"`
}

type planOAImpacts struct {
	Summary planOASummary  `json:"summary"`
	Details []planOADetail `json:"details"`
}

// planPayload is the structured data block embedded in the user prompt.
// GroupImpacts stays null when no groups were entered.
type planPayload struct {
	ProjectInfo  planProjectInfo   `json:"project_info"`
	GroupImpacts []planGroupRecord `json:"group_impacts"`
	OAImpacts    planOAImpacts     `json:"oa_impacts"`
}

// PlanService generates the advisory change plan for an assessment result
type PlanService struct {
	client llm.Client
}

// NewPlanService creates a new plan service. A nil client means no
// provider is configured; Generate then reports llm.ErrNotConfigured.
func NewPlanService(client llm.Client) *PlanService {
	return &PlanService{client: client}
}

// Generate asks the configured provider for a change plan covering the
// given assessment result.
func (s *PlanService) Generate(ctx context.Context, result *model.AssessmentResult) (*model.PlanResult, error) {
	if s.client == nil {
		return nil, llm.ErrNotConfigured
	}

	data, err := json.MarshalIndent(buildPlanPayload(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan payload: %w", err)
	}

	req := llm.Request{
		System:      planSystemPrompt,
		Prompt:      fmt.Sprintf("%s\nHere is the structured data (JSON):\n%s", planInstructions, data),
		Temperature: planTemperature,
	}

	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate change plan: %w", err)
	}

	log.Printf("[Plan] generated %d chars via %s/%s in %dms",
		len(resp.Text), resp.Provider, resp.Model, resp.LatencyMs)

	return &model.PlanResult{
		Plan:      resp.Text,
		Provider:  resp.Provider,
		Model:     resp.Model,
		LatencyMs: resp.LatencyMs,
	}, nil
}

func buildPlanPayload(result *model.AssessmentResult) planPayload {
	var groups []planGroupRecord
	for _, row := range result.Groups {
		groups = append(groups, planGroupRecord{
			Index:           row.Index,
			GroupName:       row.GroupName,
			Employees:       row.Employees,
			AspectsImpacted: row.AspectsImpacted,
			Degree:          row.Degree,
		})
	}

	details := make([]planOADetail, len(result.OADetails))
	for i, d := range result.OADetails {
		details[i] = planOADetail{
			ID:       i + 1,
			Question: d.Question,
			Score:    d.Score,
		}
	}

	return planPayload{
		ProjectInfo: planProjectInfo{
			ProjectName:      result.ProjectInfo.ProjectName,
			SponsorName:      result.ProjectInfo.SponsorName,
			OrganizationName: result.ProjectInfo.OrganizationName,
			AssessmentOwner:  result.ProjectInfo.AssessmentOwner,
			Description:      result.ProjectInfo.Description,
		},
		GroupImpacts: groups,
		OAImpacts: planOAImpacts{
			Summary: planOASummary{
				Total:    result.OA.Total,
				MaxScore: result.OA.MaxScore,
				Percent:  result.OA.Percent,
			},
			Details: details,
		},
	}
}
