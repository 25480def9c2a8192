package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"impactindex/internal/catalog"
	"impactindex/internal/model"
	"impactindex/internal/report"
	"impactindex/internal/scoring"
)

// AssessmentService validates submissions and derives their results
type AssessmentService struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(cat *catalog.Catalog) *AssessmentService {
	return &AssessmentService{
		catalog:  cat,
		validate: validator.New(),
	}
}

// Validate checks a submission against the questionnaire catalog. Both
// questionnaires must be answered completely using known question IDs;
// group aspect maps may name any subset of the aspect list.
func (s *AssessmentService) Validate(sub *model.Submission) error {
	if err := s.validate.Struct(sub); err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}
	if err := checkAnswers("cc", sub.CC, s.catalog.CC); err != nil {
		return err
	}
	if err := checkAnswers("oa", sub.OA, s.catalog.OA); err != nil {
		return err
	}
	return nil
}

// BuildResult derives the full assessment result for a validated
// submission.
func (s *AssessmentService) BuildResult(sub *model.Submission) *model.AssessmentResult {
	groups := scoring.GroupImpacts(sub.Groups, s.catalog.Aspects)

	return &model.AssessmentResult{
		ID:          uuid.NewString(),
		ProjectInfo: sub.ProjectInfo,
		CC:          scoring.Aggregate(sub.CC, len(s.catalog.CC)),
		OA:          scoring.Aggregate(sub.OA, len(s.catalog.OA)),
		CCDetails:   scoring.Details(s.catalog.CC, sub.CC),
		OADetails:   scoring.Details(s.catalog.OA, sub.OA),
		Groups:      groups,
		TopGroups:   report.TopGroups(groups, report.TopGroupCount),
	}
}

func checkAnswers(section string, answers map[string]int, questions []catalog.Question) error {
	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	for id := range answers {
		if !known[id] {
			return fmt.Errorf("%s: unknown question id %q", section, id)
		}
	}
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return fmt.Errorf("%s: missing answer for %s", section, q.ID)
		}
	}
	return nil
}
