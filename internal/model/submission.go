package model

// ProjectInfo is the free-text metadata attached to exported artifacts.
// Fields are optional; exporters render only non-empty values.
type ProjectInfo struct {
	ProjectName      string `json:"projectName"`
	SponsorName      string `json:"sponsorName"`
	OrganizationName string `json:"organizationName"`
	AssessmentOwner  string `json:"assessmentOwner"`
	Description      string `json:"description"`
}

// GroupInput is one organizational group scored across the fixed aspect
// list. Missing aspects read as zero; unknown aspect names are ignored.
type GroupInput struct {
	Name      string         `json:"name" validate:"required"`
	Employees int            `json:"employees" validate:"min=0"`
	Aspects   map[string]int `json:"aspects" validate:"dive,min=0,max=5"`
}

// Submission is a single completed assessment form. CC and OA map question
// IDs (CC_1.., OA_1..) to scores; both must cover their questionnaire
// exactly.
type Submission struct {
	ProjectInfo ProjectInfo    `json:"projectInfo"`
	CC          map[string]int `json:"cc" validate:"required,dive,min=1,max=5"`
	OA          map[string]int `json:"oa" validate:"required,dive,min=1,max=5"`
	Groups      []GroupInput   `json:"groups" validate:"max=24,dive"`
}

// PlanExportRequest is the body for the plan document export. The plan
// text comes back from the client because plans are never stored.
type PlanExportRequest struct {
	ProjectInfo ProjectInfo `json:"projectInfo"`
	Plan        string      `json:"plan"`
}
