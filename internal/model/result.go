package model

// ScoreSummary is the aggregate for one questionnaire.
type ScoreSummary struct {
	Total    int     `json:"total"`
	MaxScore int     `json:"maxScore"`
	Percent  float64 `json:"percent"`
}

// QuestionScore pairs a catalog question with its submitted score.
type QuestionScore struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Score    int    `json:"score"`
}

// ImpactRow is the derived impact summary for one group. Degree is on a
// 0-5 scale, rounded to one decimal.
type ImpactRow struct {
	Index           int     `json:"index"`
	GroupName       string  `json:"groupName"`
	Employees       int     `json:"employees"`
	AspectsImpacted int     `json:"aspectsImpacted"`
	Degree          float64 `json:"degree"`
}

// AssessmentResult is the full derivation of one submission. It is built
// fresh per request and never persisted.
type AssessmentResult struct {
	ID          string          `json:"id"`
	ProjectInfo ProjectInfo     `json:"projectInfo"`
	CC          ScoreSummary    `json:"cc"`
	OA          ScoreSummary    `json:"oa"`
	CCDetails   []QuestionScore `json:"ccDetails"`
	OADetails   []QuestionScore `json:"oaDetails"`
	Groups      []ImpactRow     `json:"groups"`
	TopGroups   []ImpactRow     `json:"topGroups"`
}

// PlanResult is the advisory text returned by the language-model provider
// for one submission.
type PlanResult struct {
	Plan      string `json:"plan"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	LatencyMs int64  `json:"latencyMs"`
}
