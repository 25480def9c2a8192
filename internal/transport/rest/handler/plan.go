package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"impactindex/internal/export"
	"impactindex/internal/llm"
	"impactindex/internal/model"
	"impactindex/internal/service"
)

// PlanHandler handles AI change plan endpoints
type PlanHandler struct {
	assessmentSvc *service.AssessmentService
	planSvc       *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(assessmentSvc *service.AssessmentService, planSvc *service.PlanService) *PlanHandler {
	return &PlanHandler{assessmentSvc: assessmentSvc, planSvc: planSvc}
}

// Generate handles POST /v1/assessments/plan
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	result, ok := decodeResult(w, r, h.assessmentSvc)
	if !ok {
		return
	}

	plan, err := h.planSvc.Generate(r.Context(), result)
	if err != nil {
		writeError(w, planErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// Export handles POST /v1/assessments/plan/export
func (h *PlanHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req model.PlanExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := export.PlanPDF(req.ProjectInfo, req.Plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := export.FileName(req.ProjectInfo.ProjectName, export.PlanFileName)
	writeAttachment(w, contentTypePDF, name, data)
}

// planErrorStatus maps plan generation failures onto HTTP statuses:
// missing configuration is a 503, rate limiting a 429 and any provider
// failure a 502.
func planErrorStatus(err error) int {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, llm.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, llm.ErrEmptyResponse):
		return http.StatusBadGateway
	}

	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
