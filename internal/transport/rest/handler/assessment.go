package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"impactindex/internal/catalog"
	"impactindex/internal/model"
	"impactindex/internal/service"
)

// AssessmentHandler handles catalog and assessment endpoints
type AssessmentHandler struct {
	catalog       *catalog.Catalog
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(cat *catalog.Catalog, assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{catalog: cat, assessmentSvc: assessmentSvc}
}

// GetCatalog handles GET /v1/catalog
func (h *AssessmentHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

// Create handles POST /v1/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	result, ok := decodeResult(w, r, h.assessmentSvc)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeAttachment(w http.ResponseWriter, contentType, fileName string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// decodeResult decodes, validates and scores the submission carried in
// the request body. On failure it writes a 400 and reports false.
func decodeResult(w http.ResponseWriter, r *http.Request, svc *service.AssessmentService) (*model.AssessmentResult, bool) {
	var sub model.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := svc.Validate(&sub); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return svc.BuildResult(&sub), true
}
