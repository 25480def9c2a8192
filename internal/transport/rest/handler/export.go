package handler

import (
	"net/http"

	"impactindex/internal/export"
	"impactindex/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler handles spreadsheet and document export endpoints
type ExportHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewExportHandler creates a new export handler
func NewExportHandler(assessmentSvc *service.AssessmentService) *ExportHandler {
	return &ExportHandler{assessmentSvc: assessmentSvc}
}

// Excel handles POST /v1/assessments/export/excel
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	result, ok := decodeResult(w, r, h.assessmentSvc)
	if !ok {
		return
	}

	data, err := export.Workbook(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := export.FileName(result.ProjectInfo.ProjectName, export.ExcelFileName)
	writeAttachment(w, contentTypeXLSX, name, data)
}

// Summary handles POST /v1/assessments/export/summary
func (h *ExportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	result, ok := decodeResult(w, r, h.assessmentSvc)
	if !ok {
		return
	}

	data, err := export.SummaryPDF(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := export.FileName(result.ProjectInfo.ProjectName, export.SummaryFileName)
	writeAttachment(w, contentTypePDF, name, data)
}
