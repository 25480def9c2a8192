package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"impactindex/internal/catalog"
	"impactindex/internal/service"
	"impactindex/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog           *catalog.Catalog
	AssessmentService *service.AssessmentService
	PlanService       *service.PlanService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(c.Catalog, c.AssessmentService)
	exportHandler := handler.NewExportHandler(c.AssessmentService)
	planHandler := handler.NewPlanHandler(c.AssessmentService, c.PlanService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog", assessmentHandler.GetCatalog).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/export/excel", exportHandler.Excel).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/export/summary", exportHandler.Summary).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/plan", planHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/plan/export", planHandler.Export).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
