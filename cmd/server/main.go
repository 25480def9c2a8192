package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"impactindex/internal/catalog"
	"impactindex/internal/config"
	"impactindex/internal/llm"
	"impactindex/internal/service"
	"impactindex/internal/transport/rest"
)

func main() {
	log.Println("started")

	cfg := config.Load()
	aiCfg := config.DefaultAIConfig()

	log.Printf("AI Config:")
	log.Printf("  Provider:  %s", aiCfg.Provider)
	if aiCfg.Model != "" {
		log.Printf("  Model:     %s", aiCfg.Model)
	}
	if aiCfg.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (plan generation disabled)")
	}

	cat := catalog.MustLoad()
	log.Printf("Catalog loaded: %d CC questions, %d OA questions, %d aspects",
		len(cat.CC), len(cat.OA), len(cat.Aspects))

	// Build the plan client only when a key is configured; the plan
	// endpoints answer 503 otherwise.
	var planClient llm.Client
	if aiCfg.IsEnabled() {
		client, err := llm.New(llm.Config{
			Provider: aiCfg.Provider,
			APIKey:   aiCfg.APIKey,
			Model:    aiCfg.Model,
			BaseURL:  aiCfg.BaseURL,
			Timeout:  aiCfg.Timeout(),
		})
		if err != nil {
			log.Fatal("Failed to build llm client:", err)
		}
		planClient = llm.Chain(client,
			llm.RateLimit(cfg.PlanRPS, cfg.PlanBurst),
			llm.Metrics(aiCfg.Provider),
		)
	}

	// Initialize services
	assessmentSvc := service.NewAssessmentService(cat)
	planSvc := service.NewPlanService(planClient)

	router := rest.NewRouter(&rest.Container{
		Catalog:           cat,
		AssessmentService: assessmentSvc,
		PlanService:       planSvc,
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /health")
		log.Println("  GET  /metrics")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/assessments")
		log.Println("  POST /v1/assessments/export/excel")
		log.Println("  POST /v1/assessments/export/summary")
		log.Println("  POST /v1/assessments/plan")
		log.Println("  POST /v1/assessments/plan/export")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
