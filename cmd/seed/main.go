package main

// Seed a demo assessment with sample responses:
//   go run ./cmd/seed
//
// Uses the same storage selection as the API (DATABASE_URL, then
// STATE_FILE, then memory — the latter is only useful for smoke runs).

import (
	"context"
	"log"

	"synapflow-backend/internal/assessments"
	"synapflow-backend/internal/bootstrap"
	"synapflow-backend/internal/shared/config"
)

type seedResponse struct {
	question   string
	department string
	value      int
	isNA       bool
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	svc := app.AssessmentsService

	a, err := svc.Create(ctx, assessments.CreateInput{
		Name:        "Évaluation de démonstration",
		Departments: []string{"DG", "DSI", "DATA", "RH"},
	})
	if err != nil {
		log.Fatalf("seed: create assessment: %v", err)
	}

	seeds := []seedResponse{
		{question: "q-strat-01", department: "DG", value: 2},
		{question: "q-strat-02", department: "DG", value: 1},
		{question: "q-gov-01", department: "DG", value: 1},
		{question: "q-gov-02", department: "DSI", value: 2},
		{question: "q-data-01", department: "DATA", value: 3},
		{question: "q-data-02", department: "DATA", value: 2},
		{question: "q-data-03", department: "DSI", value: 1},
		{question: "q-tech-01", department: "DSI", value: 3},
		{question: "q-tech-02", department: "DSI", value: 2},
		{question: "q-people-01", department: "RH", value: 1},
		{question: "q-people-02", department: "RH", isNA: true},
		{question: "q-risk-01", department: "DG", value: 1},
		{question: "q-risk-02", department: "DATA", value: 0},
	}
	for _, s := range seeds {
		in := assessments.ResponseInput{
			QuestionID:   s.question,
			DepartmentID: s.department,
			IsNA:         s.isNA,
		}
		if !s.isNA {
			v := s.value
			in.Value = &v
		}
		if _, err := svc.UpsertResponse(ctx, a.ID, in); err != nil {
			log.Fatalf("seed: response %s/%s: %v", s.question, s.department, err)
		}
	}

	sc, err := svc.Scorecard(ctx, a.ID)
	if err != nil {
		log.Fatalf("seed: scorecard: %v", err)
	}
	p, err := svc.GeneratePlan(ctx, a.ID)
	if err != nil {
		log.Fatalf("seed: plan: %v", err)
	}

	log.Printf("seeded assessment %s: global=%.1f%% (%s), %d plan items", a.ID, sc.Global, sc.Maturity, len(p.Items))
}
