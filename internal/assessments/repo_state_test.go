package assessments

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"synapflow-backend/internal/plan"
)

func TestStateRepoSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	repo, err := NewStateRepo(path)
	if err != nil {
		t.Fatalf("NewStateRepo: %v", err)
	}

	a := Assessment{
		ID:                  "a-1",
		Name:                "Diagnostic",
		SelectedDepartments: []string{"D1"},
		CategoryWeights:     map[string]float64{"CAT_A": 2},
		DepartmentWeights:   map[string]float64{"D1": 1},
		Catalog:             testCatalog(),
		CreatedAt:           time.Now().UTC(),
	}
	if err := repo.CreateAssessment(ctx, a); err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	two := 2
	row := ResponseRow{
		ID:           "r-1",
		AssessmentID: a.ID,
		QuestionID:   "qa1",
		DepartmentID: "D1",
		Value:        &two,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := repo.UpsertResponse(ctx, row); err != nil {
		t.Fatalf("UpsertResponse: %v", err)
	}
	p := plan.Plan{
		AssessmentID: a.ID,
		Items:        []plan.Item{{ID: "item-1", Text: "Agir", Status: plan.StatusOpen}},
		GeneratedAt:  time.Now().UTC(),
	}
	if err := repo.SavePlan(ctx, p); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	// Fresh repo over the same file sees everything.
	reopened, err := NewStateRepo(path)
	if err != nil {
		t.Fatalf("NewStateRepo (reopen): %v", err)
	}
	got, err := reopened.GetAssessment(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAssessment: %v", err)
	}
	if got.Name != a.Name || len(got.Catalog.Questions) != len(a.Catalog.Questions) {
		t.Fatalf("reloaded assessment = %+v", got)
	}
	rows, err := reopened.ListResponses(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListResponses: %v", err)
	}
	if len(rows) != 1 || rows[0].Value == nil || *rows[0].Value != 2 {
		t.Fatalf("reloaded rows = %+v", rows)
	}
	gotPlan, err := reopened.GetPlan(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(gotPlan.Items) != 1 || gotPlan.Items[0].Text != "Agir" {
		t.Fatalf("reloaded plan = %+v", gotPlan)
	}
}

func TestStateRepoConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	repo, err := NewStateRepo(path)
	if err != nil {
		t.Fatalf("NewStateRepo: %v", err)
	}
	a := Assessment{
		ID:                  "a-1",
		Name:                "Diagnostic",
		SelectedDepartments: []string{"D1"},
		CategoryWeights:     map[string]float64{"CAT_A": 2},
		DepartmentWeights:   map[string]float64{"D1": 1},
		Catalog:             testCatalog(),
		CreatedAt:           time.Now().UTC(),
	}
	if err := repo.CreateAssessment(ctx, a); err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}

	// Each goroutine hammers its own (question, department) key so the
	// flush snapshot races with map and slice mutations if the copy is
	// not taken under the lock.
	const workers = 4
	const iterations = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v := i % 6
				row := ResponseRow{
					ID:           fmt.Sprintf("r-%d", w),
					AssessmentID: a.ID,
					QuestionID:   fmt.Sprintf("q-%d", w),
					DepartmentID: "D1",
					Value:        &v,
					UpdatedAt:    time.Now().UTC(),
				}
				if err := repo.UpsertResponse(ctx, row); err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("UpsertResponse: %v", err)
	}

	reopened, err := NewStateRepo(path)
	if err != nil {
		t.Fatalf("NewStateRepo (reopen): %v", err)
	}
	rows, err := reopened.ListResponses(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListResponses: %v", err)
	}
	if len(rows) != workers {
		t.Fatalf("len(rows) = %d, want %d", len(rows), workers)
	}
}

func TestStateRepoMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	repo, err := NewStateRepo(path)
	if err != nil {
		t.Fatalf("NewStateRepo: %v", err)
	}
	if _, err := repo.GetAssessment(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
