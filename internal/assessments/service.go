package assessments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/plan"
	"synapflow-backend/internal/scoring"
	"synapflow-backend/internal/shared/telemetry"
)

// materialScoreDelta is the minimum absolute global-score change that
// triggers a score-history append.
const materialScoreDelta = 0.01

// Service coordinates assessment state, the scoring engine and the
// plan generator. The engines stay pure; all persistence and history
// side effects live here.
type Service struct {
	Repo    Repo
	Catalog catalog.Catalog
}

// NewService constructs a Service over a repo and the active catalog.
func NewService(repo Repo, cat catalog.Catalog) *Service {
	return &Service{Repo: repo, Catalog: cat}
}

// CreateInput carries the assessment creation payload.
type CreateInput struct {
	Name              string             `json:"name"`
	Departments       []string           `json:"departments"`
	CategoryWeights   map[string]float64 `json:"categoryWeights,omitempty"`
	DepartmentWeights map[string]float64 `json:"departmentWeights,omitempty"`
}

// Create snapshots the active catalog into a new assessment. Weight
// maps are default-filled from the catalog here so the engines never
// have to reason about missing entries.
func (s *Service) Create(ctx context.Context, in CreateInput) (Assessment, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Assessment{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.validateDepartments(in.Departments); err != nil {
		return Assessment{}, err
	}

	a := Assessment{
		ID:                  uuid.NewString(),
		Name:                name,
		SelectedDepartments: append([]string{}, in.Departments...),
		CategoryWeights:     s.defaultCategoryWeights(),
		DepartmentWeights:   s.defaultDepartmentWeights(),
		Catalog:             s.Catalog,
		CreatedAt:           time.Now().UTC(),
	}
	applyOverrides(a.CategoryWeights, in.CategoryWeights)
	applyOverrides(a.DepartmentWeights, in.DepartmentWeights)

	if err := s.Repo.CreateAssessment(ctx, a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// Get returns an assessment by id.
func (s *Service) Get(ctx context.Context, id string) (Assessment, error) {
	return s.Repo.GetAssessment(ctx, id)
}

// SetDepartments replaces the department selection.
func (s *Service) SetDepartments(ctx context.Context, id string, departments []string) (Assessment, error) {
	if err := s.validateDepartments(departments); err != nil {
		return Assessment{}, err
	}
	a, err := s.Repo.GetAssessment(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	a.SelectedDepartments = append([]string{}, departments...)
	if err := s.Repo.UpdateAssessment(ctx, a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// SetWeights applies weight overrides on top of the current maps.
func (s *Service) SetWeights(ctx context.Context, id string, categoryWeights, departmentWeights map[string]float64) (Assessment, error) {
	for cid, w := range categoryWeights {
		if w <= 0 {
			return Assessment{}, fmt.Errorf("%w: category %s weight must be positive", ErrValidation, cid)
		}
	}
	for did, w := range departmentWeights {
		if w <= 0 {
			return Assessment{}, fmt.Errorf("%w: department %s weight must be positive", ErrValidation, did)
		}
	}
	a, err := s.Repo.GetAssessment(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	// Work on fresh maps; the stored assessment may be shared with a
	// snapshot in flight.
	a.CategoryWeights = cloneWeights(a.CategoryWeights)
	a.DepartmentWeights = cloneWeights(a.DepartmentWeights)
	applyOverrides(a.CategoryWeights, categoryWeights)
	applyOverrides(a.DepartmentWeights, departmentWeights)
	if err := s.Repo.UpdateAssessment(ctx, a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// ResponseInput carries one answer upsert.
type ResponseInput struct {
	QuestionID   string `json:"questionId"`
	DepartmentID string `json:"departmentId"`
	Value        *int   `json:"value"`
	IsNA         bool   `json:"isNA"`
	Comment      string `json:"comment,omitempty"`
}

// UpsertResponse validates the Likert invariant at the boundary and
// replaces the row matching (assessment, question, department).
func (s *Service) UpsertResponse(ctx context.Context, assessmentID string, in ResponseInput) (ResponseRow, error) {
	a, err := s.Repo.GetAssessment(ctx, assessmentID)
	if err != nil {
		return ResponseRow{}, err
	}

	question, ok := a.Catalog.QuestionByID()[in.QuestionID]
	if !ok {
		return ResponseRow{}, fmt.Errorf("%w: unknown question %q", ErrValidation, in.QuestionID)
	}
	if !containsString(a.SelectedDepartments, in.DepartmentID) {
		return ResponseRow{}, fmt.Errorf("%w: department %q is not selected", ErrValidation, in.DepartmentID)
	}
	if !question.AppliesTo(in.DepartmentID) {
		telemetry.Warn("response.department_mismatch", map[string]any{
			"assessment_id": assessmentID,
			"question_id":   in.QuestionID,
			"department_id": in.DepartmentID,
		})
	}

	row := ResponseRow{
		ID:           uuid.NewString(),
		AssessmentID: assessmentID,
		QuestionID:   in.QuestionID,
		DepartmentID: in.DepartmentID,
		Comment:      strings.TrimSpace(in.Comment),
		UpdatedAt:    time.Now().UTC(),
	}
	if in.IsNA {
		// NA rows never carry a value.
		row.IsNA = true
	} else {
		if in.Value == nil {
			return ResponseRow{}, fmt.Errorf("%w: value is required unless isNA", ErrValidation)
		}
		if *in.Value < 0 || *in.Value > 5 {
			return ResponseRow{}, fmt.Errorf("%w: value must be within 0..5", ErrValidation)
		}
		v := *in.Value
		row.Value = &v
	}

	if err := s.Repo.UpsertResponse(ctx, row); err != nil {
		return ResponseRow{}, err
	}
	return row, nil
}

// Responses lists the stored rows for an assessment.
func (s *Service) Responses(ctx context.Context, assessmentID string) ([]ResponseRow, error) {
	if _, err := s.Repo.GetAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	return s.Repo.ListResponses(ctx, assessmentID)
}

// Scorecard computes the current scorecard and appends a score-history
// entry when the global score moved materially.
func (s *Service) Scorecard(ctx context.Context, assessmentID string) (scoring.Scorecard, error) {
	sc, _, err := s.compute(ctx, assessmentID)
	if err != nil {
		return scoring.Scorecard{}, err
	}

	history, err := s.Repo.ListScoreHistory(ctx, assessmentID)
	if err != nil {
		return scoring.Scorecard{}, err
	}
	if len(history) == 0 || math.Abs(history[len(history)-1].Global-sc.Global) > materialScoreDelta {
		entry := ScoreHistoryEntry{
			AssessmentID: assessmentID,
			Global:       sc.Global,
			AICore:       sc.AICore,
			RecordedAt:   sc.ComputedAt,
		}
		if err := s.Repo.AppendScoreHistory(ctx, entry); err != nil {
			return scoring.Scorecard{}, err
		}
	}
	return sc, nil
}

// GeneratePlan regenerates and stores the remediation plan, replacing
// any previous one.
func (s *Service) GeneratePlan(ctx context.Context, assessmentID string) (plan.Plan, error) {
	sc, a, err := s.compute(ctx, assessmentID)
	if err != nil {
		return plan.Plan{}, err
	}
	responses, err := s.Repo.ListResponses(ctx, assessmentID)
	if err != nil {
		return plan.Plan{}, err
	}

	p, err := plan.Generate(assessmentID, sc, a.Catalog.Rules, a.Catalog.Questions, toScoringResponses(responses))
	if err != nil {
		return plan.Plan{}, err
	}
	if err := s.Repo.SavePlan(ctx, p); err != nil {
		return plan.Plan{}, err
	}
	return p, nil
}

// Plan returns the stored plan.
func (s *Service) Plan(ctx context.Context, assessmentID string) (plan.Plan, error) {
	return s.Repo.GetPlan(ctx, assessmentID)
}

// UpdatePlanItemStatus transitions one item. Closing an item requires a
// justification; this is boundary enforcement, the engine does not care.
func (s *Service) UpdatePlanItemStatus(ctx context.Context, assessmentID, itemID string, status plan.Status, justification string) (plan.Item, error) {
	if !plan.ValidStatus(status) {
		return plan.Item{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	p, err := s.Repo.GetPlan(ctx, assessmentID)
	if err != nil {
		return plan.Item{}, err
	}
	for _, item := range p.Items {
		if item.ID != itemID {
			continue
		}
		justification = strings.TrimSpace(justification)
		if justification != "" {
			item.Justification = justification
		}
		if status == plan.StatusDone && item.Justification == "" {
			return plan.Item{}, ErrJustificationRequired
		}
		item.Status = status
		if err := s.Repo.UpdatePlanItem(ctx, assessmentID, item); err != nil {
			return plan.Item{}, err
		}
		return item, nil
	}
	return plan.Item{}, ErrNotFound
}

// GenerateSummary derives the executive summary from the current
// scorecard and stored plan, and persists it on the plan.
func (s *Service) GenerateSummary(ctx context.Context, assessmentID string) (string, error) {
	sc, _, err := s.compute(ctx, assessmentID)
	if err != nil {
		return "", err
	}
	p, err := s.Repo.GetPlan(ctx, assessmentID)
	if err != nil {
		return "", err
	}
	p.ExecutiveSummary = plan.ExecutiveSummary(sc, p)
	if err := s.Repo.SavePlan(ctx, p); err != nil {
		return "", err
	}
	return p.ExecutiveSummary, nil
}

// Suggestions recomputes the advisory suggestion list and stores it on
// the plan so a later accept call can reference suggestion ids.
func (s *Service) Suggestions(ctx context.Context, assessmentID string) ([]plan.Suggestion, error) {
	sc, a, err := s.compute(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.GetPlan(ctx, assessmentID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		p = plan.Plan{AssessmentID: assessmentID, Items: []plan.Item{}, GeneratedAt: sc.ComputedAt}
	}
	responses, err := s.Repo.ListResponses(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	p.Suggestions = plan.Suggestions(sc, p, a.Catalog.Questions, toScoringResponses(responses))
	if err := s.Repo.SavePlan(ctx, p); err != nil {
		return nil, err
	}
	return p.Suggestions, nil
}

// AcceptSuggestions merges the identified suggestions into the plan as
// open items and drops them from the advisory list.
func (s *Service) AcceptSuggestions(ctx context.Context, assessmentID string, suggestionIDs []string) (plan.Plan, error) {
	if len(suggestionIDs) == 0 {
		return plan.Plan{}, fmt.Errorf("%w: suggestionIds is required", ErrValidation)
	}
	a, err := s.Repo.GetAssessment(ctx, assessmentID)
	if err != nil {
		return plan.Plan{}, err
	}
	p, err := s.Repo.GetPlan(ctx, assessmentID)
	if err != nil {
		return plan.Plan{}, err
	}

	accepted := make(map[string]bool, len(suggestionIDs))
	for _, id := range suggestionIDs {
		accepted[id] = true
	}

	remaining := make([]plan.Suggestion, 0, len(p.Suggestions))
	merged := 0
	for _, sg := range p.Suggestions {
		if !accepted[sg.ID] {
			remaining = append(remaining, sg)
			continue
		}
		p.Items = append(p.Items, plan.MergeSuggestion(sg, a.Catalog.Questions))
		merged++
	}
	if merged == 0 {
		return plan.Plan{}, fmt.Errorf("%w: no matching suggestions", ErrValidation)
	}
	p.Suggestions = remaining

	if err := s.Repo.SavePlan(ctx, p); err != nil {
		return plan.Plan{}, err
	}
	return p, nil
}

// History returns the score-history log, oldest first.
func (s *Service) History(ctx context.Context, assessmentID string) ([]ScoreHistoryEntry, error) {
	if _, err := s.Repo.GetAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	return s.Repo.ListScoreHistory(ctx, assessmentID)
}

// compute runs the scoring engine over the current state without side
// effects.
func (s *Service) compute(ctx context.Context, assessmentID string) (scoring.Scorecard, Assessment, error) {
	a, err := s.Repo.GetAssessment(ctx, assessmentID)
	if err != nil {
		return scoring.Scorecard{}, Assessment{}, err
	}
	responses, err := s.Repo.ListResponses(ctx, assessmentID)
	if err != nil {
		return scoring.Scorecard{}, Assessment{}, err
	}

	s.warnDanglingResponses(a, responses)

	sc, err := scoring.ComputeScorecard(
		a.ID,
		a.SelectedDepartments,
		toScoringResponses(responses),
		a.Catalog.Questions,
		a.Catalog.Categories,
		a.Weights(),
	)
	if err != nil {
		return scoring.Scorecard{}, Assessment{}, err
	}
	return sc, a, nil
}

// warnDanglingResponses surfaces rows the engines silently skip.
func (s *Service) warnDanglingResponses(a Assessment, responses []ResponseRow) {
	known := a.Catalog.QuestionByID()
	for _, r := range responses {
		if _, ok := known[r.QuestionID]; !ok {
			telemetry.Warn("response.unknown_question", map[string]any{
				"assessment_id": a.ID,
				"question_id":   r.QuestionID,
				"response_id":   r.ID,
			})
		}
	}
}

func (s *Service) validateDepartments(departments []string) error {
	if len(departments) == 0 {
		return fmt.Errorf("%w: at least one department is required", ErrValidation)
	}
	known := make(map[string]bool, len(s.Catalog.Departments))
	for _, d := range s.Catalog.Departments {
		known[d.ID] = true
	}
	seen := make(map[string]bool, len(departments))
	for _, id := range departments {
		if !known[id] {
			return fmt.Errorf("%w: unknown department %q", ErrValidation, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate department %q", ErrValidation, id)
		}
		seen[id] = true
	}
	return nil
}

func (s *Service) defaultCategoryWeights() map[string]float64 {
	out := make(map[string]float64, len(s.Catalog.Categories))
	for _, c := range s.Catalog.Categories {
		w := c.Weight
		if w <= 0 {
			w = 1
		}
		out[c.ID] = w
	}
	return out
}

func (s *Service) defaultDepartmentWeights() map[string]float64 {
	out := make(map[string]float64, len(s.Catalog.Departments))
	for _, d := range s.Catalog.Departments {
		w := d.DefaultWeight
		if w <= 0 {
			w = 1
		}
		out[d.ID] = w
	}
	return out
}

func cloneWeights(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func applyOverrides(dst, overrides map[string]float64) {
	for k, v := range overrides {
		if v > 0 {
			dst[k] = v
		}
	}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
