package assessments

import (
	"context"
	"sync"

	"synapflow-backend/internal/plan"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu          sync.RWMutex
	assessments map[string]Assessment
	responses   map[string][]ResponseRow // assessmentID -> rows
	plans       map[string]plan.Plan
	history     map[string][]ScoreHistoryEntry
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		assessments: make(map[string]Assessment),
		responses:   make(map[string][]ResponseRow),
		plans:       make(map[string]plan.Plan),
		history:     make(map[string][]ScoreHistoryEntry),
	}
}

// CreateAssessment stores a new assessment.
func (r *MemoryRepo) CreateAssessment(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[a.ID] = a
	return nil
}

// GetAssessment returns an assessment by id.
func (r *MemoryRepo) GetAssessment(ctx context.Context, id string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return a, nil
}

// UpdateAssessment replaces an existing assessment.
func (r *MemoryRepo) UpdateAssessment(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assessments[a.ID]; !ok {
		return ErrNotFound
	}
	r.assessments[a.ID] = a
	return nil
}

// UpsertResponse replaces the row matching (assessment, question,
// department) or appends a new one.
func (r *MemoryRepo) UpsertResponse(ctx context.Context, row ResponseRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assessments[row.AssessmentID]; !ok {
		return ErrNotFound
	}
	rows := r.responses[row.AssessmentID]
	for i := range rows {
		if rows[i].QuestionID == row.QuestionID && rows[i].DepartmentID == row.DepartmentID {
			row.ID = rows[i].ID
			rows[i] = row
			r.responses[row.AssessmentID] = rows
			return nil
		}
	}
	r.responses[row.AssessmentID] = append(rows, row)
	return nil
}

// ListResponses returns all rows for an assessment in insertion order.
func (r *MemoryRepo) ListResponses(ctx context.Context, assessmentID string) ([]ResponseRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := r.responses[assessmentID]
	out := make([]ResponseRow, len(rows))
	copy(out, rows)
	return out, nil
}

// SavePlan replaces the plan for its assessment.
func (r *MemoryRepo) SavePlan(ctx context.Context, p plan.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assessments[p.AssessmentID]; !ok {
		return ErrNotFound
	}
	r.plans[p.AssessmentID] = p
	return nil
}

// GetPlan returns the stored plan for an assessment.
func (r *MemoryRepo) GetPlan(ctx context.Context, assessmentID string) (plan.Plan, error) {
	if err := ctx.Err(); err != nil {
		return plan.Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[assessmentID]
	if !ok {
		return plan.Plan{}, ErrNotFound
	}
	return p, nil
}

// UpdatePlanItem replaces one item of the stored plan by id.
func (r *MemoryRepo) UpdatePlanItem(ctx context.Context, assessmentID string, item plan.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[assessmentID]
	if !ok {
		return ErrNotFound
	}
	for i := range p.Items {
		if p.Items[i].ID == item.ID {
			p.Items[i] = item
			r.plans[assessmentID] = p
			return nil
		}
	}
	return ErrNotFound
}

// AppendScoreHistory appends one history entry.
func (r *MemoryRepo) AppendScoreHistory(ctx context.Context, entry ScoreHistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history[entry.AssessmentID] = append(r.history[entry.AssessmentID], entry)
	return nil
}

// ListScoreHistory returns history entries oldest first.
func (r *MemoryRepo) ListScoreHistory(ctx context.Context, assessmentID string) ([]ScoreHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.history[assessmentID]
	out := make([]ScoreHistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
