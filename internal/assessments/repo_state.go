package assessments

import (
	"context"
	"fmt"

	"synapflow-backend/internal/plan"
	"synapflow-backend/internal/shared/storage/state"
)

// stateSnapshot is the JSON shape persisted by StateRepo.
type stateSnapshot struct {
	Assessments []Assessment                   `json:"assessments"`
	Responses   map[string][]ResponseRow       `json:"responses"`
	Plans       map[string]plan.Plan           `json:"plans"`
	History     map[string][]ScoreHistoryEntry `json:"history"`
}

// StateRepo is a Repo backed by a JSON snapshot file: an in-memory repo
// whose full state is flushed after every mutation and reloaded at
// startup.
type StateRepo struct {
	mem   *MemoryRepo
	store *state.Store
}

// NewStateRepo loads the snapshot at path (if any) and returns a repo
// persisting there.
func NewStateRepo(path string) (*StateRepo, error) {
	r := &StateRepo{
		mem:   NewMemoryRepo(),
		store: state.New(path),
	}

	var snap stateSnapshot
	found, err := r.store.Load(&snap)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if found {
		for _, a := range snap.Assessments {
			r.mem.assessments[a.ID] = a
		}
		if snap.Responses != nil {
			r.mem.responses = snap.Responses
		}
		if snap.Plans != nil {
			r.mem.plans = snap.Plans
		}
		if snap.History != nil {
			r.mem.history = snap.History
		}
	}
	return r, nil
}

// flush snapshots the in-memory state and writes it out. The copy is
// taken under the read lock; marshaling live maps after releasing it
// would race with concurrent mutations.
func (r *StateRepo) flush() error {
	r.mem.mu.RLock()
	snap := stateSnapshot{
		Assessments: make([]Assessment, 0, len(r.mem.assessments)),
		Responses:   make(map[string][]ResponseRow, len(r.mem.responses)),
		Plans:       make(map[string]plan.Plan, len(r.mem.plans)),
		History:     make(map[string][]ScoreHistoryEntry, len(r.mem.history)),
	}
	for _, a := range r.mem.assessments {
		snap.Assessments = append(snap.Assessments, a)
	}
	for id, rows := range r.mem.responses {
		snap.Responses[id] = append([]ResponseRow(nil), rows...)
	}
	for id, p := range r.mem.plans {
		p.Items = append([]plan.Item(nil), p.Items...)
		p.Suggestions = append([]plan.Suggestion(nil), p.Suggestions...)
		snap.Plans[id] = p
	}
	for id, entries := range r.mem.history {
		snap.History[id] = append([]ScoreHistoryEntry(nil), entries...)
	}
	r.mem.mu.RUnlock()
	return r.store.Save(snap)
}

// CreateAssessment stores a new assessment and flushes the snapshot.
func (r *StateRepo) CreateAssessment(ctx context.Context, a Assessment) error {
	if err := r.mem.CreateAssessment(ctx, a); err != nil {
		return err
	}
	return r.flush()
}

// GetAssessment returns an assessment by id.
func (r *StateRepo) GetAssessment(ctx context.Context, id string) (Assessment, error) {
	return r.mem.GetAssessment(ctx, id)
}

// UpdateAssessment replaces an assessment and flushes the snapshot.
func (r *StateRepo) UpdateAssessment(ctx context.Context, a Assessment) error {
	if err := r.mem.UpdateAssessment(ctx, a); err != nil {
		return err
	}
	return r.flush()
}

// UpsertResponse replaces a response row and flushes the snapshot.
func (r *StateRepo) UpsertResponse(ctx context.Context, row ResponseRow) error {
	if err := r.mem.UpsertResponse(ctx, row); err != nil {
		return err
	}
	return r.flush()
}

// ListResponses returns all rows for an assessment.
func (r *StateRepo) ListResponses(ctx context.Context, assessmentID string) ([]ResponseRow, error) {
	return r.mem.ListResponses(ctx, assessmentID)
}

// SavePlan replaces a plan and flushes the snapshot.
func (r *StateRepo) SavePlan(ctx context.Context, p plan.Plan) error {
	if err := r.mem.SavePlan(ctx, p); err != nil {
		return err
	}
	return r.flush()
}

// GetPlan returns the stored plan for an assessment.
func (r *StateRepo) GetPlan(ctx context.Context, assessmentID string) (plan.Plan, error) {
	return r.mem.GetPlan(ctx, assessmentID)
}

// UpdatePlanItem replaces one plan item and flushes the snapshot.
func (r *StateRepo) UpdatePlanItem(ctx context.Context, assessmentID string, item plan.Item) error {
	if err := r.mem.UpdatePlanItem(ctx, assessmentID, item); err != nil {
		return err
	}
	return r.flush()
}

// AppendScoreHistory appends one entry and flushes the snapshot.
func (r *StateRepo) AppendScoreHistory(ctx context.Context, entry ScoreHistoryEntry) error {
	if err := r.mem.AppendScoreHistory(ctx, entry); err != nil {
		return err
	}
	return r.flush()
}

// ListScoreHistory returns history entries oldest first.
func (r *StateRepo) ListScoreHistory(ctx context.Context, assessmentID string) ([]ScoreHistoryEntry, error) {
	return r.mem.ListScoreHistory(ctx, assessmentID)
}
