package assessments

import (
	"context"

	"synapflow-backend/internal/plan"
)

// Repo defines persistence operations for assessments and their
// derived artifacts.
type Repo interface {
	CreateAssessment(ctx context.Context, a Assessment) error
	GetAssessment(ctx context.Context, id string) (Assessment, error)
	UpdateAssessment(ctx context.Context, a Assessment) error

	UpsertResponse(ctx context.Context, row ResponseRow) error
	ListResponses(ctx context.Context, assessmentID string) ([]ResponseRow, error)

	SavePlan(ctx context.Context, p plan.Plan) error
	GetPlan(ctx context.Context, assessmentID string) (plan.Plan, error)
	UpdatePlanItem(ctx context.Context, assessmentID string, item plan.Item) error

	AppendScoreHistory(ctx context.Context, entry ScoreHistoryEntry) error
	ListScoreHistory(ctx context.Context, assessmentID string) ([]ScoreHistoryEntry, error)
}
