package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"synapflow-backend/internal/plan"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateAssessment inserts a new assessment with its catalog snapshot.
func (r *PGRepo) CreateAssessment(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO assessments (id, name, selected_departments, category_weights, department_weights, catalog_snapshot, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	departments, err := json.Marshal(a.SelectedDepartments)
	if err != nil {
		return fmt.Errorf("marshal departments: %w", err)
	}
	catWeights, err := json.Marshal(a.CategoryWeights)
	if err != nil {
		return fmt.Errorf("marshal category weights: %w", err)
	}
	depWeights, err := json.Marshal(a.DepartmentWeights)
	if err != nil {
		return fmt.Errorf("marshal department weights: %w", err)
	}
	snapshot, err := json.Marshal(a.Catalog)
	if err != nil {
		return fmt.Errorf("marshal catalog snapshot: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, a.ID, a.Name, departments, catWeights, depWeights, snapshot, a.CreatedAt)
	return err
}

// GetAssessment returns an assessment by id.
func (r *PGRepo) GetAssessment(ctx context.Context, id string) (Assessment, error) {
	const query = `
SELECT id, name, selected_departments, category_weights, department_weights, catalog_snapshot, created_at
FROM assessments
WHERE id = $1`

	var a Assessment
	var departments, catWeights, depWeights, snapshot []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &departments, &catWeights, &depWeights, &snapshot, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Assessment{}, ErrNotFound
	}
	if err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(departments, &a.SelectedDepartments); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal departments: %w", err)
	}
	if err := json.Unmarshal(catWeights, &a.CategoryWeights); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal category weights: %w", err)
	}
	if err := json.Unmarshal(depWeights, &a.DepartmentWeights); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal department weights: %w", err)
	}
	if err := json.Unmarshal(snapshot, &a.Catalog); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal catalog snapshot: %w", err)
	}
	return a, nil
}

// UpdateAssessment replaces selection and weights.
func (r *PGRepo) UpdateAssessment(ctx context.Context, a Assessment) error {
	const query = `
UPDATE assessments
SET name = $2, selected_departments = $3, category_weights = $4, department_weights = $5
WHERE id = $1`

	departments, err := json.Marshal(a.SelectedDepartments)
	if err != nil {
		return fmt.Errorf("marshal departments: %w", err)
	}
	catWeights, err := json.Marshal(a.CategoryWeights)
	if err != nil {
		return fmt.Errorf("marshal category weights: %w", err)
	}
	depWeights, err := json.Marshal(a.DepartmentWeights)
	if err != nil {
		return fmt.Errorf("marshal department weights: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, a.ID, a.Name, departments, catWeights, depWeights)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpsertResponse replaces the row on (assessment, question, department).
func (r *PGRepo) UpsertResponse(ctx context.Context, row ResponseRow) error {
	const query = `
INSERT INTO responses (id, assessment_id, question_id, department_id, value, is_na, comment, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (assessment_id, question_id, department_id)
DO UPDATE SET value = EXCLUDED.value, is_na = EXCLUDED.is_na, comment = EXCLUDED.comment, updated_at = EXCLUDED.updated_at`

	var value sql.NullInt64
	if row.Value != nil {
		value = sql.NullInt64{Int64: int64(*row.Value), Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query, row.ID, row.AssessmentID, row.QuestionID, row.DepartmentID, value, row.IsNA, row.Comment, row.UpdatedAt)
	return err
}

// ListResponses returns all rows for an assessment, oldest update first.
func (r *PGRepo) ListResponses(ctx context.Context, assessmentID string) ([]ResponseRow, error) {
	const query = `
SELECT id, assessment_id, question_id, department_id, value, is_na, comment, updated_at
FROM responses
WHERE assessment_id = $1
ORDER BY updated_at, id`

	rows, err := r.DB.QueryContext(ctx, query, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ResponseRow{}
	for rows.Next() {
		var row ResponseRow
		var value sql.NullInt64
		if err := rows.Scan(&row.ID, &row.AssessmentID, &row.QuestionID, &row.DepartmentID, &value, &row.IsNA, &row.Comment, &row.UpdatedAt); err != nil {
			return nil, err
		}
		if value.Valid {
			v := int(value.Int64)
			row.Value = &v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SavePlan replaces the plan and its items in one transaction.
func (r *PGRepo) SavePlan(ctx context.Context, p plan.Plan) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	suggestions, err := json.Marshal(p.Suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	const upsertPlan = `
INSERT INTO plans (assessment_id, executive_summary, suggestions, generated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (assessment_id)
DO UPDATE SET executive_summary = EXCLUDED.executive_summary, suggestions = EXCLUDED.suggestions, generated_at = EXCLUDED.generated_at`
	if _, err := tx.ExecContext(ctx, upsertPlan, p.AssessmentID, p.ExecutiveSummary, suggestions, p.GeneratedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM plan_items WHERE assessment_id = $1`, p.AssessmentID); err != nil {
		return err
	}

	const insertItem = `
INSERT INTO plan_items (id, assessment_id, position, horizon, action_text, impact, effort, linked_category_id, linked_question_id, deficiency, priority_score, roi_score, action_type, duplicate_group_id, status, justification)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	for i, item := range p.Items {
		if _, err := tx.ExecContext(ctx, insertItem,
			item.ID, p.AssessmentID, i, item.Horizon, item.Text, item.Impact, item.Effort,
			item.LinkedCategoryID, item.LinkedQuestionID, item.Deficiency, item.PriorityScore,
			item.ROIScore, item.ActionType, item.DuplicateGroupID, item.Status, item.Justification,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetPlan returns the stored plan with its items in insertion order.
func (r *PGRepo) GetPlan(ctx context.Context, assessmentID string) (plan.Plan, error) {
	const planQuery = `
SELECT assessment_id, executive_summary, suggestions, generated_at
FROM plans
WHERE assessment_id = $1`

	var p plan.Plan
	var suggestions []byte
	err := r.DB.QueryRowContext(ctx, planQuery, assessmentID).Scan(&p.AssessmentID, &p.ExecutiveSummary, &suggestions, &p.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Plan{}, ErrNotFound
	}
	if err != nil {
		return plan.Plan{}, err
	}
	if err := json.Unmarshal(suggestions, &p.Suggestions); err != nil {
		return plan.Plan{}, fmt.Errorf("unmarshal suggestions: %w", err)
	}

	const itemsQuery = `
SELECT id, horizon, action_text, impact, effort, linked_category_id, linked_question_id, deficiency, priority_score, roi_score, action_type, duplicate_group_id, status, justification
FROM plan_items
WHERE assessment_id = $1
ORDER BY position`

	rows, err := r.DB.QueryContext(ctx, itemsQuery, assessmentID)
	if err != nil {
		return plan.Plan{}, err
	}
	defer rows.Close()

	p.Items = []plan.Item{}
	for rows.Next() {
		var item plan.Item
		if err := rows.Scan(&item.ID, &item.Horizon, &item.Text, &item.Impact, &item.Effort,
			&item.LinkedCategoryID, &item.LinkedQuestionID, &item.Deficiency, &item.PriorityScore,
			&item.ROIScore, &item.ActionType, &item.DuplicateGroupID, &item.Status, &item.Justification,
		); err != nil {
			return plan.Plan{}, err
		}
		p.Items = append(p.Items, item)
	}
	return p, rows.Err()
}

// UpdatePlanItem updates the mutable fields of one item.
func (r *PGRepo) UpdatePlanItem(ctx context.Context, assessmentID string, item plan.Item) error {
	const query = `
UPDATE plan_items
SET status = $3, justification = $4
WHERE assessment_id = $1 AND id = $2`

	res, err := r.DB.ExecContext(ctx, query, assessmentID, item.ID, item.Status, item.Justification)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AppendScoreHistory appends one entry.
func (r *PGRepo) AppendScoreHistory(ctx context.Context, entry ScoreHistoryEntry) error {
	const query = `
INSERT INTO score_history (assessment_id, global_score, ai_core_score, recorded_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, entry.AssessmentID, entry.Global, entry.AICore, entry.RecordedAt)
	return err
}

// ListScoreHistory returns entries oldest first.
func (r *PGRepo) ListScoreHistory(ctx context.Context, assessmentID string) ([]ScoreHistoryEntry, error) {
	const query = `
SELECT assessment_id, global_score, ai_core_score, recorded_at
FROM score_history
WHERE assessment_id = $1
ORDER BY recorded_at, id`

	rows, err := r.DB.QueryContext(ctx, query, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ScoreHistoryEntry{}
	for rows.Next() {
		var entry ScoreHistoryEntry
		if err := rows.Scan(&entry.AssessmentID, &entry.Global, &entry.AICore, &entry.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
