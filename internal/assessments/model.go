package assessments

import (
	"time"

	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/scoring"
)

// Assessment is one self-assessment campaign. The reference catalog is
// snapshotted at creation so later catalog edits do not change
// historical comparability.
type Assessment struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	SelectedDepartments []string           `json:"selectedDepartments"`
	CategoryWeights     map[string]float64 `json:"categoryWeights"`
	DepartmentWeights   map[string]float64 `json:"departmentWeights"`
	Catalog             catalog.Catalog    `json:"catalog"`
	CreatedAt           time.Time          `json:"createdAt"`
}

// Weights builds the scoring weight configuration for this assessment.
func (a Assessment) Weights() scoring.Weights {
	return scoring.Weights{
		Category:   a.CategoryWeights,
		Department: a.DepartmentWeights,
	}
}

// ResponseRow is one answered (or explicitly not-applicable) question
// instance. Unique per (assessment, question, department); upserts
// replace in place on that key. IsNA implies Value nil.
type ResponseRow struct {
	ID           string    `json:"id"`
	AssessmentID string    `json:"assessmentId"`
	QuestionID   string    `json:"questionId"`
	DepartmentID string    `json:"departmentId"`
	Value        *int      `json:"value"`
	IsNA         bool      `json:"isNA"`
	Comment      string    `json:"comment,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ScoreHistoryEntry is one appended score observation; entries are only
// appended when the global score moves by more than 0.01.
type ScoreHistoryEntry struct {
	AssessmentID string    `json:"assessmentId"`
	Global       float64   `json:"global"`
	AICore       float64   `json:"aiCore"`
	RecordedAt   time.Time `json:"recordedAt"`
}

func toScoringResponses(rows []ResponseRow) []scoring.Response {
	out := make([]scoring.Response, 0, len(rows))
	for _, r := range rows {
		out = append(out, scoring.Response{
			QuestionID:   r.QuestionID,
			DepartmentID: r.DepartmentID,
			Value:        r.Value,
			IsNA:         r.IsNA,
		})
	}
	return out
}
