package plan

import (
	"time"

	"synapflow-backend/internal/catalog"
)

// Status tracks the lifecycle of a plan item.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Item is one row of the generated remediation plan.
type Item struct {
	ID               string          `json:"id"`
	Horizon          catalog.Horizon `json:"horizon"`
	Text             string          `json:"text"`
	Impact           catalog.Impact  `json:"impact"`
	Effort           catalog.Effort  `json:"effort"`
	LinkedCategoryID string          `json:"linkedCategoryId,omitempty"`
	LinkedQuestionID string          `json:"linkedQuestionId,omitempty"`
	Deficiency       float64         `json:"deficiency"`
	PriorityScore    float64         `json:"priorityScore"`
	ROIScore         float64         `json:"roiScore"`
	ActionType       string          `json:"actionType"`
	DuplicateGroupID string          `json:"duplicateGroupId,omitempty"`
	Status           Status          `json:"status"`
	Justification    string          `json:"justification,omitempty"`
}

// Suggestion is an advisory plan addition; it joins the plan only on an
// explicit merge call.
type Suggestion struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	QuestionID string          `json:"questionId"`
	Text       string          `json:"text"`
	Horizon    catalog.Horizon `json:"horizon"`
	Impact     catalog.Impact  `json:"impact"`
	Effort     catalog.Effort  `json:"effort"`
}

// Plan is the ordered collection of remediation items for one assessment.
// Items keep rule-evaluation insertion order; sorting by priority is a
// presentation concern.
type Plan struct {
	AssessmentID     string       `json:"assessmentId"`
	Items            []Item       `json:"items"`
	ExecutiveSummary string       `json:"executiveSummary,omitempty"`
	Suggestions      []Suggestion `json:"suggestions,omitempty"`
	GeneratedAt      time.Time    `json:"generatedAt"`
}
