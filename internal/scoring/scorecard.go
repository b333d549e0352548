package scoring

import "time"

// Response is the minimal view of an answered question the engine needs.
// Value is nil when the row is marked not applicable.
type Response struct {
	QuestionID   string
	DepartmentID string
	Value        *int
	IsNA         bool
}

// Informative reports whether the response carries a usable value.
// NA rows are excluded from both numerator and denominator; they must
// never count as zero.
func (r Response) Informative() bool {
	return !r.IsNA && r.Value != nil
}

// Weights holds per-category and per-department weight overrides.
// Missing entries default to 1.
type Weights struct {
	Category   map[string]float64
	Department map[string]float64
}

// CategoryWeight returns the weight for a category, defaulting to 1.
func (w Weights) CategoryWeight(id string) float64 {
	if v, ok := w.Category[id]; ok && v > 0 {
		return v
	}
	return 1
}

// DepartmentWeight returns the weight for a department, defaulting to 1.
func (w Weights) DepartmentWeight(id string) float64 {
	if v, ok := w.Department[id]; ok && v > 0 {
		return v
	}
	return 1
}

// CategoryScore is one category row of a scorecard. Percent is 0-100.
// HasData distinguishes "no informative responses" from a genuine 0%.
type CategoryScore struct {
	CategoryID   string             `json:"categoryId"`
	Name         string             `json:"name"`
	Percent      float64            `json:"percent"`
	HasData      bool               `json:"hasData"`
	ByDepartment map[string]float64 `json:"byDepartment"`
}

// DepartmentScore is one department row of a scorecard.
type DepartmentScore struct {
	DepartmentID string  `json:"departmentId"`
	Percent      float64 `json:"percent"`
	HasData      bool    `json:"hasData"`
}

// Scorecard is an immutable snapshot of computed maturity scores.
type Scorecard struct {
	AssessmentID string            `json:"assessmentId"`
	Categories   []CategoryScore   `json:"categories"`
	Departments  []DepartmentScore `json:"departments"`
	AICore       float64           `json:"aiCore"`
	Global       float64           `json:"global"`
	Maturity     string            `json:"maturity"`
	ComputedAt   time.Time         `json:"computedAt"`
}

// CategoryPercent returns the percent for a category id, 0 when absent.
func (s Scorecard) CategoryPercent(id string) (float64, bool) {
	for _, c := range s.Categories {
		if c.CategoryID == id {
			return c.Percent, true
		}
	}
	return 0, false
}

// Maturity labels, derived from the global score. Lower bound of each
// band is inclusive: a global of exactly 20 is still "Initial".
const (
	MaturityInitial   = "Initial"
	MaturityEmerging  = "Émergent"
	MaturityDeveloped = "Développé"
	MaturityAdvanced  = "Avancé"
	MaturityLeader    = "Leader"
)

// MaturityLabel maps a 0-100 global score to its maturity band.
func MaturityLabel(global float64) string {
	switch {
	case global <= 20:
		return MaturityInitial
	case global <= 40:
		return MaturityEmerging
	case global <= 60:
		return MaturityDeveloped
	case global <= 80:
		return MaturityAdvanced
	default:
		return MaturityLeader
	}
}
