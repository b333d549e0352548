package scoring

import (
	"errors"
	"fmt"
	"time"

	"synapflow-backend/internal/catalog"
)

// ErrInvalidState is returned when a required precondition is absent
// (no active assessment, empty department selection).
var ErrInvalidState = errors.New("invalid state")

type cell struct {
	sum float64
	den float64
}

// ComputeScorecard aggregates raw responses into per-category,
// per-department and global maturity scores. Pure function of its
// inputs; responses referencing unknown questions and questions
// referencing unknown categories contribute nothing.
func ComputeScorecard(assessmentID string, departments []string, responses []Response, questions []catalog.Question, categories []catalog.Category, weights Weights) (Scorecard, error) {
	if assessmentID == "" {
		return Scorecard{}, fmt.Errorf("%w: no active assessment", ErrInvalidState)
	}
	if len(departments) == 0 {
		return Scorecard{}, fmt.Errorf("%w: no departments selected", ErrInvalidState)
	}

	questionByID := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}
	categoryIDs := make(map[string]bool, len(categories))
	for _, c := range categories {
		categoryIDs[c.ID] = true
	}
	inScope := make(map[string]bool, len(departments))
	for _, d := range departments {
		inScope[d] = true
	}

	// Weighted accumulation per (category, department) over informative rows.
	cells := make(map[string]map[string]*cell)
	for _, r := range responses {
		if !r.Informative() {
			continue
		}
		if !inScope[r.DepartmentID] {
			continue
		}
		q, ok := questionByID[r.QuestionID]
		if !ok || !categoryIDs[q.CategoryID] {
			continue
		}
		byDept, ok := cells[q.CategoryID]
		if !ok {
			byDept = make(map[string]*cell)
			cells[q.CategoryID] = byDept
		}
		c, ok := byDept[r.DepartmentID]
		if !ok {
			c = &cell{}
			byDept[r.DepartmentID] = c
		}
		w := q.EffectiveWeight()
		c.sum += float64(*r.Value) * w
		c.den += w
	}

	sc := Scorecard{
		AssessmentID: assessmentID,
		Categories:   make([]CategoryScore, 0, len(categories)),
		Departments:  make([]DepartmentScore, 0, len(departments)),
		ComputedAt:   time.Now().UTC(),
	}

	// Per-category: average the per-department percentages across
	// departments that had data.
	for _, cat := range categories {
		cs := CategoryScore{
			CategoryID:   cat.ID,
			Name:         cat.Name,
			ByDepartment: make(map[string]float64),
		}
		total := 0.0
		n := 0
		for _, dept := range departments {
			c, ok := cells[cat.ID][dept]
			if !ok || c.den == 0 {
				continue
			}
			pct := c.sum / c.den / 5 * 100
			cs.ByDepartment[dept] = pct
			total += pct
			n++
		}
		if n > 0 {
			cs.Percent = total / float64(n)
			cs.HasData = true
		}
		sc.Categories = append(sc.Categories, cs)
	}

	// Per-department: category-weighted mean of that department's
	// category percentages, over categories with data for it.
	for _, dept := range departments {
		ds := DepartmentScore{DepartmentID: dept}
		sum, den := 0.0, 0.0
		for _, cs := range sc.Categories {
			pct, ok := cs.ByDepartment[dept]
			if !ok {
				continue
			}
			w := weights.CategoryWeight(cs.CategoryID)
			sum += pct * w
			den += w
		}
		if den > 0 {
			ds.Percent = sum / den
			ds.HasData = true
		}
		sc.Departments = append(sc.Departments, ds)
	}

	// AI core: category-weighted mean across all categories.
	coreSum, coreDen := 0.0, 0.0
	for _, cs := range sc.Categories {
		w := weights.CategoryWeight(cs.CategoryID)
		coreSum += cs.Percent * w
		coreDen += w
	}
	if coreDen > 0 {
		sc.AICore = coreSum / coreDen
	}

	// Global: department-weighted mean of department scores.
	globalSum, globalDen := 0.0, 0.0
	for _, ds := range sc.Departments {
		w := weights.DepartmentWeight(ds.DepartmentID)
		globalSum += ds.Percent * w
		globalDen += w
	}
	if globalDen > 0 {
		sc.Global = globalSum / globalDen
	}

	sc.Maturity = MaturityLabel(sc.Global)
	return sc, nil
}
