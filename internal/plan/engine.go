package plan

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/scoring"
)

// ErrInvalidState is returned when no assessment is active.
var ErrInvalidState = errors.New("invalid state")

// Generate evaluates the action rules against a scorecard and the raw
// responses and produces a remediation plan. Idempotent given the same
// inputs, aside from freshly generated item ids. Rules referencing
// unknown category or question ids are skipped.
func Generate(assessmentID string, sc scoring.Scorecard, rules []catalog.ActionRule, questions []catalog.Question, responses []scoring.Response) (Plan, error) {
	if assessmentID == "" {
		return Plan{}, fmt.Errorf("%w: no active assessment", ErrInvalidState)
	}

	questionByID := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	p := Plan{
		AssessmentID: assessmentID,
		Items:        []Item{},
		GeneratedAt:  time.Now().UTC(),
	}

	for _, rule := range rules {
		switch rule.Scope {
		case catalog.ScopeCategory:
			pct, ok := sc.CategoryPercent(rule.CategoryID)
			if !ok {
				continue
			}
			likert := pct / 100 * 5
			if likert > rule.Threshold {
				continue
			}
			// Deficiency measured against 3, the acceptable midpoint
			// of the 0-5 scale.
			deficiency := clamp01((3 - likert) / 3)
			for _, a := range rule.Actions {
				p.Items = append(p.Items, newItem(a, rule.CategoryID, "", deficiency, catalog.Question{}))
			}
		case catalog.ScopeQuestion:
			q, ok := questionByID[rule.QuestionID]
			if !ok {
				continue
			}
			mean, ok := QuestionMean(rule.QuestionID, responses)
			if !ok || mean > rule.Threshold {
				continue
			}
			deficiency := 0.0
			if rule.Threshold > 0 {
				deficiency = clamp01((rule.Threshold - mean) / rule.Threshold)
			}
			for _, a := range rule.Actions {
				p.Items = append(p.Items, newItem(a, q.CategoryID, q.ID, deficiency, q))
			}
		}
	}

	clusterDuplicates(p.Items)
	return p, nil
}

func newItem(a catalog.ActionDef, categoryID, questionID string, deficiency float64, q catalog.Question) Item {
	item := Item{
		ID:               uuid.NewString(),
		Horizon:          a.Horizon,
		Text:             a.Text,
		Impact:           a.Impact,
		Effort:           a.Effort,
		LinkedCategoryID: categoryID,
		LinkedQuestionID: questionID,
		Deficiency:       round2(deficiency),
		ActionType:       classifyAction(a.Text),
		Status:           StatusOpen,
	}
	base := impactWeight(a.Impact)*2 + effortInverseWeight(a.Effort)
	item.PriorityScore = round2(base * (0.5 + deficiency) * riskMultiplier(q.RiskLevel))
	item.ROIScore = round2(impactWeight(a.Impact) / effortNumeric(a.Effort))
	return item
}

// QuestionMean computes the arithmetic mean of raw non-NA values for a
// question across the assessment. The second return is false when no
// informative response exists.
func QuestionMean(questionID string, responses []scoring.Response) (float64, bool) {
	sum, n := 0.0, 0
	for _, r := range responses {
		if r.QuestionID != questionID || !r.Informative() {
			continue
		}
		sum += float64(*r.Value)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func impactWeight(i catalog.Impact) float64 {
	switch i {
	case catalog.ImpactHigh:
		return 3
	case catalog.ImpactMedium:
		return 2
	default:
		return 1
	}
}

// Low effort is rewarded.
func effortInverseWeight(e catalog.Effort) float64 {
	switch e {
	case catalog.EffortHigh:
		return 1
	case catalog.EffortMedium:
		return 2
	default:
		return 3
	}
}

func effortNumeric(e catalog.Effort) float64 {
	switch e {
	case catalog.EffortHigh:
		return 3
	case catalog.EffortMedium:
		return 2
	default:
		return 1
	}
}

func riskMultiplier(r catalog.RiskLevel) float64 {
	switch r {
	case catalog.RiskHigh:
		return 1.35
	case catalog.RiskMedium:
		return 1.15
	default:
		return 1.0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
