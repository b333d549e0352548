package catalog

import (
	"fmt"
	"strings"
)

// Validate checks catalog referential integrity at the system boundary
// (import, seed). The scoring and plan cores skip dangling references
// per-item instead of failing, so a valid catalog is not a hard
// precondition there.
func Validate(c Catalog) error {
	catIDs := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.ID) == "" {
			return fmt.Errorf("categories[%d]: id is required", i)
		}
		if catIDs[cat.ID] {
			return fmt.Errorf("categories[%d]: duplicate id %q", i, cat.ID)
		}
		catIDs[cat.ID] = true
		if cat.Weight < 0 {
			return fmt.Errorf("category %s: weight must not be negative", cat.ID)
		}
	}

	deptIDs := make(map[string]bool, len(c.Departments))
	for i, d := range c.Departments {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("departments[%d]: id is required", i)
		}
		if d.ID == AllDepartments {
			return fmt.Errorf("departments[%d]: %q is reserved", i, AllDepartments)
		}
		if deptIDs[d.ID] {
			return fmt.Errorf("departments[%d]: duplicate id %q", i, d.ID)
		}
		deptIDs[d.ID] = true
	}

	qIDs := make(map[string]bool, len(c.Questions))
	for i, q := range c.Questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("questions[%d]: id is required", i)
		}
		if qIDs[q.ID] {
			return fmt.Errorf("questions[%d]: duplicate id %q", i, q.ID)
		}
		qIDs[q.ID] = true
		if !catIDs[q.CategoryID] {
			return fmt.Errorf("question %s: unknown category %q", q.ID, q.CategoryID)
		}
		if len(q.Departments) == 0 {
			return fmt.Errorf("question %s: at least one department (or %q) is required", q.ID, AllDepartments)
		}
		for _, dep := range q.Departments {
			if dep != AllDepartments && !deptIDs[dep] {
				return fmt.Errorf("question %s: unknown department %q", q.ID, dep)
			}
		}
		if q.Weight < 0 {
			return fmt.Errorf("question %s: weight must not be negative", q.ID)
		}
		switch q.RiskLevel {
		case "", RiskLow, RiskMedium, RiskHigh:
		default:
			return fmt.Errorf("question %s: invalid risk level %q", q.ID, q.RiskLevel)
		}
	}

	ruleIDs := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("rules[%d]: id is required", i)
		}
		if ruleIDs[r.ID] {
			return fmt.Errorf("rules[%d]: duplicate id %q", i, r.ID)
		}
		ruleIDs[r.ID] = true
		switch r.Scope {
		case ScopeCategory:
			if !catIDs[r.CategoryID] {
				return fmt.Errorf("rule %s: unknown category %q", r.ID, r.CategoryID)
			}
		case ScopeQuestion:
			if !qIDs[r.QuestionID] {
				return fmt.Errorf("rule %s: unknown question %q", r.ID, r.QuestionID)
			}
		default:
			return fmt.Errorf("rule %s: invalid scope %q", r.ID, r.Scope)
		}
		if r.Threshold < 0 || r.Threshold > 5 {
			return fmt.Errorf("rule %s: threshold must be within [0,5]", r.ID)
		}
		if len(r.Actions) == 0 {
			return fmt.Errorf("rule %s: at least one action is required", r.ID)
		}
		for j, a := range r.Actions {
			if strings.TrimSpace(a.Text) == "" {
				return fmt.Errorf("rule %s: actions[%d] text is required", r.ID, j)
			}
			if err := validateLevels(r.ID, j, a); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateLevels(ruleID string, idx int, a ActionDef) error {
	switch a.Impact {
	case ImpactHigh, ImpactMedium, ImpactLow:
	default:
		return fmt.Errorf("rule %s: actions[%d] invalid impact %q", ruleID, idx, a.Impact)
	}
	switch a.Effort {
	case EffortHigh, EffortMedium, EffortLow:
	default:
		return fmt.Errorf("rule %s: actions[%d] invalid effort %q", ruleID, idx, a.Effort)
	}
	switch a.Horizon {
	case HorizonShort, HorizonMedium, HorizonLong:
	default:
		return fmt.Errorf("rule %s: actions[%d] invalid horizon %q", ruleID, idx, a.Horizon)
	}
	return nil
}
