package catalog

// AllDepartments is the sentinel marking a question applicable to every department.
const AllDepartments = "ALL"

// RiskLevel qualifies how risky a weak answer to a question is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Impact is the expected benefit of a remediation action.
type Impact string

const (
	ImpactHigh   Impact = "H"
	ImpactMedium Impact = "M"
	ImpactLow    Impact = "L"
)

// Effort is the expected cost of a remediation action.
type Effort string

const (
	EffortHigh   Effort = "H"
	EffortMedium Effort = "M"
	EffortLow    Effort = "L"
)

// Horizon is the remediation time window of a plan action.
type Horizon string

const (
	HorizonShort  Horizon = "0-90j"
	HorizonMedium Horizon = "3-6m"
	HorizonLong   Horizon = "6-12m"
)

// RuleScope selects what an action rule is evaluated against.
type RuleScope string

const (
	ScopeCategory RuleScope = "category"
	ScopeQuestion RuleScope = "question"
)

// Question is a single evaluable statement of the maturity questionnaire.
type Question struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Text             string    `json:"text"`
	CategoryID       string    `json:"categoryId"`
	Departments      []string  `json:"departments"`
	Weight           float64   `json:"weight"`
	RiskLevel        RiskLevel `json:"riskLevel,omitempty"`
	Guidance         string    `json:"guidance,omitempty"`
	ScaleDescriptors []string  `json:"scaleDescriptors,omitempty"`
}

// AppliesTo reports whether the question is evaluable for a department.
func (q Question) AppliesTo(departmentID string) bool {
	for _, d := range q.Departments {
		if d == AllDepartments || d == departmentID {
			return true
		}
	}
	return false
}

// EffectiveWeight returns the question weight, defaulting to 1.
func (q Question) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// Category groups questions; Weight multiplies its contribution to the
// organization-wide score (default 1).
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

// Department is an organizational unit with a default aggregation weight.
type Department struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DefaultWeight float64 `json:"defaultWeight"`
}

// ActionDef is one action template emitted when its rule fires.
type ActionDef struct {
	Horizon Horizon `json:"horizon"`
	Text    string  `json:"text"`
	Impact  Impact  `json:"impact"`
	Effort  Effort  `json:"effort"`
}

// ActionRule triggers plan actions when a category or question score
// falls to or below Threshold on the 0-5 scale.
type ActionRule struct {
	ID         string      `json:"id"`
	Scope      RuleScope   `json:"scope"`
	CategoryID string      `json:"categoryId,omitempty"`
	QuestionID string      `json:"questionId,omitempty"`
	Threshold  float64     `json:"threshold"`
	Actions    []ActionDef `json:"actions"`
}

// Catalog bundles the reference data snapshotted at assessment creation.
type Catalog struct {
	Questions   []Question   `json:"questions"`
	Categories  []Category   `json:"categories"`
	Departments []Department `json:"departments"`
	Rules       []ActionRule `json:"rules"`
}

// QuestionByID builds a lookup map over the catalog's questions.
func (c Catalog) QuestionByID() map[string]Question {
	out := make(map[string]Question, len(c.Questions))
	for _, q := range c.Questions {
		out[q.ID] = q
	}
	return out
}

// CategoryByID builds a lookup map over the catalog's categories.
func (c Catalog) CategoryByID() map[string]Category {
	out := make(map[string]Category, len(c.Categories))
	for _, cat := range c.Categories {
		out[cat.ID] = cat
	}
	return out
}

// DepartmentIDs lists the catalog's department ids in declaration order.
func (c Catalog) DepartmentIDs() []string {
	out := make([]string, 0, len(c.Departments))
	for _, d := range c.Departments {
		out = append(out, d.ID)
	}
	return out
}
