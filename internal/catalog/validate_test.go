package catalog

import (
	"strings"
	"testing"
)

func minimalCatalog() Catalog {
	return Catalog{
		Categories:  []Category{{ID: "C1", Name: "Cat", Weight: 1}},
		Departments: []Department{{ID: "D1", Name: "Dep", DefaultWeight: 1}},
		Questions: []Question{
			{ID: "q1", Code: "C-01", Text: "Texte.", CategoryID: "C1", Departments: []string{AllDepartments}, Weight: 1},
		},
		Rules: []ActionRule{
			{
				ID:         "r1",
				Scope:      ScopeCategory,
				CategoryID: "C1",
				Threshold:  2,
				Actions:    []ActionDef{{Horizon: HorizonShort, Text: "Agir", Impact: ImpactHigh, Effort: EffortLow}},
			},
		},
	}
}

func TestValidateAcceptsMinimalCatalog(t *testing.T) {
	if err := Validate(minimalCatalog()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateDefaultCatalog(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()): %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Catalog)
		wantSub string
	}{
		{
			name:    "duplicate category",
			mutate:  func(c *Catalog) { c.Categories = append(c.Categories, Category{ID: "C1", Name: "Bis"}) },
			wantSub: "duplicate id",
		},
		{
			name:    "reserved department id",
			mutate:  func(c *Catalog) { c.Departments = append(c.Departments, Department{ID: AllDepartments, Name: "All"}) },
			wantSub: "reserved",
		},
		{
			name:    "question with unknown category",
			mutate:  func(c *Catalog) { c.Questions[0].CategoryID = "NOPE" },
			wantSub: "unknown category",
		},
		{
			name:    "question with unknown department",
			mutate:  func(c *Catalog) { c.Questions[0].Departments = []string{"NOPE"} },
			wantSub: "unknown department",
		},
		{
			name:    "question without departments",
			mutate:  func(c *Catalog) { c.Questions[0].Departments = nil },
			wantSub: "at least one department",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := minimalCatalog()
			tc.mutate(&c)
			err := Validate(c)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("err = %v, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestDefaultCatalogRulesReferenceKnownTargets(t *testing.T) {
	c := Default()
	questions := c.QuestionByID()
	categories := c.CategoryByID()
	for _, r := range c.Rules {
		switch r.Scope {
		case ScopeCategory:
			if _, ok := categories[r.CategoryID]; !ok {
				t.Errorf("rule %s: unknown category %q", r.ID, r.CategoryID)
			}
		case ScopeQuestion:
			if _, ok := questions[r.QuestionID]; !ok {
				t.Errorf("rule %s: unknown question %q", r.ID, r.QuestionID)
			}
		default:
			t.Errorf("rule %s: unknown scope %q", r.ID, r.Scope)
		}
	}
}
