package plan

import (
	"testing"

	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/scoring"
)

func suggestionFixture() ([]catalog.Question, []scoring.Response) {
	questions := []catalog.Question{
		{ID: "q1", CategoryID: "GOV", Text: "Une politique d'usage est publiée.", Departments: []string{catalog.AllDepartments}},
		{ID: "q2", CategoryID: "GOV", Text: "Un comité pilote les usages IA.", Departments: []string{catalog.AllDepartments}},
		{ID: "q3", CategoryID: "GOV", Text: "La conformité RGPD est documentée.", Departments: []string{catalog.AllDepartments}},
		{ID: "q4", CategoryID: "STRAT", Text: "Une feuille de route IA existe.", Departments: []string{catalog.AllDepartments}},
	}
	responses := []scoring.Response{
		{QuestionID: "q1", DepartmentID: "A", Value: intp(0)},
		{QuestionID: "q2", DepartmentID: "A", Value: intp(1)},
		{QuestionID: "q3", DepartmentID: "A", Value: intp(3)},
		{QuestionID: "q4", DepartmentID: "A", Value: intp(4)},
	}
	return questions, responses
}

func TestSuggestionsTargetWeakCategories(t *testing.T) {
	questions, responses := suggestionFixture()
	sc := scoring.Scorecard{
		AssessmentID: "a1",
		Categories: []scoring.CategoryScore{
			{CategoryID: "GOV", Percent: 30, HasData: true},
			{CategoryID: "STRAT", Percent: 80, HasData: true},
		},
	}

	out := Suggestions(sc, Plan{AssessmentID: "a1"}, questions, responses)

	if len(out) != 2 {
		t.Fatalf("expected 2 suggestions for the weak category, got %d", len(out))
	}
	// Lowest-mean questions first: q1 (0) then q2 (1).
	if out[0].QuestionID != "q1" || out[1].QuestionID != "q2" {
		t.Fatalf("expected q1,q2 order, got %s,%s", out[0].QuestionID, out[1].QuestionID)
	}
	for _, s := range out {
		if s.CategoryID != "GOV" {
			t.Fatalf("strong category must not yield suggestions: %+v", s)
		}
		if s.Impact != catalog.ImpactHigh || s.Effort != catalog.EffortMedium {
			t.Fatalf("expected impact H / effort M, got %+v", s)
		}
		// Category below 40% gets the short horizon.
		if s.Horizon != catalog.HorizonShort {
			t.Fatalf("expected horizon 0-90j, got %s", s.Horizon)
		}
	}
}

func TestSuggestionsMediumHorizonAbove40(t *testing.T) {
	questions, responses := suggestionFixture()
	sc := scoring.Scorecard{
		AssessmentID: "a1",
		Categories:   []scoring.CategoryScore{{CategoryID: "GOV", Percent: 48, HasData: true}},
	}

	out := Suggestions(sc, Plan{AssessmentID: "a1"}, questions, responses)
	if len(out) == 0 {
		t.Fatalf("expected suggestions for 48%% category")
	}
	for _, s := range out {
		if s.Horizon != catalog.HorizonMedium {
			t.Fatalf("expected horizon 3-6m, got %s", s.Horizon)
		}
	}
}

func TestSuggestionsSkipExistingPlanText(t *testing.T) {
	questions, responses := suggestionFixture()
	sc := scoring.Scorecard{
		AssessmentID: "a1",
		Categories:   []scoring.CategoryScore{{CategoryID: "GOV", Percent: 30, HasData: true}},
	}
	existing := Plan{
		AssessmentID: "a1",
		Items: []Item{
			// Case-insensitive verbatim match with q1's derived text.
			{Text: "renforcer : Une politique d'usage est publiée"},
		},
	}

	out := Suggestions(sc, existing, questions, responses)
	for _, s := range out {
		if s.QuestionID == "q1" {
			t.Fatalf("q1 suggestion duplicates an existing plan item")
		}
	}
	if len(out) != 2 {
		t.Fatalf("expected q2 and q3 suggestions, got %d", len(out))
	}
}

func TestSuggestionsCategoryCap(t *testing.T) {
	var categories []scoring.CategoryScore
	var questions []catalog.Question
	var responses []scoring.Response
	for _, id := range []string{"C1", "C2", "C3", "C4", "C5"} {
		categories = append(categories, scoring.CategoryScore{CategoryID: id, Percent: 20, HasData: true})
		q := catalog.Question{ID: "q-" + id, CategoryID: id, Text: "Question " + id, Departments: []string{catalog.AllDepartments}}
		questions = append(questions, q)
		responses = append(responses, scoring.Response{QuestionID: q.ID, DepartmentID: "A", Value: intp(1)})
	}

	out := Suggestions(scoring.Scorecard{AssessmentID: "a1", Categories: categories}, Plan{}, questions, responses)

	seen := make(map[string]bool)
	for _, s := range out {
		seen[s.CategoryID] = true
	}
	if len(seen) > suggestionMaxCategories {
		t.Fatalf("expected at most %d categories, got %d", suggestionMaxCategories, len(seen))
	}
}

func TestMergeSuggestionProducesOpenItem(t *testing.T) {
	questions := []catalog.Question{{ID: "q1", CategoryID: "GOV", RiskLevel: catalog.RiskHigh, Departments: []string{catalog.AllDepartments}}}
	s := Suggestion{
		ID:         "s1",
		CategoryID: "GOV",
		QuestionID: "q1",
		Text:       "Renforcer : la politique d'usage",
		Horizon:    catalog.HorizonShort,
		Impact:     catalog.ImpactHigh,
		Effort:     catalog.EffortMedium,
	}

	item := MergeSuggestion(s, questions)
	if item.Status != StatusOpen {
		t.Fatalf("merged item must start OPEN, got %s", item.Status)
	}
	if item.ID == "" || item.Text != s.Text {
		t.Fatalf("unexpected merged item: %+v", item)
	}
	if item.PriorityScore <= 0 || item.ROIScore <= 0 {
		t.Fatalf("merged item must be scored: %+v", item)
	}
	// base (3*2+2)=8, deficiency 0.5 -> 8*1.0*1.35 = 10.8 with HIGH risk.
	if item.PriorityScore != 10.8 {
		t.Fatalf("expected priority 10.8, got %v", item.PriorityScore)
	}
}
