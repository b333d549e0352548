package plan

import (
	"strings"
	"testing"

	"synapflow-backend/internal/scoring"
)

func summaryScorecard() scoring.Scorecard {
	return scoring.Scorecard{
		AssessmentID: "a1",
		Global:       42.5,
		AICore:       40.2,
		Maturity:     scoring.MaturityDeveloped,
		Categories: []scoring.CategoryScore{
			{CategoryID: "STRATEGY", Name: "Stratégie", Percent: 70, HasData: true},
			{CategoryID: "GOVERNANCE", Name: "Gouvernance", Percent: 25, HasData: true},
			{CategoryID: "DATA_AI", Name: "Données", Percent: 55, HasData: true},
			{CategoryID: "TECH", Name: "Technologie", Percent: 0, HasData: false},
		},
	}
}

func TestExecutiveSummaryContent(t *testing.T) {
	p := Plan{
		AssessmentID: "a1",
		Items: []Item{
			{Text: "Action mineure", Horizon: "3-6m", PriorityScore: 3.5},
			{Text: "Action majeure", Horizon: "0-90j", PriorityScore: 9.2},
		},
	}

	out := ExecutiveSummary(summaryScorecard(), p)

	if !strings.Contains(out, "Score global : 42.5% (Développé)") {
		t.Fatalf("missing global line:\n%s", out)
	}
	if !strings.Contains(out, "Stratégie : 70.0%") {
		t.Fatalf("missing top category:\n%s", out)
	}
	if !strings.Contains(out, "Technologie : pas de données") {
		t.Fatalf("no-data category must be labelled, not scored 0%%:\n%s", out)
	}
	// Highest priority action listed first.
	if !strings.Contains(out, "1. [0-90j] Action majeure (priorité 9.20)") {
		t.Fatalf("missing ranked action:\n%s", out)
	}
}

func TestExecutiveSummaryDeterministic(t *testing.T) {
	sc := summaryScorecard()
	p := Plan{AssessmentID: "a1", Items: []Item{{Text: "a", PriorityScore: 1, Horizon: "0-90j"}}}
	if ExecutiveSummary(sc, p) != ExecutiveSummary(sc, p) {
		t.Fatalf("summary must be deterministic")
	}
}

func TestExecutiveSummaryEmptyPlan(t *testing.T) {
	out := ExecutiveSummary(summaryScorecard(), Plan{AssessmentID: "a1"})
	if !strings.Contains(out, "Aucune action déclenchée") {
		t.Fatalf("expected empty-plan marker:\n%s", out)
	}
}
