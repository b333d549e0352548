package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"synapflow-backend/internal/catalog"
	"synapflow-backend/internal/scoring"
)

const (
	suggestionCategoryCutoff = 55.0
	suggestionUrgentCutoff   = 40.0
	suggestionMaxCategories  = 4
	suggestionsPerCategory   = 2
)

// Suggestions proposes gap-filling actions for categories scoring below
// 55%: up to two per category (worst four categories), aimed at the
// questions with the lowest mean answer. Texts already present in the
// plan are skipped. Advisory only; merging is an explicit caller action.
func Suggestions(sc scoring.Scorecard, p Plan, questions []catalog.Question, responses []scoring.Response) []Suggestion {
	weak := make([]scoring.CategoryScore, 0, len(sc.Categories))
	for _, c := range sc.Categories {
		if c.HasData && c.Percent < suggestionCategoryCutoff {
			weak = append(weak, c)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Percent != weak[j].Percent {
			return weak[i].Percent < weak[j].Percent
		}
		return weak[i].CategoryID < weak[j].CategoryID
	})
	if len(weak) > suggestionMaxCategories {
		weak = weak[:suggestionMaxCategories]
	}

	existing := make(map[string]bool, len(p.Items))
	for _, item := range p.Items {
		existing[strings.ToLower(strings.TrimSpace(item.Text))] = true
	}

	var out []Suggestion
	for _, cat := range weak {
		horizon := catalog.HorizonMedium
		if cat.Percent < suggestionUrgentCutoff {
			horizon = catalog.HorizonShort
		}

		type questionGap struct {
			question catalog.Question
			mean     float64
		}
		var gaps []questionGap
		for _, q := range questions {
			if q.CategoryID != cat.CategoryID {
				continue
			}
			mean, ok := QuestionMean(q.ID, responses)
			if !ok {
				continue
			}
			gaps = append(gaps, questionGap{question: q, mean: mean})
		}
		sort.SliceStable(gaps, func(i, j int) bool {
			if gaps[i].mean != gaps[j].mean {
				return gaps[i].mean < gaps[j].mean
			}
			return gaps[i].question.ID < gaps[j].question.ID
		})

		added := 0
		for _, gap := range gaps {
			if added >= suggestionsPerCategory {
				break
			}
			text := suggestionText(gap.question)
			if existing[strings.ToLower(text)] {
				continue
			}
			out = append(out, Suggestion{
				ID:         uuid.NewString(),
				CategoryID: cat.CategoryID,
				QuestionID: gap.question.ID,
				Text:       text,
				Horizon:    horizon,
				Impact:     catalog.ImpactHigh,
				Effort:     catalog.EffortMedium,
			})
			added++
		}
	}
	return out
}

func suggestionText(q catalog.Question) string {
	label := strings.TrimSpace(q.Text)
	label = strings.TrimSuffix(label, ".")
	return fmt.Sprintf("Renforcer : %s", label)
}

// MergeSuggestion converts an accepted suggestion into an open plan
// item, scored like a rule-emitted item with a neutral deficiency.
func MergeSuggestion(s Suggestion, questions []catalog.Question) Item {
	var q catalog.Question
	for _, candidate := range questions {
		if candidate.ID == s.QuestionID {
			q = candidate
			break
		}
	}
	return newItem(catalog.ActionDef{
		Horizon: s.Horizon,
		Text:    s.Text,
		Impact:  s.Impact,
		Effort:  s.Effort,
	}, s.CategoryID, s.QuestionID, 0.5, q)
}
