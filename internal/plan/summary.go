package plan

import (
	"fmt"
	"sort"
	"strings"

	"synapflow-backend/internal/scoring"
)

// ExecutiveSummary renders a fixed-format text block from a scorecard
// and its plan: the three strongest and weakest categories plus the
// five highest-priority actions. Deterministic for identical inputs.
func ExecutiveSummary(sc scoring.Scorecard, p Plan) string {
	categories := append([]scoring.CategoryScore{}, sc.Categories...)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Percent != categories[j].Percent {
			return categories[i].Percent > categories[j].Percent
		}
		return categories[i].CategoryID < categories[j].CategoryID
	})

	top := categories
	if len(top) > 3 {
		top = top[:3]
	}
	bottom := categories
	if len(bottom) > 3 {
		bottom = bottom[len(bottom)-3:]
	}

	items := append([]Item{}, p.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PriorityScore != items[j].PriorityScore {
			return items[i].PriorityScore > items[j].PriorityScore
		}
		return items[i].Text < items[j].Text
	})
	if len(items) > 5 {
		items = items[:5]
	}

	var b strings.Builder
	b.WriteString("Synthèse exécutive — maturité IA\n")
	fmt.Fprintf(&b, "Score global : %.1f%% (%s)\n", sc.Global, sc.Maturity)
	fmt.Fprintf(&b, "Score cœur IA : %.1f%%\n", sc.AICore)

	b.WriteString("\nPoints forts :\n")
	writeCategoryLines(&b, top)

	b.WriteString("\nPoints d'attention :\n")
	writeCategoryLines(&b, bottom)

	b.WriteString("\nActions prioritaires :\n")
	if len(items) == 0 {
		b.WriteString("- Aucune action déclenchée\n")
	}
	for i, item := range items {
		fmt.Fprintf(&b, "%d. [%s] %s (priorité %.2f)\n", i+1, item.Horizon, item.Text, item.PriorityScore)
	}
	return b.String()
}

func writeCategoryLines(b *strings.Builder, categories []scoring.CategoryScore) {
	if len(categories) == 0 {
		b.WriteString("- Aucune donnée\n")
		return
	}
	for _, c := range categories {
		name := c.Name
		if name == "" {
			name = c.CategoryID
		}
		if c.HasData {
			fmt.Fprintf(b, "- %s : %.1f%%\n", name, c.Percent)
		} else {
			fmt.Fprintf(b, "- %s : pas de données\n", name)
		}
	}
}
