package plan

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeText lowercases, strips diacritics and non-alphanumerics,
// and collapses whitespace.
func normalizeText(s string) string {
	lowered := strings.ToLower(s)
	if stripped, _, err := transform.String(stripDiacritics, lowered); err == nil {
		lowered = stripped
	}
	var b strings.Builder
	lastSpace := true
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenSet splits normalized text into words longer than 2 characters.
func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeText(s)) {
		if len(w) > 2 {
			out[w] = struct{}{}
		}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

const duplicateThreshold = 0.5

// clusterDuplicates assigns shared DUP-<n> group ids to items whose
// token sets overlap at or above the Jaccard threshold. Single-pass,
// anchor-based greedy grouping: an item already grouped is skipped as a
// future anchor but may have joined an earlier group. Not transitive
// closure; O(n²) is fine for plans of tens of items.
func clusterDuplicates(items []Item) {
	tokens := make([]map[string]struct{}, len(items))
	for i := range items {
		tokens[i] = tokenSet(items[i].Text)
	}

	groupSeq := 0
	for i := range items {
		if items[i].DuplicateGroupID != "" {
			continue
		}
		group := []int{i}
		for j := i + 1; j < len(items); j++ {
			if items[j].DuplicateGroupID != "" {
				continue
			}
			if jaccard(tokens[i], tokens[j]) >= duplicateThreshold {
				group = append(group, j)
			}
		}
		if len(group) < 2 {
			continue
		}
		groupSeq++
		id := fmt.Sprintf("DUP-%d", groupSeq)
		for _, idx := range group {
			items[idx].DuplicateGroupID = id
		}
	}
}
