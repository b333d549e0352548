package plan

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Mettre en place un registre de modèles", "mettre en place un registre de modeles"},
		{"  Qualité -- des   données!  ", "qualite des donnees"},
		{"Déjà-vu (v2)", "deja vu v2"},
	}
	for _, tc := range cases {
		if got := normalizeText(tc.in); got != tc.expected {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestClusterDuplicatesGroupsSimilarItems(t *testing.T) {
	items := []Item{
		{Text: "Mettre en place un registry modèles"},
		{Text: "Publier une politique GenAI"},
		{Text: "Mettre en place un registre de modèles"},
	}

	clusterDuplicates(items)

	if items[0].DuplicateGroupID == "" || items[0].DuplicateGroupID != items[2].DuplicateGroupID {
		t.Fatalf("similar items not grouped: %q vs %q", items[0].DuplicateGroupID, items[2].DuplicateGroupID)
	}
	if items[1].DuplicateGroupID != "" {
		t.Fatalf("unrelated item joined cluster: %q", items[1].DuplicateGroupID)
	}
	if items[0].DuplicateGroupID != "DUP-1" {
		t.Fatalf("expected sequential group id DUP-1, got %q", items[0].DuplicateGroupID)
	}
}

func TestClusterDuplicatesNoFalseGroups(t *testing.T) {
	items := []Item{
		{Text: "Publier une politique GenAI"},
		{Text: "Cataloguer les données critiques"},
		{Text: "Former les équipes métier"},
	}

	clusterDuplicates(items)

	for i, item := range items {
		if item.DuplicateGroupID != "" {
			t.Fatalf("item %d wrongly grouped: %q", i, item.DuplicateGroupID)
		}
	}
}

func TestJaccard(t *testing.T) {
	a := tokenSet("mettre en place un registre de modèles")
	b := tokenSet("mettre en place un registry modèles")
	if sim := jaccard(a, b); sim < duplicateThreshold {
		t.Fatalf("expected similarity >= %v, got %v", duplicateThreshold, sim)
	}
	if sim := jaccard(tokenSet("alpha beta"), tokenSet("gamma delta")); sim != 0 {
		t.Fatalf("expected 0 similarity, got %v", sim)
	}
	if sim := jaccard(nil, nil); sim != 0 {
		t.Fatalf("empty sets must yield 0, got %v", sim)
	}
}
