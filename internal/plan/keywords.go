package plan

import "strings"

// actionTypeClass is one ordered keyword class; the first class with a
// matching keyword wins.
type actionTypeClass struct {
	name     string
	keywords []string
}

// Keyword lists are matched against the normalized (lowercase,
// diacritic-free) action text, so French and English variants collapse.
var actionTypeClasses = []actionTypeClass{
	{name: "Governance", keywords: []string{
		"gouvernance", "governance", "politique", "policy", "charte",
		"comite", "conformite", "compliance", "rgpd", "strategie",
		"strategy", "feuille de route", "roadmap", "sponsor",
	}},
	{name: "Data", keywords: []string{
		"donnee", "data", "catalogue", "catalog", "qualite", "quality",
		"referentiel", "dictionnaire",
	}},
	{name: "Tech", keywords: []string{
		"mlops", "pipeline", "registre", "registry", "cloud",
		"infrastructure", "deploiement", "deploy", "surveillance",
		"monitoring", "derive", "api", "plateforme", "platform",
	}},
	{name: "Process", keywords: []string{
		"processus", "process", "workflow", "procedure", "industrialis",
	}},
	{name: "People", keywords: []string{
		"formation", "training", "competence", "culture", "acculturation",
		"sensibilis", "talent", "recrutement",
	}},
	{name: "Risk", keywords: []string{
		"risque", "risk", "securite", "security", "biais", "bias",
		"audit", "incident", "vulnerabilite",
	}},
}

const actionTypeDefault = "General"

// classifyAction assigns a coarse action type from the action text.
func classifyAction(text string) string {
	normalized := normalizeText(text)
	for _, class := range actionTypeClasses {
		for _, kw := range class.keywords {
			if strings.Contains(normalized, kw) {
				return class.name
			}
		}
	}
	return actionTypeDefault
}
