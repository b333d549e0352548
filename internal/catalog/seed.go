package catalog

// Default returns the built-in reference catalog. Assessments snapshot
// it at creation so later catalog edits do not change historical scores.
func Default() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: "STRATEGY", Name: "Stratégie & Vision IA", Description: "Ambition, feuille de route et sponsoring de la démarche IA.", Weight: 1.5},
			{ID: "GOVERNANCE", Name: "Gouvernance & Conformité", Description: "Politiques d'usage, conformité réglementaire et comités de pilotage.", Weight: 1.2},
			{ID: "DATA_AI", Name: "Données & Plateformes", Description: "Qualité, accessibilité et outillage des données au service de l'IA.", Weight: 1.5},
			{ID: "TECH", Name: "Technologie & MLOps", Description: "Infrastructure, industrialisation et cycle de vie des modèles.", Weight: 1},
			{ID: "PEOPLE", Name: "Compétences & Culture", Description: "Formation, acculturation et organisation des équipes.", Weight: 1},
			{ID: "RISK", Name: "Risques & Sécurité", Description: "Maîtrise des risques, sécurité et biais des systèmes IA.", Weight: 1.2},
		},
		Departments: []Department{
			{ID: "DG", Name: "Direction Générale", DefaultWeight: 1},
			{ID: "DSI", Name: "Systèmes d'Information", DefaultWeight: 1},
			{ID: "DATA", Name: "Équipe Data", DefaultWeight: 1},
			{ID: "RH", Name: "Ressources Humaines", DefaultWeight: 1},
			{ID: "FIN", Name: "Finance", DefaultWeight: 1},
			{ID: "OPS", Name: "Opérations", DefaultWeight: 1},
			{ID: "MKT", Name: "Marketing", DefaultWeight: 1},
		},
		Questions: []Question{
			{ID: "q-strat-01", Code: "STR-01", Text: "Une feuille de route IA est formalisée et revue au moins une fois par an.", CategoryID: "STRATEGY", Departments: []string{"DG"}, Weight: 2, RiskLevel: RiskMedium,
				Guidance: "Vérifier l'existence d'un document validé par la direction."},
			{ID: "q-strat-02", Code: "STR-02", Text: "Les cas d'usage IA sont priorisés selon leur valeur métier.", CategoryID: "STRATEGY", Departments: []string{"DG", "DSI", "DATA"}, Weight: 1},
			{ID: "q-strat-03", Code: "STR-03", Text: "Un budget dédié aux initiatives IA est identifié.", CategoryID: "STRATEGY", Departments: []string{"DG", "FIN"}, Weight: 1},
			{ID: "q-gov-01", Code: "GOV-01", Text: "Une politique d'usage de l'IA générative est publiée et connue des collaborateurs.", CategoryID: "GOVERNANCE", Departments: []string{AllDepartments}, Weight: 2, RiskLevel: RiskHigh,
				Guidance: "La politique couvre les usages autorisés, interdits et les données sensibles."},
			{ID: "q-gov-02", Code: "GOV-02", Text: "Un comité pilote les usages IA et arbitre les nouveaux projets.", CategoryID: "GOVERNANCE", Departments: []string{"DG", "DSI"}, Weight: 1},
			{ID: "q-gov-03", Code: "GOV-03", Text: "La conformité RGPD des traitements IA est documentée.", CategoryID: "GOVERNANCE", Departments: []string{"DSI", "DATA"}, Weight: 1.5, RiskLevel: RiskHigh},
			{ID: "q-data-01", Code: "DAT-01", Text: "Les données critiques sont cataloguées avec un propriétaire identifié.", CategoryID: "DATA_AI", Departments: []string{"DATA", "DSI"}, Weight: 1.5, RiskLevel: RiskMedium},
			{ID: "q-data-02", Code: "DAT-02", Text: "La qualité des données est mesurée et suivie par des indicateurs.", CategoryID: "DATA_AI", Departments: []string{"DATA"}, Weight: 1},
			{ID: "q-data-03", Code: "DAT-03", Text: "Les équipes métier accèdent aux données en libre-service de façon sécurisée.", CategoryID: "DATA_AI", Departments: []string{AllDepartments}, Weight: 1},
			{ID: "q-tech-01", Code: "TEC-01", Text: "Les modèles en production sont versionnés dans un registre central.", CategoryID: "TECH", Departments: []string{"DATA", "DSI"}, Weight: 1.5, RiskLevel: RiskMedium,
				ScaleDescriptors: []string{"Aucun suivi", "Suivi manuel", "Registre partiel", "Registre central", "Registre outillé", "Registre intégré CI/CD"}},
			{ID: "q-tech-02", Code: "TEC-02", Text: "Des pipelines automatisés couvrent l'entraînement et le déploiement des modèles.", CategoryID: "TECH", Departments: []string{"DATA"}, Weight: 1},
			{ID: "q-tech-03", Code: "TEC-03", Text: "La dérive des modèles en production est surveillée.", CategoryID: "TECH", Departments: []string{"DATA", "DSI"}, Weight: 1, RiskLevel: RiskMedium},
			{ID: "q-people-01", Code: "PEO-01", Text: "Un plan de formation IA est déployé pour les équipes concernées.", CategoryID: "PEOPLE", Departments: []string{"RH"}, Weight: 1.5},
			{ID: "q-people-02", Code: "PEO-02", Text: "Les collaborateurs sont sensibilisés aux apports et limites de l'IA.", CategoryID: "PEOPLE", Departments: []string{AllDepartments}, Weight: 1},
			{ID: "q-risk-01", Code: "RIS-01", Text: "Les risques des systèmes IA sont évalués avant mise en production.", CategoryID: "RISK", Departments: []string{"DSI", "DATA"}, Weight: 2, RiskLevel: RiskHigh},
			{ID: "q-risk-02", Code: "RIS-02", Text: "Les biais des modèles sont testés sur les populations sensibles.", CategoryID: "RISK", Departments: []string{"DATA"}, Weight: 1, RiskLevel: RiskHigh},
		},
		Rules: []ActionRule{
			{ID: "rule-strategy-low", Scope: ScopeCategory, CategoryID: "STRATEGY", Threshold: 2.5, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Formaliser une feuille de route IA validée par la direction", Impact: ImpactHigh, Effort: EffortMedium},
				{Horizon: HorizonMedium, Text: "Prioriser un portefeuille de cas d'usage IA selon la valeur métier", Impact: ImpactHigh, Effort: EffortMedium},
			}},
			{ID: "rule-gov-policy", Scope: ScopeQuestion, QuestionID: "q-gov-01", Threshold: 2, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Publier une politique d'usage de l'IA générative", Impact: ImpactHigh, Effort: EffortLow},
			}},
			{ID: "rule-gov-low", Scope: ScopeCategory, CategoryID: "GOVERNANCE", Threshold: 2, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Mettre en place un comité de gouvernance IA", Impact: ImpactHigh, Effort: EffortMedium},
				{Horizon: HorizonMedium, Text: "Documenter la conformité RGPD des traitements IA existants", Impact: ImpactMedium, Effort: EffortMedium},
			}},
			{ID: "rule-data-low", Scope: ScopeCategory, CategoryID: "DATA_AI", Threshold: 2.5, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Cataloguer les données critiques avec un propriétaire par domaine", Impact: ImpactHigh, Effort: EffortMedium},
				{Horizon: HorizonMedium, Text: "Définir des indicateurs de qualité de données et leur suivi", Impact: ImpactMedium, Effort: EffortMedium},
			}},
			{ID: "rule-tech-registry", Scope: ScopeQuestion, QuestionID: "q-tech-01", Threshold: 2, Actions: []ActionDef{
				{Horizon: HorizonMedium, Text: "Mettre en place un registre de modèles versionné", Impact: ImpactHigh, Effort: EffortMedium},
			}},
			{ID: "rule-tech-low", Scope: ScopeCategory, CategoryID: "TECH", Threshold: 2, Actions: []ActionDef{
				{Horizon: HorizonMedium, Text: "Automatiser les pipelines d'entraînement et de déploiement", Impact: ImpactMedium, Effort: EffortHigh},
				{Horizon: HorizonLong, Text: "Déployer une surveillance de la dérive des modèles en production", Impact: ImpactMedium, Effort: EffortMedium},
			}},
			{ID: "rule-people-low", Scope: ScopeCategory, CategoryID: "PEOPLE", Threshold: 2.5, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Lancer un programme de formation et d'acculturation IA", Impact: ImpactHigh, Effort: EffortMedium},
			}},
			{ID: "rule-risk-eval", Scope: ScopeQuestion, QuestionID: "q-risk-01", Threshold: 2.5, Actions: []ActionDef{
				{Horizon: HorizonShort, Text: "Instaurer une évaluation des risques avant toute mise en production IA", Impact: ImpactHigh, Effort: EffortMedium},
			}},
			{ID: "rule-risk-bias", Scope: ScopeQuestion, QuestionID: "q-risk-02", Threshold: 2, Actions: []ActionDef{
				{Horizon: HorizonMedium, Text: "Tester les biais des modèles sur les populations sensibles", Impact: ImpactMedium, Effort: EffortMedium},
			}},
		},
	}
}
