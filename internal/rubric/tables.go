package rubric

import "regexp"

// theme is one named cluster of alternative trigger substrings. A theme
// matches when any trigger appears in the lower-cased answer.
type theme struct {
	name     string
	triggers []string
}

// Failure themes for the "failures identified" criterion. Triggers are
// deliberately short stems so inflections still hit ("transparen" covers
// transparency/transparent).
var failureThemes = []theme{
	{name: "consent & transparency", triggers: []string{"consent", "transparen", "inform", "notice", "signage"}},
	{name: "lawful basis & privacy", triggers: []string{"lawful", "legal basis", "privacy", "data protection", "gdpr"}},
	{name: "bias & fairness", triggers: []string{"bias", "discrimin", "unfair", "fairness"}},
	{name: "accuracy & misidentification", triggers: []string{"accura", "misident", "false match", "false positive", "error rate"}},
	{name: "security & storage", triggers: []string{"security", "secure", "storage", "stored", "breach", "retention"}},
	{name: "governance & dpia", triggers: []string{"dpia", "impact assessment", "oversight", "governance", "accountab"}},
}

// Impact criterion detectors.
var (
	individualTerms = []string{"resident", "tenant", "occupant", "individual", "people", "person"}
	harmTerms       = []string{"harm", "distress", "suffer", "damage", "wrong", "risk", "locked out", "excluded"}
	trustTerms      = []string{"trust", "confidence", "reputation"}
	fairnessTerms   = []string{"fair", "discrimin", "equit", "bias"}
)

// Recommendation theme groups for the "recommendations" criterion.
var recommendationGroups = []theme{
	{name: "impact assessment", triggers: []string{"dpia", "impact assessment", "risk assessment"}},
	{name: "consult & inform", triggers: []string{"consent", "consult", "inform", "notice", "signage", "tell residents"}},
	{name: "bias & accuracy testing", triggers: []string{"test", "audit", "evaluat", "accuracy check"}},
	{name: "data minimisation", triggers: []string{"minimis", "minimiz", "retention", "delete", "only the data"}},
	{name: "security controls", triggers: []string{"encrypt", "access control", "secure storage", "safeguard"}},
	{name: "human oversight", triggers: []string{"human review", "human oversight", "appeal", "opt out", "opt-out", "alternative"}},
	{name: "policy & training", triggers: []string{"policy", "training", "governance", "guidelines", "procedure"}},
}

// Action indicators are matched whole-word, case-insensitively, and every
// occurrence counts.
var actionIndicatorRe = regexp.MustCompile(`(?i)\b(?:action|should|must|need to|recommend)\b`)

// Ethical/legal terminology criterion.
var terminologyTerms = []string{
	"gdpr", "dpia", "data protection", "privacy", "consent", "bias", "fairness", "transparency",
}

// Structure criterion: either both template headings, or two enumerated
// markers, or any one section phrase.
var (
	structureHeadings = []string{"failure 1", "failure 2"}
	structureMarkers  = []string{"1)", "2)"}
	structurePhrases  = []string{"key ethical", "why these failures", "what should have"}
)
