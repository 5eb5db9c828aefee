package rubric

import "strings"

const (
	gateWords  = 50
	adviseMin  = 100
	adviseMax  = 250
	scoreMax   = 10
	pointsFail = 3
	pointsImp  = 3
	pointsRec  = 2
)

// GateMessage is the only content a gated result carries besides the word
// count.
const GateMessage = "Please add to your answer. Write at least 50 words so it can be scored against the rubric."

// Improvement notes, in criterion order.
const (
	noteFailuresNone = "Name the specific failures in the case; aim to identify at least two."
	noteFailuresOne  = "You identified one failure; the case contains several more."
	noteImpact       = "Explain who is affected and what harm they could suffer."
	noteRecsNone     = "Recommend concrete actions the provider should take."
	noteRecsSome     = "Add more recommendations and state them as actions."
	noteTerminology  = "Use ethical and legal terms such as GDPR, DPIA or data protection."
	noteStructure    = "Structure your answer with numbered points or headings."
	noteTooShort     = "Aim for 100-250 words; yours is a bit short."
	noteTooLong      = "Aim for 100-250 words; yours is a bit long."
)

// Evaluator scores a free-text answer against the fixed rubric. It holds
// only the immutable reference material and is safe for concurrent use.
type Evaluator struct {
	ref Reference
}

func NewEvaluator(ref Reference) *Evaluator { return &Evaluator{ref: ref} }

// WordCount counts whitespace-separated tokens.
func WordCount(s string) int { return len(strings.Fields(s)) }

// Evaluate maps an answer to an assessment. Pure and deterministic: identical
// input always yields an identical result. Answers under the 50-word gate get
// a gated result with no report attached.
func (e *Evaluator) Evaluate(answer string) Assessment {
	words := WordCount(answer)
	if words < gateWords {
		return Assessment{Gated: true, WordCount: words, Message: GateMessage}
	}

	text := strings.ToLower(answer)
	notes := []string{}
	addNote := func(n string) {
		if n != "" {
			notes = append(notes, n)
		}
	}

	failPts, failLvl, failNote := evalFailures(text)
	addNote(failNote)

	sig := detectImpact(text)
	impPts, impLvl, impNote := evalImpact(sig)
	addNote(impNote)

	recPts, recLvl, recNote := evalRecommendations(text)
	addNote(recNote)

	termPts, termLvl, usesTerms, termNote := evalTerminology(text)
	addNote(termNote)

	structPts, structLvl, structNote := evalStructure(text)
	addNote(structNote)

	if words < adviseMin {
		addNote(noteTooShort)
	}
	if words > adviseMax {
		addNote(noteTooLong)
	}

	score := clampScore(failPts + impPts + recPts + termPts + structPts)

	levels := criterionLevels{
		failures:        failLvl,
		impact:          impLvl,
		recommendations: recLvl,
		terminology:     termLvl,
		structure:       structLvl,
	}

	report := &Report{
		Score:       score,
		Feedback:    buildFeedback(notes),
		Notes:       notes,
		Strengths:   buildStrengths(levels),
		Tags:        buildTags(levels),
		Grid:        buildGrid(levels, sig, usesTerms),
		Frameworks:  e.ref.Frameworks,
		ModelAnswer: e.ref.ModelAnswer,
	}
	return Assessment{WordCount: words, Report: report}
}

// criterionLevels collects the per-dimension tiers the presentation layer
// derives from.
type criterionLevels struct {
	failures        Level
	impact          Level
	recommendations Level
	terminology     Level
	structure       Level
}

func matchesTheme(text string, t theme) bool {
	for _, trig := range t.triggers {
		if strings.Contains(text, trig) {
			return true
		}
	}
	return false
}

func countThemes(text string, themes []theme) int {
	n := 0
	for _, t := range themes {
		if matchesTheme(text, t) {
			n++
		}
	}
	return n
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// evalFailures: two or more distinct failure themes earn full points.
func evalFailures(text string) (int, Level, string) {
	switch countThemes(text, failureThemes) {
	case 0:
		return 0, LevelMissing, noteFailuresNone
	case 1:
		return 1, LevelDeveloping, noteFailuresOne
	default:
		return pointsFail, LevelSecure, ""
	}
}

// impactSignals are the three independent impact detectors. trustOrFair is
// the trust-terms OR fairness-terms compound.
type impactSignals struct {
	individuals bool
	harm        bool
	trustOrFair bool
}

func detectImpact(text string) impactSignals {
	return impactSignals{
		individuals: containsAny(text, individualTerms),
		harm:        containsAny(text, harmTerms),
		trustOrFair: containsAny(text, trustTerms) || containsAny(text, fairnessTerms),
	}
}

// evalImpact never awards less than one point. The floor is intentional: the
// rubric treats impact as partially creditable even when nothing is detected.
func evalImpact(sig impactSignals) (int, Level, string) {
	peopleAndHarm := sig.individuals && sig.harm
	switch {
	case peopleAndHarm && sig.trustOrFair:
		return pointsImp, LevelSecure, ""
	case peopleAndHarm || sig.trustOrFair:
		return 2, LevelDeveloping, ""
	default:
		return 1, LevelMissing, noteImpact
	}
}

func evalRecommendations(text string) (int, Level, string) {
	groups := countThemes(text, recommendationGroups)
	actions := len(actionIndicatorRe.FindAllStringIndex(text, -1))
	switch {
	case groups >= 2 && actions >= 2:
		return pointsRec, LevelSecure, ""
	case groups >= 1:
		return 1, LevelDeveloping, noteRecsSome
	default:
		return 0, LevelMissing, noteRecsNone
	}
}

func evalTerminology(text string) (int, Level, bool, string) {
	if containsAny(text, terminologyTerms) {
		return 1, LevelSecure, true, ""
	}
	return 0, LevelMissing, false, noteTerminology
}

// evalStructure scores 0 when absent but reports level Developing rather
// than Missing; the rubric treats missing structure as partial for the
// level-based views.
func evalStructure(text string) (int, Level, string) {
	present := containsAll(text, structureHeadings) ||
		containsAll(text, structureMarkers) ||
		containsAny(text, structurePhrases)
	if present {
		return 1, LevelSecure, ""
	}
	return 0, LevelDeveloping, noteStructure
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > scoreMax {
		return scoreMax
	}
	return n
}
