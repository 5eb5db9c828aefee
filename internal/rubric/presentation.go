package rubric

import "strings"

const (
	strengthFailures    = "Clear identification of multiple ethical failures."
	strengthImpact      = "You considered the impact on the people affected."
	strengthRecs        = "You proposed corrective actions."
	strengthTerminology = "Good use of ethical and legal terminology."
	strengthStructure   = "Well-structured answer."

	feedbackCommend = "Excellent work. Your answer addresses the key failures, their impact, and what should have been done."
	feedbackHeader  = "To improve:"

	maxStrengths = 3
)

// buildStrengths checks conditions in fixed order and keeps the first three
// that hold.
func buildStrengths(l criterionLevels) []string {
	type cond struct {
		ok   bool
		text string
	}
	conds := []cond{
		{l.failures == LevelSecure, strengthFailures},
		{l.impact >= LevelDeveloping, strengthImpact},
		{l.recommendations >= LevelDeveloping, strengthRecs},
		{l.terminology == LevelSecure, strengthTerminology},
		{l.structure == LevelSecure, strengthStructure},
	}
	out := []string{}
	for _, c := range conds {
		if !c.ok {
			continue
		}
		out = append(out, c.text)
		if len(out) == maxStrengths {
			break
		}
	}
	return out
}

func statusForLevel(l Level) string {
	switch {
	case l >= LevelSecure:
		return StatusOK
	case l == LevelDeveloping:
		return StatusMid
	default:
		return StatusBad
	}
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

// buildTags produces the five fixed dimensions. Ethical awareness takes the
// better of the failures and impact tiers.
func buildTags(l criterionLevels) []Tag {
	return []Tag{
		{Name: "Ethical awareness", Status: statusForLevel(maxLevel(l.failures, l.impact))},
		{Name: "Legal awareness", Status: statusForLevel(l.terminology)},
		{Name: "Impact evaluation", Status: statusForLevel(l.impact)},
		{Name: "Practical judgement", Status: statusForLevel(l.recommendations)},
		{Name: "Structure & clarity", Status: statusForLevel(l.structure)},
	}
}

func markForLevel(l Level) string {
	switch {
	case l >= LevelSecure:
		return MarkSecure
	case l == LevelDeveloping:
		return MarkDeveloping
	default:
		return MarkMissing
	}
}

// impactGridLevel re-derives a tier from the raw impact detectors. It is
// intentionally NOT the same rule as evalImpact: a single positive detector
// already shows Developing here, while the criterion level stays Missing.
// The tag and grid views of impact are allowed to diverge.
func impactGridLevel(sig impactSignals) Level {
	switch {
	case sig.individuals && sig.harm && sig.trustOrFair:
		return LevelSecure
	case sig.individuals || sig.harm || sig.trustOrFair:
		return LevelDeveloping
	default:
		return LevelMissing
	}
}

// legalGridStatus works off the raw terminology boolean rather than the
// terminology level. Kept separate from the tag derivation on purpose.
func legalGridStatus(usesTerms bool) string {
	if usesTerms {
		return MarkSecure
	}
	return MarkMissing
}

func buildGrid(l criterionLevels, sig impactSignals, usesTerms bool) Grid {
	return Grid{
		Ethical:         markForLevel(l.failures),
		Impact:          markForLevel(impactGridLevel(sig)),
		Legal:           legalGridStatus(usesTerms),
		Recommendations: markForLevel(l.recommendations),
		Structure:       markForLevel(l.structure),
	}
}

func buildFeedback(notes []string) string {
	if len(notes) == 0 {
		return feedbackCommend
	}
	var b strings.Builder
	b.WriteString(feedbackHeader)
	for _, n := range notes {
		b.WriteString("\n- ")
		b.WriteString(n)
	}
	return b.String()
}
