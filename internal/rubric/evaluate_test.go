package rubric

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

var testRef = Reference{
	Frameworks: []Framework{
		{Name: "UK GDPR", Expectation: "lawful, fair, transparent", Case: "no notice given"},
	},
	ModelAnswer: "model answer text",
}

func newTestEvaluator() *Evaluator { return NewEvaluator(testRef) }

// An answer that clears the gate but hits no trigger in any table.
const blandAnswer = "The cameras went up quickly and nobody explained what was " +
	"happening. Many of us felt uneasy about the new system because it seemed " +
	"rushed and confusing. The building managers never talked to anyone before " +
	"turning it on. It would have been better to slow down, ask questions " +
	"first, and then decide together whether this technology belonged at the " +
	"entrance at all."

// A 50-word answer that satisfies every criterion.
const fullMarksAnswer = "1) The residents were never asked for consent and " +
	"there was no transparency about the cameras. 2) The system showed bias, " +
	"and fairness suffered, which undermined trust and caused real harm to " +
	"residents. 3) An action plan: the provider should run a DPIA, inform " +
	"residents, and obtain consent before rollout."

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"a  b   c", 3},
		{"  leading and trailing  ", 3},
		{"line\nbreaks\tand tabs", 4},
	}
	for _, c := range cases {
		if got := WordCount(c.in); got != c.want {
			t.Errorf("WordCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestGateEmptyAnswer(t *testing.T) {
	res := newTestEvaluator().Evaluate("")
	if !res.Gated {
		t.Fatal("empty answer must be gated")
	}
	if res.WordCount != 0 {
		t.Errorf("word count = %d, want 0", res.WordCount)
	}
	if !strings.Contains(res.Message, "Please add to your answer.") {
		t.Errorf("gate message = %q", res.Message)
	}
	if res.Report != nil {
		t.Error("gated result must not carry a report")
	}
}

func TestGateBoundary(t *testing.T) {
	word49 := strings.TrimSpace(strings.Repeat("word ", 49))
	word50 := strings.TrimSpace(strings.Repeat("word ", 50))

	if res := newTestEvaluator().Evaluate(word49); !res.Gated {
		t.Error("49 words must be gated")
	}
	res := newTestEvaluator().Evaluate(word50)
	if res.Gated {
		t.Error("50 words must not be gated")
	}
	if res.Report == nil {
		t.Fatal("ungated result must carry a report")
	}
}

// Gated results must not leak a single report field through serialization.
func TestGatedJSONOmitsReport(t *testing.T) {
	res := newTestEvaluator().Evaluate("too short")
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	for _, forbidden := range []string{`"score"`, `"model_answer"`, `"frameworks"`, `"grid"`, `"tags"`} {
		if strings.Contains(string(b), forbidden) {
			t.Errorf("gated JSON leaks %q: %s", forbidden, b)
		}
	}
}

func TestUngatedAlwaysDisclosesReference(t *testing.T) {
	res := newTestEvaluator().Evaluate(blandAnswer)
	if res.Gated {
		t.Fatal("answer over the gate must be scored")
	}
	if res.Report.ModelAnswer != testRef.ModelAnswer {
		t.Errorf("model answer = %q, want reference text", res.Report.ModelAnswer)
	}
	if !reflect.DeepEqual(res.Report.Frameworks, testRef.Frameworks) {
		t.Error("frameworks must match the reference data exactly")
	}
}

func TestFullMarks(t *testing.T) {
	res := newTestEvaluator().Evaluate(fullMarksAnswer)
	if res.Gated {
		t.Fatal("must not be gated")
	}
	rep := res.Report
	if rep.Score != 10 {
		t.Errorf("score = %d, want 10 (notes: %v)", rep.Score, rep.Notes)
	}
	if len(rep.Strengths) != 3 {
		t.Errorf("strengths = %v, want exactly 3", rep.Strengths)
	}
	for _, tag := range rep.Tags {
		if tag.Status != StatusOK {
			t.Errorf("tag %s = %s, want %s", tag.Name, tag.Status, StatusOK)
		}
	}
	want := Grid{
		Ethical: MarkSecure, Impact: MarkSecure, Legal: MarkSecure,
		Recommendations: MarkSecure, Structure: MarkSecure,
	}
	if rep.Grid != want {
		t.Errorf("grid = %+v", rep.Grid)
	}
	if rep.ModelAnswer != testRef.ModelAnswer {
		t.Error("model answer must equal the reference text verbatim")
	}
}

func TestBlandAnswerScoresFloorWithAllNotes(t *testing.T) {
	res := newTestEvaluator().Evaluate(blandAnswer)
	if res.Gated {
		t.Fatal("must not be gated")
	}
	rep := res.Report
	// Only the impact floor contributes.
	if rep.Score != 1 {
		t.Errorf("score = %d, want 1 (notes: %v)", rep.Score, rep.Notes)
	}
	wantNotes := []string{
		noteFailuresNone, noteImpact, noteRecsNone, noteTerminology, noteStructure,
	}
	for _, n := range wantNotes {
		if !containsString(rep.Notes, n) {
			t.Errorf("notes missing %q; got %v", n, rep.Notes)
		}
	}
	if !strings.HasPrefix(rep.Feedback, "To improve:") {
		t.Errorf("feedback = %q, want To improve: prefix", rep.Feedback)
	}
}

func TestLengthAdvisories(t *testing.T) {
	short := newTestEvaluator().Evaluate(fullMarksAnswer) // 50 words
	if !containsString(short.Report.Notes, noteTooShort) {
		t.Errorf("short answer missing advisory; notes=%v", short.Report.Notes)
	}

	long := fullMarksAnswer + strings.Repeat(" further detail on every point follows here", 60)
	res := newTestEvaluator().Evaluate(long)
	if res.WordCount <= adviseMax {
		t.Fatalf("test answer only %d words", res.WordCount)
	}
	if !containsString(res.Report.Notes, noteTooLong) {
		t.Errorf("long answer missing advisory; notes=%v", res.Report.Notes)
	}
	if res.Report.Score != 10 {
		t.Errorf("padding must not change the score; got %d", res.Report.Score)
	}
}

func TestCommendationWhenNoNotes(t *testing.T) {
	// Full-marks content padded into the advisory-free 100-250 word band.
	answer := fullMarksAnswer + " " +
		strings.TrimSpace(strings.Repeat("The provider also needs to review every stage of the rollout carefully. ", 5))
	res := newTestEvaluator().Evaluate(answer)
	if res.WordCount < adviseMin || res.WordCount > adviseMax {
		t.Fatalf("test answer is %d words, want within 100-250", res.WordCount)
	}
	rep := res.Report
	if len(rep.Notes) != 0 {
		t.Fatalf("expected no notes, got %v", rep.Notes)
	}
	if rep.Feedback != feedbackCommend {
		t.Errorf("feedback = %q", rep.Feedback)
	}
}

func TestFailuresMonotonicity(t *testing.T) {
	base := strings.ToLower(blandAnswer)
	pts, lvl, _ := evalFailures(base)
	if pts != 0 || lvl != LevelMissing {
		t.Fatalf("base answer: pts=%d lvl=%d, want 0/Missing", pts, lvl)
	}

	richer := base + " the rollout ignored consent and showed bias."
	pts, lvl, _ = evalFailures(richer)
	if pts != pointsFail || lvl != LevelSecure {
		t.Errorf("two new themes: pts=%d lvl=%d, want %d/Secure", pts, lvl, pointsFail)
	}

	// End to end the score can only go up.
	before := newTestEvaluator().Evaluate(blandAnswer)
	after := newTestEvaluator().Evaluate(blandAnswer + " The rollout ignored consent and showed bias.")
	if after.Report.Score <= before.Report.Score {
		t.Errorf("score %d -> %d, want strictly increasing", before.Report.Score, after.Report.Score)
	}
}

func TestIdempotence(t *testing.T) {
	e := newTestEvaluator()
	for _, in := range []string{"", blandAnswer, fullMarksAnswer} {
		a := e.Evaluate(in)
		b := e.Evaluate(in)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Evaluate not deterministic for %q", in)
		}
		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		if string(ja) != string(jb) {
			t.Errorf("serialized output differs for %q", in)
		}
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	inputs := []string{
		blandAnswer,
		fullMarksAnswer,
		strings.Repeat("consent bias dpia privacy fairness transparency should must action ", 40),
		strings.TrimSpace(strings.Repeat("word ", 50)),
	}
	for _, in := range inputs {
		res := newTestEvaluator().Evaluate(in)
		if res.Gated {
			continue
		}
		if res.Report.Score < 0 || res.Report.Score > 10 {
			t.Errorf("score %d out of range for %q", res.Report.Score, in[:40])
		}
	}
}

func TestClampScore(t *testing.T) {
	for _, c := range []struct{ in, want int }{{-1, 0}, {0, 0}, {5, 5}, {10, 10}, {11, 10}} {
		if got := clampScore(c.in); got != c.want {
			t.Errorf("clampScore(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
