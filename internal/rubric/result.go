package rubric

// Level is the coarse tier a scored dimension lands in.
type Level int

const (
	LevelMissing Level = iota
	LevelDeveloping
	LevelSecure
)

// Tag statuses used by the dimension summary shown to students.
const (
	StatusOK  = "ok"
	StatusMid = "mid"
	StatusBad = "bad"
)

// Grid markers. The diagnostic grid renders one of these per row.
const (
	MarkSecure     = "Secure"
	MarkDeveloping = "Developing"
	MarkMissing    = "Missing"
)

// Framework is one regulatory/ethical framework entry returned with an
// ungated assessment. Expectation states what the framework requires;
// Case relates it to the fixed case.
type Framework struct {
	Name        string `json:"name"`
	Expectation string `json:"expectation"`
	Case        string `json:"case"`
}

// Reference is the static disclosure material handed to the evaluator at
// construction time. It is interpreted only in the sense that it is copied
// verbatim into ungated results.
type Reference struct {
	Frameworks  []Framework
	ModelAnswer string
}

// Tag is one of the five fixed assessment dimensions with its ok/mid/bad
// status.
type Tag struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Grid is the fixed-shape diagnostic grid. Each field holds a grid marker.
type Grid struct {
	Ethical         string `json:"ethical"`
	Impact          string `json:"impact"`
	Legal           string `json:"legal"`
	Recommendations string `json:"recs"`
	Structure       string `json:"structure"`
}

// Report carries everything disclosed once an answer clears the word gate.
type Report struct {
	Score       int         `json:"score"`
	Feedback    string      `json:"feedback"`
	Notes       []string    `json:"notes"`
	Strengths   []string    `json:"strengths"`
	Tags        []Tag       `json:"tags"`
	Grid        Grid        `json:"grid"`
	Frameworks  []Framework `json:"frameworks"`
	ModelAnswer string      `json:"model_answer"`
}

// Assessment is the evaluator's output. Report is nil exactly when Gated is
// true, so a gated result cannot leak the score, the model answer, or the
// framework material: the fields simply do not exist on it.
type Assessment struct {
	Gated     bool    `json:"gated"`
	WordCount int     `json:"word_count"`
	Message   string  `json:"message,omitempty"`
	Report    *Report `json:"report,omitempty"`
}
