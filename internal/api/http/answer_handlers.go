package http

import (
	"encoding/json"
	"net/http"

	"github.com/caseprep/ethics-tutor/internal/rubric"
)

// SubmitAnswerHandler runs the rubric evaluator over a student answer.
// The answer is capped here so oversized payloads never reach the engine;
// nothing about the submission is stored.
func SubmitAnswerHandler(eval *rubric.Evaluator, maxChars int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answer *string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Answer == nil {
			http.Error(w, "answer required", http.StatusBadRequest)
			return
		}
		if maxChars > 0 && len(*req.Answer) > maxChars {
			http.Error(w, "answer too long", http.StatusRequestEntityTooLarge)
			return
		}
		result := eval.Evaluate(*req.Answer)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}
