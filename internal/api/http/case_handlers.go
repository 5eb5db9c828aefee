package http

import (
	"encoding/json"
	"net/http"

	"github.com/caseprep/ethics-tutor/internal/casebank"
)

// GetCaseHandler serves the case prompt and guidance. The model answer and
// framework notes are not part of this payload.
func GetCaseHandler(c casebank.Case) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c)
	}
}

// GetReferenceHandler serves the model answer and framework notes directly.
// Mounted behind rbac "reference:view"; students only see this material
// through an ungated assessment.
func GetReferenceHandler() http.HandlerFunc {
	ref := casebank.Reference()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"frameworks":   ref.Frameworks,
			"model_answer": ref.ModelAnswer,
		})
	}
}
