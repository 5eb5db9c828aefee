package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caseprep/ethics-tutor/internal/audit"
	authmw "github.com/caseprep/ethics-tutor/internal/auth/middleware"
	"github.com/caseprep/ethics-tutor/internal/config"
)

const guestCookie = "et_guest_id"

// GuestLoginHandler lets a browser practise without an account. The guest
// identity is a student row persisted behind an HttpOnly cookie so repeat
// visits keep the same username.
func GuestLoginHandler(a *authmw.AuthService, db *sql.DB, cfg config.Config, log *audit.EventRepo) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse existing guest from cookie
		if c, err := r.Cookie(guestCookie); err == nil && c.Value != "" {
			var username, role string
			err := db.QueryRowContext(r.Context(),
				`SELECT username, role FROM users WHERE id=$1`, c.Value).Scan(&username, &role)
			if err == nil && role == "student" && strings.HasPrefix(c.Value, "guest|") {
				tok, _ := a.IssueJWT(c.Value, role)
				setGuestCookie(w, c.Value)
				_ = log.Append(r.Context(), audit.Event{Type: audit.EventGuestResumed, Subject: c.Value})
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
				return
			}
		}

		// Create a new guest
		sfx := uuid.NewString()
		userID := "guest|" + sfx
		username := "guest-" + sfx[:8]
		role := "student"

		_, _ = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, role, created_at)
			 VALUES ($1,$2,$3,$4)`, userID, username, role, time.Now().Unix())

		tok, err := a.IssueJWT(userID, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		setGuestCookie(w, userID)
		_ = log.Append(r.Context(), audit.Event{Type: audit.EventGuestCreated, Subject: userID})
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}

func setGuestCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     guestCookie,
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}
