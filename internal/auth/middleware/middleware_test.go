package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caseprep/ethics-tutor/internal/rbac"
)

func TestIssueAndParseJWT(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("student-1", "student")
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if c.Sub != "student-1" || c.Role != "student" {
		t.Errorf("claims = %+v", c)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("u", "student")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-b").Parse(tok); err == nil {
		t.Error("token signed with another secret must not parse")
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := NewAuthService("test-secret")

	var gotSub, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	})
	h := JWTMiddleware(a)(next)

	// No bearer
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing bearer: status = %d", rec.Code)
	}

	// Garbage token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d", rec.Code)
	}

	// Valid token puts subject and role in context
	tok, _ := a.IssueJWT("teacher-7", "teacher")
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d", rec.Code)
	}
	if gotSub != "teacher-7" || gotRole != "teacher" {
		t.Errorf("context sub=%q role=%q", gotSub, gotRole)
	}
}
