package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/caseprep/ethics-tutor/internal/api/http"
	"github.com/caseprep/ethics-tutor/internal/audit"
	"github.com/caseprep/ethics-tutor/internal/auth"
	authmw "github.com/caseprep/ethics-tutor/internal/auth/middleware"
	"github.com/caseprep/ethics-tutor/internal/casebank"
	"github.com/caseprep/ethics-tutor/internal/config"
	"github.com/caseprep/ethics-tutor/internal/db"
	"github.com/caseprep/ethics-tutor/internal/rbac"
	"github.com/caseprep/ethics-tutor/internal/rubric"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB (sessions and audit only; answers are never stored) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	events := audit.NewEventRepo(dbh)

	// --- Auth ---
	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Rubric evaluator (pure; shared across all requests) ---
	eval := rubric.NewEvaluator(casebank.Reference())

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", authmw.LoginHandler(authSvc, dbh, cfg, events))
	}
	if cfg.EnableGuestAuth {
		r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg, events))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.Use(authmw.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

		pr.With(rbac.Require("case:view")).
			Get("/api/case", api.GetCaseHandler(casebank.Default))

		pr.With(rbac.Require("answer:submit")).
			Post("/api/answers", api.SubmitAnswerHandler(eval, cfg.MaxAnswerChars))

		// Teacher/admin: model answer and frameworks without the word gate
		pr.With(rbac.Require("reference:view")).
			Get("/api/reference", api.GetReferenceHandler())

		pr.With(rbac.Require("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh, events))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			api.MountStatic(r, cfg.StaticDir)
		}
	}

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
