// Package audit appends auth-related events to an append-only log. Answer
// text and scores are never written here; submissions leave no trace.
package audit

import (
	"context"
	"database/sql"
	"time"
)

const (
	EventGuestCreated    = "GuestCreated"
	EventGuestResumed    = "GuestResumed"
	EventLoginSucceeded  = "LoginSucceeded"
	EventPasswordChanged = "PasswordChanged"
)

type Event struct {
	Type     string
	Subject  string // user id
	DataJSON string
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if e.DataJSON == "" {
		e.DataJSON = "{}"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_events (typ, subject, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Subject, e.DataJSON, time.Now().Unix())
	return err
}
