package rbac

import (
	"context"
	"strings"
)

// Role → permissions. Students submit answers; only teachers and admins may
// read the reference material (model answer, frameworks) directly — students
// earn it by clearing the word gate.
var RolePermissions = map[string][]string{
	"student": {
		"case:view",
		"answer:submit",
		"user:change_password",
	},
	"teacher": {
		"case:view",
		"answer:submit",
		"reference:view",
		"users:bulk_upsert",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}

func Has(role, perm string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if matchPerm(p, perm) {
			return true
		}
	}
	return false
}

func HasAny(role string, perms ...string) bool {
	for _, p := range perms {
		if Has(role, p) {
			return true
		}
	}
	return false
}

func matchPerm(pattern, perm string) bool {
	if pattern == "*" || pattern == perm {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(perm, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

// ---- role in context ----

type ctxKey struct{}

var ctxKeyRole = ctxKey{}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

func RoleFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyRole); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
