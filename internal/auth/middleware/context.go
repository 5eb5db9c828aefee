package auth

import "context"

type ctxKey struct{}

var ctxKeySub = ctxKey{}

// WithSubject records the authenticated user id; JWTMiddleware sets it from
// the token's sub claim.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySub); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
