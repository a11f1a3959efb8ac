package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalHeader carries the acting user's ID, injected by the gateway.
const PrincipalHeader = "X-User-ID"

// Principal returns middleware that extracts the acting user's ID from the
// PrincipalHeader and stores it in the request context. Requests without the
// header (or with a malformed ID) pass through; handlers that require a
// principal reject them.
func Principal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get(PrincipalHeader); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					r = r.WithContext(WithPrincipal(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithPrincipal returns a context carrying the acting user's ID.
func WithPrincipal(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, principalKey, id)
}

// PrincipalFrom extracts the acting user's ID from the context.
func PrincipalFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(principalKey).(uuid.UUID)
	return id, ok
}
