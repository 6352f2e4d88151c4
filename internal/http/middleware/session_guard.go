package middleware

import (
	"context"
	"net/http"

	"pocketledger/internal/session"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// SessionGuard rejects requests lacking a session credential before any
// store access. The raw credential is passed through unverified: possession
// of the cookie is the only authorization this service performs.
func SessionGuard(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := session.Read(r, cookieName)
			if credential == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"missing session credential"}`))
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, credential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext retrieves the session credential from request context.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(sessionIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
