package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CookieConfig describes the credential carrier policy.
type CookieConfig struct {
	Name string
	TTL  time.Duration
}

// Ensure returns the existing credential untouched, or mints a fresh one.
// A minted credential is a UUIDv4, so collisions are cryptographically
// negligible without any server-side coordination.
func Ensure(existing string) (credential string, isNew bool) {
	if strings.TrimSpace(existing) != "" {
		return existing, false
	}
	return uuid.NewString(), true
}

// Read extracts the session credential from the request cookie, empty when absent.
func Read(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Write sends the credential back to the client, scoped to the root path and
// bound to the configured validity window.
func Write(w http.ResponseWriter, cfg CookieConfig, credential string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    credential,
		Path:     "/",
		MaxAge:   int(cfg.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
