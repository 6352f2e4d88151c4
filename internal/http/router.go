package httpserver

import (
	"net/http"
)

// Routes groups HTTP handlers.
type Routes struct {
	CreateTransaction http.HandlerFunc
	ListTransactions  http.HandlerFunc
	GetTransaction    http.HandlerFunc
	Summary           http.HandlerFunc
	Health            http.HandlerFunc
}

// NewRouter registers service endpoints. Reads are wrapped with the session
// guard; create is open so it can bootstrap a session. The summary route is
// more specific than the {id} wildcard, so registration order is irrelevant.
func NewRouter(routes Routes, guard func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()
	if routes.CreateTransaction != nil {
		mux.Handle("POST /transactions", routes.CreateTransaction)
	}
	if routes.ListTransactions != nil {
		mux.Handle("GET /transactions", guard(routes.ListTransactions))
	}
	if routes.Summary != nil {
		mux.Handle("GET /transactions/summary", guard(routes.Summary))
	}
	if routes.GetTransaction != nil {
		mux.Handle("GET /transactions/{id}", guard(routes.GetTransaction))
	}
	if routes.Health != nil {
		mux.Handle("GET /health", routes.Health)
	}
	return mux
}
