package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		RequestID(),
		Logging(h.logger),
		Metrics(),
	)

	// System
	mux.Handle("GET /{$}", chain(http.HandlerFunc(h.Root)))
	mux.Handle("GET /api/hello", chain(http.HandlerFunc(h.Hello)))
	mux.Handle("GET /test", chain(http.HandlerFunc(h.TestDatabase)))
	mux.Handle("GET /schema", chain(http.HandlerFunc(h.Schema)))

	// Flashcards
	mux.Handle("GET /api/flashcards", chain(http.HandlerFunc(h.ListFlashcards)))
	mux.Handle("POST /api/flashcards", chain(http.HandlerFunc(h.CreateFlashcard)))
	mux.Handle("GET /api/flashcards/{id}", chain(http.HandlerFunc(h.GetFlashcard)))
	mux.Handle("PUT /api/flashcards/{id}", chain(http.HandlerFunc(h.UpdateFlashcard)))
	mux.Handle("DELETE /api/flashcards/{id}", chain(http.HandlerFunc(h.DeleteFlashcard)))
}
