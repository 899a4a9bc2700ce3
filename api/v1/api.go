package v1

import (
	"net/http"

	"github.com/estante-app/estante/middleware"
	"github.com/estante-app/estante/store"
	"github.com/gorilla/mux"
)

type Handler struct {
	store *store.Store
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(store *store.Store) *Handler {
	return &Handler{
		store: store,
	}
}

func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	m := middleware.NewMiddleware()
	sr.Use(m.HandleCORS)
	sr.Use(m.LoggingRequest)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/books", handler.addBook).Methods(http.MethodPost)
	sr.HandleFunc("/books/reset", handler.resetBooks).Methods(http.MethodPost)
	sr.HandleFunc("/books/{id}", handler.getBook).Methods(http.MethodGet)
	sr.HandleFunc("/books/{id}", handler.updateBook).Methods(http.MethodPatch, http.MethodPut)
	sr.HandleFunc("/books/{id}", handler.deleteBook).Methods(http.MethodDelete)
	sr.HandleFunc("/books/{id}/status", handler.updateBookStatus).Methods(http.MethodPut)
	sr.HandleFunc("/dashboard", handler.getDashboard).Methods(http.MethodGet)
	sr.HandleFunc("/statistics", handler.getStatistics).Methods(http.MethodGet)
	sr.HandleFunc("/genres", handler.listGenres).Methods(http.MethodGet)
}
