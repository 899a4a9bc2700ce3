package v1

import (
	"net/http"

	"github.com/estante-app/estante/http/response"
	"github.com/estante-app/estante/stats"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	books := h.store.ListBooks()
	response.OK(w, r, stats.Dashboard(books))
}

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	books := h.store.ListBooks()
	response.OK(w, r, stats.Advanced(books))
}
