package v1

import (
	"encoding/json"
	"net/http"

	"github.com/estante-app/estante/http/request"
	"github.com/estante-app/estante/http/response"
	"github.com/estante-app/estante/log"
	"github.com/estante-app/estante/model"
	"github.com/estante-app/estante/validator"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books := h.store.ListBooks()

	if status := request.QueryStringParam(r, "status", ""); status != "" {
		filter := model.ReadingStatus(status)
		if !filter.IsValid() {
			response.BadRequest(w, r, errors.Errorf("unknown reading status %q", status))
			return
		}
		filtered := make([]model.Book, 0, len(books))
		for _, book := range books {
			if book.Status == filter {
				filtered = append(filtered, book)
			}
		}
		books = filtered
	}

	response.OK(w, r, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")
	book, ok := h.store.GetBookByID(id)
	if !ok {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	var create model.BookCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Warn("Failed to decode book create request", zap.Error(err))
		response.BadRequest(w, r, errors.Wrap(err, "invalid request body"))
		return
	}

	if errs := validator.ValidateBookCreate(&create); len(errs) > 0 {
		response.UnprocessableEntity(w, r, errs)
		return
	}

	book := h.store.AddBook(create)
	response.Created(w, r, book)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")
	target, ok := h.store.GetBookByID(id)
	if !ok {
		// The store itself treats an unknown id as a no-op; the API is
		// stricter so callers can tell the difference.
		response.NotFound(w, r)
		return
	}

	var patch model.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn("Failed to decode book patch", zap.Error(err))
		response.BadRequest(w, r, errors.Wrap(err, "invalid request body"))
		return
	}

	if errs := validator.ValidateBookPatch(&patch, target); len(errs) > 0 {
		response.UnprocessableEntity(w, r, errs)
		return
	}

	h.store.UpdateBook(id, &patch)
	book, _ := h.store.GetBookByID(id)
	response.OK(w, r, book)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")
	if _, ok := h.store.GetBookByID(id); !ok {
		response.NotFound(w, r)
		return
	}
	h.store.RemoveBook(id)
	response.NoContent(w, r)
}

type bookStatusRequest struct {
	Status      model.ReadingStatus `json:"status"`
	CurrentPage *int                `json:"currentPage"`
}

func (h *Handler) updateBookStatus(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")
	if _, ok := h.store.GetBookByID(id); !ok {
		response.NotFound(w, r)
		return
	}

	var req bookStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to decode status request", zap.Error(err))
		response.BadRequest(w, r, errors.Wrap(err, "invalid request body"))
		return
	}
	if !req.Status.IsValid() {
		response.BadRequest(w, r, errors.Errorf("unknown reading status %q", req.Status))
		return
	}
	if req.CurrentPage != nil && *req.CurrentPage < 0 {
		response.BadRequest(w, r, errors.New("current page must not be negative"))
		return
	}

	h.store.UpdateReadingStatus(id, req.Status, req.CurrentPage)
	book, _ := h.store.GetBookByID(id)
	response.OK(w, r, book)
}

// resetBooks wipes every change and restores the default catalog. The
// confirmation dialog lives client-side.
func (h *Handler) resetBooks(w http.ResponseWriter, r *http.Request) {
	h.store.ResetBooks()
	response.OK(w, r, h.store.ListBooks())
}

func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, model.Genres)
}
