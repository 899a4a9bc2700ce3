package store

import (
	"strconv"
	"time"

	"github.com/estante-app/estante/log"
	"github.com/estante-app/estante/model"
	"go.uber.org/zap"
)

// ListBooks returns a copy of the collection.
func (s *Store) ListBooks() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := s.snapshot()
	list := make([]model.Book, len(books))
	copy(list, books)
	return list
}

// GetBookByID returns the matching book, or false when the id is unknown.
func (s *Store) GetBookByID(id string) (*model.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.snapshot() {
		if book.ID == id {
			b := book
			return &b, true
		}
	}
	return nil, false
}

// AddBook assigns a fresh id and today's date and appends the book.
// Field validation is the caller's job.
func (s *Store) AddBook(create model.BookCreate) model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := model.Book{
		ID:          s.nextID(),
		Title:       create.Title,
		Author:      create.Author,
		Genre:       create.Genre,
		Year:        create.Year,
		Pages:       create.Pages,
		CurrentPage: create.CurrentPage,
		Status:      create.Status,
		Rating:      create.Rating,
		Synopsis:    create.Synopsis,
		Notes:       create.Notes,
		Cover:       create.Cover,
		ISBN:        create.ISBN,
		DateAdded:   time.Now().Format("2006-01-02"),
	}

	books := s.snapshot()
	next := make([]model.Book, 0, len(books)+1)
	next = append(next, books...)
	next = append(next, book)
	s.bucket.Write(next)

	log.Debug("Added book", zap.String("id", book.ID), zap.String("title", book.Title))
	return book
}

// UpdateBook merges the patch into the matching book. An unknown id is
// a silent no-op.
func (s *Store) UpdateBook(id string, patch *model.BookPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := s.snapshot()
	next := make([]model.Book, len(books))
	copy(next, books)
	for i := range next {
		if next[i].ID == id {
			patch.Apply(&next[i])
			s.bucket.Write(next)
			return
		}
	}
}

// RemoveBook removes the matching book. An unknown id is a silent no-op.
func (s *Store) RemoveBook(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := s.snapshot()
	next := make([]model.Book, 0, len(books))
	for _, book := range books {
		if book.ID != id {
			next = append(next, book)
		}
	}
	if len(next) != len(books) {
		s.bucket.Write(next)
	}
}

// UpdateReadingStatus sets the status and the progress marker. When no
// page is supplied the marker defaults to the full page count for LIDO
// and to 0 for every other status.
func (s *Store) UpdateReadingStatus(id string, status model.ReadingStatus, currentPage *int) {
	page := 0
	if currentPage != nil {
		page = *currentPage
	} else if status == model.StatusLido {
		if book, ok := s.GetBookByID(id); ok {
			page = book.Pages
		}
	}

	s.UpdateBook(id, &model.BookPatch{
		Status:      &status,
		CurrentPage: &page,
	})
}

// ResetBooks overwrites the whole collection with the default catalog.
// Destructive; confirmation is the caller's concern.
func (s *Store) ResetBooks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bucket.Write(model.SeedBooks())
	log.Info("Book collection reset to default catalog")
}

// nextID derives an id from the wall clock, bumped past the previous id
// so ids stay unique within a run. Callers must hold s.mu.
func (s *Store) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}
