package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/estante-app/estante/config"
	"github.com/estante-app/estante/log"
	"github.com/estante-app/estante/model"
	"github.com/estante-app/estante/store/kv"
)

// Initialize the logger and config
func init() {
	config.Opts = config.GetDefaultOptions()
	config.Opts.LogFile = filepath.Join(os.TempDir(), "estante-store-test.log")
	log.Logger = log.NewLogger()
}

func createTestStore(t *testing.T) *Store {
	t.Helper()
	dir, err := os.MkdirTemp("", "estante-store-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db, err := kv.Open(filepath.Join(dir, "estante.db"))
	if err != nil {
		t.Fatalf("Failed to open kv store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestSeedOnFirstRun(t *testing.T) {
	s := createTestStore(t)

	books := s.ListBooks()
	if len(books) != 10 {
		t.Fatalf("Expected 10 seeded books, got %d", len(books))
	}

	lido := make([]string, 0)
	for _, book := range books {
		if book.Status == model.StatusLido {
			lido = append(lido, book.ID)
		}
	}
	if len(lido) != 4 {
		t.Fatalf("Expected 4 LIDO books, got %d (%v)", len(lido), lido)
	}
	expected := map[string]bool{"1": true, "3": true, "7": true, "9": true}
	for _, id := range lido {
		if !expected[id] {
			t.Fatalf("Unexpected LIDO book id %s", id)
		}
	}
}

func TestAddBookAssignsUniqueIDs(t *testing.T) {
	s := createTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		book := s.AddBook(model.BookCreate{
			Title:  "X",
			Author: "Y",
			Status: model.StatusQueroLer,
		})
		if book.ID == "" {
			t.Fatal("Empty id assigned")
		}
		if seen[book.ID] {
			t.Fatalf("Duplicate id %s after %d adds", book.ID, i+1)
		}
		seen[book.ID] = true
		if book.DateAdded == "" {
			t.Fatal("dateAdded not assigned")
		}
	}
}

func TestAddThenRemoveLeavesLengthUnchanged(t *testing.T) {
	s := createTestStore(t)

	before := len(s.ListBooks())
	book := s.AddBook(model.BookCreate{
		Title:  "X",
		Author: "Y",
		Pages:  100,
		Status: model.StatusQueroLer,
		Genre:  "Ficção",
	})
	if len(s.ListBooks()) != before+1 {
		t.Fatal("Add did not grow the collection")
	}
	s.RemoveBook(book.ID)
	if len(s.ListBooks()) != before {
		t.Fatalf("Expected %d books after remove, got %d", before, len(s.ListBooks()))
	}
}

func TestUpdateBookIsIdempotent(t *testing.T) {
	s := createTestStore(t)

	title := "Nineteen Eighty-Four"
	page := 100
	patch := &model.BookPatch{Title: &title, CurrentPage: &page}

	s.UpdateBook("1", patch)
	once, _ := s.GetBookByID("1")
	s.UpdateBook("1", patch)
	twice, _ := s.GetBookByID("1")

	if *once != *twice {
		t.Fatalf("Applying the same patch twice changed the record: %+v vs %+v", once, twice)
	}
	if twice.Title != title || twice.CurrentPage != page {
		t.Fatalf("Patch not applied: %+v", twice)
	}
	if twice.DateAdded != "2024-01-15" {
		t.Fatalf("dateAdded must stay immutable, got %s", twice.DateAdded)
	}
}

// Concurrent reads against a fresh store must not race on the first
// load of the backing bucket.
func TestConcurrentReadsOnFreshStore(t *testing.T) {
	s := createTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			books := s.ListBooks()
			if len(books) != 10 {
				t.Errorf("Expected 10 books, got %d", len(books))
			}
			if _, ok := s.GetBookByID("1"); !ok {
				t.Error("Book 1 not found")
			}
		}()
	}
	wg.Wait()
}

func TestUpdateAndRemoveUnknownIDAreNoOps(t *testing.T) {
	s := createTestStore(t)

	before := s.ListBooks()
	title := "ghost"
	s.UpdateBook("does-not-exist", &model.BookPatch{Title: &title})
	s.RemoveBook("does-not-exist")
	after := s.ListBooks()

	if len(after) != len(before) {
		t.Fatalf("Collection length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Title != after[i].Title {
			t.Fatalf("Book %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

// An unknown id must not even touch the database: on a fresh store the
// catalog key is unwritten, and a no-op update or remove keeps it that way.
func TestUnknownIDIssuesNoDurableWrite(t *testing.T) {
	dir, err := os.MkdirTemp("", "estante-store-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	db, err := kv.Open(filepath.Join(dir, "estante.db"))
	if err != nil {
		t.Fatalf("Failed to open kv store: %v", err)
	}
	defer db.Close()

	s := NewStore(db)
	title := "ghost"
	s.UpdateBook("does-not-exist", &model.BookPatch{Title: &title})
	s.RemoveBook("does-not-exist")

	if _, ok, err := db.Get(booksKey); err != nil {
		t.Fatalf("Failed to read key: %v", err)
	} else if ok {
		t.Fatal("No-op mutation persisted the collection")
	}
}

func TestUpdateReadingStatusDefaultsCurrentPage(t *testing.T) {
	s := createTestStore(t)

	// Completing without an explicit page jumps to the last page.
	s.UpdateReadingStatus("4", model.StatusLido, nil)
	book, _ := s.GetBookByID("4")
	if book.Status != model.StatusLido {
		t.Fatalf("Status not updated: %s", book.Status)
	}
	if book.CurrentPage != book.Pages {
		t.Fatalf("Expected currentPage %d, got %d", book.Pages, book.CurrentPage)
	}

	// Any other status without an explicit page resets to 0.
	s.UpdateReadingStatus("4", model.StatusQueroLer, nil)
	book, _ = s.GetBookByID("4")
	if book.CurrentPage != 0 {
		t.Fatalf("Expected currentPage 0, got %d", book.CurrentPage)
	}

	// An explicit page wins.
	page := 42
	s.UpdateReadingStatus("4", model.StatusLendo, &page)
	book, _ = s.GetBookByID("4")
	if book.CurrentPage != 42 {
		t.Fatalf("Expected currentPage 42, got %d", book.CurrentPage)
	}
}

func TestResetBooksRestoresSeedCatalog(t *testing.T) {
	s := createTestStore(t)

	s.AddBook(model.BookCreate{Title: "X", Author: "Y", Status: model.StatusQueroLer})
	s.RemoveBook("2")
	title := "mutated"
	s.UpdateBook("1", &model.BookPatch{Title: &title})

	s.ResetBooks()

	books := s.ListBooks()
	seed := model.SeedBooks()
	if len(books) != len(seed) {
		t.Fatalf("Expected %d books after reset, got %d", len(seed), len(books))
	}
	for i := range seed {
		if books[i].ID != seed[i].ID || books[i].Title != seed[i].Title ||
			books[i].Status != seed[i].Status || books[i].DateAdded != seed[i].DateAdded ||
			books[i].CurrentPage != seed[i].CurrentPage {
			t.Fatalf("Book %d differs from seed: %+v vs %+v", i, books[i], seed[i])
		}
	}
}

// Mutations must survive a process restart over the same database file.
func TestPersistenceAcrossStores(t *testing.T) {
	dir, err := os.MkdirTemp("", "estante-store-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "estante.db")

	db, err := kv.Open(path)
	if err != nil {
		t.Fatalf("Failed to open kv store: %v", err)
	}
	s := NewStore(db)
	added := s.AddBook(model.BookCreate{Title: "Persistent", Author: "Writer", Status: model.StatusLendo})
	db.Close()

	db, err = kv.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen kv store: %v", err)
	}
	defer db.Close()
	fresh := NewStore(db)
	book, ok := fresh.GetBookByID(added.ID)
	if !ok {
		t.Fatal("Added book not found after reopen")
	}
	if book.Title != "Persistent" || book.Status != model.StatusLendo {
		t.Fatalf("Book did not survive restart: %+v", book)
	}
}
