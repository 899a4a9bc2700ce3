package store

import (
	"sync"

	"github.com/estante-app/estante/model"
	"github.com/estante-app/estante/store/kv"
)

// booksKey is the fixed key the whole catalog lives under, one JSON
// array of books.
const booksKey = "bookshelf-books"

// Store owns the canonical book collection. Every mutation replaces the
// whole slice and writes through to the key-value store within the same
// call; failed persistence is logged by the bucket and never surfaces.
type Store struct {
	mu     sync.RWMutex
	db     *kv.Store
	bucket *kv.Bucket[[]model.Book]

	// lastID guards against two adds landing on the same millisecond.
	lastID int64
}

func NewStore(db *kv.Store) *Store {
	s := &Store{
		db:     db,
		bucket: kv.NewBucket[[]model.Book](db, booksKey),
	}
	// Load the bucket once here. Later reads run under mu.RLock and must
	// not be the first load, which mutates the bucket.
	s.bucket.Read(model.SeedBooks())
	return s
}

func (s *Store) Ping() error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping()
}

// snapshot returns the current collection. The bucket is loaded in
// NewStore, so the fallback is never consulted here. Callers must
// hold s.mu.
func (s *Store) snapshot() []model.Book {
	return s.bucket.Read(nil)
}
