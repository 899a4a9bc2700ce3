package kv

import (
	"github.com/estante-app/estante/log"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Bucket keeps the authoritative in-memory value for one key and mirrors
// every write to the store as one JSON document. A missing key, an
// unavailable store or a malformed stored value all degrade to the
// caller-supplied fallback instead of surfacing an error.
//
// Bucket does no locking; callers serialize access.
type Bucket[T any] struct {
	store  *Store
	key    string
	value  T
	loaded bool
}

func NewBucket[T any](store *Store, key string) *Bucket[T] {
	return &Bucket[T]{store: store, key: key}
}

// Read returns the current value, loading it from the store on first
// use. fallback is returned unchanged when nothing usable is stored.
func (b *Bucket[T]) Read(fallback T) T {
	if b.loaded {
		return b.value
	}

	b.value = fallback
	b.loaded = true

	if b.store == nil {
		return b.value
	}

	raw, ok, err := b.store.Get(b.key)
	if err != nil {
		log.Error("Failed to read key from store", zap.String("key", b.key), zap.Error(err))
		return b.value
	}
	if !ok {
		return b.value
	}

	var decoded T
	if err := jsoniter.ConfigFastest.UnmarshalFromString(raw, &decoded); err != nil {
		// Treat a corrupted value as absent.
		log.Warn("Discarding malformed stored value", zap.String("key", b.key), zap.Error(err))
		return b.value
	}

	b.value = decoded
	return b.value
}

// Write replaces the in-memory value and mirrors it to the store with
// exactly one write. The in-memory value updates even when persistence
// fails; the failure is logged, not returned.
func (b *Bucket[T]) Write(v T) {
	b.value = v
	b.loaded = true
	b.persist()
}

// Update applies fn to the current value and writes the result, the
// read-modify-write mirror of Write.
func (b *Bucket[T]) Update(fallback T, fn func(old T) T) T {
	next := fn(b.Read(fallback))
	b.Write(next)
	return next
}

func (b *Bucket[T]) persist() {
	if b.store == nil {
		log.Warn("No store attached, keeping value in memory only", zap.String("key", b.key))
		return
	}

	raw, err := jsoniter.ConfigFastest.MarshalToString(b.value)
	if err != nil {
		log.Error("Failed to marshal value", zap.String("key", b.key), zap.Error(err))
		return
	}
	if err := b.store.Set(b.key, raw); err != nil {
		log.Error("Failed to persist value", zap.String("key", b.key), zap.Error(err))
	}
}
