package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")

// record is the pointer-side constraint every stored entity satisfies.
type record[T any] interface {
	*T
	GetID() string
	SetID(id string)
}

// Store owns the authoritative in-memory list for one record type and
// mirrors it into a single pretty-printed JSON array file. Every mutation
// rewrites the whole file before returning; the design assumes this
// process is the only writer of the file. The mutex only serializes the
// HTTP handler goroutines of this process.
type Store[T any, PT record[T]] struct {
	mu    sync.RWMutex
	path  string
	items []T
}

// Open ensures the containing directory exists and loads the backing
// file. A missing file is not an error; a corrupt one is logged and
// treated as an empty collection so the store always becomes usable.
func Open[T any, PT record[T]](path string) (*Store[T, PT], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir for %s: %w", path, err)
	}
	s := &Store[T, PT]{path: path}
	s.load()
	return s, nil
}

func (s *Store[T, PT]) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to read %s, starting empty: %v", s.path, err)
		}
		s.items = []T{}
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("failed to parse %s, starting empty: %v", s.path, err)
		s.items = []T{}
		return
	}
	s.items = items
	log.Printf("loaded %d records from %s", len(items), s.path)
}

// flush rewrites the backing file from the in-memory list. Callers must
// hold the write lock. A write failure is logged and returned, but the
// in-memory mutation that triggered it is never rolled back; memory and
// disk may diverge until the next successful write.
func (s *Store[T, PT]) flush() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("failed to persist %d records to %s: %v", len(s.items), s.path, err)
		return fmt.Errorf("persist %s: %w", s.path, err)
	}
	return nil
}

// Path returns the location of the backing file.
func (s *Store[T, PT]) Path() string { return s.path }

// Count returns the number of records currently held.
func (s *Store[T, PT]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetAll returns a snapshot copy of the full list; mutating it does not
// affect the store.
func (s *Store[T, PT]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// GetByID returns the matching record or ErrNotFound.
func (s *Store[T, PT]) GetByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if PT(&s.items[i]).GetID() == id {
			return s.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Add assigns a fresh id, appends the record and persists. The returned
// error reports only the flush; the record is in memory either way.
func (s *Store[T, PT]) Add(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	PT(&item).SetID(NewID())
	s.items = append(s.items, item)
	return item, s.flush()
}

// Update applies mutate to the matching record in place. Fields the
// mutator does not touch stay untouched. Returns ErrNotFound when the id
// is absent.
func (s *Store[T, PT]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if PT(&s.items[i]).GetID() == id {
			mutate(&s.items[i])
			return s.items[i], s.flush()
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes and returns the matching record, or ErrNotFound without
// touching the file.
func (s *Store[T, PT]) Delete(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if PT(&s.items[i]).GetID() == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, s.flush()
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Exists reports whether any record satisfies pred. No persistence side
// effect.
func (s *Store[T, PT]) Exists(pred func(T) bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if pred(s.items[i]) {
			return true
		}
	}
	return false
}

// Find returns copies of every record satisfying pred, in insertion order.
func (s *Store[T, PT]) Find(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for i := range s.items {
		if pred(s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out
}

// mutateAll runs fn against the live list under the write lock and
// flushes exactly once afterwards. Bulk operations use it to avoid one
// file rewrite per record.
func (s *Store[T, PT]) mutateAll(fn func(items *[]T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.items)
	return s.flush()
}

// NewID produces a random identifier. Ids are unique for all practical
// purposes and carry no ordering information.
func NewID() string {
	return uuid.NewString()
}
