// Package store implements the authoritative in-memory product store.
package store

import (
	"sync"

	"github.com/go-faster/errors"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
)

var (
	// ErrNotFound is returned when the identifier has no record.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateKey is returned when creating an identifier that already exists.
	ErrDuplicateKey = errors.New("product already exists")
)

type entry struct {
	mu  sync.Mutex
	rec model.Product
}

// Store maps product identifiers to records. Structural changes (create,
// delete) take the store lock; reads and field merges on an existing record
// only take that record's own lock, so updates to unrelated identifiers do
// not serialize.
type Store struct {
	mu    sync.RWMutex
	m     map[string]*entry
	order []string
}

func New() *Store {
	return &Store{m: make(map[string]*entry)}
}

// Create adds a new record. The identifier must not exist yet.
func (s *Store) Create(p model.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[p.ID]; ok {
		return errors.Wrap(ErrDuplicateKey, p.ID)
	}
	s.m[p.ID] = &entry{rec: p}
	s.order = append(s.order, p.ID)
	return nil
}

// Read returns a copy of the record for id.
func (s *Store) Read(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.m[id]
	if !ok {
		return model.Product{}, errors.Wrap(ErrNotFound, id)
	}
	ent.mu.Lock()
	rec := ent.rec
	ent.mu.Unlock()
	return rec, nil
}

// Update merges the non-nil patch fields into the record for id and returns
// the result. The merge happens under the record's own lock; the store lock
// is only held shared, so a concurrent delete of the same id is excluded.
func (s *Store) Update(id string, patch model.ProductPatch) (model.Product, error) {
	if err := patch.Validate(); err != nil {
		return model.Product{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.m[id]
	if !ok {
		return model.Product{}, errors.Wrap(ErrNotFound, id)
	}
	ent.mu.Lock()
	defer ent.mu.Unlock()
	if patch.Name != nil {
		ent.rec.Name = *patch.Name
	}
	if patch.Category != nil {
		ent.rec.Category = *patch.Category
	}
	if patch.Size != nil {
		ent.rec.Size = *patch.Size
	}
	if patch.Price != nil {
		ent.rec.Price = *patch.Price
	}
	return ent.rec, nil
}

// Delete removes the record for id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return errors.Wrap(ErrNotFound, id)
	}
	delete(s.m, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns copies of all records in insertion order.
func (s *Store) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.order))
	for _, id := range s.order {
		ent := s.m[id]
		ent.mu.Lock()
		out = append(out, ent.rec)
		ent.mu.Unlock()
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
