package table

import (
	"log"
	"sync"
)

// Store serves grade tables from a Source, reading each class at most once
// per successful load. Concurrent first accesses may read storage more than
// once; the first table committed wins and is returned from then on.
type Store struct {
	src Source

	mu     sync.RWMutex
	tables map[string]*GradeTable
}

// NewStore creates a store backed by src
func NewStore(src Source) *Store {
	return &Store{
		src:    src,
		tables: make(map[string]*GradeTable),
	}
}

// Table returns the grade table of a material class.
// A table that fails validation is not cached.
func (s *Store) Table(class string) (*GradeTable, error) {
	s.mu.RLock()
	t, ok := s.tables[class]
	s.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := s.src.Load(class)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	log.Printf("table: loaded %q (%d rows)", class, len(t.Rows))

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.tables[class]; ok {
		return cached, nil
	}
	s.tables[class] = t
	return t, nil
}
