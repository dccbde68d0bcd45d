package store

import (
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

// Store is an immutable, ordered set of records. It is safe for concurrent
// read access.
type Store struct {
	records []models.Record
}

func New(records []models.Record) *Store {
	copied := make([]models.Record, len(records))
	copy(copied, records)

	return &Store{
		records: copied,
	}
}

// All returns the records in store order. The returned slice is a copy.
func (s *Store) All() []models.Record {
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record at position i, or false when i is out of range.
func (s *Store) Get(i int) (models.Record, bool) {
	if i < 0 || i >= len(s.records) {
		return models.Record{}, false
	}
	return s.records[i], true
}

func (s *Store) Len() int {
	return len(s.records)
}
