package customers

import (
	"sync"

	"github.com/mosburgers/poscore/domain"
)

// Store holds customer records in insertion order. Update and Remove of
// an unknown id are silent no-ops, mirroring the catalog store.
type Store struct {
	mu      sync.RWMutex
	records []domain.Customer
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, c)
}

func (s *Store) Update(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == c.ID {
			s.records[i] = c
			return
		}
	}
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

func (s *Store) Get(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.records {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// List returns a copy of the customer records in insertion order.
func (s *Store) List() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// IncrementOrderCount bumps the stored record's completed-order counter.
// It is the only customer mutation the transaction coordinator performs.
func (s *Store) IncrementOrderCount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].TotalOrders++
			return
		}
	}
}

// Replace swaps in a loaded snapshot of the customer records.
func (s *Store) Replace(records []domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.Customer, len(records))
	copy(s.records, records)
}
