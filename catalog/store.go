package catalog

import (
	"sync"
	"time"

	"github.com/mosburgers/poscore/domain"
)

// DefaultLowStockThreshold is the stock level below which an item counts
// as running low.
const DefaultLowStockThreshold = 10

// Store holds the live catalog in insertion order. Update and Remove of
// an unknown id are silent no-ops; callers that need existence
// confirmation use Get first.
type Store struct {
	mu    sync.RWMutex
	items []domain.FoodItem
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(item domain.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *Store) Update(item domain.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) Get(id string) (domain.FoodItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.FoodItem{}, false
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []domain.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// FindExpired returns items whose expiration date is set and before now.
func (s *Store) FindExpired(now time.Time) []domain.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.FoodItem
	for _, item := range s.items {
		if item.Expired(now) {
			out = append(out, item)
		}
	}
	return out
}

// FindLowStock returns items whose quantity is below threshold. A
// threshold of zero or less falls back to DefaultLowStockThreshold.
func (s *Store) FindLowStock(threshold int) []domain.FoodItem {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.FoodItem
	for _, item := range s.items {
		if item.Quantity < threshold {
			out = append(out, item)
		}
	}
	return out
}

// RemoveExpired deletes every expired item and reports how many were
// removed.
func (s *Store) RemoveExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if item.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed
}

// Decrement subtracts qty from the item's stock. The transaction
// coordinator validates availability before calling this.
func (s *Store) Decrement(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity -= qty
			return
		}
	}
}

// Replace swaps in a loaded snapshot of the catalog.
func (s *Store) Replace(items []domain.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]domain.FoodItem, len(items))
	copy(s.items, items)
}
