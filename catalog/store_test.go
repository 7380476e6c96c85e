package catalog

import (
	"testing"
	"time"

	"github.com/mosburgers/poscore/domain"
)

func itemWithExpiry(id, name string, qty int, expiry *time.Time) domain.FoodItem {
	return domain.FoodItem{ID: id, Name: name, Category: "Test", Price: 100, Quantity: qty, ItemCode: "T" + id, ExpirationDate: expiry}
}

func datePtr(t time.Time) *time.Time { return &t }

func TestStore_CRUD(t *testing.T) {
	t.Run("add and list keep insertion order", func(t *testing.T) {
		s := NewStore()
		s.Add(itemWithExpiry("1", "A", 5, nil))
		s.Add(itemWithExpiry("2", "B", 5, nil))

		items := s.List()
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].ID != "1" || items[1].ID != "2" {
			t.Errorf("unexpected order: %s, %s", items[0].ID, items[1].ID)
		}
	})

	t.Run("update replaces by id", func(t *testing.T) {
		s := NewStore()
		s.Add(itemWithExpiry("1", "A", 5, nil))

		updated := itemWithExpiry("1", "A+", 8, nil)
		s.Update(updated)

		got, ok := s.Get("1")
		if !ok {
			t.Fatal("expected item to exist")
		}
		if got.Name != "A+" || got.Quantity != 8 {
			t.Errorf("unexpected item after update: %+v", got)
		}
	})

	t.Run("update of unknown id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Add(itemWithExpiry("1", "A", 5, nil))

		s.Update(itemWithExpiry("missing", "X", 1, nil))

		if s.Len() != 1 {
			t.Errorf("expected 1 item, got %d", s.Len())
		}
		if _, ok := s.Get("missing"); ok {
			t.Error("unknown id must not be inserted by update")
		}
	})

	t.Run("remove of unknown id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Add(itemWithExpiry("1", "A", 5, nil))

		s.Remove("missing")

		if s.Len() != 1 {
			t.Errorf("expected 1 item, got %d", s.Len())
		}
	})

	t.Run("list returns copies", func(t *testing.T) {
		s := NewStore()
		s.Add(itemWithExpiry("1", "A", 5, nil))

		items := s.List()
		items[0].Quantity = 999

		got, _ := s.Get("1")
		if got.Quantity != 5 {
			t.Errorf("store mutated through List copy: quantity %d", got.Quantity)
		}
	})
}

func TestStore_FindExpired(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	past := datePtr(now.AddDate(0, 0, -1))
	future := datePtr(now.AddDate(0, 1, 0))

	s := NewStore()
	s.Add(itemWithExpiry("1", "Old", 5, past))
	s.Add(itemWithExpiry("2", "Fresh", 5, future))
	s.Add(itemWithExpiry("3", "NoExpiry", 5, nil))

	expired := s.FindExpired(now)
	if len(expired) != 1 {
		t.Fatalf("expected 1 expired item, got %d", len(expired))
	}
	if expired[0].ID != "1" {
		t.Errorf("expected item 1, got %s", expired[0].ID)
	}
}

func TestStore_FindLowStock(t *testing.T) {
	s := NewStore()
	s.Add(itemWithExpiry("1", "Scarce", 3, nil))
	s.Add(itemWithExpiry("2", "Boundary", 10, nil))
	s.Add(itemWithExpiry("3", "Plenty", 40, nil))

	t.Run("default threshold is ten", func(t *testing.T) {
		low := s.FindLowStock(0)
		if len(low) != 1 {
			t.Fatalf("expected 1 low-stock item, got %d", len(low))
		}
		if low[0].ID != "1" {
			t.Errorf("expected item 1, got %s", low[0].ID)
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		low := s.FindLowStock(11)
		if len(low) != 2 {
			t.Errorf("expected 2 low-stock items, got %d", len(low))
		}
	})
}

func TestStore_RemoveExpired(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	past := datePtr(now.AddDate(0, 0, -10))

	s := NewStore()
	s.Add(itemWithExpiry("1", "Old", 5, past))
	s.Add(itemWithExpiry("2", "Fresh", 5, nil))
	s.Add(itemWithExpiry("3", "Older", 5, past))

	removed := s.RemoveExpired(now)
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 item left, got %d", s.Len())
	}
	if _, ok := s.Get("2"); !ok {
		t.Error("expected fresh item to survive")
	}
}

func TestStore_Decrement(t *testing.T) {
	s := NewStore()
	s.Add(itemWithExpiry("1", "A", 25, nil))

	s.Decrement("1", 4)

	got, _ := s.Get("1")
	if got.Quantity != 21 {
		t.Errorf("expected quantity 21, got %d", got.Quantity)
	}
}
