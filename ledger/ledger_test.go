package ledger

import (
	"testing"
	"time"

	"github.com/mosburgers/poscore/domain"
)

func order(id, customerID string, total int64, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		Lines: []domain.OrderLine{
			{Item: domain.FoodItem{ID: "1", Name: "Burger", Price: total}, Quantity: 1, Subtotal: total},
		},
		Subtotal:  total,
		Total:     total,
		CreatedAt: createdAt,
		Status:    domain.OrderStatusCompleted,
	}
}

func TestLedger_AppendUpdateRemove(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("append keeps order, update replaces by id", func(t *testing.T) {
		l := New()
		l.Append(order("a", "c1", 100, now))
		l.Append(order("b", "c1", 200, now))

		o, _ := l.Get("a")
		o.Status = domain.OrderStatusCancelled
		l.Update(o)

		got, ok := l.Get("a")
		if !ok {
			t.Fatal("expected order to exist")
		}
		if got.Status != domain.OrderStatusCancelled {
			t.Errorf("expected cancelled, got %s", got.Status)
		}
		if l.Len() != 2 {
			t.Errorf("expected 2 orders, got %d", l.Len())
		}
	})

	t.Run("update and remove of unknown id are no-ops", func(t *testing.T) {
		l := New()
		l.Append(order("a", "c1", 100, now))

		l.Update(order("missing", "c9", 1, now))
		l.Remove("missing")

		if l.Len() != 1 {
			t.Errorf("expected 1 order, got %d", l.Len())
		}
	})

	t.Run("handed-out orders do not alias the ledger", func(t *testing.T) {
		l := New()
		l.Append(order("a", "c1", 100, now))

		out := l.List()
		out[0].Lines[0].Subtotal = 999

		got, _ := l.Get("a")
		if got.Lines[0].Subtotal != 100 {
			t.Errorf("ledger mutated through List copy: %d", got.Lines[0].Subtotal)
		}
	})
}

func TestLedger_ByCustomer(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := New()
	l.Append(order("a", "c1", 100, now))
	l.Append(order("b", "c2", 200, now))
	l.Append(order("c", "c1", 300, now))

	orders := l.ByCustomer("c1")
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "a" || orders[1].ID != "c" {
		t.Errorf("unexpected orders: %s, %s", orders[0].ID, orders[1].ID)
	}
}

func TestLedger_InRange(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)

	l := New()
	l.Append(order("before", "c1", 1, start.Add(-time.Second)))
	l.Append(order("atStart", "c1", 1, start))
	l.Append(order("mid", "c1", 1, start.AddDate(0, 0, 14)))
	l.Append(order("atEnd", "c1", 1, end))
	l.Append(order("after", "c1", 1, end.Add(time.Second)))

	orders := l.InRange(start, end)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.ID == "before" || o.ID == "after" {
			t.Errorf("order %s outside the inclusive range was returned", o.ID)
		}
	}
}
