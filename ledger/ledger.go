package ledger

import (
	"sync"
	"time"

	"github.com/mosburgers/poscore/domain"
)

// Ledger is the append-ordered collection of finalized orders. Update
// and Remove of an unknown id are silent no-ops; Update exists for
// status changes and Remove for explicit administrative deletes.
type Ledger struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(o domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, o.Clone())
}

func (l *Ledger) Update(o domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == o.ID {
			l.orders[i] = o.Clone()
			return
		}
	}
}

func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return
		}
	}
}

func (l *Ledger) Get(id string) (domain.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return domain.Order{}, false
}

// List returns deep copies of all orders in append order.
func (l *Ledger) List() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// ByCustomer returns the orders referencing the customer id, in append
// order.
func (l *Ledger) ByCustomer(customerID string) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Order
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			out = append(out, o.Clone())
		}
	}
	return out
}

// InRange returns orders created inside [start, end], bounds inclusive.
func (l *Ledger) InRange(start, end time.Time) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Order
	for _, o := range l.orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

// Replace swaps in a loaded snapshot of the order history.
func (l *Ledger) Replace(orders []domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = make([]domain.Order, len(orders))
	for i, o := range orders {
		l.orders[i] = o.Clone()
	}
}
