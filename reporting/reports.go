// Package reporting derives revenue and quantity aggregates from an
// order history snapshot. Every function is pure: same inputs, same
// output, no hidden state.
package reporting

import (
	"sort"
	"time"

	"github.com/mosburgers/poscore/domain"
)

// DefaultTopCustomers is the ranking size used when no limit is given.
const DefaultTopCustomers = 10

// ItemSales aggregates one item's sold quantity and revenue. Grouping is
// by item name: items with identical names but different ids merge.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type MonthlyReport struct {
	TotalRevenue int64       `json:"total_revenue"`
	TotalOrders  int         `json:"total_orders"`
	ItemsSold    []ItemSales `json:"items_sold"`
}

type CustomerSales struct {
	Customer   domain.Customer `json:"customer"`
	TotalSpent int64           `json:"total_spent"`
	OrderCount int             `json:"order_count"`
}

type MonthEntry struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type AnnualReport struct {
	TotalRevenue     int64        `json:"total_revenue"`
	TotalOrders      int          `json:"total_orders"`
	MonthlyBreakdown []MonthEntry `json:"monthly_breakdown"`
	ItemsSold        []ItemSales  `json:"items_sold"`
}

// MonthRange returns the inclusive [first instant, last instant] bounds
// of the month in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// YearRange returns the inclusive bounds of the year in UTC.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return start, end
}

func inRange(o domain.Order, start, end time.Time) bool {
	return !o.CreatedAt.Before(start) && !o.CreatedAt.After(end)
}

// MonthlySummary reports total revenue, order count, and a per-item
// ranking (by revenue, descending) for orders created in the month.
func MonthlySummary(orders []domain.Order, year int, month time.Month) MonthlyReport {
	start, end := MonthRange(year, month)

	var report MonthlyReport
	groups := newItemGroups()
	for _, o := range orders {
		if !inRange(o, start, end) {
			continue
		}
		report.TotalRevenue += o.Total
		report.TotalOrders++
		for _, line := range o.Lines {
			groups.add(line)
		}
	}

	report.ItemsSold = groups.ranked(byRevenue)
	return report
}

// TopCustomers ranks customers by lifetime spend across the whole order
// history, descending, ties kept in store order. A limit of zero or
// less means DefaultTopCustomers.
func TopCustomers(custs []domain.Customer, orders []domain.Order, limit int) []CustomerSales {
	if limit <= 0 {
		limit = DefaultTopCustomers
	}

	ranked := make([]CustomerSales, len(custs))
	for i, c := range custs {
		ranked[i] = CustomerSales{Customer: c}
		for _, o := range orders {
			if o.CustomerID != c.ID {
				continue
			}
			ranked[i].TotalSpent += o.Total
			ranked[i].OrderCount++
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// AnnualSummary reports the year's totals, a twelve-entry month-by-month
// breakdown, and a per-item ranking by quantity sold, descending.
func AnnualSummary(orders []domain.Order, year int) AnnualReport {
	start, end := YearRange(year)

	var report AnnualReport
	report.MonthlyBreakdown = make([]MonthEntry, 12)
	groups := newItemGroups()

	for i := 0; i < 12; i++ {
		report.MonthlyBreakdown[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, o := range orders {
		if !inRange(o, start, end) {
			continue
		}
		report.TotalRevenue += o.Total
		report.TotalOrders++
		entry := &report.MonthlyBreakdown[o.CreatedAt.Month()-1]
		entry.Revenue += o.Total
		entry.Orders++
		for _, line := range o.Lines {
			groups.add(line)
		}
	}

	report.ItemsSold = groups.ranked(byQuantity)
	return report
}

// itemGroups accumulates line sales keyed by item name, remembering
// first-seen order so rankings stay deterministic across runs.
type itemGroups struct {
	byName map[string]*ItemSales
	names  []string
}

func newItemGroups() *itemGroups {
	return &itemGroups{byName: make(map[string]*ItemSales)}
}

func (g *itemGroups) add(line domain.OrderLine) {
	sales, ok := g.byName[line.Item.Name]
	if !ok {
		sales = &ItemSales{Name: line.Item.Name}
		g.byName[line.Item.Name] = sales
		g.names = append(g.names, line.Item.Name)
	}
	sales.Quantity += line.Quantity
	sales.Revenue += line.Subtotal
}

type rankKey int

const (
	byRevenue rankKey = iota
	byQuantity
)

func (g *itemGroups) ranked(key rankKey) []ItemSales {
	out := make([]ItemSales, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, *g.byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if key == byQuantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Revenue > out[j].Revenue
	})
	return out
}
