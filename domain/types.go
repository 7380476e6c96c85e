package domain

import (
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// FoodItem is a stock-keeping catalog entry. Price is in the smallest
// displayed currency unit.
type FoodItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Price          int64      `json:"price"`
	Quantity       int        `json:"quantity"`
	ItemCode       string     `json:"item_code"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Discount       float64    `json:"discount,omitempty"`
}

// Expired reports whether the item carries an expiration date in the past.
func (f FoodItem) Expired(now time.Time) bool {
	return f.ExpirationDate != nil && f.ExpirationDate.Before(now)
}

type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	TotalOrders   int       `json:"total_orders"`
	CreatedAt     time.Time `json:"created_at"`
}

// CartLine pairs the add-time snapshot of a catalog item with the
// requested quantity. The snapshot keeps a standing cart's prices stable
// against later catalog edits.
type CartLine struct {
	Item     FoodItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// OrderLine is an immutable sold line: the item as it was at the moment
// of sale, the quantity, and the line subtotal.
type OrderLine struct {
	Item     FoodItem `json:"item"`
	Quantity int      `json:"quantity"`
	Subtotal int64    `json:"subtotal"`
}

// Order is a finalized sale. Lines and totals never change after
// creation; only Status may be updated.
type Order struct {
	ID                 string      `json:"id"`
	CustomerID         string      `json:"customer_id"`
	Customer           Customer    `json:"customer"`
	Lines              []OrderLine `json:"lines"`
	Subtotal           int64       `json:"subtotal"`
	DiscountPercentage float64     `json:"discount_percentage"`
	DiscountAmount     int64       `json:"discount_amount"`
	Total              int64       `json:"total"`
	CreatedAt          time.Time   `json:"created_at"`
	Status             OrderStatus `json:"status"`
}

// Clone returns a deep copy so handed-out orders never alias a ledger's
// backing storage.
func (o Order) Clone() Order {
	cp := o
	cp.Lines = make([]OrderLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return cp
}

// Snapshot is the full serialized state exchanged with the persistence
// collaborator. The in-progress cart is transient and never part of it.
type Snapshot struct {
	FoodItems []FoodItem `json:"food_items"`
	Customers []Customer `json:"customers"`
	Orders    []Order    `json:"orders"`
}

type DashboardStats struct {
	TotalRevenue   int64 `json:"total_revenue"`
	TotalOrders    int   `json:"total_orders"`
	TotalCustomers int   `json:"total_customers"`
	TotalItems     int   `json:"total_items"`
	ExpiredItems   int   `json:"expired_items"`
}

// Round converts a fractional amount to whole currency units, half away
// from zero.
func Round(v float64) int64 {
	return int64(math.Round(v))
}

// DiscountValue computes the discount owed on subtotal at pct percent,
// rounded to whole currency units.
func DiscountValue(subtotal int64, pct float64) int64 {
	return Round(float64(subtotal) * pct / 100)
}
