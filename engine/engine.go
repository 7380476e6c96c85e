// Package engine owns the store aggregate of the point-of-sale core:
// catalog, customers, order ledger and the working cart, plus the
// transaction coordinator and the persistence and receipt collaborators.
// All mutations run under one exclusive scope so readers never observe a
// half-applied checkout.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mosburgers/poscore/cart"
	"github.com/mosburgers/poscore/catalog"
	"github.com/mosburgers/poscore/checkout"
	"github.com/mosburgers/poscore/customers"
	"github.com/mosburgers/poscore/domain"
	"github.com/mosburgers/poscore/ledger"
	"github.com/mosburgers/poscore/receipt"
	"github.com/mosburgers/poscore/reporting"
	"github.com/mosburgers/poscore/snapshot"
	"github.com/mosburgers/poscore/telemetry"
)

const receiptTimeout = 5 * time.Second

type Engine struct {
	mu        sync.RWMutex
	catalog   *catalog.Store
	customers *customers.Store
	ledger    *ledger.Ledger
	cart      *cart.Cart
	coord     *checkout.Coordinator
	snapshots snapshot.Store
	receipts  receipt.Sink
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	lowStock  int
	now       func() time.Time
}

func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lowStock := cfg.LowStockThreshold
	if lowStock <= 0 {
		lowStock = catalog.DefaultLowStockThreshold
	}

	now := cfg.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	e := &Engine{
		catalog:   catalog.NewStore(),
		customers: customers.NewStore(),
		ledger:    ledger.New(),
		cart:      cart.New(),
		snapshots: cfg.Snapshots,
		receipts:  cfg.Receipts,
		metrics:   cfg.Metrics,
		logger:    logger,
		lowStock:  lowStock,
		now:       now,
	}
	e.coord = checkout.NewCoordinator(e.catalog, e.customers, e.ledger, cfg.Metrics, logger)
	return e
}

// Start loads the previously saved snapshot, or seeds the fixed sample
// dataset when none exists.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var snap *domain.Snapshot
	if e.snapshots != nil {
		loaded, err := e.snapshots.Load(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		snap = loaded
	}

	if snap == nil {
		snap = snapshot.Sample()
		e.logger.Info("no saved state, seeding sample dataset",
			"items", len(snap.FoodItems), "customers", len(snap.Customers))
		e.load(snap)
		e.persist(ctx)
		return nil
	}

	e.load(snap)
	e.logger.Info("state loaded",
		"items", e.catalog.Len(), "customers", e.customers.Len(), "orders", e.ledger.Len())
	return nil
}

// Close releases the snapshot store if it holds resources.
func (e *Engine) Close() error {
	if c, ok := e.snapshots.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Engine) load(snap *domain.Snapshot) {
	e.catalog.Replace(snap.FoodItems)
	e.customers.Replace(snap.Customers)
	e.ledger.Replace(snap.Orders)
}

// persist hands the current state to the persistence collaborator. A
// failed save is logged and counted but never fails the mutation that
// triggered it.
func (e *Engine) persist(ctx context.Context) {
	if e.snapshots == nil {
		return
	}
	snap := &domain.Snapshot{
		FoodItems: e.catalog.List(),
		Customers: e.customers.List(),
		Orders:    e.ledger.List(),
	}
	err := e.snapshots.Save(ctx, snap)
	e.metrics.RecordSnapshotSave(ctx, err)
	if err != nil {
		e.logger.Error("failed to save snapshot", "error", err)
	}
}

// Catalog operations.

func (e *Engine) AddItem(ctx context.Context, item domain.FoodItem) (domain.FoodItem, error) {
	if err := validateItem(item); err != nil {
		return domain.FoodItem{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	e.catalog.Add(item)
	e.persist(ctx)
	e.logger.Info("item added", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// UpdateItem replaces the stored item with the same id. Updating an
// unknown id is a no-op.
func (e *Engine) UpdateItem(ctx context.Context, item domain.FoodItem) error {
	if err := validateItem(item); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog.Update(item)
	e.persist(ctx)
	return nil
}

func (e *Engine) RemoveItem(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog.Remove(id)
	e.persist(ctx)
}

func (e *Engine) Items() []domain.FoodItem {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.List()
}

func (e *Engine) Item(id string) (domain.FoodItem, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Get(id)
}

func (e *Engine) ExpiredItems() []domain.FoodItem {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.FindExpired(e.now())
}

func (e *Engine) LowStockItems() []domain.FoodItem {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.FindLowStock(e.lowStock)
}

// RemoveExpiredItems purges every expired item and reports how many
// were removed.
func (e *Engine) RemoveExpiredItems(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.catalog.RemoveExpired(e.now())
	if removed > 0 {
		e.persist(ctx)
		e.logger.Info("expired items removed", "count", removed)
	}
	return removed
}

// Customer operations.

func (e *Engine) AddCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return domain.Customer{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = e.now()
	}
	e.customers.Add(c)
	e.persist(ctx)
	e.logger.Info("customer added", "customer_id", c.ID, "name", c.Name)
	return c, nil
}

// UpdateCustomer replaces the stored record with the same id, keeping
// the original creation instant. Updating an unknown id is a no-op.
func (e *Engine) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.customers.Get(c.ID)
	if !ok {
		return nil
	}
	c.CreatedAt = existing.CreatedAt
	e.customers.Update(c)
	e.persist(ctx)
	return nil
}

func (e *Engine) RemoveCustomer(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.customers.Remove(id)
	e.persist(ctx)
}

func (e *Engine) Customers() []domain.Customer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.customers.List()
}

func (e *Engine) Customer(id string) (domain.Customer, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.customers.Get(id)
}

// OrdersFor returns the order history of one customer.
func (e *Engine) OrdersFor(customerID string) []domain.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.ByCustomer(customerID)
}

// Cart operations. The cart is transient process state and is never
// part of the persisted snapshot.

// AddToCart snapshots the catalog item and puts qty units into the
// working cart.
func (e *Engine) AddToCart(itemID string, qty int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.catalog.Get(itemID)
	if !ok {
		return fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	return e.cart.AddItem(item, qty)
}

func (e *Engine) SetCartQuantity(itemID string, qty int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.SetQuantity(itemID, qty)
}

func (e *Engine) RemoveFromCart(itemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.RemoveItem(itemID)
}

func (e *Engine) SetCartDiscount(pct float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.SetDiscount(pct)
}

func (e *Engine) CartLines() []domain.CartLine {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Lines()
}

func (e *Engine) CartTotals() cart.Totals {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Totals()
}

func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.Clear()
}

// Checkout commits the working cart as a completed order for the
// customer, then persists and hands the order to the receipt sink on a
// side channel.
func (e *Engine) Checkout(ctx context.Context, customerID string) (domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cust, ok := e.customers.Get(customerID)
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: customer %s", domain.ErrNotFound, customerID)
	}

	order, err := e.coord.Checkout(ctx, e.cart, &cust, e.now())
	if err != nil {
		return domain.Order{}, err
	}

	e.persist(ctx)
	if e.receipts != nil {
		go e.publishReceipt(order)
	}
	return order, nil
}

func (e *Engine) publishReceipt(order domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), receiptTimeout)
	defer cancel()

	if err := e.receipts.Publish(ctx, order); err != nil {
		e.logger.Error("failed to publish receipt", "error", err, "order_id", order.ID)
	}
}

// Order operations.

func (e *Engine) Orders() []domain.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.List()
}

func (e *Engine) Order(id string) (domain.Order, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ledger.Get(id)
}

// UpdateOrderStatus changes the one mutable field of a finalized order.
func (e *Engine) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if !domain.ValidStatus(status) {
		return domain.Order{}, domain.NewValidationError("status", "unknown order status")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.ledger.Get(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	order.Status = status
	e.ledger.Update(order)
	e.persist(ctx)
	e.logger.Info("order status updated", "order_id", id, "status", status)
	return order, nil
}

// RemoveOrder is the explicit administrative delete; normal business
// flow never removes orders.
func (e *Engine) RemoveOrder(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ledger.Remove(id)
	e.persist(ctx)
}

// Reporting. Each call computes from a point-in-time copy of the ledger
// taken while no mutation is in flight.

func (e *Engine) MonthlyReport(year int, month time.Month) reporting.MonthlyReport {
	e.mu.RLock()
	orders := e.ledger.List()
	e.mu.RUnlock()
	return reporting.MonthlySummary(orders, year, month)
}

func (e *Engine) AnnualReport(year int) reporting.AnnualReport {
	e.mu.RLock()
	orders := e.ledger.List()
	e.mu.RUnlock()
	return reporting.AnnualSummary(orders, year)
}

func (e *Engine) TopCustomers(limit int) []reporting.CustomerSales {
	e.mu.RLock()
	custs := e.customers.List()
	orders := e.ledger.List()
	e.mu.RUnlock()
	return reporting.TopCustomers(custs, orders, limit)
}

// Stats returns the dashboard headline numbers.
func (e *Engine) Stats() domain.DashboardStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := domain.DashboardStats{
		TotalOrders:    e.ledger.Len(),
		TotalCustomers: e.customers.Len(),
		TotalItems:     e.catalog.Len(),
		ExpiredItems:   len(e.catalog.FindExpired(e.now())),
	}
	for _, o := range e.ledger.List() {
		stats.TotalRevenue += o.Total
	}
	return stats
}

func validateItem(item domain.FoodItem) error {
	if item.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if item.ItemCode == "" {
		return domain.NewValidationError("item_code", "is required")
	}
	if item.Price < 0 {
		return domain.NewValidationError("price", "must not be negative")
	}
	if item.Quantity < 0 {
		return domain.NewValidationError("quantity", "must not be negative")
	}
	return nil
}

func validateCustomer(c domain.Customer) error {
	if c.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if c.ContactNumber == "" {
		return domain.NewValidationError("contact_number", "is required")
	}
	return nil
}
