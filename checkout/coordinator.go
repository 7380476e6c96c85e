package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mosburgers/poscore/cart"
	"github.com/mosburgers/poscore/catalog"
	"github.com/mosburgers/poscore/customers"
	"github.com/mosburgers/poscore/domain"
	"github.com/mosburgers/poscore/ledger"
	"github.com/mosburgers/poscore/telemetry"
)

var tracer = otel.Tracer("poscore/checkout")

// Coordinator converts a cart plus a selected customer into a finalized
// order, adjusting the catalog and the customer's order counter in the
// same commit. It is the one place multiple stores change together; the
// owning engine serializes calls so a commit is never partially visible.
type Coordinator struct {
	catalog   *catalog.Store
	customers *customers.Store
	ledger    *ledger.Ledger
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

func NewCoordinator(cat *catalog.Store, cust *customers.Store, led *ledger.Ledger, metrics *telemetry.Metrics, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		catalog:   cat,
		customers: cust,
		ledger:    led,
		metrics:   metrics,
		logger:    logger,
	}
}

// Checkout commits the cart as a completed order for the customer.
// All-or-nothing: on any error the catalog, customer store, ledger and
// cart are left untouched. Stock is re-validated against the live
// catalog before anything mutates, so committed stock never goes
// negative; prices are taken from the cart's add-time snapshots, not
// from a live catalog re-read.
func (c *Coordinator) Checkout(ctx context.Context, crt *cart.Cart, customer *domain.Customer, now time.Time) (domain.Order, error) {
	ctx, span := tracer.Start(ctx, "checkout")
	defer span.End()
	start := time.Now()

	if customer == nil || crt.Len() == 0 {
		span.SetStatus(codes.Error, domain.ErrInvalidCheckout.Error())
		return domain.Order{}, domain.ErrInvalidCheckout
	}

	lines := crt.Lines()
	for _, line := range lines {
		stock, ok := c.catalog.Get(line.Item.ID)
		if !ok || stock.Quantity < line.Quantity {
			err := fmt.Errorf("%w: %s", domain.ErrInsufficientStock, line.Item.Name)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return domain.Order{}, err
		}
	}

	orderLines := make([]domain.OrderLine, len(lines))
	for i, line := range lines {
		orderLines[i] = domain.OrderLine{
			Item:     line.Item,
			Quantity: line.Quantity,
			Subtotal: line.Item.Price * int64(line.Quantity),
		}
	}

	totals := crt.Totals()
	order := domain.Order{
		ID:                 uuid.New().String(),
		CustomerID:         customer.ID,
		Customer:           *customer,
		Lines:              orderLines,
		Subtotal:           totals.Subtotal,
		DiscountPercentage: crt.Discount(),
		DiscountAmount:     totals.DiscountAmount,
		Total:              totals.Total,
		CreatedAt:          now,
		Status:             domain.OrderStatusCompleted,
	}

	c.ledger.Append(order)
	c.customers.IncrementOrderCount(customer.ID)
	for _, line := range lines {
		c.catalog.Decrement(line.Item.ID, line.Quantity)
	}
	crt.Clear()

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int("order.lines", len(order.Lines)),
		attribute.Int64("order.total", order.Total),
	)
	c.metrics.RecordCheckout(ctx, order.Total, len(order.Lines), time.Since(start))
	c.logger.Info("order committed",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"lines", len(order.Lines),
		"total", order.Total,
	)

	return order, nil
}
