// Package receipt renders and publishes the durable document produced
// for every committed order. Publication is a fire-and-forget side
// channel: a failed sink never rolls back the order.
package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mosburgers/poscore/domain"
)

// Sink consumes one finalized order and produces a durable artifact.
type Sink interface {
	Publish(ctx context.Context, order domain.Order) error
}

// Render builds the plain-text receipt document for an order.
func Render(order domain.Order) []byte {
	var b strings.Builder

	b.WriteString("MOS BURGERS\n")
	b.WriteString("Receipt\n\n")
	fmt.Fprintf(&b, "Order ID: #%s\n", ShortID(order.ID))
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Customer: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Contact: %s\n\n", order.Customer.ContactNumber)

	fmt.Fprintf(&b, "%-28s %5s %10s %12s\n", "Item", "Qty", "Price", "Total")
	b.WriteString(strings.Repeat("-", 58))
	b.WriteString("\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%-28s %5d %10d %12d\n",
			line.Item.Name, line.Quantity, line.Item.Price, line.Subtotal)
	}
	b.WriteString(strings.Repeat("-", 58))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: Rs. %d\n", order.Subtotal)
	if order.DiscountPercentage > 0 {
		fmt.Fprintf(&b, "Discount (%g%%): -Rs. %d\n", order.DiscountPercentage, order.DiscountAmount)
	}
	fmt.Fprintf(&b, "TOTAL: Rs. %d\n\n", order.Total)

	b.WriteString("Thank you for your business!\n")
	b.WriteString("Visit us again!\n")

	return []byte(b.String())
}

// ShortID is the display form of an order id: its last six characters.
func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// FileSink writes one receipt file per order into a directory.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) Publish(ctx context.Context, order domain.Order) error {
	path := filepath.Join(s.dir, "receipt-"+order.ID+".txt")
	if err := os.WriteFile(path, Render(order), 0o644); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	return nil
}
