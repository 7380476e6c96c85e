package receipt

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mosburgers/poscore/domain"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:         "3f2c9a1e-order-id-abc123",
		CustomerID: "c1",
		Customer:   domain.Customer{ID: "c1", Name: "John Doe", ContactNumber: "0771234567"},
		Lines: []domain.OrderLine{
			{Item: domain.FoodItem{ID: "1", Name: "Classic Beef Burger", Price: 850}, Quantity: 2, Subtotal: 1700},
			{Item: domain.FoodItem{ID: "3", Name: "Coca Cola", Price: 200}, Quantity: 1, Subtotal: 200},
		},
		Subtotal:           1900,
		DiscountPercentage: 10,
		DiscountAmount:     190,
		Total:              1710,
		CreatedAt:          time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC),
		Status:             domain.OrderStatusCompleted,
	}
}

func TestRender(t *testing.T) {
	text := string(Render(sampleOrder()))

	for _, want := range []string{
		"MOS BURGERS",
		"Order ID: #abc123",
		"Customer: John Doe",
		"Contact: 0771234567",
		"Classic Beef Burger",
		"Coca Cola",
		"Subtotal: Rs. 1900",
		"Discount (10%): -Rs. 190",
		"TOTAL: Rs. 1710",
		"Thank you for your business!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
}

func TestRender_NoDiscountLine(t *testing.T) {
	order := sampleOrder()
	order.DiscountPercentage = 0
	order.DiscountAmount = 0
	order.Total = order.Subtotal

	text := string(Render(order))
	if strings.Contains(text, "Discount") {
		t.Errorf("zero-discount receipt must omit the discount line:\n%s", text)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("3f2c9a1e-order-id-abc123"); got != "abc123" {
		t.Errorf("expected abc123, got %s", got)
	}
	if got := ShortID("tiny"); got != "tiny" {
		t.Errorf("expected tiny, got %s", got)
	}
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(filepath.Join(dir, "receipts"))
	if err != nil {
		t.Fatalf("failed to create sink: %v", err)
	}

	order := sampleOrder()
	if err := sink.Publish(context.Background(), order); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "receipts", "receipt-"+order.ID+".txt"))
	if err != nil {
		t.Fatalf("expected receipt file: %v", err)
	}
	if string(data) != string(Render(order)) {
		t.Error("file content differs from rendered receipt")
	}
}
