package snapshot

import (
	"time"

	"github.com/mosburgers/poscore/domain"
)

// Sample returns the fixed dataset the engine seeds itself with when no
// prior snapshot exists: three catalog items, one customer, no orders.
func Sample() *domain.Snapshot {
	return &domain.Snapshot{
		FoodItems: []domain.FoodItem{
			{
				ID:             "1",
				Name:           "Classic Beef Burger",
				Category:       "Burgers",
				Price:          850,
				Quantity:       25,
				ItemCode:       "BB001",
				ExpirationDate: date(2025, time.February, 15),
			},
			{
				ID:             "2",
				Name:           "Chicken Submarine",
				Category:       "Submarines",
				Price:          750,
				Quantity:       15,
				ItemCode:       "CS001",
				ExpirationDate: date(2025, time.February, 10),
			},
			{
				ID:             "3",
				Name:           "Coca Cola",
				Category:       "Beverages",
				Price:          200,
				Quantity:       50,
				ItemCode:       "CC001",
				ExpirationDate: date(2025, time.June, 30),
			},
		},
		Customers: []domain.Customer{
			{
				ID:            "1",
				Name:          "John Doe",
				ContactNumber: "0771234567",
				Email:         "john@email.com",
				Address:       "123 Main St, Colombo",
				TotalOrders:   5,
				CreatedAt:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Orders: []domain.Order{},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
