package entities

import (
	"fmt"
	"time"
)

// Product is a catalog row.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Qty is the quantity on hand. It is mutated by admin CRUD and by the stock
// decrement applied when an order is confirmed paid. Images holds up to three
// gallery URIs in display order; Image is the primary thumbnail.

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Qty         int       `json:"qty"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductID derives a product identifier for admin-created products that
// did not supply one ("P<millisecond epoch>").
func NewProductID(now time.Time) string {
	return fmt.Sprintf("P%d", now.UnixMilli())
}
