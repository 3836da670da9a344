package response

import (
	"time"

	"plantcart/internal/domain/entities"
)

type ProductResponse struct {
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

func FromProduct(p entities.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Qty:         p.Qty,
		Image:       p.Image,
		Images:      images,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
