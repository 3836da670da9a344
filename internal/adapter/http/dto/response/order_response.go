package response

import (
	"time"

	"plantcart/internal/domain/entities"
)

// OrderCreatedResponse is returned by the checkout endpoint. PaymentURL is
// only present on the live-gateway path; mock orders complete synchronously.
type OrderCreatedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ID         string `json:"id"`
	PaymentURL string `json:"payment_url,omitempty"`
}

type OrderItemResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	Zip           string              `json:"zip"`
	Items         []OrderItemResponse `json:"items"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	TransactionID string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:    it.ProductID,
			Name:  it.Name,
			Qty:   it.Qty,
			Price: it.Price,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		Name:          o.Name,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		Zip:           o.Zip,
		Items:         items,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
