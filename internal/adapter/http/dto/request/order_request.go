package request

// OrderItemRequest is one requested cart line. Any client-supplied price is
// ignored; Name only feeds error messages when the product id cannot be
// resolved.
type OrderItemRequest struct {
	ID   string `json:"id"`
	Qty  int    `json:"qty"`
	Name string `json:"name"`
}

// OrderCreateRequest is the storefront checkout payload.
type OrderCreateRequest struct {
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
	Address    string             `json:"address"`
	City       string             `json:"city"`
	Zip        string             `json:"zip"`
	Items      []OrderItemRequest `json:"items"`
	ForcedMock bool               `json:"forcedMock"`
}

// OrderStatusUpdateRequest is the admin payload for advancing an order
// through the fulfillment flow. Only the status field is writable.
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
