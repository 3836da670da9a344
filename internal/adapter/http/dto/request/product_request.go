package request

// ProductRequest is the admin create/update payload. On POST a missing ID
// means "create with a generated id"; on PUT the path id wins.
type ProductRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category" binding:"required"`
	Qty         int      `json:"qty"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}
