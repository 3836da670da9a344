package entities

// Category is a catalog grouping, seeded once at first boot and read-mostly
// afterward. Slug is unique and used for storefront URLs.

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}
