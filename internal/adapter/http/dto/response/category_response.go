package response

import "plantcart/internal/domain/entities"

type CategoryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Image: c.Image}
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}
