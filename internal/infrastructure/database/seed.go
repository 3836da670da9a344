package database

import (
	"context"
	"log"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

// seedCategories mirrors the storefront's fixed category catalog. Seeded once
// when the categories table is empty; read-mostly afterward.
var seedCategories = []entities.Category{
	{ID: 1, Name: "Indian Mangoes", Slug: "indian-mangoes", Image: "https://placehold.co/150?text=Indian+Mangoes"},
	{ID: 2, Name: "Foreigner Mango", Slug: "foreigner-mango", Image: "https://placehold.co/150?text=Foreigner+Mango"},
	{ID: 3, Name: "Malta Orange", Slug: "malta-orange", Image: "https://placehold.co/150?text=Malta+Orange"},
	{ID: 4, Name: "Orange", Slug: "orange", Image: "https://placehold.co/150?text=Orange"},
	{ID: 5, Name: "Guava", Slug: "guava", Image: "https://placehold.co/150?text=Guava"},
	{ID: 6, Name: "Jackfruit", Slug: "jackfruit", Image: "https://placehold.co/150?text=Jackfruit"},
	{ID: 7, Name: "Jamun", Slug: "jamun", Image: "https://placehold.co/150?text=Jamun"},
	{ID: 8, Name: "Water Apple", Slug: "water-apple", Image: "https://placehold.co/150?text=Water+Apple"},
	{ID: 9, Name: "Chiku", Slug: "chiku", Image: "https://placehold.co/150?text=Chiku"},
	{ID: 10, Name: "Coconut", Slug: "coconut", Image: "https://placehold.co/150?text=Coconut"},
	{ID: 11, Name: "Betel Nut", Slug: "betel-nut", Image: "https://placehold.co/150?text=Betel+Nut"},
	{ID: 12, Name: "Lemon", Slug: "lemon", Image: "https://placehold.co/150?text=Lemon"},
	{ID: 13, Name: "Amloki", Slug: "amloki", Image: "https://placehold.co/150?text=Amloki"},
	{ID: 14, Name: "Logan", Slug: "logan", Image: "https://placehold.co/150?text=Logan"},
	{ID: 15, Name: "Litchi", Slug: "litchi", Image: "https://placehold.co/150?text=Litchi"},
	{ID: 16, Name: "Currant", Slug: "currant", Image: "https://placehold.co/150?text=Currant"},
	{ID: 17, Name: "Grape", Slug: "grape", Image: "https://placehold.co/150?text=Grape"},
	{ID: 18, Name: "Fruit Tree", Slug: "fruit-tree", Image: "https://placehold.co/150?text=Fruit+Tree"},
	{ID: 19, Name: "Others", Slug: "others", Image: "https://placehold.co/150?text=Others"},
}

// SeedCategories writes the built-in category catalog when the table is
// empty. Errors are logged, not fatal: a storefront with an unseeded category
// list is degraded, not broken.
func SeedCategories(ctx context.Context, repo interfaces.ICategoryRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Printf("[seed] category count failed err=%v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Printf("[seed] seeding %d categories", len(seedCategories))
	for _, c := range seedCategories {
		if err := repo.Put(ctx, c); err != nil {
			log.Printf("[seed] category seed failed slug=%s err=%v", c.Slug, err)
		}
	}
}
