package interfaces

import (
	"context"

	"plantcart/internal/domain/entities"
)

// ICategoryRepository abstracts category persistence. Categories are seeded
// once when the table is empty and read-mostly afterward.

type ICategoryRepository interface {
	List(ctx context.Context) ([]entities.Category, error)
	Count(ctx context.Context) (int, error)
	Put(ctx context.Context, c entities.Category) error
}
