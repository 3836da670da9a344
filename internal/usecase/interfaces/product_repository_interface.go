package interfaces

import (
	"context"

	"plantcart/internal/domain/entities"
)

// IProductRepository abstracts catalog persistence for Product.
//
// Both backends (DynamoDB and in-memory) implement it; everything above this
// interface is backend-agnostic. A zero-value Product with empty ID means
// "not found" on reads, matching the repository convention used across the
// service.
//
// DecrementQty performs a blind decrement with no floor check: sufficiency is
// validated at order intake, and the race between two concurrent orders for
// the same last units is an accepted limitation.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Put(ctx context.Context, p entities.Product) (entities.Product, error)
	DecrementQty(ctx context.Context, id string, qty int) error
	Delete(ctx context.Context, id string) error
}
