package usecase

import (
	"context"
	"log"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

// StockUseCase applies the one-time inventory adjustment for a paid order.
//
// It must run at most once per order; that guarantee lives in the caller
// (the reconciler only invokes it when the conditional mark-paid write
// actually applied). The decrement itself is blind: sufficiency was checked
// at intake, and the race between two concurrent orders draining the same
// low-stock product is an accepted limitation.

type StockUseCase struct {
	products interfaces.IProductRepository
}

func NewStockUseCase(products interfaces.IProductRepository) *StockUseCase {
	return &StockUseCase{products: products}
}

// DecrementForItems decrements quantity-on-hand for every line of an order's
// item snapshot. Keeps going past individual failures so one bad product does
// not block the rest of the adjustment; the first error is returned.
func (u *StockUseCase) DecrementForItems(ctx context.Context, items []entities.OrderItem) error {
	var firstErr error
	for _, item := range items {
		if err := u.products.DecrementQty(ctx, item.ProductID, item.Qty); err != nil {
			log.Printf("[stock][usecase] decrement failed product_id=%s qty=%d err=%v", item.ProductID, item.Qty, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
