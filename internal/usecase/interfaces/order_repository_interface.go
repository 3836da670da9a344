package interfaces

import (
	"context"
	"time"

	"plantcart/internal/domain/entities"
)

// IOrderRepository abstracts order persistence.
//
// MarkPaid is the conditional write that makes payment confirmation
// idempotent: it sets status=new, payment_status=paid and the transaction
// reference only when the stored payment_status is not already "paid", and
// reports through applied whether the write actually happened. Duplicate
// webhook deliveries and racing redirect+webhook both resolve to a single
// applied=true.
//
// UpdateStatus enforces the forward-only transition table at the write
// boundary and returns entities.ErrInvalidStatusTransition otherwise.
//
// ListVisible excludes pending_payment orders, which are never shown to the
// back office.

type IOrderRepository interface {
	Insert(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListVisible(ctx context.Context) ([]entities.Order, error)
	MarkPaid(ctx context.Context, id, transactionID string) (o entities.Order, applied bool, err error)
	MarkFailed(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error)
}
