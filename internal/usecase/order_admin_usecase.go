package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// IOrderAdminUseCase is the back-office view over orders: listing (without
// pending_payment rows), inspection, forward-only status advancement and
// deletion.

type IOrderAdminUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderAdminUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderAdminUseCase = (*OrderAdminUseCase)(nil)

func NewOrderAdminUseCase(repo interfaces.IOrderRepository) *OrderAdminUseCase {
	return &OrderAdminUseCase{repo: repo}
}

func (u *OrderAdminUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListVisible(ctx)
}

func (u *OrderAdminUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus advances an order through the fulfillment flow. The
// transition table is enforced by the repository at the write boundary;
// this layer only screens out unknown status values.
func (u *OrderAdminUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[orders][usecase] status updated order_id=%s status=%s", id, status)
	return updated, nil
}

func (u *OrderAdminUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
