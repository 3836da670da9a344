// Package memory provides in-memory implementations of the persistence
// interfaces, wire-compatible with the DynamoDB backend. Used by DB-less
// local runs and by tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

var _ interfaces.IProductRepository = (*ProductRepositoryMemory)(nil)

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{products: make(map[string]entities.Product)}
}

func (r *ProductRepositoryMemory) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products[id], nil
}

func (r *ProductRepositoryMemory) List(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepositoryMemory) Put(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return p, nil
}

func (r *ProductRepositoryMemory) DecrementQty(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil
	}
	p.Qty -= qty
	r.products[id] = p
	return nil
}

func (r *ProductRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type OrderRepositoryMemory struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepositoryMemory)(nil)

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{orders: make(map[string]entities.Order)}
}

func (r *OrderRepositoryMemory) Insert(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return o, nil
}

func (r *OrderRepositoryMemory) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[id], nil
}

func (r *OrderRepositoryMemory) ListVisible(_ context.Context) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusPendingPayment {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MarkPaid checks and writes under the same lock, giving the single-writer
// guarantee the DynamoDB backend gets from its ConditionExpression.
func (r *OrderRepositoryMemory) MarkPaid(_ context.Context, id, transactionID string) (entities.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, false, nil
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return o, false, nil
	}

	o.Status = entities.OrderStatusNew
	o.PaymentStatus = entities.PaymentStatusPaid
	o.TransactionID = transactionID
	r.orders[id] = o
	return o, true, nil
}

func (r *OrderRepositoryMemory) MarkFailed(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	if o.PaymentStatus != entities.PaymentStatusPaid {
		o.PaymentStatus = entities.PaymentStatusFailed
		r.orders[id] = o
	}
	return o, nil
}

func (r *OrderRepositoryMemory) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	if !entities.CanTransition(o.Status, status) {
		return entities.Order{}, entities.ErrInvalidStatusTransition
	}

	o.Status = status
	r.orders[id] = o
	return o, nil
}

func (r *OrderRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *OrderRepositoryMemory) DeleteCompletedBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, o := range r.orders {
		if o.Status == entities.OrderStatusCompleted && o.CreatedAt.Before(cutoff) {
			delete(r.orders, id)
			deleted++
		}
	}
	return deleted, nil
}

type CategoryRepositoryMemory struct {
	mu         sync.RWMutex
	categories map[int]entities.Category
}

var _ interfaces.ICategoryRepository = (*CategoryRepositoryMemory)(nil)

func NewCategoryRepositoryMemory() *CategoryRepositoryMemory {
	return &CategoryRepositoryMemory{categories: make(map[int]entities.Category)}
}

func (r *CategoryRepositoryMemory) List(_ context.Context) ([]entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepositoryMemory) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories), nil
}

func (r *CategoryRepositoryMemory) Put(_ context.Context, c entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
	return nil
}
