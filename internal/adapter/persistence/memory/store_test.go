package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"plantcart/internal/domain/entities"
)

func TestOrderRepositoryMemory_MarkPaid(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()

	order := entities.Order{
		ID:            "ORD-1",
		Status:        entities.OrderStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := repo.Insert(ctx, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, applied, err := repo.MarkPaid(ctx, "ORD-1", "TXN-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected first mark-paid to apply")
	}
	if got.Status != entities.OrderStatusNew || got.PaymentStatus != entities.PaymentStatusPaid || got.TransactionID != "TXN-1" {
		t.Fatalf("unexpected order after mark-paid: %+v", got)
	}

	got, applied, err = repo.MarkPaid(ctx, "ORD-1", "TXN-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("expected second mark-paid to be a no-op")
	}
	if got.TransactionID != "TXN-1" {
		t.Fatalf("transaction reference overwritten: %s", got.TransactionID)
	}
}

func TestOrderRepositoryMemory_MarkPaid_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()
	_, _ = repo.Insert(ctx, entities.Order{
		ID:            "ORD-1",
		Status:        entities.OrderStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
	})

	const deliveries = 16
	var wg sync.WaitGroup
	appliedCount := make(chan bool, deliveries)
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, applied, err := repo.MarkPaid(ctx, "ORD-1", "TXN")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			appliedCount <- applied
		}()
	}
	wg.Wait()
	close(appliedCount)

	applied := 0
	for a := range appliedCount {
		if a {
			applied++
		}
	}
	if applied != 1 {
		t.Fatalf("expected exactly one applied write, got %d", applied)
	}
}

func TestOrderRepositoryMemory_MarkFailed_DoesNotClobberPaid(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()
	_, _ = repo.Insert(ctx, entities.Order{
		ID:            "ORD-1",
		Status:        entities.OrderStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
	})

	if _, _, err := repo.MarkPaid(ctx, "ORD-1", "TXN"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.MarkFailed(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("late failure overwrote paid status: %s", got.PaymentStatus)
	}
}

func TestOrderRepositoryMemory_UpdateStatus_ForwardOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-1", Status: entities.OrderStatusNew})

	if _, err := repo.UpdateStatus(ctx, "ORD-1", entities.OrderStatusInProcess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := repo.UpdateStatus(ctx, "ORD-1", entities.OrderStatusNew)
	if !errors.Is(err, entities.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestOrderRepositoryMemory_ListVisible(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()
	now := time.Now().UTC()
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-1", Status: entities.OrderStatusPendingPayment, CreatedAt: now})
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-2", Status: entities.OrderStatusNew, CreatedAt: now.Add(-time.Hour)})
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-3", Status: entities.OrderStatusCompleted, CreatedAt: now})

	orders, err := repo.ListVisible(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 visible orders, got %d", len(orders))
	}
	if orders[0].ID != "ORD-3" || orders[1].ID != "ORD-2" {
		t.Fatalf("unexpected order: %s, %s", orders[0].ID, orders[1].ID)
	}
}

func TestOrderRepositoryMemory_DeleteCompletedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMemory()
	now := time.Now().UTC()
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-old", Status: entities.OrderStatusCompleted, CreatedAt: now.AddDate(0, 0, -10)})
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-recent", Status: entities.OrderStatusCompleted, CreatedAt: now.AddDate(0, 0, -2)})
	_, _ = repo.Insert(ctx, entities.Order{ID: "ORD-pending-old", Status: entities.OrderStatusPendingPayment, CreatedAt: now.AddDate(0, 0, -10)})

	deleted, err := repo.DeleteCompletedBefore(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}

	// Abandoned pending orders are intentionally outside the sweep.
	if o, _ := repo.GetByID(ctx, "ORD-pending-old"); o.ID == "" {
		t.Fatal("pending order should survive the sweep")
	}
	if o, _ := repo.GetByID(ctx, "ORD-recent"); o.ID == "" {
		t.Fatal("recent completed order should survive the sweep")
	}
}

func TestProductRepositoryMemory_DecrementQty(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepositoryMemory()
	_, _ = repo.Put(ctx, entities.Product{ID: "P1", Qty: 10})

	if err := repo.DecrementQty(ctx, "P1", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := repo.GetByID(ctx, "P1")
	if p.Qty != 7 {
		t.Fatalf("expected qty 7, got %d", p.Qty)
	}

	// Unknown product is a silent no-op, same as the DynamoDB backend.
	if err := repo.DecrementQty(ctx, "missing", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
