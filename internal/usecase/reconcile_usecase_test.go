package usecase

import (
	"context"
	"errors"
	"testing"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
	mock_interfaces "plantcart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paidableOrder() entities.Order {
	return entities.Order{
		ID:            "ORD-1",
		Status:        entities.OrderStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
		Items: []entities.OrderItem{
			{ProductID: "P1", Name: "Guava Plant", Qty: 2, Price: 50},
			{ProductID: "P2", Name: "Litchi Plant", Qty: 1, Price: 250},
		},
	}
}

func completedEvent() WebhookEvent {
	return WebhookEvent{
		Event:           "checkout.order.completed",
		State:           "COMPLETED",
		MerchantOrderID: "ORD-1",
		TransactionID:   "TXN-1",
	}
}

func TestReconcileUseCase_HandleWebhook_ConfirmDecrementsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewReconcileUseCase(orders, NewStockUseCase(products), nil)

	order := paidableOrder()
	orders.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(order, nil).Times(2)

	// First delivery applies; the duplicate does not.
	gomock.InOrder(
		orders.EXPECT().MarkPaid(gomock.Any(), "ORD-1", "TXN-1").Return(order, true, nil),
		orders.EXPECT().MarkPaid(gomock.Any(), "ORD-1", "TXN-1").Return(order, false, nil),
	)

	// Stock moves exactly once despite two deliveries.
	products.EXPECT().DecrementQty(gomock.Any(), "P1", 2).Return(nil).Times(1)
	products.EXPECT().DecrementQty(gomock.Any(), "P2", 1).Return(nil).Times(1)

	if err := uc.HandleWebhook(context.Background(), completedEvent()); err != nil {
		t.Fatalf("unexpected error on first delivery: %v", err)
	}
	if err := uc.HandleWebhook(context.Background(), completedEvent()); err != nil {
		t.Fatalf("unexpected error on duplicate delivery: %v", err)
	}
}

func TestReconcileUseCase_HandleWebhook_FailedOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewReconcileUseCase(orders, NewStockUseCase(products), nil)

	order := paidableOrder()
	orders.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(order, nil)
	orders.EXPECT().MarkFailed(gomock.Any(), "ORD-1").Return(order, nil)
	// No DecrementQty expectations: a failed payment must not touch stock.

	ev := WebhookEvent{Event: "checkout.order.failed", State: "FAILED", MerchantOrderID: "ORD-1"}
	if err := uc.HandleWebhook(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcileUseCase_HandleWebhook_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewReconcileUseCase(orders, NewStockUseCase(nil), nil)

	orders.EXPECT().GetByID(gomock.Any(), "ORD-ghost").Return(entities.Order{}, nil)

	ev := completedEvent()
	ev.MerchantOrderID = "ORD-ghost"
	if err := uc.HandleWebhook(context.Background(), ev); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestReconcileUseCase_HandleWebhook_AmbiguousEventIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewReconcileUseCase(orders, NewStockUseCase(nil), nil)

	ev := WebhookEvent{Event: "checkout.order.pending", State: "PENDING", MerchantOrderID: "ORD-1"}
	if err := uc.HandleWebhook(context.Background(), ev); err != nil {
		t.Fatalf("expected ack without action, got %v", err)
	}
}

func TestReconcileUseCase_ResolveRedirect(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewReconcileUseCase(orders, NewStockUseCase(products), gateway)

		order := paidableOrder()
		gateway.EXPECT().CheckStatus(gomock.Any(), "ORD-1").Return(interfaces.PaymentState{State: "COMPLETED", TransactionID: "TXN-1"}, nil)
		orders.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(order, nil)
		orders.EXPECT().MarkPaid(gomock.Any(), "ORD-1", "TXN-1").Return(order, true, nil)
		products.EXPECT().DecrementQty(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if got := uc.ResolveRedirect(context.Background(), "ORD-1"); got != RedirectOutcomeSuccess {
			t.Fatalf("expected success outcome, got %s", got)
		}
	})

	t.Run("failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewReconcileUseCase(orders, NewStockUseCase(nil), gateway)

		order := paidableOrder()
		gateway.EXPECT().CheckStatus(gomock.Any(), "ORD-1").Return(interfaces.PaymentState{State: "FAILED"}, nil)
		orders.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(order, nil)
		orders.EXPECT().MarkFailed(gomock.Any(), "ORD-1").Return(order, nil)

		if got := uc.ResolveRedirect(context.Background(), "ORD-1"); got != RedirectOutcomeFailure {
			t.Fatalf("expected failure outcome, got %s", got)
		}
	})

	t.Run("pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewReconcileUseCase(nil, NewStockUseCase(nil), gateway)

		gateway.EXPECT().CheckStatus(gomock.Any(), "ORD-1").Return(interfaces.PaymentState{State: "PENDING"}, nil)

		if got := uc.ResolveRedirect(context.Background(), "ORD-1"); got != RedirectOutcomePending {
			t.Fatalf("expected pending outcome, got %s", got)
		}
	})

	t.Run("status check error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewReconcileUseCase(nil, NewStockUseCase(nil), gateway)

		gateway.EXPECT().CheckStatus(gomock.Any(), "ORD-1").Return(interfaces.PaymentState{}, errors.New("provider down"))

		if got := uc.ResolveRedirect(context.Background(), "ORD-1"); got != RedirectOutcomeError {
			t.Fatalf("expected error outcome, got %s", got)
		}
	})

	t.Run("no gateway configured", func(t *testing.T) {
		uc := NewReconcileUseCase(nil, NewStockUseCase(nil), nil)
		if got := uc.ResolveRedirect(context.Background(), "ORD-1"); got != RedirectOutcomeError {
			t.Fatalf("expected error outcome, got %s", got)
		}
	})
}
