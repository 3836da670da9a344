package usecase

import (
	"context"
	"errors"
	"testing"

	"plantcart/internal/domain/entities"
	mock_interfaces "plantcart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderAdminUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status value", func(t *testing.T) {
		uc := NewOrderAdminUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "ORD-1", "shipped")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderAdminUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ORD-ghost").Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ORD-ghost", entities.OrderStatusInProcess)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo enforces transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderAdminUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusCompleted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", entities.OrderStatusNew).Return(entities.Order{}, entities.ErrInvalidStatusTransition)

		_, err := uc.UpdateStatus(context.Background(), "ORD-1", entities.OrderStatusNew)
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("forward transition applies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderAdminUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusNew}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", entities.OrderStatusInProcess).Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusInProcess}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "ORD-1", entities.OrderStatusInProcess)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusInProcess {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})
}

func TestOrderAdminUseCase_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderAdminUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "ORD-ghost").Return(entities.Order{}, nil)

	if _, err := uc.GetByID(context.Background(), "ORD-ghost"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for blank id, got %v", err)
	}
}
