package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "plantcart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCleanupUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCleanupUseCase(repo)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	repo.EXPECT().DeleteCompletedBefore(gomock.Any(), now.Add(-orderRetention)).Return(3, nil)
	uc.Run(context.Background())
}

func TestCleanupUseCase_Run_ErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCleanupUseCase(repo)

	repo.EXPECT().DeleteCompletedBefore(gomock.Any(), gomock.Any()).Return(0, errors.New("scan failed"))
	uc.Run(context.Background())
}
