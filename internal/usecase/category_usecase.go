package usecase

import (
	"context"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

// ICategoryUseCase exposes the read-mostly category catalog.

type ICategoryUseCase interface {
	List(ctx context.Context) ([]entities.Category, error)
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}
