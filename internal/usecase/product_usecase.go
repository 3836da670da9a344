package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"
)

var ErrInvalidProduct = errors.New("invalid product")

const maxProductImages = 3

// ProductInput is the admin-facing create/update payload.
type ProductInput struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Qty         int
	Image       string
	Images      []string
}

// IProductUseCase exposes catalog operations: public reads plus admin CRUD.

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Save(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
	now  func() time.Time
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Save upserts a product. Products without an id get a time-derived one,
// matching the storefront's id scheme.
func (u *ProductUseCase) Save(ctx context.Context, in ProductInput) (entities.Product, error) {
	if verr := validateProduct(in); verr != nil {
		return entities.Product{}, verr
	}

	id := strings.TrimSpace(in.ID)
	createdAt := u.now().UTC()
	if id == "" {
		id = entities.NewProductID(createdAt)
	} else if existing, err := u.repo.GetByID(ctx, id); err != nil {
		return entities.Product{}, err
	} else if existing.ID != "" {
		createdAt = existing.CreatedAt
	}

	return u.repo.Put(ctx, entities.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Qty:         in.Qty,
		Image:       in.Image,
		Images:      in.Images,
		CreatedAt:   createdAt,
	})
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	in.ID = existing.ID
	return u.Save(ctx, in)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validateProduct(in ProductInput) *ValidationError {
	var reasons []string
	if strings.TrimSpace(in.Name) == "" {
		reasons = append(reasons, "Name is required")
	}
	if in.Price < 0 {
		reasons = append(reasons, "Valid price is required")
	}
	if in.Qty < 0 {
		reasons = append(reasons, "Valid quantity is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		reasons = append(reasons, "Category is required")
	}
	if len(in.Images) > maxProductImages {
		reasons = append(reasons, "At most 3 gallery images are allowed")
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
