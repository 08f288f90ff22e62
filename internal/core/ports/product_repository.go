package ports

import (
	"context"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	PictureURL  *string
	ProductType *string
}

// ProductRepository defines persistence operations for catalog products.
// The store assigns the document id on Insert.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	// SearchByName returns products whose name contains the given substring,
	// case-insensitively.
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	// Update applies the non-nil fields of patch and returns the updated
	// document, or domain.ErrProductNotFound.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// Any reports whether the collection holds at least one document. Used as
	// the idempotency probe for seeding.
	Any(ctx context.Context) (bool, error)
}
