package ports

import (
	"context"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	PictureURL  string
	ProductType string
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// Search matches name case-insensitively as a substring; a blank query
	// returns the full catalog.
	Search(ctx context.Context, name string) ([]domain.Product, error)
	// Seed inserts the demo catalog when the collection is empty and reports
	// how many documents were inserted (0 on replay).
	Seed(ctx context.Context) (int, error)
}
