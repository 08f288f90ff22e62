package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

// ProductService implements catalog CRUD, search, and demo seeding on top of
// a document-store product repository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrProductNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidation("name is required")
	}
	if in.Price < 0 {
		return nil, domain.NewValidation("price must not be negative")
	}

	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		PictureURL:  in.PictureURL,
		ProductType: in.ProductType,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.NewValidation("name must not be empty")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.NewValidation("price must not be negative")
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) Search(ctx context.Context, name string) ([]domain.Product, error) {
	q := strings.TrimSpace(name)
	if q == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.SearchByName(ctx, q)
}

// Seed inserts the demo catalog once. A single existence probe guards the
// operation, so a second run is a no-op.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	populated, err := s.repo.Any(ctx)
	if err != nil {
		return 0, err
	}
	if populated {
		s.logger.Info().Msg("seed skipped: catalog not empty")
		return 0, nil
	}

	inserted := 0
	for i := range demoCatalog {
		if _, err := s.repo.Insert(ctx, &demoCatalog[i]); err != nil {
			return inserted, err
		}
		inserted++
	}

	s.logger.Info().Int("inserted", inserted).Msg("demo catalog seeded")
	return inserted, nil
}

// demoCatalog is the fixed set of products inserted by Seed.
var demoCatalog = []domain.Product{
	{
		Name:        "iPhone 12",
		Description: "Apple iPhone 12, 128GB, Black",
		Price:       799,
		PictureURL:  "https://example.com/images/iphone-12.jpg",
		ProductType: "smartphone",
	},
	{
		Name:        "iPhone 13",
		Description: "Apple iPhone 13, 256GB, Midnight",
		Price:       899,
		PictureURL:  "https://example.com/images/iphone-13.jpg",
		ProductType: "smartphone",
	},
	{
		Name:        "Samsung Galaxy S21",
		Description: "Samsung Galaxy S21 5G, 128GB, Phantom Gray",
		Price:       699,
		PictureURL:  "https://example.com/images/galaxy-s21.jpg",
		ProductType: "smartphone",
	},
	{
		Name:        "MacBook Air M2",
		Description: "Apple MacBook Air 13\", M2, 8GB RAM, 256GB SSD",
		Price:       1199,
		PictureURL:  "https://example.com/images/macbook-air-m2.jpg",
		ProductType: "laptop",
	},
	{
		Name:        "AirPods Pro",
		Description: "Apple AirPods Pro, 2nd generation",
		Price:       249,
		PictureURL:  "https://example.com/images/airpods-pro.jpg",
		ProductType: "accessory",
	},
}
