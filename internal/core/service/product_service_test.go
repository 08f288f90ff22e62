package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

type stubProductRepo struct {
	byID   map[string]*domain.Product
	order  []string
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, name string) ([]domain.Product, error) {
	q := strings.ToLower(name)
	var out []domain.Product
	for _, id := range r.order {
		if strings.Contains(strings.ToLower(r.byID[id].Name), q) {
			out = append(out, *r.byID[id])
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.PictureURL != nil {
		p.PictureURL = *patch.PictureURL
	}
	if patch.ProductType != nil {
		p.ProductType = *patch.ProductType
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubProductRepo) Any(_ context.Context) (bool, error) {
	return len(r.byID) > 0, nil
}

func newProductService(repo ports.ProductRepository) *ProductService {
	return NewProductService(repo, zerolog.Nop())
}

func TestProductService_Create_AssignsDistinctIDs(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	first, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "iPhone 12", Price: 799})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "iPhone 13", Price: 899})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both were %q", first.ID)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "", Price: 10}); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: -1}); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_PartialPriceOnly(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "iPhone 12",
		Description: "128GB",
		Price:       799,
		ProductType: "smartphone",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 749.0
	updated, err := svc.Update(context.Background(), created.ID, ports.ProductPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Price != 749 {
		t.Fatalf("expected price 749, got %v", updated.Price)
	}
	if updated.Name != "iPhone 12" || updated.Description != "128GB" || updated.ProductType != "smartphone" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	price := 10.0
	if _, err := svc.Update(context.Background(), "missing", ports.ProductPatch{Price: &price}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_Validation(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 10})

	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, ports.ProductPatch{Name: &empty}); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	negative := -5.0
	if _, err := svc.Update(context.Background(), created.ID, ports.ProductPatch{Price: &negative}); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductService_Search_CaseInsensitiveSubstring(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	for _, name := range []string{"iPhone 12", "Samsung Galaxy", "iPhone 13"} {
		if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: name, Price: 100}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}

	results, err := svc.Search(context.Background(), "iphone")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, p := range results {
		if !strings.HasPrefix(p.Name, "iPhone") {
			t.Fatalf("unexpected result: %q", p.Name)
		}
	}
}

func TestProductService_Search_BlankReturnsAll(t *testing.T) {
	svc := newProductService(newStubProductRepo())

	for _, name := range []string{"A", "B", "C"} {
		_, _ = svc.Create(context.Background(), ports.CreateProductInput{Name: name, Price: 1})
	}

	results, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected all 3 products, got %d", len(results))
	}
}

func TestProductService_Seed_Idempotent(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo)

	inserted, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != len(demoCatalog) {
		t.Fatalf("expected %d inserted, got %d", len(demoCatalog), inserted)
	}

	replay, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if replay != 0 {
		t.Fatalf("expected second seed to be a no-op, inserted %d", replay)
	}

	all, _ := svc.List(context.Background())
	if len(all) != len(demoCatalog) {
		t.Fatalf("expected %d products after replay, got %d", len(demoCatalog), len(all))
	}
}
