package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

func TestCreateProductValidatesReferences(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()
	actor := application.Actor{UID: "u1"}

	_, err := f.service.CreateProduct(ctx, actor, domain.Product{
		Name:       "Shirt",
		CategoryID: "missing",
		CharityID:  charityID,
		Price:      1500,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown category, got %v", err)
	}

	product, err := f.service.CreateProduct(ctx, actor, domain.Product{
		Name:       "Shirt",
		CategoryID: categoryID,
		CharityID:  charityID,
		Price:      1500,
		Donation:   10,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected store-generated product id")
	}
	if product.UserID != "u1" {
		t.Fatalf("expected listing owned by caller, got %q", product.UserID)
	}
}

func TestUpdateProductEnforcesOwnership(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()

	product, err := f.service.CreateProduct(ctx, application.Actor{UID: "owner"}, domain.Product{
		Name:       "Shirt",
		CategoryID: categoryID,
		CharityID:  charityID,
		Price:      1500,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	name := "Renamed"
	_, err = f.service.UpdateProduct(ctx, application.Actor{UID: "intruder"}, product.ID, domain.ProductUpdate{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner update, got %v", err)
	}

	updated, err := f.service.UpdateProduct(ctx, application.Actor{UID: "owner"}, product.ID, domain.ProductUpdate{Name: &name})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
}

func TestDeleteProductEnforcesOwnership(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()

	product, err := f.service.CreateProduct(ctx, application.Actor{UID: "owner"}, domain.Product{
		Name:       "Shirt",
		CategoryID: categoryID,
		CharityID:  charityID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := f.service.DeleteProduct(ctx, application.Actor{UID: "intruder"}, product.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner delete, got %v", err)
	}
	if err := f.service.DeleteProduct(ctx, application.Actor{UID: "owner"}, product.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := f.service.GetProduct(ctx, product.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestProductDetailsTolerateDanglingReferences(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()

	product, err := f.service.CreateProduct(ctx, application.Actor{UID: "owner"}, domain.Product{
		Name:       "Shirt",
		CategoryID: categoryID,
		CharityID:  charityID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	details, err := f.service.GetProductDetails(ctx, product.ID)
	if err != nil {
		t.Fatalf("get details failed: %v", err)
	}
	if details.Category == nil || details.Charity == nil {
		t.Fatalf("expected embedded category and charity")
	}

	delete(f.categories.byID, categoryID)
	details, err = f.service.GetProductDetails(ctx, product.ID)
	if err != nil {
		t.Fatalf("details with dangling category should not fail: %v", err)
	}
	if details.Category != nil {
		t.Fatalf("expected nil category for dangling reference")
	}
	if details.Charity == nil {
		t.Fatalf("charity should still resolve")
	}
}

func TestListMyProductsFiltersByOwner(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()

	for _, uid := range []string{"u1", "u1", "u2"} {
		if _, err := f.service.CreateProduct(ctx, application.Actor{UID: uid}, domain.Product{
			Name:       "Shirt",
			CategoryID: categoryID,
			CharityID:  charityID,
		}); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	mine, err := f.service.ListMyProducts(ctx, application.Actor{UID: "u1"})
	if err != nil {
		t.Fatalf("list my products failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected two listings for u1, got %d", len(mine))
	}
}

func TestCategoryValidationAndCRUD(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	actor := application.Actor{UID: "u1"}

	if _, err := f.service.CreateCategory(ctx, actor, domain.Category{Name: "  "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}

	category, err := f.service.CreateCategory(ctx, actor, domain.Category{Name: "Books"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	name := "Used Books"
	updated, err := f.service.UpdateCategory(ctx, actor, category.ID, domain.CategoryUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update category failed: %v", err)
	}
	if updated.Name != "Used Books" {
		t.Fatalf("expected renamed category, got %q", updated.Name)
	}

	if err := f.service.DeleteCategory(ctx, actor, category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if _, err := f.service.GetCategory(ctx, category.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestCharityValidation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	actor := application.Actor{UID: "u1"}

	_, err := f.service.CreateCharity(ctx, actor, domain.Charity{Name: "Shelter"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing fields, got %v", err)
	}

	charity, err := f.service.CreateCharity(ctx, actor, domain.Charity{
		Name:        "Shelter",
		Description: "Housing support",
		ImageURL:    "https://img.example.com/shelter.png",
	})
	if err != nil {
		t.Fatalf("create charity failed: %v", err)
	}
	if charity.ID == "" {
		t.Fatalf("expected store-generated charity id")
	}
}

func TestCatalogWritesRequireActor(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	categoryID, charityID := f.seedCatalog()

	if _, err := f.service.CreateProduct(ctx, application.Actor{}, domain.Product{Name: "Shirt", CategoryID: categoryID, CharityID: charityID}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized product create, got %v", err)
	}
	if _, err := f.service.CreateCategory(ctx, application.Actor{}, domain.Category{Name: "Books"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized category create, got %v", err)
	}
	if err := f.service.DeleteCharity(ctx, application.Actor{}, charityID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized charity delete, got %v", err)
	}
}
