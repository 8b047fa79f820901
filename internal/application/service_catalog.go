package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProductDetails embeds the resolved category and charity. Dangling
// references are tolerated and left nil rather than failing the read.
func (s *Service) GetProductDetails(ctx context.Context, id string) (domain.ProductDetails, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.ProductDetails{}, err
	}
	return s.withDetails(ctx, product), nil
}

func (s *Service) ListProductDetails(ctx context.Context) ([]domain.ProductDetails, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]domain.ProductDetails, 0, len(products))
	for _, p := range products {
		details = append(details, s.withDetails(ctx, p))
	}
	return details, nil
}

func (s *Service) withDetails(ctx context.Context, product domain.Product) domain.ProductDetails {
	d := domain.ProductDetails{Product: product}
	if category, err := s.categories.GetByID(ctx, product.CategoryID); err == nil {
		d.Category = &category
	}
	if charity, err := s.charities.GetByID(ctx, product.CharityID); err == nil {
		d.Charity = &charity
	}
	return d
}

func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *Service) ListProductsByCharity(ctx context.Context, charityID string) ([]domain.Product, error) {
	return s.products.ListByCharity(ctx, charityID)
}

func (s *Service) ListMyProducts(ctx context.Context, actor Actor) ([]domain.Product, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.products.ListByUser(ctx, actor.UID)
}

// CreateProduct validates the referenced category and charity before writing
// the listing; unknown references are caller errors, not internal ones.
func (s *Service) CreateProduct(ctx context.Context, actor Actor, product domain.Product) (domain.Product, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Product{}, domain.ErrUnauthorized
	}
	product.UserID = actor.UID
	if err := domain.ValidateProductInput(product); err != nil {
		return domain.Product{}, err
	}
	if err := s.checkProductRefs(ctx, product.CategoryID, product.CharityID); err != nil {
		return domain.Product{}, err
	}

	now := s.nowFn()
	product.CreatedAt = now
	product.UpdatedAt = now
	saved, err := s.products.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("persist product: %w", err)
	}
	return saved, nil
}

func (s *Service) UpdateProduct(ctx context.Context, actor Actor, id string, update domain.ProductUpdate) (domain.Product, error) {
	existing, err := s.ownedProduct(ctx, actor, id)
	if err != nil {
		return domain.Product{}, err
	}

	categoryID := existing.CategoryID
	if update.CategoryID != nil {
		categoryID = *update.CategoryID
	}
	charityID := existing.CharityID
	if update.CharityID != nil {
		charityID = *update.CharityID
	}
	if err := s.checkProductRefs(ctx, categoryID, charityID); err != nil {
		return domain.Product{}, err
	}

	return s.products.Update(ctx, id, update)
}

func (s *Service) DeleteProduct(ctx context.Context, actor Actor, id string) error {
	if _, err := s.ownedProduct(ctx, actor, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) ownedProduct(ctx context.Context, actor Actor, id string) (domain.Product, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Product{}, domain.ErrUnauthorized
	}
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if existing.UserID != actor.UID {
		return domain.Product{}, domain.ErrForbidden
	}
	return existing, nil
}

func (s *Service) checkProductRefs(ctx context.Context, categoryID, charityID string) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: category not found", domain.ErrInvalidInput)
		}
		return fmt.Errorf("resolve category %s: %w", categoryID, err)
	}
	if _, err := s.charities.GetByID(ctx, charityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: charity not found", domain.ErrInvalidInput)
		}
		return fmt.Errorf("resolve charity %s: %w", charityID, err)
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, actor Actor, category domain.Category) (domain.Category, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Category{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateCategoryInput(category.Name); err != nil {
		return domain.Category{}, err
	}
	now := s.nowFn()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.categories.Create(ctx, category)
}

func (s *Service) UpdateCategory(ctx context.Context, actor Actor, id string, update domain.CategoryUpdate) (domain.Category, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Category{}, domain.ErrUnauthorized
	}
	if update.Name != nil {
		if err := domain.ValidateCategoryInput(*update.Name); err != nil {
			return domain.Category{}, err
		}
	}
	return s.categories.Update(ctx, id, update)
}

func (s *Service) DeleteCategory(ctx context.Context, actor Actor, id string) error {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.ErrUnauthorized
	}
	return s.categories.Delete(ctx, id)
}

func (s *Service) ListCharities(ctx context.Context) ([]domain.Charity, error) {
	return s.charities.GetAll(ctx)
}

func (s *Service) GetCharity(ctx context.Context, id string) (domain.Charity, error) {
	return s.charities.GetByID(ctx, id)
}

func (s *Service) CreateCharity(ctx context.Context, actor Actor, charity domain.Charity) (domain.Charity, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Charity{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateCharityInput(charity.Name, charity.Description, charity.ImageURL); err != nil {
		return domain.Charity{}, err
	}
	now := s.nowFn()
	charity.CreatedAt = now
	charity.UpdatedAt = now
	return s.charities.Create(ctx, charity)
}

func (s *Service) UpdateCharity(ctx context.Context, actor Actor, id string, update domain.CharityUpdate) (domain.Charity, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Charity{}, domain.ErrUnauthorized
	}
	return s.charities.Update(ctx, id, update)
}

func (s *Service) DeleteCharity(ctx context.Context, actor Actor, id string) error {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.ErrUnauthorized
	}
	return s.charities.Delete(ctx, id)
}
