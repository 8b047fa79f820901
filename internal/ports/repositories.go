package ports

import (
	"context"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

// UserRepository resolves stored profiles. GetByFirebaseUID returns
// domain.ErrNotFound when no profile exists for the caller identity.
type UserRepository interface {
	GetByFirebaseUID(ctx context.Context, firebaseUID string) (domain.User, error)
	Upsert(ctx context.Context, user domain.User) (domain.User, error)
}

// OrderRepository persists order records. Create returns the stored order
// including its store-generated identifier.
type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, id string, update domain.ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	ListByCharity(ctx context.Context, charityID string) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Update(ctx context.Context, id string, update domain.CategoryUpdate) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CharityRepository interface {
	GetAll(ctx context.Context) ([]domain.Charity, error)
	GetByID(ctx context.Context, id string) (domain.Charity, error)
	Create(ctx context.Context, charity domain.Charity) (domain.Charity, error)
	Update(ctx context.Context, id string, update domain.CharityUpdate) (domain.Charity, error)
	Delete(ctx context.Context, id string) error
}
