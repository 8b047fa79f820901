package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

// CreateOrder resolves the caller's profile, persists an order record and
// returns it with the store-generated id. There is no gateway call and no
// compensation on this path; a repeated call creates a second order.
func (s *Service) CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (domain.Order, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.Order{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return domain.Order{}, err
	}

	user, err := s.users.GetByFirebaseUID(ctx, actor.UID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("resolve user %s: %w", actor.UID, err)
	}

	order := domain.Order{
		UserID:      actor.UID,
		Email:       user.Email,
		Amount:      input.Amount,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Shipping:    input.Shipping,
		CreatedAt:   s.nowFn(),
	}
	saved, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	if s.publisher != nil {
		payload, _ := json.Marshal(map[string]any{
			"orderId": saved.ID,
			"userId":  saved.UserID,
			"amount":  saved.Amount,
		})
		_ = s.publisher.Publish(ctx, "order.created", payload)
	}
	return saved, nil
}

// ListOrders returns every stored order.
func (s *Service) ListOrders(ctx context.Context, actor Actor) ([]domain.Order, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.List(ctx)
}
