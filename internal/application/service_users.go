package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

// RegisterUser upserts the caller's profile from the verified claims. It is
// the first authenticated interaction that materializes a stored User; the
// payment paths only ever read the result.
func (s *Service) RegisterUser(ctx context.Context, actor Actor, input RegisterUserInput) (domain.User, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateUserInput(actor.UID, actor.Email); err != nil {
		return domain.User{}, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = actor.Name
	}
	now := s.nowFn()
	user, err := s.users.Upsert(ctx, domain.User{
		FirebaseUID: actor.UID,
		Email:       actor.Email,
		DisplayName: displayName,
		PhotoURL:    input.PhotoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("upsert user %s: %w", actor.UID, err)
	}
	return user, nil
}

// GetProfile returns the caller's stored profile.
func (s *Service) GetProfile(ctx context.Context, actor Actor) (domain.User, error) {
	if strings.TrimSpace(actor.UID) == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return s.users.GetByFirebaseUID(ctx, actor.UID)
}
