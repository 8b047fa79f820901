package security

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

// DevTokenVerifier accepts locally signed HS256 tokens. It exists for
// environments without Firebase credentials and must never be enabled in
// production.
type DevTokenVerifier struct {
	secret []byte
}

func NewDevTokenVerifier(secret string) *DevTokenVerifier {
	return &DevTokenVerifier{secret: []byte(secret)}
}

func (v *DevTokenVerifier) Verify(ctx context.Context, token string) (ports.AuthClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ports.AuthClaims{}, fmt.Errorf("%w: unexpected claims type", domain.ErrUnauthorized)
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return ports.AuthClaims{}, fmt.Errorf("%w: missing subject", domain.ErrUnauthorized)
	}

	claims := ports.AuthClaims{UID: sub}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := mapClaims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}
