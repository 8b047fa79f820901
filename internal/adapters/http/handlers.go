package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/Cherry-CIC/Cherry-Backend/internal/contracts"
	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

func decodeBody(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// parseAmount enforces the positive-integer minor-unit contract before the
// request reaches the orchestrator.
func parseAmount(amount float64) (int64, error) {
	if amount != math.Trunc(amount) {
		return 0, errors.New(`"amount" should be an integer`)
	}
	if amount <= 0 {
		return 0, errors.New(`"amount" must be greater than 0`)
	}
	return int64(amount), nil
}

func shippingFromDTO(dto *contracts.ShippingDTO) *domain.ShippingInfo {
	if dto == nil {
		return nil
	}
	return &domain.ShippingInfo{
		Address: domain.ShippingAddress{
			Line1:      dto.Address.Line1,
			Line2:      dto.Address.Line2,
			City:       dto.Address.City,
			State:      dto.Address.State,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		Name: dto.Name,
	}
}
