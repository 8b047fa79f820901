package domain

import (
	"fmt"
	"strings"
	"time"
)

// User is the stored profile behind an external identity. The payment and
// order paths read it to resolve the caller's email; they never mutate it.
type User struct {
	ID          string    `json:"id"`
	FirebaseUID string    `json:"firebaseUid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidateUserInput(firebaseUID, email string) error {
	if strings.TrimSpace(firebaseUID) == "" {
		return fmt.Errorf("%w: firebase uid is required", ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return nil
}
