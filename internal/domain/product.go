package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is a marketplace listing. Listings belong to the user that created
// them and reference a category and the charity receiving the donation share.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CategoryID    string    `json:"categoryId"`
	CharityID     string    `json:"charityId"`
	UserID        string    `json:"userId"`
	Quality       string    `json:"quality"`
	Size          string    `json:"size"`
	ProductImages []string  `json:"product_images"`
	Donation      int       `json:"donation"`
	Price         int64     `json:"price"`
	Likes         int       `json:"likes"`
	Number        int       `json:"number"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductUpdate carries the mutable subset of a listing; nil fields are left
// untouched.
type ProductUpdate struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CategoryID    *string   `json:"categoryId,omitempty"`
	CharityID     *string   `json:"charityId,omitempty"`
	Quality       *string   `json:"quality,omitempty"`
	Size          *string   `json:"size,omitempty"`
	ProductImages *[]string `json:"product_images,omitempty"`
	Donation      *int      `json:"donation,omitempty"`
	Price         *int64    `json:"price,omitempty"`
	Likes         *int      `json:"likes,omitempty"`
	Number        *int      `json:"number,omitempty"`
}

// ProductDetails embeds the resolved category and charity alongside the
// listing for detail views.
type ProductDetails struct {
	Product
	Category *Category `json:"category,omitempty"`
	Charity  *Charity  `json:"charity,omitempty"`
}

func ValidateProductInput(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.CategoryID) == "" {
		return fmt.Errorf("%w: categoryId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.CharityID) == "" {
		return fmt.Errorf("%w: charityId is required", ErrInvalidInput)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if p.Donation < 0 || p.Donation > 100 {
		return fmt.Errorf("%w: donation must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}
