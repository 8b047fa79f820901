package contracts

// Wire DTOs for the HTTP surface. Amounts arrive as JSON numbers and are
// checked for integrality at the boundary, so they are decoded as float64
// here and converted after validation.

type AddressDTO struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type ShippingDTO struct {
	Address AddressDTO `json:"address"`
	Name    string     `json:"name,omitempty"`
}

type CreateOrderRequest struct {
	Amount      float64      `json:"amount"`
	ProductID   string       `json:"productId,omitempty"`
	ProductName string       `json:"productName,omitempty"`
	Shipping    *ShippingDTO `json:"shipping,omitempty"`
}

type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

type CreateCheckoutSessionRequest struct {
	Amount      float64      `json:"amount"`
	ProductID   string       `json:"productId,omitempty"`
	ProductName string       `json:"productName,omitempty"`
	Shipping    *ShippingDTO `json:"shipping,omitempty"`
}

type RegisterUserRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CharityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Website     string `json:"website,omitempty"`
}

type ProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	CategoryID    string   `json:"categoryId"`
	CharityID     string   `json:"charityId"`
	Quality       string   `json:"quality"`
	Size          string   `json:"size"`
	ProductImages []string `json:"product_images"`
	Donation      int      `json:"donation"`
	Price         int64    `json:"price"`
	Likes         int      `json:"likes"`
	Number        int      `json:"number"`
}
