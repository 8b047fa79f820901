package application

import (
	"time"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

// Config carries the payment-path settings resolved at bootstrap.
type Config struct {
	ServiceName         string
	Currency            string
	SurchargeMinorUnits int64
	PublishableKey      string
	FrontendBaseURL     string
	EventDedupTTL       time.Duration
}

// Actor is the verified caller identity attached to every authenticated
// request. It replaces the untyped request extension the HTTP layer would
// otherwise smuggle claims through.
type Actor struct {
	UID       string
	Email     string
	Name      string
	RequestID string
}

type CreateOrderInput struct {
	Amount      int64
	ProductID   string
	ProductName string
	Shipping    *domain.ShippingInfo
}

type CreateCheckoutSessionInput struct {
	Amount      int64
	ProductID   string
	ProductName string
	Shipping    *domain.ShippingInfo
}

// PaymentIntentOutput is the client-side confirmation bundle returned by the
// payment-intent path. Nothing in it is persisted locally.
type PaymentIntentOutput struct {
	PaymentIntent  string `json:"paymentIntent"`
	EphemeralKey   string `json:"ephemeralKey"`
	Customer       string `json:"customer"`
	PublishableKey string `json:"publishableKey"`
}

type RegisterUserInput struct {
	DisplayName string
	PhotoURL    string
}

type Service struct {
	cfg        Config
	users      ports.UserRepository
	orders     ports.OrderRepository
	products   ports.ProductRepository
	categories ports.CategoryRepository
	charities  ports.CharityRepository
	gateway    ports.PaymentGateway
	dedup      ports.EventDedupStore
	publisher  ports.EventPublisher
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Users      ports.UserRepository
	Orders     ports.OrderRepository
	Products   ports.ProductRepository
	Categories ports.CategoryRepository
	Charities  ports.CharityRepository
	Gateway    ports.PaymentGateway
	Dedup      ports.EventDedupStore
	Publisher  ports.EventPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "Cherry-Backend"
	}
	if cfg.Currency == "" {
		cfg.Currency = "gbp"
	}
	if cfg.SurchargeMinorUnits <= 0 {
		cfg.SurchargeMinorUnits = 2000
	}
	if cfg.FrontendBaseURL == "" {
		cfg.FrontendBaseURL = "http://localhost:3000"
	}
	if cfg.EventDedupTTL <= 0 {
		cfg.EventDedupTTL = 7 * 24 * time.Hour
	}
	return &Service{
		cfg:        cfg,
		users:      deps.Users,
		orders:     deps.Orders,
		products:   deps.Products,
		categories: deps.Categories,
		charities:  deps.Charities,
		gateway:    deps.Gateway,
		dedup:      deps.Dedup,
		publisher:  deps.Publisher,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}
