package application_test

import (
	"context"
	"fmt"
	"time"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

type fixture struct {
	service    *application.Service
	users      *memUsers
	orders     *memOrders
	products   *memProducts
	categories *memCategories
	charities  *memCharities
	gateway    *fakeGateway
	dedup      *memDedup
	publisher  *capturePublisher
}

func newFixture() *fixture {
	f := &fixture{
		users:      &memUsers{byUID: map[string]domain.User{}},
		orders:     &memOrders{},
		products:   &memProducts{byID: map[string]domain.Product{}},
		categories: &memCategories{byID: map[string]domain.Category{}},
		charities:  &memCharities{byID: map[string]domain.Charity{}},
		gateway:    &fakeGateway{},
		dedup:      &memDedup{seen: map[string]bool{}},
		publisher:  &capturePublisher{},
	}
	f.service = application.NewService(application.Dependencies{
		Config: application.Config{
			Currency:            "gbp",
			SurchargeMinorUnits: 2000,
			PublishableKey:      "pk_test_123",
			FrontendBaseURL:     "https://shop.example.com",
			EventDedupTTL:       time.Hour,
		},
		Users:      f.users,
		Orders:     f.orders,
		Products:   f.products,
		Categories: f.categories,
		Charities:  f.charities,
		Gateway:    f.gateway,
		Dedup:      f.dedup,
		Publisher:  f.publisher,
	})
	return f
}

func (f *fixture) seedUser(uid, email string) {
	f.users.byUID[uid] = domain.User{
		ID:          "usr-" + uid,
		FirebaseUID: uid,
		Email:       email,
		DisplayName: "Seed User",
	}
}

func (f *fixture) seedCatalog() (categoryID, charityID string) {
	category := domain.Category{ID: "cat-1", Name: "Clothing"}
	charity := domain.Charity{ID: "cha-1", Name: "Shelter", Description: "Housing support", ImageURL: "https://img.example.com/shelter.png"}
	f.categories.byID[category.ID] = category
	f.charities.byID[charity.ID] = charity
	return category.ID, charity.ID
}

type memUsers struct {
	byUID map[string]domain.User
}

func (m *memUsers) GetByFirebaseUID(_ context.Context, firebaseUID string) (domain.User, error) {
	user, ok := m.byUID[firebaseUID]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, firebaseUID)
	}
	return user, nil
}

func (m *memUsers) Upsert(_ context.Context, user domain.User) (domain.User, error) {
	if existing, ok := m.byUID[user.FirebaseUID]; ok {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	} else {
		user.ID = "usr-" + user.FirebaseUID
	}
	m.byUID[user.FirebaseUID] = user
	return user, nil
}

type memOrders struct {
	stored []domain.Order
}

func (m *memOrders) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = fmt.Sprintf("ord-%d", len(m.stored)+1)
	m.stored = append(m.stored, order)
	return order, nil
}

func (m *memOrders) List(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(m.stored))
	copy(out, m.stored)
	return out, nil
}

type memProducts struct {
	byID map[string]domain.Product
	seq  int
}

func (m *memProducts) GetAll(_ context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (domain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func (m *memProducts) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	m.seq++
	product.ID = fmt.Sprintf("prd-%d", m.seq)
	m.byID[product.ID] = product
	return product, nil
}

func (m *memProducts) Update(_ context.Context, id string, update domain.ProductUpdate) (domain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.CategoryID != nil {
		p.CategoryID = *update.CategoryID
	}
	if update.CharityID != nil {
		p.CharityID = *update.CharityID
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Likes != nil {
		p.Likes = *update.Likes
	}
	m.byID[id] = p
	return p, nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	delete(m.byID, id)
	return nil
}

func (m *memProducts) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (m *memProducts) ListByCharity(_ context.Context, charityID string) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return p.CharityID == charityID }), nil
}

func (m *memProducts) ListByUser(_ context.Context, userID string) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return p.UserID == userID }), nil
}

func (m *memProducts) filter(keep func(domain.Product) bool) []domain.Product {
	out := []domain.Product{}
	for _, p := range m.byID {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

type memCategories struct {
	byID map[string]domain.Category
	seq  int
}

func (m *memCategories) GetAll(_ context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (domain.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	}
	return c, nil
}

func (m *memCategories) Create(_ context.Context, category domain.Category) (domain.Category, error) {
	m.seq++
	category.ID = fmt.Sprintf("cat-%d", m.seq+100)
	m.byID[category.ID] = category
	return category, nil
}

func (m *memCategories) Update(_ context.Context, id string, update domain.CategoryUpdate) (domain.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	m.byID[id] = c
	return c, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	}
	delete(m.byID, id)
	return nil
}

type memCharities struct {
	byID map[string]domain.Charity
	seq  int
}

func (m *memCharities) GetAll(_ context.Context) ([]domain.Charity, error) {
	out := []domain.Charity{}
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCharities) GetByID(_ context.Context, id string) (domain.Charity, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Charity{}, fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
	}
	return c, nil
}

func (m *memCharities) Create(_ context.Context, charity domain.Charity) (domain.Charity, error) {
	m.seq++
	charity.ID = fmt.Sprintf("cha-%d", m.seq+100)
	m.byID[charity.ID] = charity
	return charity, nil
}

func (m *memCharities) Update(_ context.Context, id string, update domain.CharityUpdate) (domain.Charity, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Charity{}, fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.ImageURL != nil {
		c.ImageURL = *update.ImageURL
	}
	if update.Website != nil {
		c.Website = *update.Website
	}
	m.byID[id] = c
	return c, nil
}

func (m *memCharities) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
	}
	delete(m.byID, id)
	return nil
}

// fakeGateway records the gateway call sequence and returns canned results.
type fakeGateway struct {
	calls []string

	existingCustomer *ports.GatewayCustomer
	findErr          error

	lastIntentAmount   int64
	lastIntentCurrency string
	lastIntentCustomer string

	lastSession ports.CheckoutSessionSpec

	verifyErr error
	event     ports.GatewayEvent
}

func (g *fakeGateway) FindCustomerByEmail(_ context.Context, email string) (*ports.GatewayCustomer, error) {
	g.calls = append(g.calls, "find_customer")
	if g.findErr != nil {
		return nil, g.findErr
	}
	return g.existingCustomer, nil
}

func (g *fakeGateway) CreateCustomer(_ context.Context, email string) (ports.GatewayCustomer, error) {
	g.calls = append(g.calls, "create_customer")
	return ports.GatewayCustomer{ID: "cus_new", Email: email}, nil
}

func (g *fakeGateway) CreateEphemeralKey(_ context.Context, customerID string) (string, error) {
	g.calls = append(g.calls, "create_ephemeral_key")
	return "ek_secret_" + customerID, nil
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency, customerID string) (ports.GatewayPaymentIntent, error) {
	g.calls = append(g.calls, "create_payment_intent")
	g.lastIntentAmount = amount
	g.lastIntentCurrency = currency
	g.lastIntentCustomer = customerID
	return ports.GatewayPaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, spec ports.CheckoutSessionSpec) (ports.GatewayCheckoutSession, error) {
	g.calls = append(g.calls, "create_checkout_session")
	g.lastSession = spec
	return ports.GatewayCheckoutSession{ID: "cs_1"}, nil
}

func (g *fakeGateway) VerifyWebhook(payload []byte, signature string) (ports.GatewayEvent, error) {
	g.calls = append(g.calls, "verify_webhook")
	if g.verifyErr != nil {
		return ports.GatewayEvent{}, g.verifyErr
	}
	return g.event, nil
}

type memDedup struct {
	seen map[string]bool
}

func (m *memDedup) MarkSeen(_ context.Context, eventID string, _ time.Duration) (bool, error) {
	if m.seen[eventID] {
		return false, nil
	}
	m.seen[eventID] = true
	return true, nil
}

type publishedEvent struct {
	eventType string
	payload   string
}

type capturePublisher struct {
	events []publishedEvent
}

func (p *capturePublisher) Publish(_ context.Context, eventType string, payload []byte) error {
	p.events = append(p.events, publishedEvent{eventType: eventType, payload: string(payload)})
	return nil
}
