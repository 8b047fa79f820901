package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

func TestCreateOrderPersistsWithStoreID(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("u1", "buyer@example.com")

	order, err := f.service.CreateOrder(ctx, application.Actor{UID: "u1"}, application.CreateOrderInput{
		Amount:      1500,
		ProductID:   "p1",
		ProductName: "Shirt",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("expected store-generated order id")
	}
	if order.Email != "buyer@example.com" {
		t.Fatalf("expected email from stored profile, got %q", order.Email)
	}
	if order.Amount != 1500 {
		t.Fatalf("expected amount 1500, got %d", order.Amount)
	}

	orders, err := f.service.ListOrders(ctx, application.Actor{UID: "u1"})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("expected the created order in the listing, got %+v", orders)
	}

	if len(f.publisher.events) != 1 || f.publisher.events[0].eventType != "order.created" {
		t.Fatalf("expected one order.created event, got %+v", f.publisher.events)
	}
	if !strings.Contains(f.publisher.events[0].payload, order.ID) {
		t.Fatalf("expected order id in event payload, got %s", f.publisher.events[0].payload)
	}
}

func TestCreateOrderUnknownUserHasNoSideEffects(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	_, err := f.service.CreateOrder(ctx, application.Actor{UID: "ghost"}, application.CreateOrderInput{Amount: 1500})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found for unregistered user, got %v", err)
	}
	if len(f.orders.stored) != 0 {
		t.Fatalf("expected no stored order, got %d", len(f.orders.stored))
	}
	if len(f.gateway.calls) != 0 {
		t.Fatalf("order path must not touch the gateway, got calls %v", f.gateway.calls)
	}
	if len(f.publisher.events) != 0 {
		t.Fatalf("expected no published events, got %+v", f.publisher.events)
	}
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("u1", "buyer@example.com")

	for _, amount := range []int64{0, -500} {
		_, err := f.service.CreateOrder(ctx, application.Actor{UID: "u1"}, application.CreateOrderInput{Amount: amount})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("amount %d: expected invalid input, got %v", amount, err)
		}
	}
	if len(f.orders.stored) != 0 {
		t.Fatalf("expected no stored orders after rejected amounts")
	}
}

func TestCreateOrderRequiresActor(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.service.CreateOrder(context.Background(), application.Actor{}, application.CreateOrderInput{Amount: 1500})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized without actor, got %v", err)
	}
}

func TestRepeatedOrdersCreateDistinctRecords(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.seedUser("u1", "buyer@example.com")

	input := application.CreateOrderInput{Amount: 1500, ProductID: "p1", ProductName: "Shirt"}
	first, err := f.service.CreateOrder(ctx, application.Actor{UID: "u1"}, input)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := f.service.CreateOrder(ctx, application.Actor{UID: "u1"}, input)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct order ids, both were %s", first.ID)
	}
	if len(f.orders.stored) != 2 {
		t.Fatalf("expected two stored orders, got %d", len(f.orders.stored))
	}
}
