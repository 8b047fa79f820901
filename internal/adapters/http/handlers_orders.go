package http

import (
	"net/http"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/contracts"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	var req contracts.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	order, err := h.service.CreateOrder(r.Context(), actor, application.CreateOrderInput{
		Amount:      amount,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Shipping:    shippingFromDTO(req.Shipping),
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_order", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Order created successfully", map[string]string{"orderId": order.ID})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	orders, err := h.service.ListOrders(r.Context(), actor)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "list_orders", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "All orders fetched successfully", map[string]any{"orders": orders})
}
