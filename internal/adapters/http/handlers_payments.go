package http

import (
	"io"
	"net/http"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/contracts"
)

const maxWebhookBody = 1 << 20

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	var req contracts.CreatePaymentIntentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	out, err := h.service.CreatePaymentIntent(r.Context(), actor, amount)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_payment_intent", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "PaymentIntent created", out)
}

func (h *Handler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	var req contracts.CreateCheckoutSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	sessionID, err := h.service.CreateCheckoutSession(r.Context(), actor, application.CreateCheckoutSessionInput{
		Amount:      amount,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Shipping:    shippingFromDTO(req.Shipping),
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "create_checkout_session", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Checkout session created", map[string]string{"sessionId": sessionID})
}

// gatewayWebhook reads the raw body and hands it to the service together
// with the signature header. The body must not be decoded before signature
// verification.
func (h *Handler) gatewayWebhook(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		writeError(w, http.StatusBadRequest, "Missing Stripe signature header", "")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read webhook body", err.Error())
		return
	}

	if err := h.service.HandleGatewayEvent(r.Context(), payload, signature); err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "gateway_webhook", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Webhook received", map[string]any{})
}
