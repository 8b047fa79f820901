package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

// Handler is the HTTP adapter entrypoint. It holds only the application
// service and the token verifier to keep adapter boundaries clean.
type Handler struct {
	service  *application.Service
	verifier ports.TokenVerifier
}

func NewHandler(service *application.Service, verifier ports.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// NewRouter registers routes and the middleware stack. The webhook endpoint
// stays outside the auth group: it authenticates by signature, not bearer
// token, and must see the raw body.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeSuccess(w, http.StatusOK, "ok", nil) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeSuccess(w, http.StatusOK, "ready", nil) })

	r.Route("/api", func(r chi.Router) {
		r.Post("/payment/webhook", handler.gatewayWebhook)

		r.Get("/category/all", handler.listCategories)
		r.Get("/category/{id}", handler.getCategory)
		r.Get("/charity/all", handler.listCharities)
		r.Get("/charity/{id}", handler.getCharity)
		r.Get("/product/all", handler.listProducts)
		r.Get("/product/all/details", handler.listProductDetails)
		r.Get("/product/category/{categoryId}", handler.listProductsByCategory)
		r.Get("/product/charity/{charityId}", handler.listProductsByCharity)
		r.Get("/product/{id}", handler.getProduct)
		r.Get("/product/{id}/details", handler.getProductDetails)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)

			r.Post("/auth/register", handler.registerUser)
			r.Get("/auth/me", handler.getProfile)

			r.Post("/category/create", handler.createCategory)
			r.Put("/category/{id}", handler.updateCategory)
			r.Delete("/category/{id}", handler.deleteCategory)

			r.Post("/charity/create", handler.createCharity)
			r.Put("/charity/{id}", handler.updateCharity)
			r.Delete("/charity/{id}", handler.deleteCharity)

			r.Get("/product/mine", handler.listMyProducts)
			r.Post("/product/create", handler.createProduct)
			r.Put("/product/{id}", handler.updateProduct)
			r.Delete("/product/{id}", handler.deleteProduct)

			r.Post("/order/create", handler.createOrder)
			r.Get("/order/all", handler.listOrders)

			r.Post("/payment/create-payment-intent", handler.createPaymentIntent)
			r.Post("/checkout/create-checkout-session", handler.createCheckoutSession)
		})
	})
	return r
}
