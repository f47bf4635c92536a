package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/port"
)

type CheckoutHandler struct {
	checkout port.CheckoutProcessor
}

func RegisterCheckout(r chi.Router, c port.CheckoutProcessor) {
	h := CheckoutHandler{c}
	cr := r.With(RequireClientID)
	cr.Post("/v1/checkout", h.PostCheckout)
	cr.Get("/v1/account/orders", h.GetOrders)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"

	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.checkout.Checkout(
		r.Context(), clientID(r), req.Shipping.toDomain(), req.Payment.toDomain(),
	)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrder(order))
}

func (h CheckoutHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.GetOrders"

	orders, err := h.checkout.OrderHistory(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderSummaries(orders))
}
