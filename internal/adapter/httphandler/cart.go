package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/port"
)

type CartHandler struct {
	carts port.CartManager
}

func RegisterCart(r chi.Router, m port.CartManager) {
	h := CartHandler{m}
	cr := r.With(RequireClientID)
	cr.Get("/v1/cart", h.GetCart)
	cr.Delete("/v1/cart", h.ClearCart)
	cr.Post("/v1/cart/items", h.PostItem)
	cr.Patch("/v1/cart/items/{id}", h.PatchItem)
	cr.Delete("/v1/cart/items/{id}", h.DeleteItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"

	cart, err := h.carts.Cart(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"

	if err := h.carts.ClearCart(r.Context(), clientID(r)); err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"

	var req productRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		writeError(w, http.StatusBadRequest, "product_id must be a positive integer")
		return
	}

	cart, err := h.carts.AddToCart(r.Context(), clientID(r), req.ProductID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

// PatchItem sets the quantity. A quantity below one removes the item.
func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req quantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	cart, err := h.carts.UpdateCartQuantity(r.Context(), clientID(r), id, *req.Quantity)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.carts.RemoveFromCart(r.Context(), clientID(r), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}
