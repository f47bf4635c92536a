package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/port"
)

type WishlistHandler struct {
	wishlists port.WishlistManager
}

func RegisterWishlist(r chi.Router, m port.WishlistManager) {
	h := WishlistHandler{m}
	cr := r.With(RequireClientID)
	cr.Get("/v1/wishlist", h.GetWishlist)
	cr.Delete("/v1/wishlist", h.ClearWishlist)
	cr.Post("/v1/wishlist/items", h.PostItem)
	cr.Get("/v1/wishlist/items/{id}", h.GetItem)
	cr.Delete("/v1/wishlist/items/{id}", h.DeleteItem)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlist"

	wl, err := h.wishlists.Wishlist(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlist(wl))
}

func (h WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.ClearWishlist"

	if err := h.wishlists.ClearWishlist(r.Context(), clientID(r)); err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h WishlistHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostItem"

	var req productRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		writeError(w, http.StatusBadRequest, "product_id must be a positive integer")
		return
	}

	wl, err := h.wishlists.AddToWishlist(r.Context(), clientID(r), req.ProductID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlist(wl))
}

// GetItem answers 404 when the product is not in the wishlist.
func (h WishlistHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetItem"

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.wishlists.InWishlist(r.Context(), clientID(r), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "product is not in the wishlist")
		return
	}
	writeJSON(w, http.StatusOK, WishlistStatus{ProductID: id, InWishlist: true})
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteItem"

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wl, err := h.wishlists.RemoveFromWishlist(r.Context(), clientID(r), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlist(wl))
}
