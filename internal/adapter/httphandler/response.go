package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/domain"
)

const maxBodySize = 1 << 20

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", "httphandler.writeJSON", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errorCode(status),
		Message: msg,
	})
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnsupportedMediaType:
		return "unsupported_media_type"
	case http.StatusUnprocessableEntity:
		return "unprocessable_entity"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// writeServiceError maps domain errors to statuses. Unknown errors are
// logged and reported as internal.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var (
		status int
		msg    string
	)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status, msg = http.StatusNotFound, "product not found"
	case errors.Is(err, domain.ErrCartItemNotFound):
		status, msg = http.StatusNotFound, "product is not in the cart"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrNotAuthenticated):
		status, msg = http.StatusUnauthorized, "not signed in"
	case errors.Is(err, domain.ErrEmptyCart):
		status, msg = http.StatusUnprocessableEntity, "cart is empty"
	case errors.Is(err, domain.ErrInvalidShipping):
		status, msg = http.StatusUnprocessableEntity, "shipping information is incomplete"
	case errors.Is(err, domain.ErrInvalidPayment):
		status, msg = http.StatusUnprocessableEntity, "payment information is invalid"
	case errors.Is(err, domain.ErrHistoryUnavailable):
		status, msg = http.StatusServiceUnavailable, "order history is unavailable"
	default:
		slog.Error("request failed", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	slog.Debug("request rejected", "op", op, "err", err)
	writeError(w, status, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		return false
	}
	return true
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
