package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(r chi.Router, a port.Authenticator) {
	h := AuthHandler{a}
	cr := r.With(RequireClientID)
	cr.Post("/v1/auth/login", h.PostLogin)
	cr.Post("/v1/auth/register", h.PostRegister)
	cr.Post("/v1/auth/logout", h.PostLogout)
	cr.Get("/v1/auth/session", h.GetSession)
	cr.Patch("/v1/account", h.PatchAccount)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.auth.Login(r.Context(), clientID(r), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(sess))
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"

	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.auth.Register(r.Context(), clientID(r), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSession(sess))
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogout"

	if err := h.auth.Logout(r.Context(), clientID(r)); err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetSession"

	sess, err := h.auth.Session(r.Context(), clientID(r))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(sess))
}

func (h AuthHandler) PatchAccount(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PatchAccount"

	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.auth.UpdateProfile(r.Context(), clientID(r), domain.ProfileUpdate(req))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(sess))
}
