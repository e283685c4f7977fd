package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

type AuthHandler struct {
	auth port.Authenticator
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"

	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	creds := domain.Credentials{Email: req.Email, Password: req.Password}
	if err := h.auth.Login(r.Context(), creds); err != nil {
		slog.Error("login failed", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, h.sessionView())
}

// Callback completes the OAuth-style login redirect.
func (h AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Callback"

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	if err := h.auth.HandleCallback(r.Context(), code); err != nil {
		slog.Error("auth callback failed", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, h.sessionView())
}

func (h AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	const op = "AuthHandler.Logout"

	if err := h.auth.Logout(); err != nil {
		slog.Error("logout failed", "op", op, "err", err)
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) CurrentSession(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, h.sessionView())
}

func (h AuthHandler) sessionView() SessionView {
	sess := h.auth.Session()
	return SessionView{
		Authenticated: sess.Authenticated,
		Name:          sess.Profile.Name,
		Email:         sess.Profile.Email,
	}
}
