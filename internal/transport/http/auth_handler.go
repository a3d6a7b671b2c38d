package httpapi

import (
	"net/http"
	"time"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *App) loginHandler(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}

	session, err := a.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

func (a *App) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.Auth.Logout(r.Context(), bearerToken(r)); err != nil {
		WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
