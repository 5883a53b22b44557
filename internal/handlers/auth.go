package handlers

import (
	"net/http"

	"github.com/pliu/seniorsched/internal/service"
)

type AuthHandler struct {
	Users *service.UserService
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.Users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login only checks credentials. No cookie or token is issued; clients
// identify themselves by user id in later requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds service.Credentials
	if !decode(w, r, &creds) {
		return
	}

	user, err := h.Users.Authenticate(r.Context(), creds)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
