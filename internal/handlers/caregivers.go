package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pliu/seniorsched/internal/service"
)

type AssignCaregiverRequest struct {
	Email string `json:"email"`
}

type CaregiverHandler struct {
	Users *service.UserService
}

func (h *CaregiverHandler) GetManagedUsers(w http.ResponseWriter, r *http.Request) {
	caregiverID := mux.Vars(r)["caregiver_id"]

	users, err := h.Users.ListManagedUsers(r.Context(), caregiverID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *CaregiverHandler) AssignUser(w http.ResponseWriter, r *http.Request) {
	caregiverID := mux.Vars(r)["caregiver_id"]

	var req AssignCaregiverRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.Users.AssignCaregiver(r.Context(), caregiverID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
