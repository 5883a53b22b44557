package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pliu/seniorsched/internal/models"
	"github.com/pliu/seniorsched/internal/service"
)

type MedicationHandler struct {
	Medications *service.MedicationService

	// ScopeTakenToUser makes the taken action honour the user id in the path.
	ScopeTakenToUser bool
}

func (h *MedicationHandler) GetMedications(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	meds, err := h.Medications.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, meds)
}

func (h *MedicationHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var req service.AddMedicationRequest
	if !decode(w, r, &req) {
		return
	}

	med, err := h.Medications.Add(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, med)
}

func (h *MedicationHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req service.UpdateMedicationRequest
	if !decode(w, r, &req) {
		return
	}

	med, err := h.Medications.Update(r.Context(), vars["user_id"], vars["med_id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.Medications.Delete(r.Context(), vars["user_id"], vars["med_id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Medication deleted"})
}

func (h *MedicationHandler) MarkTaken(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var (
		med *models.Medication
		err error
	)
	if h.ScopeTakenToUser {
		med, err = h.Medications.MarkTakenFor(r.Context(), vars["user_id"], vars["med_id"])
	} else {
		med, err = h.Medications.MarkTaken(r.Context(), vars["med_id"])
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}
