package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pliu/seniorsched/internal/service"
	"github.com/pliu/seniorsched/internal/store"
)

// NewRouter wires the services on top of st and registers every endpoint.
func NewRouter(st store.Store, scopeTakenToUser bool) *mux.Router {
	users := service.NewUserService(st)

	authHandler := &AuthHandler{Users: users}
	caregiverHandler := &CaregiverHandler{Users: users}
	medicationHandler := &MedicationHandler{
		Medications:      service.NewMedicationService(st),
		ScopeTakenToUser: scopeTakenToUser,
	}
	chatHandler := &ChatHandler{Chat: service.NewChatService(st)}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Identity
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/users", authHandler.ListUsers).Methods("GET")
	r.HandleFunc("/caregivers/{caregiver_id}/users", caregiverHandler.GetManagedUsers).Methods("GET")
	r.HandleFunc("/caregivers/{caregiver_id}/users", caregiverHandler.AssignUser).Methods("POST")

	// Medications
	r.HandleFunc("/medications/{user_id}", medicationHandler.GetMedications).Methods("GET")
	r.HandleFunc("/medications/{user_id}", medicationHandler.AddMedication).Methods("POST")
	r.HandleFunc("/medications/{user_id}/{med_id}", medicationHandler.UpdateMedication).Methods("PUT")
	r.HandleFunc("/medications/{user_id}/{med_id}", medicationHandler.DeleteMedication).Methods("DELETE")
	r.HandleFunc("/medications/{user_id}/{med_id}/taken", medicationHandler.MarkTaken).Methods("POST")

	// Chat
	r.HandleFunc("/chats/{medication_id}", chatHandler.GetChatMessages).Methods("GET")
	r.HandleFunc("/chats/{medication_id}", chatHandler.SendMessage).Methods("POST")

	return r
}
