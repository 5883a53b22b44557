package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pliu/seniorsched/internal/service"
)

type ChatHandler struct {
	Chat *service.ChatService
}

func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	medicationID := mux.Vars(r)["medication_id"]

	messages, err := h.Chat.History(r.Context(), medicationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	medicationID := mux.Vars(r)["medication_id"]

	var req service.SendMessageRequest
	if !decode(w, r, &req) {
		return
	}

	msg, err := h.Chat.Send(r.Context(), medicationID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}
