package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pliu/seniorsched/internal/models"
	"github.com/pliu/seniorsched/internal/store"
)

const MaxMessageLength = 500

type SendMessageRequest struct {
	SenderID string `json:"sender_id"`
	Content  string `json:"content"`
}

type ChatService struct {
	store store.Store
	now   func() time.Time
}

func NewChatService(st store.Store) *ChatService {
	return &ChatService{store: st, now: time.Now}
}

// History returns the medication's chat oldest first. An unknown medication
// yields an empty history.
func (s *ChatService) History(ctx context.Context, medicationID string) ([]models.Message, error) {
	messages, err := s.store.GetChatMessages(ctx, medicationID)
	if err != nil {
		return nil, storageErr("chat history", err)
	}
	return messages, nil
}

// Send checks the medication exists but does not look SenderID up; the foreign
// key rejects an unknown sender, reported as ErrNotFound.
func (s *ChatService) Send(ctx context.Context, medicationID string, req SendMessageRequest) (*models.Message, error) {
	if req.SenderID == "" || req.Content == "" {
		return nil, invalid("sender_id and content are required")
	}
	if utf8.RuneCountInString(req.Content) > MaxMessageLength {
		return nil, invalid("content exceeds %d characters", MaxMessageLength)
	}

	if _, err := s.store.GetMedication(ctx, medicationID); err != nil {
		return nil, storageErr("medication", err)
	}

	msg := &models.Message{
		ID:           uuid.New().String(),
		MedicationID: medicationID,
		SenderID:     req.SenderID,
		Content:      req.Content,
		Timestamp:    s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		return nil, referenceErr("sender", "save message", err)
	}
	return msg, nil
}
