package sqlstore

import (
	"context"

	"github.com/pliu/seniorsched/internal/models"
)

func (s *SQLStore) SaveMessage(ctx context.Context, msg *models.Message) error {
	query := s.db.Rebind("INSERT INTO messages (id, medication_id, sender_id, content, created_at) VALUES (?, ?, ?, ?, ?)")
	_, err := s.db.ExecContext(ctx, query, msg.ID, msg.MedicationID, msg.SenderID, msg.Content, msg.Timestamp)
	return translate(err)
}

// GetChatMessages returns the chat oldest first. Messages sharing a timestamp
// keep their insertion order.
func (s *SQLStore) GetChatMessages(ctx context.Context, medicationID string) ([]models.Message, error) {
	messages := []models.Message{}
	query := s.db.Rebind(`
		SELECT id, medication_id, sender_id, content, created_at
		FROM messages
		WHERE medication_id = ?
		ORDER BY created_at ASC, seq ASC
	`)
	if err := s.db.SelectContext(ctx, &messages, query, medicationID); err != nil {
		return nil, err
	}
	return messages, nil
}
