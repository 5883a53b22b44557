package store

import (
	"context"
	"errors"

	"github.com/pliu/seniorsched/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violated")
	// ErrBadReference means a foreign key points at a row that does not exist.
	ErrBadReference = errors.New("referenced record does not exist")
)

type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetManagedUsers(ctx context.Context, caregiverID string) ([]models.User, error)
	SetCaregiver(ctx context.Context, userID, caregiverID string) error

	// Medication operations
	CreateMedication(ctx context.Context, med *models.Medication) error
	GetMedication(ctx context.Context, id string) (*models.Medication, error)
	GetUserMedication(ctx context.Context, userID, id string) (*models.Medication, error)
	GetUserMedications(ctx context.Context, userID string) ([]models.Medication, error)
	UpdateMedication(ctx context.Context, med *models.Medication) error
	DeleteMedication(ctx context.Context, userID, id string) error
	MarkMedicationTaken(ctx context.Context, id string) error

	// Chat operations
	SaveMessage(ctx context.Context, msg *models.Message) error
	GetChatMessages(ctx context.Context, medicationID string) ([]models.Message, error)
}
