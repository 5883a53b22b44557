package sqlstore

import (
	"context"

	"github.com/pliu/seniorsched/internal/models"
)

const userColumns = "id, email, name, age, password, is_caregiver, caregiver_id"

func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	query := s.db.Rebind("INSERT INTO users (" + userColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)")
	_, err := s.db.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.Age, user.Password, user.IsCaregiver, user.CaregiverID)
	return translate(err)
}

// GetUserByEmail matches the email exactly, case included.
func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := s.db.Rebind("SELECT " + userColumns + " FROM users WHERE email = ?")
	if err := s.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLStore) GetManagedUsers(ctx context.Context, caregiverID string) ([]models.User, error) {
	users := []models.User{}
	query := s.db.Rebind("SELECT " + userColumns + " FROM users WHERE caregiver_id = ?")
	if err := s.db.SelectContext(ctx, &users, query, caregiverID); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLStore) SetCaregiver(ctx context.Context, userID, caregiverID string) error {
	query := s.db.Rebind("UPDATE users SET caregiver_id = ? WHERE id = ?")
	res, err := s.db.ExecContext(ctx, query, caregiverID, userID)
	if err != nil {
		return translate(err)
	}
	return expectAffected(res)
}
