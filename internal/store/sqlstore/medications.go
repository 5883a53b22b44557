package sqlstore

import (
	"context"

	"github.com/pliu/seniorsched/internal/models"
)

const medicationColumns = "id, user_id, name, amount, unit, schedule_time, days, taken"

func (s *SQLStore) CreateMedication(ctx context.Context, med *models.Medication) error {
	query := s.db.Rebind("INSERT INTO medications (" + medicationColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := s.db.ExecContext(ctx, query, med.ID, med.UserID, med.Name, med.Amount, med.Unit, med.Time, med.Days, med.Taken)
	return translate(err)
}

func (s *SQLStore) GetMedication(ctx context.Context, id string) (*models.Medication, error) {
	var med models.Medication
	query := s.db.Rebind("SELECT " + medicationColumns + " FROM medications WHERE id = ?")
	if err := s.db.GetContext(ctx, &med, query, id); err != nil {
		return nil, translate(err)
	}
	return &med, nil
}

func (s *SQLStore) GetUserMedication(ctx context.Context, userID, id string) (*models.Medication, error) {
	var med models.Medication
	query := s.db.Rebind("SELECT " + medicationColumns + " FROM medications WHERE id = ? AND user_id = ?")
	if err := s.db.GetContext(ctx, &med, query, id, userID); err != nil {
		return nil, translate(err)
	}
	return &med, nil
}

func (s *SQLStore) GetUserMedications(ctx context.Context, userID string) ([]models.Medication, error) {
	meds := []models.Medication{}
	query := s.db.Rebind("SELECT " + medicationColumns + " FROM medications WHERE user_id = ?")
	if err := s.db.SelectContext(ctx, &meds, query, userID); err != nil {
		return nil, err
	}
	return meds, nil
}

func (s *SQLStore) UpdateMedication(ctx context.Context, med *models.Medication) error {
	query := s.db.Rebind(`
		UPDATE medications
		SET name = ?, amount = ?, unit = ?, schedule_time = ?, days = ?, taken = ?
		WHERE id = ? AND user_id = ?
	`)
	res, err := s.db.ExecContext(ctx, query, med.Name, med.Amount, med.Unit, med.Time, med.Days, med.Taken, med.ID, med.UserID)
	if err != nil {
		return translate(err)
	}
	return expectAffected(res)
}

// DeleteMedication removes the medication together with its chat messages.
func (s *SQLStore) DeleteMedication(ctx context.Context, userID, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Messages first (foreign key constraint)
	query := s.db.Rebind(`
		DELETE FROM messages
		WHERE medication_id IN (SELECT id FROM medications WHERE id = ? AND user_id = ?)
	`)
	if _, err := tx.ExecContext(ctx, query, id, userID); err != nil {
		return err
	}

	query = s.db.Rebind("DELETE FROM medications WHERE id = ? AND user_id = ?")
	res, err := tx.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

// MarkMedicationTaken looks the medication up by id alone.
func (s *SQLStore) MarkMedicationTaken(ctx context.Context, id string) error {
	query := s.db.Rebind("UPDATE medications SET taken = ? WHERE id = ?")
	res, err := s.db.ExecContext(ctx, query, true, id)
	if err != nil {
		return translate(err)
	}
	return expectAffected(res)
}
