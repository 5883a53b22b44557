package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pliu/seniorsched/internal/models"
	"github.com/pliu/seniorsched/internal/store"
)

type AddMedicationRequest struct {
	Name   string   `json:"name"`
	Amount float64  `json:"amount"`
	Unit   string   `json:"unit"`
	Time   string   `json:"time"`
	Days   []string `json:"days"`
}

// UpdateMedicationRequest distinguishes absent keys from present ones. Name,
// Amount, Unit, Time and Taken are kept when nil, which covers both a missing
// key and an explicit JSON null; any other value, "" and 0 included,
// overwrites the stored one.
//
// Days is not optional: it always replaces the stored set, and a missing or
// null list clears the schedule. A taken-only update therefore empties the
// days unless the caller sends them again.
type UpdateMedicationRequest struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
	Time   *string  `json:"time"`
	Days   []string `json:"days"`
	Taken  *bool    `json:"taken"`
}

type MedicationService struct {
	store store.Store
}

func NewMedicationService(st store.Store) *MedicationService {
	return &MedicationService{store: st}
}

func (s *MedicationService) List(ctx context.Context, userID string) ([]models.Medication, error) {
	meds, err := s.store.GetUserMedications(ctx, userID)
	if err != nil {
		return nil, storageErr("list medications", err)
	}
	return meds, nil
}

// Add does not look userID up; the foreign key rejects an unknown one, which
// is reported as ErrNotFound.
// An amount of zero counts as missing.
func (s *MedicationService) Add(ctx context.Context, userID string, req AddMedicationRequest) (*models.Medication, error) {
	if req.Name == "" || req.Amount == 0 || req.Unit == "" || req.Time == "" {
		return nil, invalid("name, amount, unit and time are required")
	}

	med := &models.Medication{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		Unit:   req.Unit,
		Time:   req.Time,
		Days:   models.NewDays(req.Days),
	}
	if err := s.store.CreateMedication(ctx, med); err != nil {
		return nil, referenceErr("user", "create medication", err)
	}
	return med, nil
}

// Update overwrites every field present in req, including empty strings.
func (s *MedicationService) Update(ctx context.Context, userID, medID string, req UpdateMedicationRequest) (*models.Medication, error) {
	med, err := s.store.GetUserMedication(ctx, userID, medID)
	if err != nil {
		return nil, storageErr("medication", err)
	}

	if req.Name != nil {
		med.Name = *req.Name
	}
	if req.Amount != nil {
		med.Amount = *req.Amount
	}
	if req.Unit != nil {
		med.Unit = *req.Unit
	}
	if req.Time != nil {
		med.Time = *req.Time
	}
	if req.Taken != nil {
		med.Taken = *req.Taken
	}
	med.Days = models.NewDays(req.Days)

	if err := s.store.UpdateMedication(ctx, med); err != nil {
		return nil, storageErr("medication", err)
	}
	return med, nil
}

// Delete also removes the medication's chat history.
func (s *MedicationService) Delete(ctx context.Context, userID, medID string) error {
	if err := s.store.DeleteMedication(ctx, userID, medID); err != nil {
		return storageErr("medication", err)
	}
	return nil
}

// MarkTaken finds the medication by id regardless of its owner.
func (s *MedicationService) MarkTaken(ctx context.Context, medID string) (*models.Medication, error) {
	if err := s.store.MarkMedicationTaken(ctx, medID); err != nil {
		return nil, storageErr("medication", err)
	}
	med, err := s.store.GetMedication(ctx, medID)
	if err != nil {
		return nil, storageErr("medication", err)
	}
	return med, nil
}

// MarkTakenFor is MarkTaken restricted to medications owned by userID.
func (s *MedicationService) MarkTakenFor(ctx context.Context, userID, medID string) (*models.Medication, error) {
	if _, err := s.store.GetUserMedication(ctx, userID, medID); err != nil {
		return nil, storageErr("medication", err)
	}
	return s.MarkTaken(ctx, medID)
}
