package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/google/uuid"
	"github.com/pliu/seniorsched/internal/models"
	"github.com/pliu/seniorsched/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	IsCaregiver bool   `json:"is_caregiver"`
}

type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsCaregiver bool   `json:"is_caregiver"`
}

// passwordDigest folds a password of any length into the 72 bytes bcrypt
// accepts.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// UserService owns patients, caregivers and the link between them.
type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) Register(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, invalid("email, password and name are required")
	}

	_, err := s.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, conflict("email already registered")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, storageErr("lookup user", err)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storageErr("hash password", err)
	}

	user := &models.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		Name:        req.Name,
		Age:         req.Age,
		Password:    string(hash),
		IsCaregiver: req.IsCaregiver,
	}
	// The unique index still catches a concurrent signup with the same email.
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, conflict("email already registered")
		}
		return nil, storageErr("create user", err)
	}
	return user, nil
}

// Authenticate succeeds only when email, password and the caregiver flag all
// match the stored user.
func (s *UserService) Authenticate(ctx context.Context, creds Credentials) (*models.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, invalid("email and password are required")
	}

	user, err := s.store.GetUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAuth
	}
	if err != nil {
		return nil, storageErr("lookup user", err)
	}

	if user.IsCaregiver != creds.IsCaregiver {
		return nil, ErrAuth
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordDigest(creds.Password)); err != nil {
		return nil, ErrAuth
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

// ListManagedUsers does not check that caregiverID exists.
func (s *UserService) ListManagedUsers(ctx context.Context, caregiverID string) ([]models.User, error) {
	users, err := s.store.GetManagedUsers(ctx, caregiverID)
	if err != nil {
		return nil, storageErr("list managed users", err)
	}
	return users, nil
}

// AssignCaregiver links the user registered under email to caregiverID,
// replacing any previous caregiver. An unknown caregiverID is ErrNotFound; its
// caregiver flag is not checked.
func (s *UserService) AssignCaregiver(ctx context.Context, caregiverID, email string) (*models.User, error) {
	if email == "" {
		return nil, invalid("email is required")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, storageErr("user", err)
	}

	if err := s.store.SetCaregiver(ctx, user.ID, caregiverID); err != nil {
		return nil, referenceErr("caregiver", "assign caregiver", err)
	}
	user.CaregiverID = &caregiverID
	return user, nil
}
