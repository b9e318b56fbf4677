package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
	"github.com/clairecicle/Mental-load-app/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already registered")

// UserService handles registration, credential checks, and household
// membership lookups.
type UserService struct {
	users      repo.UserRepo
	households repo.HouseholdRepo
	now        func() time.Time
}

// NewUserService returns a new UserService.
func NewUserService(users repo.UserRepo, households repo.HouseholdRepo) *UserService {
	return &UserService{users: users, households: households, now: time.Now}
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// RegisterInput carries the fields of a new account. When HouseholdID
// is empty a new household named HouseholdName is created for the user.
type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	HouseholdID   string
	HouseholdName string
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := s.now().UTC()
	householdID := in.HouseholdID
	if householdID == "" {
		hh, err := s.households.Create(ctx, domain.Household{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(in.HouseholdName),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return domain.User{}, err
		}
		householdID = hh.ID
	} else if _, err := s.households.GetByID(ctx, householdID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}

	u, err := s.users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		HouseholdID:  householdID,
		Role:         "member",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) || utils.IsSQLiteUniqueViolation(err) || errors.Is(err, repo.ErrDuplicate) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return u, nil
}

// GetByID returns a single user.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// ListHousehold returns every member of a household.
func (s *UserService) ListHousehold(ctx context.Context, householdID string) ([]domain.User, error) {
	return s.users.List(ctx, householdID)
}
