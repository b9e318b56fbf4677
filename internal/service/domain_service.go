package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
)

var ErrNameRequired = errors.New("name is required")

// DomainService manages the responsibility areas a household splits
// its tasks into.
type DomainService struct {
	repo repo.DomainRepo
	now  func() time.Time
}

// NewDomainService returns a new DomainService.
func NewDomainService(r repo.DomainRepo) *DomainService {
	return &DomainService{repo: r, now: time.Now}
}

func (s *DomainService) Create(ctx context.Context, householdID, ownerID, name, details string) (domain.Domain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Domain{}, ErrNameRequired
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, domain.Domain{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		OwnerID:     ownerID,
		Name:        name,
		Details:     strings.TrimSpace(details),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *DomainService) GetByID(ctx context.Context, id string) (domain.Domain, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Domain{}, ErrNotFound
		}
		return domain.Domain{}, err
	}
	return d, nil
}

func (s *DomainService) List(ctx context.Context, householdID string) ([]domain.Domain, error) {
	return s.repo.List(ctx, householdID)
}

func (s *DomainService) Update(ctx context.Context, id string, name, details, ownerID *string) (domain.Domain, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Domain{}, ErrNotFound
		}
		return domain.Domain{}, err
	}
	patch := existing
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return domain.Domain{}, ErrNameRequired
		}
		patch.Name = n
	}
	if details != nil {
		patch.Details = strings.TrimSpace(*details)
	}
	if ownerID != nil {
		patch.OwnerID = *ownerID
	}
	patch.UpdatedAt = s.now().UTC()
	d, err := s.repo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Domain{}, ErrNotFound
		}
		return domain.Domain{}, err
	}
	return d, nil
}

func (s *DomainService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
