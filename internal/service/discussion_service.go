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

// DiscussionService manages the household's shared talking points.
type DiscussionService struct {
	repo repo.DiscussionRepo
	now  func() time.Time
}

// NewDiscussionService returns a new DiscussionService.
func NewDiscussionService(r repo.DiscussionRepo) *DiscussionService {
	return &DiscussionService{repo: r, now: time.Now}
}

func (s *DiscussionService) Create(ctx context.Context, householdID, createdByID, title, details string) (domain.DiscussionItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.DiscussionItem{}, ErrTitleRequired
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, domain.DiscussionItem{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		CreatedByID: createdByID,
		Title:       title,
		Details:     strings.TrimSpace(details),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *DiscussionService) GetByID(ctx context.Context, id string) (domain.DiscussionItem, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.DiscussionItem{}, ErrNotFound
		}
		return domain.DiscussionItem{}, err
	}
	return d, nil
}

func (s *DiscussionService) List(ctx context.Context, householdID string) ([]domain.DiscussionItem, error) {
	return s.repo.List(ctx, householdID)
}

func (s *DiscussionService) Update(ctx context.Context, id string, title, details *string) (domain.DiscussionItem, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.DiscussionItem{}, ErrNotFound
		}
		return domain.DiscussionItem{}, err
	}
	patch := existing
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return domain.DiscussionItem{}, ErrTitleRequired
		}
		patch.Title = t
	}
	if details != nil {
		patch.Details = strings.TrimSpace(*details)
	}
	patch.UpdatedAt = s.now().UTC()
	d, err := s.repo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.DiscussionItem{}, ErrNotFound
		}
		return domain.DiscussionItem{}, err
	}
	return d, nil
}

func (s *DiscussionService) Resolve(ctx context.Context, id string) (domain.DiscussionItem, error) {
	return s.setResolved(ctx, id, true)
}

func (s *DiscussionService) Reopen(ctx context.Context, id string) (domain.DiscussionItem, error) {
	return s.setResolved(ctx, id, false)
}

func (s *DiscussionService) setResolved(ctx context.Context, id string, resolved bool) (domain.DiscussionItem, error) {
	d, err := s.repo.SetResolved(ctx, id, resolved, s.now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.DiscussionItem{}, ErrNotFound
		}
		return domain.DiscussionItem{}, err
	}
	return d, nil
}

func (s *DiscussionService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
