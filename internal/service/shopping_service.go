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

var ErrItemNameRequired = errors.New("item_name is required")

// ShoppingService manages the household shopping list.
type ShoppingService struct {
	repo repo.ShoppingRepo
	now  func() time.Time
}

// NewShoppingService returns a new ShoppingService.
func NewShoppingService(r repo.ShoppingRepo) *ShoppingService {
	return &ShoppingService{repo: r, now: time.Now}
}

func (s *ShoppingService) Create(ctx context.Context, householdID, createdByID, itemName, quantity, notes string) (domain.ShoppingListItem, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return domain.ShoppingListItem{}, ErrItemNameRequired
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, domain.ShoppingListItem{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		CreatedByID: createdByID,
		ItemName:    itemName,
		Quantity:    strings.TrimSpace(quantity),
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ShoppingService) GetByID(ctx context.Context, id string) (domain.ShoppingListItem, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.ShoppingListItem{}, ErrNotFound
		}
		return domain.ShoppingListItem{}, err
	}
	return it, nil
}

func (s *ShoppingService) List(ctx context.Context, householdID string) ([]domain.ShoppingListItem, error) {
	return s.repo.List(ctx, householdID)
}

func (s *ShoppingService) Update(ctx context.Context, id string, itemName, quantity, notes *string) (domain.ShoppingListItem, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.ShoppingListItem{}, ErrNotFound
		}
		return domain.ShoppingListItem{}, err
	}
	patch := existing
	if itemName != nil {
		n := strings.TrimSpace(*itemName)
		if n == "" {
			return domain.ShoppingListItem{}, ErrItemNameRequired
		}
		patch.ItemName = n
	}
	if quantity != nil {
		patch.Quantity = strings.TrimSpace(*quantity)
	}
	if notes != nil {
		patch.Notes = strings.TrimSpace(*notes)
	}
	patch.UpdatedAt = s.now().UTC()
	it, err := s.repo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.ShoppingListItem{}, ErrNotFound
		}
		return domain.ShoppingListItem{}, err
	}
	return it, nil
}

// MarkPurchased records who checked the item off. Unpurchasing clears
// the purchaser.
func (s *ShoppingService) MarkPurchased(ctx context.Context, id string, purchased bool, byID string) (domain.ShoppingListItem, error) {
	it, err := s.repo.SetPurchased(ctx, id, purchased, byID, s.now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.ShoppingListItem{}, ErrNotFound
		}
		return domain.ShoppingListItem{}, err
	}
	return it, nil
}

func (s *ShoppingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
