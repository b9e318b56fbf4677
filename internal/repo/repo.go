// Package repo defines the storage capability interfaces and their
// four backends: flat JSON file, SQLite, Postgres and Firestore. The
// scheduling logic depends only on the interfaces; backends own their
// query idioms.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// ErrNotFound is returned by every backend when a record does not
// exist. Services map it to their own sentinels.
var ErrNotFound = errors.New("not found")

// ErrDuplicate reports a uniqueness violation the backend can detect
// itself, such as an email already registered.
var ErrDuplicate = errors.New("already exists")

// TaskRepo provides task persistence. List-style methods return tasks
// with OwnerName/DomainName filled in. IDs and timestamps are set by
// the caller; backends persist what they are given.
type TaskRepo interface {
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	// List returns household tasks; ownerID narrows to one member when
	// non-empty.
	List(ctx context.Context, householdID, ownerID string) ([]domain.Task, error)
	// ListByDate returns tasks due exactly on date (YYYY-MM-DD).
	ListByDate(ctx context.Context, householdID, date string) ([]domain.Task, error)
	// ListAfterDate returns tasks due strictly after date.
	ListAfterDate(ctx context.Context, householdID, date string) ([]domain.Task, error)
	Update(ctx context.Context, t domain.Task) (domain.Task, error)
	// SetCompleted toggles completion; completed_at is set to at when
	// done is true and cleared otherwise.
	SetCompleted(ctx context.Context, id string, done bool, at time.Time) (domain.Task, error)
	Delete(ctx context.Context, id string) error

	// ListUnnotified returns all tasks across households with a due
	// date and notification_sent = false; the scan applies the window.
	ListUnnotified(ctx context.Context) ([]domain.Task, error)
	// MarkNotified flips the one-shot notification flag. It is never
	// reset within a due occurrence.
	MarkNotified(ctx context.Context, id string) error
}

// DomainRepo provides task-category persistence.
type DomainRepo interface {
	Create(ctx context.Context, d domain.Domain) (domain.Domain, error)
	GetByID(ctx context.Context, id string) (domain.Domain, error)
	List(ctx context.Context, householdID string) ([]domain.Domain, error)
	Update(ctx context.Context, d domain.Domain) (domain.Domain, error)
	Delete(ctx context.Context, id string) error
}

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, householdID string) ([]domain.User, error)
}

// HouseholdRepo provides household persistence.
type HouseholdRepo interface {
	Create(ctx context.Context, h domain.Household) (domain.Household, error)
	GetByID(ctx context.Context, id string) (domain.Household, error)
}

// DiscussionRepo provides discussion-item persistence.
type DiscussionRepo interface {
	Create(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error)
	GetByID(ctx context.Context, id string) (domain.DiscussionItem, error)
	List(ctx context.Context, householdID string) ([]domain.DiscussionItem, error)
	Update(ctx context.Context, d domain.DiscussionItem) (domain.DiscussionItem, error)
	// SetResolved toggles resolution; resolved_at mirrors at/cleared.
	SetResolved(ctx context.Context, id string, resolved bool, at time.Time) (domain.DiscussionItem, error)
	Delete(ctx context.Context, id string) error
}

// ShoppingRepo provides shopping-list persistence.
type ShoppingRepo interface {
	Create(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error)
	GetByID(ctx context.Context, id string) (domain.ShoppingListItem, error)
	List(ctx context.Context, householdID string) ([]domain.ShoppingListItem, error)
	Update(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error)
	// SetPurchased records who bought the item and when; unpurchasing
	// clears both.
	SetPurchased(ctx context.Context, id string, purchased bool, byID string, at time.Time) (domain.ShoppingListItem, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionRepo stores web-push subscriptions. There is no
// per-user association: the due scan broadcasts to all of them.
type SubscriptionRepo interface {
	Create(ctx context.Context, s domain.PushSubscription) (domain.PushSubscription, error)
	List(ctx context.Context) ([]domain.PushSubscription, error)
}

// Store bundles one backend's repositories.
type Store struct {
	Users         UserRepo
	Households    HouseholdRepo
	Domains       DomainRepo
	Tasks         TaskRepo
	Discussions   DiscussionRepo
	Shopping      ShoppingRepo
	Subscriptions SubscriptionRepo
}
