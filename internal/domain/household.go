package domain

import "time"

// Domain is a named category of tasks, e.g. "Kitchen Management".
type Domain struct {
	ID          string
	HouseholdID string
	OwnerID     string

	Name    string
	Details string

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerName string
}

// DiscussionItem is an open household question ("should we get a
// robot vacuum?") that may later be turned into a task.
type DiscussionItem struct {
	ID          string
	HouseholdID string
	CreatedByID string

	Title   string
	Details string

	IsResolved bool
	ResolvedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	CreatedByName string
}

// ShoppingListItem is one entry on the shared shopping list.
type ShoppingListItem struct {
	ID          string
	HouseholdID string
	CreatedByID string

	ItemName string
	Quantity string
	Notes    string

	IsPurchased   bool
	PurchasedByID string
	PurchasedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	CreatedByName   string
	PurchasedByName string
}
