package dto

import "time"

// CreateDomainRequest is the JSON body for POST /domains.
type CreateDomainRequest struct {
	HouseholdID string `json:"household_id" binding:"required"`
	OwnerID     string `json:"owner_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Details     string `json:"details" binding:"max=2000"`
}

// UpdateDomainRequest is the JSON body for PATCH /domains/:id.
type UpdateDomainRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=120"`
	Details *string `json:"details" binding:"omitempty,max=2000"`
	OwnerID *string `json:"owner_id"`
}

// DomainResponse is the responsibility-area wire shape.
type DomainResponse struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	Name        string    `json:"name"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListDomainsResponse wraps a domain list.
type ListDomainsResponse struct {
	Items []DomainResponse `json:"items"`
}

// CreateDiscussionRequest is the JSON body for POST /discussions.
type CreateDiscussionRequest struct {
	HouseholdID string `json:"household_id" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Details     string `json:"details" binding:"max=2000"`
}

// UpdateDiscussionRequest is the JSON body for PATCH /discussions/:id.
type UpdateDiscussionRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Details *string `json:"details" binding:"omitempty,max=2000"`
}

// DiscussionResponse is the discussion-item wire shape.
type DiscussionResponse struct {
	ID            string     `json:"id"`
	HouseholdID   string     `json:"household_id"`
	CreatedByID   string     `json:"created_by_id"`
	CreatedByName string     `json:"created_by_name,omitempty"`
	Title         string     `json:"title"`
	Details       string     `json:"details,omitempty"`
	IsResolved    bool       `json:"is_resolved"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListDiscussionsResponse wraps a discussion list.
type ListDiscussionsResponse struct {
	Items []DiscussionResponse `json:"items"`
}

// CreateShoppingItemRequest is the JSON body for POST /shopping.
type CreateShoppingItemRequest struct {
	HouseholdID string `json:"household_id" binding:"required"`
	ItemName    string `json:"item_name" binding:"required,min=1,max=200"`
	Quantity    string `json:"quantity" binding:"max=50"`
	Notes       string `json:"notes" binding:"max=2000"`
}

// UpdateShoppingItemRequest is the JSON body for PATCH /shopping/:id.
type UpdateShoppingItemRequest struct {
	ItemName *string `json:"item_name" binding:"omitempty,min=1,max=200"`
	Quantity *string `json:"quantity" binding:"omitempty,max=50"`
	Notes    *string `json:"notes" binding:"omitempty,max=2000"`
}

// SetPurchasedRequest is the JSON body for POST /shopping/:id/purchase.
type SetPurchasedRequest struct {
	IsPurchased bool `json:"is_purchased"`
}

// ShoppingItemResponse is the shopping-list wire shape.
type ShoppingItemResponse struct {
	ID              string     `json:"id"`
	HouseholdID     string     `json:"household_id"`
	CreatedByID     string     `json:"created_by_id"`
	CreatedByName   string     `json:"created_by_name,omitempty"`
	ItemName        string     `json:"item_name"`
	Quantity        string     `json:"quantity,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	IsPurchased     bool       `json:"is_purchased"`
	PurchasedByID   string     `json:"purchased_by_id,omitempty"`
	PurchasedByName string     `json:"purchased_by_name,omitempty"`
	PurchasedAt     *time.Time `json:"purchased_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ListShoppingResponse wraps a shopping list.
type ListShoppingResponse struct {
	Items []ShoppingItemResponse `json:"items"`
}
