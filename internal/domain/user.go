package domain

import "time"

// User is a household member with a login.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	HouseholdID  string
	Role         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Household is the tenant boundary: users, domains and tasks are
// scoped under one household.
type Household struct {
	ID   string
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
