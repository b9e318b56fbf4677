package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register. Provide
// household_id to join an existing household, or household_name to
// start a new one.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Name          string `json:"name" binding:"required,min=1,max=120"`
	HouseholdID   string `json:"household_id"`
	HouseholdName string `json:"household_name" binding:"max=120"`
}

// UserResponse is returned when user info is needed (e.g. after login).
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	HouseholdID string `json:"household_id"`
	Role        string `json:"role,omitempty"`
}

// ListUsersResponse wraps the household member list.
type ListUsersResponse struct {
	Items []UserResponse `json:"items"`
}
