package domain

import "time"

type Role string

const (
	RoleClient       Role = "CLIENT"
	RoleTrainer      Role = "TRAINER"
	RoleNutritionist Role = "NUTRITIONIST"
	RoleAdmin        Role = "ADMIN"
)

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	ProfileCompleted bool      `json:"profileCompleted"`
	Profile          *Profile  `json:"profile,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Profile carries only the fields the storefront reads; the upstream profile
// document is much larger.
type Profile struct {
	ID                *int64 `json:"id,omitempty"`
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Bio               string `json:"bio,omitempty"`
}

// UserInput is the admin update payload.
type UserInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}
