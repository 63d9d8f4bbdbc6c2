package domain

import (
	"context"
	"time"
)

// User roles. Role is fixed at registration and never changes afterwards.
const (
	RoleSeeker  = "seeker"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	return s == RoleSeeker || s == RoleCompany || s == RoleAdmin
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	// Seeker profile fields
	PhotoURL       *string  `json:"photoUrl,omitempty"`
	ResumeURL      *string  `json:"resumeUrl,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ExpectedSalary *float64 `json:"expectedSalary,omitempty"`

	// Company profile fields (PhotoURL doubles as the company logo)
	Description   *string `json:"description,omitempty"`
	Website       *string `json:"website,omitempty"`
	ContactInfo   *string `json:"contactInfo,omitempty"`
	OfficeAddress *string `json:"officeAddress,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial update: nil fields are left unchanged, non-nil
// fields overwrite (a pointer to "" clears a nullable field). Logo aliases
// PhotoURL for company clients and wins when both are sent.
type ProfileUpdate struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Password       *string   `json:"password"`
	PhotoURL       *string   `json:"photoUrl"`
	Logo           *string   `json:"logo"`
	ResumeURL      *string   `json:"resumeUrl"`
	Skills         *[]string `json:"skills"`
	ExpectedSalary *float64  `json:"expectedSalary"`
	Description    *string   `json:"description"`
	Website        *string   `json:"website"`
	ContactInfo    *string   `json:"contactInfo"`
	OfficeAddress  *string   `json:"officeAddress"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	FetchByRole(ctx context.Context, role string) ([]User, error)
	FetchAll(ctx context.Context) ([]User, error)
	// FindCompanyIDsByName returns ids of company users whose name contains
	// the given substring, used as a pre-query for the job companyName filter.
	FindCompanyIDsByName(ctx context.Context, name string) ([]string, error)
}

// AuthResult is the projection returned by register/login: the public profile
// plus a freshly minted bearer token.
type AuthResult struct {
	User
	Token string `json:"token"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
	Role     string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, upd *ProfileUpdate) (*AuthResult, error)
}

type UserUsecase interface {
	ListByRole(ctx context.Context, role string) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id string) error
}
