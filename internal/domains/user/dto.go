package user

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Constants for validation
const (
	MaxNameLength = 100
)

// CreateUserRequest - POST /users
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Normalize trims string input before validation.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.RuneLength(1, MaxNameLength).Error("Name too long"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid email format"),
		),
	)
}

// ToEntity converts the request into a User ready for the store.
func (r CreateUserRequest) ToEntity() User {
	return User{
		Name:  r.Name,
		Email: r.Email,
	}
}

// UpdateUserRequest - PUT /users/:id
// Every field is optional; nil means "leave unchanged". id and createdAt are not part of the type.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Email = trimPtr(r.Email)
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("Name is required"),
			validation.RuneLength(1, MaxNameLength).Error("Name too long"),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("Email is required"),
			is.EmailFormat.Error("Invalid email format"),
		),
	)
}

// ApplyTo merges the set fields into u.
func (r UpdateUserRequest) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
