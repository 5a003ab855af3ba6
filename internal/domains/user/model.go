package user

import (
	"demo-api/internal/store"
)

// User is the user entity. Email is unique across users, compared case-insensitively.
type User struct {
	store.Record `yaml:",inline"`

	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Summary is the public subset embedded in other resources (e.g. post author).
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) ToSummary() *Summary {
	return &Summary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
