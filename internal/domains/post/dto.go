package post

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength = 200
)

// CreatePostRequest - POST /posts
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
	// Published defaults to false.
	Published *bool `json:"published,omitempty"`
}

func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	r.AuthorID = strings.TrimSpace(r.AuthorID)
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required"),
			validation.RuneLength(1, MaxTitleLength).Error("Title too long"),
		),
		validation.Field(&r.Content, validation.Required.Error("Content is required")),
		validation.Field(&r.AuthorID, validation.Required.Error("Author ID is required")),
	)
}

func (r CreatePostRequest) ToEntity() Post {
	p := Post{
		Title:    r.Title,
		Content:  r.Content,
		AuthorID: r.AuthorID,
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
	return p
}

// UpdatePostRequest - PUT /posts/:id
// The author of a post cannot be changed.
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (r *UpdatePostRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Content = trimPtr(r.Content)
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("Title is required"),
			validation.RuneLength(1, MaxTitleLength).Error("Title too long"),
		),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("Content is required")),
	)
}

func (r UpdatePostRequest) ApplyTo(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
