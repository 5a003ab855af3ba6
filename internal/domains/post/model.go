package post

import (
	"demo-api/internal/domains/user"
	"demo-api/internal/store"
)

// Post is the post entity. AuthorID is a weak reference to a user: nothing
// prevents the user from being deleted afterwards.
type Post struct {
	store.Record `yaml:",inline"`

	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	AuthorID  string `json:"authorId" yaml:"authorId"`
	Published bool   `json:"published" yaml:"published"`
}

// Detail is a post with its author resolved; Author is nil when the
// reference dangles.
type Detail struct {
	Post
	Author *user.Summary `json:"author"`
}
