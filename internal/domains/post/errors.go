package post

import "demo-api/internal/shared/apperror"

var (
	ErrPostNotFound   = apperror.NotFound("Post not found")
	ErrAuthorNotFound = apperror.NotFound("Author not found")
)
