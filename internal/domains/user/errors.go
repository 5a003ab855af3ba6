package user

import "demo-api/internal/shared/apperror"

var (
	// Not Found
	ErrUserNotFound = apperror.NotFound("User not found")

	// Conflict
	ErrEmailAlreadyExists = apperror.Conflict("User with this email already exists")
)
