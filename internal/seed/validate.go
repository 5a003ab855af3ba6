package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"demo-api/internal/domains/post"
	"demo-api/internal/domains/product"
	"demo-api/internal/domains/user"
	"demo-api/internal/shared/apperror"
	"demo-api/internal/store"
)

// ErrInvalidData is returned by Apply when a record breaks the rules the API
// enforces on create. Nothing is inserted in that case.
var ErrInvalidData = errors.New("invalid seed data")

// Validate checks data against the create rules of each resource, email
// uniqueness (case-insensitive, including users already in the repository),
// id uniqueness within data, and that every post author exists.
func Validate(ctx context.Context, data Data, users user.Repository) error {
	userIDs := make(map[string]bool, len(data.Users))
	emails := make(map[string]bool, len(data.Users))

	for i, u := range data.Users {
		req := user.CreateUserRequest{Name: u.Name, Email: u.Email}
		req.Normalize()
		if err := apperror.FromValidation(req.Validate()); err != nil {
			return invalid("users", i, err)
		}
		if err := uniqueID(userIDs, u.ID); err != nil {
			return invalid("users", i, err)
		}

		email := strings.ToLower(req.Email)
		if emails[email] {
			return invalid("users", i, user.ErrEmailAlreadyExists)
		}
		_, err := users.FindByEmail(ctx, req.Email)
		switch {
		case err == nil:
			return invalid("users", i, user.ErrEmailAlreadyExists)
		case !errors.Is(err, user.ErrUserNotFound):
			return err
		}
		emails[email] = true
	}

	postIDs := make(map[string]bool, len(data.Posts))
	for i, p := range data.Posts {
		req := post.CreatePostRequest{Title: p.Title, Content: p.Content, AuthorID: p.AuthorID}
		req.Normalize()
		if err := apperror.FromValidation(req.Validate()); err != nil {
			return invalid("posts", i, err)
		}
		if err := uniqueID(postIDs, p.ID); err != nil {
			return invalid("posts", i, err)
		}

		if !userIDs[req.AuthorID] {
			_, err := users.FindByID(ctx, req.AuthorID)
			switch {
			case errors.Is(err, user.ErrUserNotFound):
				return invalid("posts", i, post.ErrAuthorNotFound)
			case err != nil:
				return err
			}
		}
	}

	productIDs := make(map[string]bool, len(data.Products))
	for i, p := range data.Products {
		price := p.Price
		req := product.CreateProductRequest{
			Name:        p.Name,
			Description: p.Description,
			Price:       &price,
			Category:    p.Category,
		}
		req.Normalize()
		if err := apperror.FromValidation(req.Validate()); err != nil {
			return invalid("products", i, err)
		}
		if err := uniqueID(productIDs, p.ID); err != nil {
			return invalid("products", i, err)
		}
	}

	return nil
}

// uniqueID records id in seen; empty ids are generated on insert and always pass.
func uniqueID(seen map[string]bool, id string) error {
	if id == "" {
		return nil
	}
	if seen[id] {
		return store.ErrDuplicateID
	}
	seen[id] = true
	return nil
}

func invalid(kind string, index int, err error) error {
	return fmt.Errorf("%w: %s[%d]: %w", ErrInvalidData, kind, index, err)
}
