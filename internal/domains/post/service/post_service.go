package service

import (
	"context"
	"errors"
	"time"

	"demo-api/internal/domains/post"
	"demo-api/internal/domains/user"
	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
	"demo-api/pkg/logger"
)

// postService implements post.Service
type postService struct {
	repo  post.Repository
	users user.Repository
}

// NewPostService creates a new post service. users is used to check and
// resolve post authors.
func NewPostService(repo post.Repository, users user.Repository) post.Service {
	return &postService{
		repo:  repo,
		users: users,
	}
}

func createdAt(p post.Post) time.Time { return p.CreatedAt }

func (s *postService) List(ctx context.Context, q query.ListQuery) ([]post.Post, query.Meta, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}

	var keep func(post.Post) bool
	if q.Published != nil || q.Q != "" {
		keep = func(p post.Post) bool {
			if q.Published != nil && p.Published != *q.Published {
				return false
			}
			return q.Q == "" || query.AnyContainsFold(q.Q, p.Title, p.Content)
		}
	}

	page, meta := query.List(posts, keep, createdAt, q.Pagination)
	return page, meta, nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID string, p query.Pagination) ([]post.Post, query.Meta, error) {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		return nil, query.Meta{}, err
	}

	posts, err := s.repo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, query.Meta{}, err
	}

	page, meta := query.List(posts, nil, createdAt, p)
	return page, meta, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*post.Detail, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &post.Detail{Post: *p}
	author, err := s.users.FindByID(ctx, p.AuthorID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		// dangling author reference
	case err != nil:
		return nil, err
	default:
		detail.Author = author.ToSummary()
	}
	return detail, nil
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest) (*post.Post, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, post.ErrAuthorNotFound
		}
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	logger.Info("Post created", map[string]interface{}{"id": created.ID, "author_id": created.AuthorID})
	return created, nil
}

func (s *postService) Update(ctx context.Context, id string, req post.UpdatePostRequest) (*post.Post, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Post deleted", map[string]interface{}{"id": id})
	return nil
}
