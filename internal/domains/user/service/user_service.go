package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"demo-api/internal/domains/user"
	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
	"demo-api/pkg/logger"
)

// userService implements user.Service
type userService struct {
	repo user.Repository

	// writeMu makes the email uniqueness check and the write one step.
	writeMu sync.Mutex
}

// NewUserService creates a new user service instance
func NewUserService(repo user.Repository) user.Service {
	return &userService{
		repo: repo,
	}
}

func (s *userService) List(ctx context.Context, q query.ListQuery) ([]user.User, query.Meta, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}

	var keep func(user.User) bool
	if q.Q != "" {
		keep = func(u user.User) bool {
			return query.AnyContainsFold(q.Q, u.Name, u.Email)
		}
	}

	page, meta := query.List(users, keep, func(u user.User) time.Time { return u.CreatedAt }, q.Pagination)
	return page, meta, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	logger.Info("User created", map[string]interface{}{"id": created.ID})
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, req user.UpdateUserRequest) (*user.User, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		if err := s.ensureEmailFree(ctx, *req.Email, existing.ID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("User deleted", map[string]interface{}{"id": id})
	return nil
}

// ensureEmailFree fails with ErrEmailAlreadyExists when another user holds email.
// selfID is excluded so a user may re-submit its own address with different case.
func (s *userService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	holder, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case holder.ID == selfID:
		return nil
	default:
		return user.ErrEmailAlreadyExists
	}
}
