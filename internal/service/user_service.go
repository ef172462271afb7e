// Package service contains the application's business logic layer.
package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
)

// UserService orchestrates user CRUD over the repository.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields required to create a user.
type CreateUserInput struct {
	Email string
	Name  string
}

// UpdateUserInput carries optional fields for a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name *string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser inserts a new user and returns the stored row including its
// assigned id. Duplicate emails surface as a Conflict error.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	user := &models.User{
		Email: in.Email,
		Name:  in.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users in the store's natural order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUserByID returns the matching user or a NotFound error.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail returns the matching user or a NotFound error.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// UpdateUser merges the supplied fields into the stored row, refreshes
// updated_at and returns the post-update row.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and returns the deleted row.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
