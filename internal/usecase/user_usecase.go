package usecase

import (
	"context"

	"holocron/internal/domain/entity"
)

// UserInput is the settable field set of a user. Absent fields are left untouched on update.
type UserInput struct {
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Username *string `json:"username" validate:"omitempty,min=1,max=120"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
	Name     *string `json:"name" validate:"omitempty,max=120"`
	LastName *string `json:"last_name" validate:"omitempty,max=120"`
	IsActive *bool   `json:"is_active"`
}

// MissingFields lists the JSON names of the fields create requires.
func (in UserInput) MissingFields() []string {
	return missing(
		field{"email", in.Email != nil},
		field{"username", in.Username != nil},
		field{"password", in.Password != nil},
	)
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser hashes the password and stores a new, by default active, user.
	CreateUser(ctx context.Context, input UserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)

	// ListUsers returns every user, or ErrUserNotFound when there are none.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	UpdateUser(ctx context.Context, id uint, input UserInput) (*entity.User, error)

	// DeleteUser removes the user and their favorites.
	DeleteUser(ctx context.Context, id uint) error
}
