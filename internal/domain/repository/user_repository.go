// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when the email or username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// CreateUser persists a new user and returns it with its assigned ID.
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindUserByID retrieves a single user by their unique ID.
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAllUsers returns every user ordered by ID.
	FindAllUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser overwrites the stored user carrying the same ID.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	DeleteUser(ctx context.Context, id uint) error
}
