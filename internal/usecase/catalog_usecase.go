// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"holocron/internal/domain/repository"
)

// CatalogInput is a decoded create or update payload for one catalog kind.
// Every field is optional on the wire; absent fields leave the target untouched.
type CatalogInput[E repository.CatalogEntity] interface {
	// Apply copies the fields present in the payload onto item.
	Apply(item *E)

	// MissingFields lists the JSON names of required fields absent from the payload.
	// Only create enforces them.
	MissingFields() []string
}

// CatalogUsecase is the CRUD contract shared by every catalog kind.
type CatalogUsecase[E repository.CatalogEntity, I CatalogInput[E]] interface {
	Create(ctx context.Context, input I) (*E, error)
	Get(ctx context.Context, id uint) (*E, error)
	List(ctx context.Context) ([]*E, error)

	// Update applies input onto the stored item and saves it.
	Update(ctx context.Context, id uint, input I) (*E, error)

	// Delete removes the item together with every favorite pointing at it.
	Delete(ctx context.Context, id uint) error
}
