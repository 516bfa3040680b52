package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

var (
	// ErrCatalogItemNotFound is returned when no catalog row has the requested ID.
	ErrCatalogItemNotFound = errors.New("catalog item not found")

	// ErrDuplicateCatalogItem is returned when a unique column such as url is already taken.
	ErrDuplicateCatalogItem = errors.New("catalog item already exists")

	// ErrInvalidReference is returned when a homeworld, film or film link points at a missing row.
	ErrInvalidReference = errors.New("referenced catalog item does not exist")
)

// CatalogEntity lists the catalog entity types a CatalogRepository can store.
type CatalogEntity interface {
	entity.Planet | entity.Film | entity.Starship | entity.Vehicle | entity.Species | entity.Character
}

// CatalogRepository is the persistence contract shared by every catalog kind.
type CatalogRepository[E CatalogEntity] interface {
	Create(ctx context.Context, item *E) (*E, error)
	FindByID(ctx context.Context, id uint) (*E, error)

	// FindAll returns every row ordered by ID.
	FindAll(ctx context.Context) ([]*E, error)

	// Update overwrites every column of the row carrying the item's ID.
	Update(ctx context.Context, item *E) (*E, error)

	// Delete removes the row and its film links.
	Delete(ctx context.Context, id uint) error

	// SyncIDSequence moves the id generator past the highest stored id.
	// Call it after inserting rows with explicit ids.
	SyncIDSequence(ctx context.Context) error
}

// CatalogItemRepository resolves favorite targets without knowing their concrete type.
type CatalogItemRepository interface {
	// ExistsCatalogItem reports whether the row a target names is present.
	ExistsCatalogItem(ctx context.Context, target entity.FavoriteTarget) (bool, error)
}
