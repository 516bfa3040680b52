package entity

import (
	"time"

	"holocron/internal/errors"
)

// ErrInvalidFavoriteTarget is returned when a target has an unknown kind or a zero id.
var ErrInvalidFavoriteTarget = errors.New("invalid favorite target")

// FavoriteTarget is the one catalog item a favorite points at.
// The kind tag replaces the six mutually exclusive foreign key columns of the table.
type FavoriteTarget struct {
	Kind CatalogKind `json:"item_type"`
	ID   uint        `json:"item_id"`
}

// NewFavoriteTarget builds a validated target.
func NewFavoriteTarget(kind CatalogKind, id uint) (FavoriteTarget, error) {
	target := FavoriteTarget{Kind: kind, ID: id}
	if err := target.Validate(); err != nil {
		return FavoriteTarget{}, err
	}

	return target, nil
}

// Validate checks the kind tag and the id.
func (t FavoriteTarget) Validate() error {
	if !t.Kind.IsValid() {
		return errors.Wrapf(ErrInvalidFavoriteTarget, "unknown kind %q", t.Kind)
	}
	if t.ID == 0 {
		return errors.Wrap(ErrInvalidFavoriteTarget, "id must be positive")
	}

	return nil
}

// Favorite is one user's favorite of exactly one catalog item. It is never mutated after creation.
type Favorite struct {
	ID         uint           `json:"id"`
	UserID     uint           `json:"user_id"`
	Target     FavoriteTarget `json:"target"`
	TargetName string         `json:"target_name"` // Title of a film, name of anything else. Filled on reads.
	CreatedAt  time.Time      `json:"created_at"`
}

// FavoriteView is the flat wire representation of a favorite.
// Exactly one of the six item slots is non-null; the others serialize as null.
type FavoriteView struct {
	ID        uint        `json:"id"`
	ItemType  CatalogKind `json:"item_type"`
	ItemID    uint        `json:"item_id"`
	Film      *string     `json:"film"`
	Species   *string     `json:"species"`
	Starship  *string     `json:"starship"`
	Vehicle   *string     `json:"vehicle"`
	Character *string     `json:"character"`
	Planet    *string     `json:"planet"`
}

// View flattens the favorite into its wire representation.
func (f *Favorite) View() *FavoriteView {
	view := &FavoriteView{
		ID:       f.ID,
		ItemType: f.Target.Kind,
		ItemID:   f.Target.ID,
	}

	name := f.TargetName
	switch f.Target.Kind {
	case KindFilm:
		view.Film = &name
	case KindSpecies:
		view.Species = &name
	case KindStarship:
		view.Starship = &name
	case KindVehicle:
		view.Vehicle = &name
	case KindCharacter:
		view.Character = &name
	case KindPlanet:
		view.Planet = &name
	}

	return view
}

// FavoriteViews flattens a list of favorites, preserving order.
func FavoriteViews(favorites []*Favorite) []*FavoriteView {
	views := make([]*FavoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		views = append(views, favorite.View())
	}

	return views
}
