// Package entity contains the core business objects of the catalog and its favorites.
package entity

import (
	"strings"

	"holocron/internal/errors"
)

// CatalogKind names one of the favoritable catalog entity types.
type CatalogKind string

const (
	KindPlanet    CatalogKind = "planet"
	KindFilm      CatalogKind = "film"
	KindStarship  CatalogKind = "starship"
	KindVehicle   CatalogKind = "vehicle"
	KindSpecies   CatalogKind = "species"
	KindCharacter CatalogKind = "character"
)

// ErrUnknownCatalogKind is returned when a kind name does not match any catalog entity.
var ErrUnknownCatalogKind = errors.New("unknown catalog kind")

var catalogKinds = []CatalogKind{
	KindPlanet,
	KindFilm,
	KindStarship,
	KindVehicle,
	KindSpecies,
	KindCharacter,
}

// CatalogKinds returns every catalog kind in a stable order.
func CatalogKinds() []CatalogKind {
	kinds := make([]CatalogKind, len(catalogKinds))
	copy(kinds, catalogKinds)

	return kinds
}

// ParseCatalogKind resolves a case-insensitive kind name.
// "specie" is accepted for species since that is the favorites column name.
func ParseCatalogKind(raw string) (CatalogKind, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "specie" {
		return KindSpecies, nil
	}

	kind := CatalogKind(name)
	if !kind.IsValid() {
		return "", errors.Wrapf(ErrUnknownCatalogKind, "%q", raw)
	}

	return kind, nil
}

// IsValid reports whether k is one of the known catalog kinds.
func (k CatalogKind) IsValid() bool {
	for _, known := range catalogKinds {
		if k == known {
			return true
		}
	}

	return false
}

// Title returns the kind with an upper-case first letter, for user-facing messages.
func (k CatalogKind) Title() string {
	if k == "" {
		return ""
	}

	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func (k CatalogKind) String() string {
	return string(k)
}
