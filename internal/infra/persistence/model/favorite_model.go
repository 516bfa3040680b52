package model

import (
	"time"

	"holocron/internal/domain/entity"
)

// FavoriteModel mirrors the 'favoritos' table: one user and exactly one of six nullable targets.
type FavoriteModel struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null"`
	FilmID      *uint
	SpecieID    *uint `gorm:"column:specie_id"`
	StarshipID  *uint
	VehicleID   *uint
	CharacterID *uint
	PlanetID    *uint
	CreatedAt   *time.Time

	User      *UserModel      `gorm:"foreignKey:UserID"`
	Film      *FilmModel      `gorm:"foreignKey:FilmID"`
	Specie    *SpeciesModel   `gorm:"foreignKey:SpecieID"`
	Starship  *StarshipModel  `gorm:"foreignKey:StarshipID"`
	Vehicle   *VehicleModel   `gorm:"foreignKey:VehicleID"`
	Character *CharacterModel `gorm:"foreignKey:CharacterID"`
	Planet    *PlanetModel    `gorm:"foreignKey:PlanetID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favoritos"
}

// FavoriteTargetRelations lists the belongs-to fields to preload for display names.
var FavoriteTargetRelations = []string{"Film", "Specie", "Starship", "Vehicle", "Character", "Planet"}

// FavoriteColumn returns the favoritos column holding a target of kind.
func FavoriteColumn(kind entity.CatalogKind) string {
	switch kind {
	case entity.KindFilm:
		return "film_id"
	case entity.KindSpecies:
		return "specie_id"
	case entity.KindStarship:
		return "starship_id"
	case entity.KindVehicle:
		return "vehicle_id"
	case entity.KindCharacter:
		return "character_id"
	case entity.KindPlanet:
		return "planet_id"
	}

	return ""
}

// TableForKind returns the catalog table storing kind.
func TableForKind(kind entity.CatalogKind) string {
	switch kind {
	case entity.KindFilm:
		return FilmModel{}.TableName()
	case entity.KindSpecies:
		return SpeciesModel{}.TableName()
	case entity.KindStarship:
		return StarshipModel{}.TableName()
	case entity.KindVehicle:
		return VehicleModel{}.TableName()
	case entity.KindCharacter:
		return CharacterModel{}.TableName()
	case entity.KindPlanet:
		return PlanetModel{}.TableName()
	}

	return ""
}

// SetTarget clears every target column and sets the one matching target.
func (m *FavoriteModel) SetTarget(target entity.FavoriteTarget) {
	m.FilmID, m.SpecieID, m.StarshipID, m.VehicleID, m.CharacterID, m.PlanetID = nil, nil, nil, nil, nil, nil

	id := target.ID
	switch target.Kind {
	case entity.KindFilm:
		m.FilmID = &id
	case entity.KindSpecies:
		m.SpecieID = &id
	case entity.KindStarship:
		m.StarshipID = &id
	case entity.KindVehicle:
		m.VehicleID = &id
	case entity.KindCharacter:
		m.CharacterID = &id
	case entity.KindPlanet:
		m.PlanetID = &id
	}
}

// Target returns the single set target column and its display name, if preloaded.
// ok is false when zero or more than one column is set.
func (m *FavoriteModel) Target() (target entity.FavoriteTarget, name string, ok bool) {
	set := 0
	pick := func(kind entity.CatalogKind, id *uint, display string) {
		if id == nil {
			return
		}
		set++
		target = entity.FavoriteTarget{Kind: kind, ID: *id}
		name = display
	}

	pick(entity.KindFilm, m.FilmID, displayName(m.Film, func(f *FilmModel) string { return f.Title }))
	pick(entity.KindSpecies, m.SpecieID, displayName(m.Specie, func(s *SpeciesModel) string { return s.Name }))
	pick(entity.KindStarship, m.StarshipID, displayName(m.Starship, func(s *StarshipModel) string { return s.Name }))
	pick(entity.KindVehicle, m.VehicleID, displayName(m.Vehicle, func(v *VehicleModel) string { return v.Name }))
	pick(entity.KindCharacter, m.CharacterID, displayName(m.Character, func(c *CharacterModel) string { return c.Name }))
	pick(entity.KindPlanet, m.PlanetID, displayName(m.Planet, func(p *PlanetModel) string { return p.Name }))

	return target, name, set == 1
}

func displayName[M any](m *M, get func(*M) string) string {
	if m == nil {
		return ""
	}

	return get(m)
}
