package store

import (
	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var planetSpec = &catalogSpec[entity.Planet, model.PlanetModel]{
	kind:       entity.KindPlanet,
	toDomain:   toPlanetDomain,
	fromDomain: fromPlanetDomain,
	modelID:    func(m *model.PlanetModel) uint { return m.ID },
	films: &filmLinkSpec[entity.Planet]{
		table:       model.FilmsPlanetsTable,
		ownerColumn: "planet_id",
		get:         func(e *entity.Planet) []uint { return e.FilmIDs },
		set:         func(e *entity.Planet, ids []uint) { e.FilmIDs = ids },
	},
	references: func(e *entity.Planet) []catalogReference {
		return []catalogReference{{kind: entity.KindFilm, ids: e.FilmIDs}}
	},
	dependents: []dependentRows{
		{table: model.SpeciesModel{}.TableName(), column: "homeworld_id", nullify: true},
		{table: model.CharacterModel{}.TableName(), column: "homeworld_id", nullify: true},
	},
}

var filmSpec = &catalogSpec[entity.Film, model.FilmModel]{
	kind:       entity.KindFilm,
	toDomain:   toFilmDomain,
	fromDomain: fromFilmDomain,
	modelID:    func(m *model.FilmModel) uint { return m.ID },
	dependents: []dependentRows{
		{table: model.StarshipsFilmsTable, column: "film_id"},
		{table: model.VehiclesFilmsTable, column: "film_id"},
		{table: model.SpeciesFilmsTable, column: "film_id"},
		{table: model.FilmsPlanetsTable, column: "film_id"},
		{table: model.CharacterModel{}.TableName(), column: "film_id", nullify: true},
	},
}

var starshipSpec = &catalogSpec[entity.Starship, model.StarshipModel]{
	kind:       entity.KindStarship,
	toDomain:   toStarshipDomain,
	fromDomain: fromStarshipDomain,
	modelID:    func(m *model.StarshipModel) uint { return m.ID },
	films: &filmLinkSpec[entity.Starship]{
		table:       model.StarshipsFilmsTable,
		ownerColumn: "starship_id",
		get:         func(e *entity.Starship) []uint { return e.FilmIDs },
		set:         func(e *entity.Starship, ids []uint) { e.FilmIDs = ids },
	},
	references: func(e *entity.Starship) []catalogReference {
		return []catalogReference{{kind: entity.KindFilm, ids: e.FilmIDs}}
	},
}

var vehicleSpec = &catalogSpec[entity.Vehicle, model.VehicleModel]{
	kind:       entity.KindVehicle,
	toDomain:   toVehicleDomain,
	fromDomain: fromVehicleDomain,
	modelID:    func(m *model.VehicleModel) uint { return m.ID },
	films: &filmLinkSpec[entity.Vehicle]{
		table:       model.VehiclesFilmsTable,
		ownerColumn: "vehicle_id",
		get:         func(e *entity.Vehicle) []uint { return e.FilmIDs },
		set:         func(e *entity.Vehicle, ids []uint) { e.FilmIDs = ids },
	},
	references: func(e *entity.Vehicle) []catalogReference {
		return []catalogReference{{kind: entity.KindFilm, ids: e.FilmIDs}}
	},
}

var speciesSpec = &catalogSpec[entity.Species, model.SpeciesModel]{
	kind:       entity.KindSpecies,
	toDomain:   toSpeciesDomain,
	fromDomain: fromSpeciesDomain,
	modelID:    func(m *model.SpeciesModel) uint { return m.ID },
	preloads:   []string{"Homeworld"},
	films: &filmLinkSpec[entity.Species]{
		table:       model.SpeciesFilmsTable,
		ownerColumn: "species_id",
		get:         func(e *entity.Species) []uint { return e.FilmIDs },
		set:         func(e *entity.Species, ids []uint) { e.FilmIDs = ids },
	},
	references: func(e *entity.Species) []catalogReference {
		return []catalogReference{
			{kind: entity.KindPlanet, ids: optionalID(e.HomeworldID)},
			{kind: entity.KindFilm, ids: e.FilmIDs},
		}
	},
}

var characterSpec = &catalogSpec[entity.Character, model.CharacterModel]{
	kind:       entity.KindCharacter,
	toDomain:   toCharacterDomain,
	fromDomain: fromCharacterDomain,
	modelID:    func(m *model.CharacterModel) uint { return m.ID },
	preloads:   []string{"Homeworld", "Film"},
	references: func(e *entity.Character) []catalogReference {
		return []catalogReference{
			{kind: entity.KindPlanet, ids: optionalID(e.HomeworldID)},
			{kind: entity.KindFilm, ids: optionalID(e.FilmID)},
		}
	},
}

// NewPlanetRepository returns the planet catalog repository.
func NewPlanetRepository(db *gorm.DB) repository.CatalogRepository[entity.Planet] {
	return &catalogRepository[entity.Planet, model.PlanetModel]{db: db, spec: planetSpec}
}

// NewFilmRepository returns the film catalog repository.
func NewFilmRepository(db *gorm.DB) repository.CatalogRepository[entity.Film] {
	return &catalogRepository[entity.Film, model.FilmModel]{db: db, spec: filmSpec}
}

// NewStarshipRepository returns the starship catalog repository.
func NewStarshipRepository(db *gorm.DB) repository.CatalogRepository[entity.Starship] {
	return &catalogRepository[entity.Starship, model.StarshipModel]{db: db, spec: starshipSpec}
}

// NewVehicleRepository returns the vehicle catalog repository.
func NewVehicleRepository(db *gorm.DB) repository.CatalogRepository[entity.Vehicle] {
	return &catalogRepository[entity.Vehicle, model.VehicleModel]{db: db, spec: vehicleSpec}
}

// NewSpeciesRepository returns the species catalog repository.
func NewSpeciesRepository(db *gorm.DB) repository.CatalogRepository[entity.Species] {
	return &catalogRepository[entity.Species, model.SpeciesModel]{db: db, spec: speciesSpec}
}

// NewCharacterRepository returns the character catalog repository.
func NewCharacterRepository(db *gorm.DB) repository.CatalogRepository[entity.Character] {
	return &catalogRepository[entity.Character, model.CharacterModel]{db: db, spec: characterSpec}
}

func optionalID(id *uint) []uint {
	if id == nil {
		return nil
	}

	return []uint{*id}
}
