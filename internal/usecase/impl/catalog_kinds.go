package impl

import (
	"log/slog"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/usecase"

	"go.uber.org/fx"
)

// CatalogServiceParams holds dependencies shared by every catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

func NewPlanetService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Planet]) usecase.CatalogUsecase[entity.Planet, usecase.PlanetInput] {
	return newCatalogService[entity.Planet, usecase.PlanetInput](entity.KindPlanet, params.TxManager, repo,
		repository.RepositoryFactory.NewPlanetRepository, func(p *entity.Planet) uint { return p.ID }, params.Logger)
}

func NewFilmService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Film]) usecase.CatalogUsecase[entity.Film, usecase.FilmInput] {
	return newCatalogService[entity.Film, usecase.FilmInput](entity.KindFilm, params.TxManager, repo,
		repository.RepositoryFactory.NewFilmRepository, func(f *entity.Film) uint { return f.ID }, params.Logger)
}

func NewStarshipService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Starship]) usecase.CatalogUsecase[entity.Starship, usecase.StarshipInput] {
	return newCatalogService[entity.Starship, usecase.StarshipInput](entity.KindStarship, params.TxManager, repo,
		repository.RepositoryFactory.NewStarshipRepository, func(s *entity.Starship) uint { return s.ID }, params.Logger)
}

func NewVehicleService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Vehicle]) usecase.CatalogUsecase[entity.Vehicle, usecase.VehicleInput] {
	return newCatalogService[entity.Vehicle, usecase.VehicleInput](entity.KindVehicle, params.TxManager, repo,
		repository.RepositoryFactory.NewVehicleRepository, func(v *entity.Vehicle) uint { return v.ID }, params.Logger)
}

func NewSpeciesService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Species]) usecase.CatalogUsecase[entity.Species, usecase.SpeciesInput] {
	return newCatalogService[entity.Species, usecase.SpeciesInput](entity.KindSpecies, params.TxManager, repo,
		repository.RepositoryFactory.NewSpeciesRepository, func(s *entity.Species) uint { return s.ID }, params.Logger)
}

func NewCharacterService(params CatalogServiceParams, repo repository.CatalogRepository[entity.Character]) usecase.CatalogUsecase[entity.Character, usecase.CharacterInput] {
	return newCatalogService[entity.Character, usecase.CharacterInput](entity.KindCharacter, params.TxManager, repo,
		repository.RepositoryFactory.NewCharacterRepository, func(c *entity.Character) uint { return c.ID }, params.Logger)
}
