package store

import (
	"holocron/internal/domain/entity"
	"holocron/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// Film ids are not part of the models; the repository attaches them after loading.

func toPlanetDomain(data *model.PlanetModel) *entity.Planet {
	return &entity.Planet{
		ID:             data.ID,
		Name:           data.Name,
		Diameter:       data.Diameter,
		RotationPeriod: data.RotationPeriod,
		OrbitalPeriod:  data.OrbitalPeriod,
		Gravity:        data.Gravity,
		Population:     data.Population,
		Climate:        data.Climate,
		Terrain:        data.Terrain,
		SurfaceWater:   data.SurfaceWater,
		URL:            data.URL,
		Created:        data.Created,
		Edited:         data.Edited,
	}
}

func fromPlanetDomain(data *entity.Planet) *model.PlanetModel {
	return &model.PlanetModel{
		ID:             data.ID,
		Name:           data.Name,
		Diameter:       data.Diameter,
		RotationPeriod: data.RotationPeriod,
		OrbitalPeriod:  data.OrbitalPeriod,
		Gravity:        data.Gravity,
		Population:     data.Population,
		Climate:        data.Climate,
		Terrain:        data.Terrain,
		SurfaceWater:   data.SurfaceWater,
		URL:            data.URL,
		Created:        data.Created,
	}
}

func toFilmDomain(data *model.FilmModel) *entity.Film {
	return &entity.Film{
		ID:           data.ID,
		Title:        data.Title,
		EpisodeID:    data.EpisodeID,
		Director:     data.Director,
		OpeningCrawl: data.OpeningCrawl,
		Producer:     data.Producer,
		ReleaseDate:  data.ReleaseDate,
		URL:          data.URL,
		Created:      data.Created,
		Edited:       data.Edited,
	}
}

func fromFilmDomain(data *entity.Film) *model.FilmModel {
	return &model.FilmModel{
		ID:           data.ID,
		Title:        data.Title,
		EpisodeID:    data.EpisodeID,
		Director:     data.Director,
		OpeningCrawl: data.OpeningCrawl,
		Producer:     data.Producer,
		ReleaseDate:  data.ReleaseDate,
		URL:          data.URL,
		Created:      data.Created,
	}
}

func toStarshipDomain(data *model.StarshipModel) *entity.Starship {
	return &entity.Starship{
		ID:                   data.ID,
		Name:                 data.Name,
		Model:                data.Model,
		StarshipClass:        data.StarshipClass,
		Manufacturer:         data.Manufacturer,
		CostInCredits:        data.CostInCredits,
		Length:               data.Length,
		Crew:                 data.Crew,
		Passengers:           data.Passengers,
		MaxAtmospheringSpeed: data.MaxAtmospheringSpeed,
		HyperdriveRating:     data.HyperdriveRating,
		MGLT:                 data.MGLT,
		CargoCapacity:        data.CargoCapacity,
		Consumables:          data.Consumables,
		URL:                  data.URL,
		Created:              data.Created,
		Edited:               data.Edited,
	}
}

func fromStarshipDomain(data *entity.Starship) *model.StarshipModel {
	return &model.StarshipModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Model:                data.Model,
		StarshipClass:        data.StarshipClass,
		Manufacturer:         data.Manufacturer,
		CostInCredits:        data.CostInCredits,
		Length:               data.Length,
		Crew:                 data.Crew,
		Passengers:           data.Passengers,
		MaxAtmospheringSpeed: data.MaxAtmospheringSpeed,
		HyperdriveRating:     data.HyperdriveRating,
		MGLT:                 data.MGLT,
		CargoCapacity:        data.CargoCapacity,
		Consumables:          data.Consumables,
		URL:                  data.URL,
		Created:              data.Created,
	}
}

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	return &entity.Vehicle{
		ID:                   data.ID,
		Name:                 data.Name,
		Model:                data.Model,
		VehicleClass:         data.VehicleClass,
		Manufacturer:         data.Manufacturer,
		CostInCredits:        data.CostInCredits,
		Length:               data.Length,
		Crew:                 data.Crew,
		Passengers:           data.Passengers,
		MaxAtmospheringSpeed: data.MaxAtmospheringSpeed,
		CargoCapacity:        data.CargoCapacity,
		Consumables:          data.Consumables,
		URL:                  data.URL,
		Created:              data.Created,
		Edited:               data.Edited,
	}
}

func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	return &model.VehicleModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Model:                data.Model,
		VehicleClass:         data.VehicleClass,
		Manufacturer:         data.Manufacturer,
		CostInCredits:        data.CostInCredits,
		Length:               data.Length,
		Crew:                 data.Crew,
		Passengers:           data.Passengers,
		MaxAtmospheringSpeed: data.MaxAtmospheringSpeed,
		CargoCapacity:        data.CargoCapacity,
		Consumables:          data.Consumables,
		URL:                  data.URL,
		Created:              data.Created,
	}
}

func toSpeciesDomain(data *model.SpeciesModel) *entity.Species {
	species := &entity.Species{
		ID:              data.ID,
		Name:            data.Name,
		Classification:  data.Classification,
		Designation:     data.Designation,
		AverageHeight:   data.AverageHeight,
		AverageLifespan: data.AverageLifespan,
		EyeColors:       data.EyeColors,
		HairColors:      data.HairColors,
		SkinColors:      data.SkinColors,
		Language:        data.Language,
		HomeworldID:     data.HomeworldID,
		URL:             data.URL,
		Created:         data.Created,
		Edited:          data.Edited,
	}
	if data.Homeworld != nil {
		species.Homeworld = &data.Homeworld.Name
	}

	return species
}

func fromSpeciesDomain(data *entity.Species) *model.SpeciesModel {
	return &model.SpeciesModel{
		ID:              data.ID,
		Name:            data.Name,
		Classification:  data.Classification,
		Designation:     data.Designation,
		AverageHeight:   data.AverageHeight,
		AverageLifespan: data.AverageLifespan,
		EyeColors:       data.EyeColors,
		HairColors:      data.HairColors,
		SkinColors:      data.SkinColors,
		Language:        data.Language,
		HomeworldID:     data.HomeworldID,
		URL:             data.URL,
		Created:         data.Created,
	}
}

func toCharacterDomain(data *model.CharacterModel) *entity.Character {
	character := &entity.Character{
		ID:          data.ID,
		Name:        data.Name,
		EyeColor:    data.EyeColor,
		SkinColor:   data.SkinColor,
		HairColor:   data.HairColor,
		Gender:      data.Gender,
		Height:      data.Height,
		Mass:        data.Mass,
		BirthYear:   data.BirthYear,
		HomeworldID: data.HomeworldID,
		FilmID:      data.FilmID,
		URL:         data.URL,
		Created:     data.Created,
		Edited:      data.Edited,
	}
	if data.Homeworld != nil {
		character.Homeworld = &data.Homeworld.Name
	}
	if data.Film != nil {
		character.Film = &data.Film.Title
	}

	return character
}

func fromCharacterDomain(data *entity.Character) *model.CharacterModel {
	return &model.CharacterModel{
		ID:          data.ID,
		Name:        data.Name,
		EyeColor:    data.EyeColor,
		SkinColor:   data.SkinColor,
		HairColor:   data.HairColor,
		Gender:      data.Gender,
		Height:      data.Height,
		Mass:        data.Mass,
		BirthYear:   data.BirthYear,
		HomeworldID: data.HomeworldID,
		FilmID:      data.FilmID,
		URL:         data.URL,
		Created:     data.Created,
	}
}
