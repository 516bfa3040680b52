package usecase

import (
	"time"

	"holocron/internal/domain/entity"
)

// ReleaseDateLayout is the wire format of Film.release_date.
const ReleaseDateLayout = time.DateOnly

// PlanetInput is the settable field set of a planet.
type PlanetInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=250"`
	Diameter       *string `json:"diameter" validate:"omitempty,max=250"`
	RotationPeriod *string `json:"rotation_period" validate:"omitempty,max=250"`
	OrbitalPeriod  *string `json:"orbital_period" validate:"omitempty,max=250"`
	Gravity        *string `json:"gravity" validate:"omitempty,max=250"`
	Population     *string `json:"population" validate:"omitempty,max=250"`
	Climate        *string `json:"climate" validate:"omitempty,max=250"`
	Terrain        *string `json:"terrain" validate:"omitempty,max=250"`
	SurfaceWater   *string `json:"surface_water" validate:"omitempty,max=250"`
	URL            *string `json:"url" validate:"omitempty,url,max=250"`
	FilmIDs        *[]uint `json:"film_ids" validate:"omitempty,dive,gt=0"`
}

func (in PlanetInput) Apply(item *entity.Planet) {
	set(&item.Name, in.Name)
	set(&item.Diameter, in.Diameter)
	set(&item.RotationPeriod, in.RotationPeriod)
	set(&item.OrbitalPeriod, in.OrbitalPeriod)
	set(&item.Gravity, in.Gravity)
	set(&item.Population, in.Population)
	set(&item.Climate, in.Climate)
	set(&item.Terrain, in.Terrain)
	set(&item.SurfaceWater, in.SurfaceWater)
	set(&item.URL, in.URL)
	set(&item.FilmIDs, in.FilmIDs)
}

func (in PlanetInput) MissingFields() []string {
	return missing(field{"name", in.Name != nil}, field{"url", in.URL != nil})
}

// FilmInput is the settable field set of a film.
type FilmInput struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=250"`
	EpisodeID    *int    `json:"episode_id" validate:"omitempty,gte=0"`
	Director     *string `json:"director" validate:"omitempty,max=250"`
	OpeningCrawl *string `json:"opening_crawl"`
	Producer     *string `json:"producer" validate:"omitempty,max=250"`
	ReleaseDate  *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	URL          *string `json:"url" validate:"omitempty,url,max=250"`
}

func (in FilmInput) Apply(item *entity.Film) {
	set(&item.Title, in.Title)
	set(&item.EpisodeID, in.EpisodeID)
	set(&item.Director, in.Director)
	set(&item.OpeningCrawl, in.OpeningCrawl)
	set(&item.Producer, in.Producer)
	set(&item.URL, in.URL)

	if in.ReleaseDate != nil {
		if date, err := time.Parse(ReleaseDateLayout, *in.ReleaseDate); err == nil {
			item.ReleaseDate = &date
		}
	}
}

func (in FilmInput) MissingFields() []string {
	return missing(
		field{"title", in.Title != nil},
		field{"episode_id", in.EpisodeID != nil},
		field{"url", in.URL != nil},
	)
}

// StarshipInput is the settable field set of a starship.
type StarshipInput struct {
	Name                 *string `json:"name" validate:"omitempty,min=1,max=250"`
	Model                *string `json:"model" validate:"omitempty,max=250"`
	StarshipClass        *string `json:"starship_class" validate:"omitempty,max=250"`
	Manufacturer         *string `json:"manufacturer" validate:"omitempty,max=250"`
	CostInCredits        *string `json:"cost_in_credits" validate:"omitempty,max=250"`
	Length               *string `json:"length" validate:"omitempty,max=250"`
	Crew                 *string `json:"crew" validate:"omitempty,max=250"`
	Passengers           *string `json:"passengers" validate:"omitempty,max=250"`
	MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" validate:"omitempty,max=250"`
	HyperdriveRating     *string `json:"hyperdrive_rating" validate:"omitempty,max=250"`
	MGLT                 *string `json:"MGLT" validate:"omitempty,max=250"`
	CargoCapacity        *string `json:"cargo_capacity" validate:"omitempty,max=250"`
	Consumables          *string `json:"consumables" validate:"omitempty,max=250"`
	URL                  *string `json:"url" validate:"omitempty,url,max=250"`
	FilmIDs              *[]uint `json:"film_ids" validate:"omitempty,dive,gt=0"`
}

func (in StarshipInput) Apply(item *entity.Starship) {
	set(&item.Name, in.Name)
	set(&item.Model, in.Model)
	set(&item.StarshipClass, in.StarshipClass)
	set(&item.Manufacturer, in.Manufacturer)
	set(&item.CostInCredits, in.CostInCredits)
	set(&item.Length, in.Length)
	set(&item.Crew, in.Crew)
	set(&item.Passengers, in.Passengers)
	set(&item.MaxAtmospheringSpeed, in.MaxAtmospheringSpeed)
	set(&item.HyperdriveRating, in.HyperdriveRating)
	set(&item.MGLT, in.MGLT)
	set(&item.CargoCapacity, in.CargoCapacity)
	set(&item.Consumables, in.Consumables)
	set(&item.URL, in.URL)
	set(&item.FilmIDs, in.FilmIDs)
}

func (in StarshipInput) MissingFields() []string {
	return missing(field{"name", in.Name != nil}, field{"url", in.URL != nil})
}

// VehicleInput is the settable field set of a vehicle.
type VehicleInput struct {
	Name                 *string `json:"name" validate:"omitempty,min=1,max=250"`
	Model                *string `json:"model" validate:"omitempty,max=250"`
	VehicleClass         *string `json:"vehicle_class" validate:"omitempty,max=250"`
	Manufacturer         *string `json:"manufacturer" validate:"omitempty,max=250"`
	CostInCredits        *string `json:"cost_in_credits" validate:"omitempty,max=250"`
	Length               *string `json:"length" validate:"omitempty,max=250"`
	Crew                 *string `json:"crew" validate:"omitempty,max=250"`
	Passengers           *string `json:"passengers" validate:"omitempty,max=250"`
	MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" validate:"omitempty,max=250"`
	CargoCapacity        *string `json:"cargo_capacity" validate:"omitempty,max=250"`
	Consumables          *string `json:"consumables" validate:"omitempty,max=250"`
	URL                  *string `json:"url" validate:"omitempty,url,max=250"`
	FilmIDs              *[]uint `json:"film_ids" validate:"omitempty,dive,gt=0"`
}

func (in VehicleInput) Apply(item *entity.Vehicle) {
	set(&item.Name, in.Name)
	set(&item.Model, in.Model)
	set(&item.VehicleClass, in.VehicleClass)
	set(&item.Manufacturer, in.Manufacturer)
	set(&item.CostInCredits, in.CostInCredits)
	set(&item.Length, in.Length)
	set(&item.Crew, in.Crew)
	set(&item.Passengers, in.Passengers)
	set(&item.MaxAtmospheringSpeed, in.MaxAtmospheringSpeed)
	set(&item.CargoCapacity, in.CargoCapacity)
	set(&item.Consumables, in.Consumables)
	set(&item.URL, in.URL)
	set(&item.FilmIDs, in.FilmIDs)
}

func (in VehicleInput) MissingFields() []string {
	return missing(
		field{"name", in.Name != nil},
		field{"model", in.Model != nil},
		field{"passengers", in.Passengers != nil},
		field{"url", in.URL != nil},
	)
}

// SpeciesInput is the settable field set of a species.
type SpeciesInput struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=250"`
	Classification  *string `json:"classification" validate:"omitempty,max=250"`
	Designation     *string `json:"designation" validate:"omitempty,max=250"`
	AverageHeight   *string `json:"average_height" validate:"omitempty,max=250"`
	AverageLifespan *string `json:"average_lifespan" validate:"omitempty,max=250"`
	EyeColors       *string `json:"eye_colors" validate:"omitempty,max=250"`
	HairColors      *string `json:"hair_colors" validate:"omitempty,max=250"`
	SkinColors      *string `json:"skin_colors" validate:"omitempty,max=250"`
	Language        *string `json:"language" validate:"omitempty,max=250"`
	HomeworldID     *uint   `json:"homeworld_id" validate:"omitempty,gt=0"`
	URL             *string `json:"url" validate:"omitempty,url,max=250"`
	FilmIDs         *[]uint `json:"film_ids" validate:"omitempty,dive,gt=0"`
}

func (in SpeciesInput) Apply(item *entity.Species) {
	set(&item.Name, in.Name)
	set(&item.Classification, in.Classification)
	set(&item.Designation, in.Designation)
	set(&item.AverageHeight, in.AverageHeight)
	set(&item.AverageLifespan, in.AverageLifespan)
	set(&item.EyeColors, in.EyeColors)
	set(&item.HairColors, in.HairColors)
	set(&item.SkinColors, in.SkinColors)
	set(&item.Language, in.Language)
	setRef(&item.HomeworldID, in.HomeworldID)
	set(&item.URL, in.URL)
	set(&item.FilmIDs, in.FilmIDs)
}

func (in SpeciesInput) MissingFields() []string {
	return missing(
		field{"name", in.Name != nil},
		field{"language", in.Language != nil},
		field{"url", in.URL != nil},
	)
}

// CharacterInput is the settable field set of a character.
type CharacterInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=250"`
	EyeColor    *string `json:"eye_color" validate:"omitempty,max=250"`
	SkinColor   *string `json:"skin_color" validate:"omitempty,max=250"`
	HairColor   *string `json:"hair_color" validate:"omitempty,max=250"`
	Gender      *string `json:"gender" validate:"omitempty,max=250"`
	Height      *string `json:"height" validate:"omitempty,max=250"`
	Mass        *string `json:"mass" validate:"omitempty,max=250"`
	BirthYear   *string `json:"birth_year" validate:"omitempty,max=250"`
	HomeworldID *uint   `json:"homeworld_id" validate:"omitempty,gt=0"`
	FilmID      *uint   `json:"film_id" validate:"omitempty,gt=0"`
	URL         *string `json:"url" validate:"omitempty,url,max=250"`
}

func (in CharacterInput) Apply(item *entity.Character) {
	set(&item.Name, in.Name)
	set(&item.EyeColor, in.EyeColor)
	set(&item.SkinColor, in.SkinColor)
	set(&item.HairColor, in.HairColor)
	set(&item.Gender, in.Gender)
	set(&item.Height, in.Height)
	set(&item.Mass, in.Mass)
	set(&item.BirthYear, in.BirthYear)
	setRef(&item.HomeworldID, in.HomeworldID)
	setRef(&item.FilmID, in.FilmID)
	set(&item.URL, in.URL)
}

func (in CharacterInput) MissingFields() []string {
	return missing(field{"name", in.Name != nil}, field{"url", in.URL != nil})
}

type field struct {
	name    string
	present bool
}

func missing(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if !f.present {
			names = append(names, f.name)
		}
	}

	return names
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setRef replaces an optional foreign key. The new value is copied so the input can be reused.
func setRef(dst **uint, src *uint) {
	if src != nil {
		id := *src
		*dst = &id
	}
}
