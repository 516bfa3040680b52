package entity

import "time"

// Starship is a catalog starship.
type Starship struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Model                string    `json:"model"`
	StarshipClass        string    `json:"starship_class"`
	Manufacturer         string    `json:"manufacturer"`
	CostInCredits        string    `json:"cost_in_credits"`
	Length               string    `json:"length"`
	Crew                 string    `json:"crew"`
	Passengers           string    `json:"passengers"`
	MaxAtmospheringSpeed string    `json:"max_atmosphering_speed"`
	HyperdriveRating     string    `json:"hyperdrive_rating"`
	MGLT                 string    `json:"MGLT"`
	CargoCapacity        string    `json:"cargo_capacity"`
	Consumables          string    `json:"consumables"`
	URL                  string    `json:"url"`
	FilmIDs              []uint    `json:"film_ids"`
	Created              time.Time `json:"created"`
	Edited               time.Time `json:"edited"`
}
