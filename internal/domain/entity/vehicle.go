package entity

import "time"

// Vehicle is a catalog vehicle. Model and passengers are mandatory.
type Vehicle struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Model                string    `json:"model"`
	VehicleClass         string    `json:"vehicle_class"`
	Manufacturer         string    `json:"manufacturer"`
	CostInCredits        string    `json:"cost_in_credits"`
	Length               string    `json:"length"`
	Crew                 string    `json:"crew"`
	Passengers           string    `json:"passengers"`
	MaxAtmospheringSpeed string    `json:"max_atmosphering_speed"`
	CargoCapacity        string    `json:"cargo_capacity"`
	Consumables          string    `json:"consumables"`
	URL                  string    `json:"url"`
	FilmIDs              []uint    `json:"film_ids"`
	Created              time.Time `json:"created"`
	Edited               time.Time `json:"edited"`
}
