package entity

import "time"

// Planet is a catalog world. Species and characters may name it as their homeworld.
type Planet struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Diameter       string    `json:"diameter"`
	RotationPeriod string    `json:"rotation_period"`
	OrbitalPeriod  string    `json:"orbital_period"`
	Gravity        string    `json:"gravity"`
	Population     string    `json:"population"`
	Climate        string    `json:"climate"`
	Terrain        string    `json:"terrain"`
	SurfaceWater   string    `json:"surface_water"`
	URL            string    `json:"url"`
	FilmIDs        []uint    `json:"film_ids"` // Films the planet appears in.
	Created        time.Time `json:"created"`
	Edited         time.Time `json:"edited"`
}
