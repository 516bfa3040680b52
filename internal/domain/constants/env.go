// Package constants holds values shared across layers that are not part of any entity.
package constants

// Deployment environments matched against env.env.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)
