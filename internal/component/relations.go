package component

import "github.com/arenasim/server/internal/core/ecs"

// Team identifies an affiliation. Entities on different teams are enemies.
type Team uint8

const (
	TeamNone Team = iota
	TeamFlowers
	TeamMobs
)

// Relations links an entity to its team and optional owner / nest.
type Relations struct {
	Team  Team
	Owner ecs.EntityID
	Nest  ecs.EntityID
}
