package event

import "github.com/arenasim/server/internal/core/ecs"

// StateChanged is emitted whenever a mob's behaviour state changes.
// From and To carry the numeric component.AIState values.
type StateChanged struct {
	Entity ecs.EntityID
	From   uint8
	To     uint8
}

// TargetAcquired is emitted when an idle mob locks onto a new target.
type TargetAcquired struct {
	Entity ecs.EntityID
	Target ecs.EntityID
}

// DeletionRequested is emitted when the engine asks for a mob's removal.
type DeletionRequested struct {
	Entity ecs.EntityID
	Reason string
}
