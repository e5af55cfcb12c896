package component

import (
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// AIState is the mutually exclusive behaviour state that selects the
// locomotion routine for the tick.
type AIState uint8

const (
	StateIdle AIState = iota
	StateIdleMoving
	StateAttacking
	StateReturningToOwner
	StateReturningToHigherZone
)

func (s AIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateIdleMoving:
		return "idle_moving"
	case StateAttacking:
		return "attacking"
	case StateReturningToOwner:
		return "returning_to_owner"
	case StateReturningToHigherZone:
		return "returning_to_higher_zone"
	}
	return "unknown"
}

// AIType is a mob's temperament. Ordered: anything <= AIPassive never fights.
type AIType uint8

const (
	AIPassive AIType = iota
	AINeutral
	AIAggro
)

func (t AIType) String() string {
	switch t {
	case AIPassive:
		return "passive"
	case AINeutral:
		return "neutral"
	case AIAggro:
		return "aggro"
	}
	return "unknown"
}

// ParseAIType maps a species-table name to a temperament.
func ParseAIType(s string) (AIType, bool) {
	switch s {
	case "passive":
		return AIPassive, true
	case "neutral":
		return AINeutral, true
	case "aggro", "aggressive":
		return AIAggro, true
	}
	return AIPassive, false
}

// AI is the per-mob decision record.
// ParentID is the owning entity, set once by the spawner; never reassign it.
// Target is a weak handle: it is ecs.Null or must be checked for liveness
// before every use.
type AI struct {
	ParentID             ecs.EntityID
	Target               ecs.EntityID
	State                AIState
	Type                 AIType
	AggroRange           float32
	TicksUntilNextAction int
	ReturnPos            vmath.Vector
}
