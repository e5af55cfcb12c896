package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/arenasim/server/internal/core/ecs"
	coresys "github.com/arenasim/server/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end.
// Phase 3 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
	log   *zap.Logger
	total int
}

func NewCleanupSystem(world *ecs.World, log *zap.Logger) *CleanupSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupSystem{world: world, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	n := s.world.FlushDestroyQueue()
	if n == 0 {
		return
	}
	s.total += n
	s.log.Debug("entities destroyed", zap.Int("count", n), zap.Int("total", s.total))
}

// Destroyed returns how many entities this system has removed.
func (s *CleanupSystem) Destroyed() int { return s.total }
