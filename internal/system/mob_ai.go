package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arenasim/server/internal/ai"
	coresys "github.com/arenasim/server/internal/core/system"
	"github.com/arenasim/server/internal/data"
)

// MobAISystem runs each mob's species behaviour once per tick.
// Phase 1 (Update).
type MobAISystem struct {
	engine    *ai.Engine
	behaviors map[string]ai.Behavior
	fallback  ai.Behavior
	log       *zap.Logger
	unknown   map[string]bool // species already warned about
}

// NewMobAISystem builds one behaviour per species. script may be nil when
// no species uses the scripted variant.
func NewMobAISystem(engine *ai.Engine, species *data.SpeciesTable, script ai.MobScript, fallbackSpeed float32, log *zap.Logger) (*MobAISystem, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &MobAISystem{
		engine:    engine,
		behaviors: make(map[string]ai.Behavior),
		fallback:  ai.Default{Speed: fallbackSpeed},
		log:       log,
		unknown:   make(map[string]bool),
	}
	if species == nil {
		return s, nil
	}
	for _, name := range species.Names() {
		sp := species.Get(name)
		b, err := ai.NewBehavior(sp.Behavior, ai.Params{
			Speed:           sp.Speed,
			ProjectileSpeed: sp.ProjectileSpeed,
			Script:          script,
		})
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", name, err)
		}
		s.behaviors[name] = b
	}
	return s, nil
}

func (s *MobAISystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MobAISystem) Update(_ time.Duration) {
	sim := s.engine.Simulation()
	w := sim.ECS()
	for _, id := range sim.MobIDs() {
		if w.PendingDestruction(id) {
			continue
		}
		b := s.fallback
		if mob, ok := sim.Mob(id); ok {
			if sb, ok := s.behaviors[mob.Species]; ok {
				b = sb
			} else if !s.unknown[mob.Species] {
				s.unknown[mob.Species] = true
				s.log.Warn("mob species has no behaviour, using default", zap.String("species", mob.Species))
			}
		}
		b.Tick(s.engine, id)
	}
}
