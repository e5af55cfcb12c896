package main

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/data"
	"github.com/arenasim/server/internal/vmath"
	"github.com/arenasim/server/internal/world"
)

// spawnAll places the players and mobs of a spawn list into arena and
// returns how many of each were created.
func spawnAll(sim *world.Simulation, arena ecs.EntityID, species *data.SpeciesTable, list *data.SpawnList, rng *rand.Rand, log *zap.Logger) (int, int) {
	players := make([]ecs.EntityID, 0, len(list.Players))
	for _, p := range list.Players {
		players = append(players, sim.SpawnPlayer(arena, vmath.New(p.X, p.Y), p.Radius, p.Health))
	}

	total := 0
	for _, spawn := range list.Spawns {
		tmpl := species.Get(spawn.Species)
		if tmpl == nil {
			log.Warn("spawn: unknown species", zap.String("species", spawn.Species))
			continue
		}
		rarity := tmpl.DefaultRarity()
		if spawn.Rarity != "" {
			r, ok := component.ParseRarity(spawn.Rarity)
			if !ok {
				log.Warn("spawn: unknown rarity", zap.String("species", spawn.Species), zap.String("rarity", spawn.Rarity))
				continue
			}
			rarity = r
		}

		spec := world.MobSpec{
			Species:    tmpl.Name,
			Rarity:     rarity,
			Type:       tmpl.AIType(),
			AggroRange: tmpl.AggroRange,
			Radius:     tmpl.Radius,
			Angle:      spawn.Heading,
			Arena:      arena,
		}
		if spawn.Owner != nil {
			spec.Team = component.TeamFlowers
			spec.Owner = players[*spawn.Owner]
			if spawn.Nest != nil {
				spec.Nest = sim.SpawnNest(arena, vmath.New(spawn.Nest.X, spawn.Nest.Y))
			}
		}

		for i := 0; i < spawn.Count; i++ {
			spec.Position = vmath.New(spawn.X, spawn.Y)
			if spawn.RandomX > 0 {
				spec.Position.X += (rng.Float32()*2 - 1) * spawn.RandomX
			}
			if spawn.RandomY > 0 {
				spec.Position.Y += (rng.Float32()*2 - 1) * spawn.RandomY
			}
			sim.SpawnMob(spec)
			total++
		}
	}
	return len(players), total
}
