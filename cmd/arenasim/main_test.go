package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/config"
	coresys "github.com/arenasim/server/internal/core/system"
	"github.com/arenasim/server/internal/data"
	"github.com/arenasim/server/internal/world"
)

func TestSpawnAll(t *testing.T) {
	species, err := data.ParseSpeciesTable([]byte(`
species:
  - name: hornet
    temperament: aggro
    aggro_range: 700
    rarity: rare
  - name: bee
    temperament: neutral
`))
	require.NoError(t, err)
	list, err := data.ParseSpawnList([]byte(`
players:
  - x: 100
    y: 100
spawns:
  - species: hornet
    count: 4
    x: 1000
    y: 1000
    randomx: 50
    randomy: 50
  - species: bee
    rarity: ultimate
    owner: 0
    nest: {x: 150, y: 150}
  - species: moth
  - species: bee
    rarity: shiny
`))
	require.NoError(t, err)

	sim := world.NewSimulation()
	arena := sim.SpawnArena("a", world.NewMaze(4, 1000))
	players, mobs := spawnAll(sim, arena, species, list, rand.New(rand.NewSource(3)), zap.NewNop())
	assert.Equal(t, 1, players)
	assert.Equal(t, 5, mobs)

	var companions int
	for _, id := range sim.MobIDs() {
		m, _ := sim.Mob(id)
		p, _ := sim.Physical(id)
		rel, _ := sim.Relations(id)
		switch m.Species {
		case "hornet":
			assert.Equal(t, component.RarityRare, m.Rarity)
			assert.Equal(t, component.TeamMobs, rel.Team)
			assert.InDelta(t, 1000, p.Position.X, 50)
			assert.InDelta(t, 1000, p.Position.Y, 50)
		case "bee":
			companions++
			assert.Equal(t, component.RarityUltimate, m.Rarity)
			assert.Equal(t, component.TeamFlowers, rel.Team)
			assert.True(t, sim.Alive(rel.Owner))
			assert.True(t, sim.Alive(rel.Nest))
			a, _ := sim.AI(id)
			assert.Equal(t, component.AINeutral, a.Type)
		}
	}
	assert.Equal(t, 1, companions)
}

type countSystem struct{ n int }

func (s *countSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }
func (s *countSystem) Update(time.Duration) { s.n++ }

func TestGameLoop_StopsAtMaxTicks(t *testing.T) {
	runner := coresys.NewRunner()
	cs := &countSystem{}
	runner.Register(cs)

	err := gameLoop(context.Background(), runner, config.SimulationConfig{
		TickRate: time.Millisecond,
		MaxTicks: 5,
	}, func() {})
	require.NoError(t, err)
	assert.Equal(t, 5, cs.n)
}

func TestGameLoop_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gameLoop(ctx, coresys.NewRunner(), config.SimulationConfig{TickRate: time.Hour}, func() {})
	assert.ErrorIs(t, err, context.Canceled)
}
