package ai

import (
	"math/rand"
	"testing"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/core/event"
	"github.com/arenasim/server/internal/vmath"
	"github.com/arenasim/server/internal/world"
	"github.com/stretchr/testify/require"
)

// stubRand replays fixed values; an empty queue yields zero.
type stubRand struct {
	ints   []int
	floats []float32
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *stubRand) Float32() float32 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type fixture struct {
	sim   *world.Simulation
	eng   *Engine
	bus   *event.Bus
	arena ecs.EntityID
	maze  *world.Maze
}

func newFixture(t *testing.T, rng Rand) *fixture {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	sim := world.NewSimulation()
	maze := world.NewMaze(8, 100)
	arena := sim.SpawnArena("test", maze)
	bus := event.NewBus()
	return &fixture{
		sim:   sim,
		eng:   NewEngine(sim, rng, DefaultTuning(), bus, nil),
		bus:   bus,
		arena: arena,
		maze:  maze,
	}
}

func (f *fixture) mob(t *testing.T, spec world.MobSpec) (ecs.EntityID, *component.AI, *component.Physical) {
	t.Helper()
	spec.Arena = f.arena
	if spec.Radius == 0 {
		spec.Radius = 10
	}
	id := f.sim.SpawnMob(spec)
	a, ok := f.sim.AI(id)
	require.True(t, ok)
	p, ok := f.sim.Physical(id)
	require.True(t, ok)
	return id, a, p
}

func (f *fixture) player(pos vmath.Vector) ecs.EntityID {
	return f.sim.SpawnPlayer(f.arena, pos, 10, 100)
}

// fillMaze sets every cell to the given difficulty with a plain walkable value.
func (f *fixture) fillMaze(difficulty uint8) {
	for y := int32(0); y < f.maze.Dim; y++ {
		for x := int32(0); x < f.maze.Dim; x++ {
			f.maze.Set(x, y, world.Cell{Difficulty: difficulty, Value: 1})
		}
	}
}
