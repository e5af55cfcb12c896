package world

import (
	"math"

	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// AOIGrid buckets entities into square cells so proximity queries only look
// at nearby buckets. It is rebuilt once per tick after motion integration;
// between rebuilds memberships may lag positions by one tick, so callers
// re-check exact distances against the physical component.
// Accessed only from the game loop goroutine; no locks.
type AOIGrid struct {
	cellSize float32
	cells    map[cellKey][]ecs.EntityID
}

type cellKey struct {
	arena ecs.EntityID
	cx    int32
	cy    int32
}

func NewAOIGrid(cellSize float32) *AOIGrid {
	return &AOIGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]ecs.EntityID),
	}
}

func (g *AOIGrid) toCell(v float32) int32 {
	return int32(math.Floor(float64(v / g.cellSize)))
}

func (g *AOIGrid) key(arena ecs.EntityID, pos vmath.Vector) cellKey {
	return cellKey{arena: arena, cx: g.toCell(pos.X), cy: g.toCell(pos.Y)}
}

// Reset empties every bucket, keeping allocations.
func (g *AOIGrid) Reset() {
	for k, ids := range g.cells {
		g.cells[k] = ids[:0]
	}
}

// Add places an entity into the bucket under pos.
func (g *AOIGrid) Add(id ecs.EntityID, arena ecs.EntityID, pos vmath.Vector) {
	k := g.key(arena, pos)
	g.cells[k] = append(g.cells[k], id)
}

// Query calls fn for every entity in buckets overlapping the square of
// half-width r around pos. Buckets are visited row by row, so the visit
// order is deterministic for a given insertion order.
func (g *AOIGrid) Query(arena ecs.EntityID, pos vmath.Vector, r float32, fn func(ecs.EntityID)) {
	minX, maxX := g.toCell(pos.X-r), g.toCell(pos.X+r)
	minY, maxY := g.toCell(pos.Y-r), g.toCell(pos.Y+r)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, id := range g.cells[cellKey{arena: arena, cx: cx, cy: cy}] {
				fn(id)
			}
		}
	}
}
