package world

import (
	"github.com/arenasim/server/internal/vmath"
)

// ValueExempt marks cells (bit 3 of Cell.Value) that never trigger zone escape.
const ValueExempt uint8 = 8

// Cell is one maze grid cell. Value is an opaque layout bitmask; 0 means
// the cell is not part of the walkable maze.
type Cell struct {
	Difficulty uint8
	Value      uint8
}

// Maze is a square grid of Dim×Dim cells, each GridSize world units wide.
// Cells are stored row-major: cells[y*Dim + x].
type Maze struct {
	GridSize float32
	Dim      int32
	cells    []Cell
}

// NewMaze allocates an empty dim×dim maze.
func NewMaze(dim int32, gridSize float32) *Maze {
	return &Maze{
		GridSize: gridSize,
		Dim:      dim,
		cells:    make([]Cell, int(dim)*int(dim)),
	}
}

// InBounds reports whether (x, y) indexes a cell.
func (m *Maze) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < m.Dim && y < m.Dim
}

// Grid returns the cell at (x, y). Out-of-range indices are clamped.
func (m *Maze) Grid(x, y int32) *Cell {
	x = clampIndex(x, m.Dim)
	y = clampIndex(y, m.Dim)
	return &m.cells[int(y)*int(m.Dim)+int(x)]
}

// Set overwrites the cell at (x, y). Out-of-range writes are ignored.
func (m *Maze) Set(x, y int32, c Cell) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[int(y)*int(m.Dim)+int(x)] = c
}

// CellAt maps a world position to grid indices, clamped to the maze.
func (m *Maze) CellAt(pos vmath.Vector) (int32, int32) {
	hi := float32(m.Dim - 1)
	gx := vmath.Clamp(pos.X/m.GridSize, 0, hi)
	gy := vmath.Clamp(pos.Y/m.GridSize, 0, hi)
	return int32(gx), int32(gy)
}

// Origin returns the world position of cell (x, y)'s top-left corner.
func (m *Maze) Origin(x, y int32) vmath.Vector {
	return vmath.New(float32(x)*m.GridSize, float32(y)*m.GridSize)
}

// WorldSize returns the side length of the maze in world units.
func (m *Maze) WorldSize() float32 {
	return float32(m.Dim) * m.GridSize
}

func clampIndex(v, dim int32) int32 {
	if v < 0 {
		return 0
	}
	if v >= dim {
		return dim - 1
	}
	return v
}

// Arena is the record attached to an arena entity.
type Arena struct {
	Name string
	Maze *Maze
}
