package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arenasim/server/internal/world"
)

// mazeFile is the on-disk maze layout. Rows are listed top to bottom; each
// row holds one entry per column.
type mazeFile struct {
	Name       string    `yaml:"name"`
	Dim        int32     `yaml:"dim"`
	GridSize   float32   `yaml:"grid_size"`
	Difficulty [][]uint8 `yaml:"difficulty"`
	Value      [][]uint8 `yaml:"value"` // optional; every cell walkable when omitted
}

// MazeLayout is a loaded arena layout.
type MazeLayout struct {
	Name string
	Maze *world.Maze
}

// LoadMaze loads a maze layout from a YAML file.
func LoadMaze(path string) (*MazeLayout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze %s: %w", path, err)
	}
	return ParseMaze(raw)
}

// ParseMaze decodes and validates a maze layout.
func ParseMaze(raw []byte) (*MazeLayout, error) {
	var f mazeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse maze: %w", err)
	}
	if f.Dim <= 0 {
		return nil, fmt.Errorf("maze %q: dim must be positive, got %d", f.Name, f.Dim)
	}
	if f.GridSize <= 0 {
		return nil, fmt.Errorf("maze %q: grid_size must be positive", f.Name)
	}
	if err := checkRows("difficulty", f.Difficulty, f.Dim); err != nil {
		return nil, fmt.Errorf("maze %q: %w", f.Name, err)
	}
	if f.Value != nil {
		if err := checkRows("value", f.Value, f.Dim); err != nil {
			return nil, fmt.Errorf("maze %q: %w", f.Name, err)
		}
	}

	m := world.NewMaze(f.Dim, f.GridSize)
	for y := int32(0); y < f.Dim; y++ {
		for x := int32(0); x < f.Dim; x++ {
			c := world.Cell{Difficulty: f.Difficulty[y][x], Value: 1}
			if f.Value != nil {
				c.Value = f.Value[y][x]
			}
			m.Set(x, y, c)
		}
	}
	return &MazeLayout{Name: f.Name, Maze: m}, nil
}

func checkRows(field string, rows [][]uint8, dim int32) error {
	if int32(len(rows)) != dim {
		return fmt.Errorf("%s: %d rows, want %d", field, len(rows), dim)
	}
	for i, row := range rows {
		if int32(len(row)) != dim {
			return fmt.Errorf("%s row %d: %d columns, want %d", field, i, len(row), dim)
		}
	}
	return nil
}
