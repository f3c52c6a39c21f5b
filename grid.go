package main

import (
	"errors"
	"fmt"
)

// ErrInvalidMap is returned when a grid cannot be built from its cell table
var ErrInvalidMap = errors.New("invalid map")

// CellKind is the meaning of one grid cell
type CellKind int

const (
	Empty CellKind = iota
	Start
	Goal
	Wall        // never passable
	SoftBarrier // passable only by spending one resource unit
	Resource    // grants one resource unit the first time a path enters it
	Penalty     // passable, charges an extra step cost
	Reserved    // marker without search semantics
)

var cellKindNames = map[CellKind]string{
	Empty:       "empty",
	Start:       "start",
	Goal:        "goal",
	Wall:        "wall",
	SoftBarrier: "soft_barrier",
	Resource:    "resource",
	Penalty:     "penalty",
	Reserved:    "reserved",
}

func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// ParseCellKind maps a legend name such as "soft_barrier" to its kind
func ParseCellKind(name string) (CellKind, error) {
	for kind, n := range cellKindNames {
		if n == name {
			return kind, nil
		}
	}
	return Empty, fmt.Errorf("%w: unknown cell kind %q", ErrInvalidMap, name)
}

// Position is a (row, col) grid coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the position shifted by a direction's unit vector
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular table of cell kinds
type Grid struct {
	name  string
	rows  int
	cols  int
	cells []CellKind // row-major
}

// NewGrid builds a grid from a table of kinds. The table must be non-empty and rectangular.
func NewGrid(name string, table [][]CellKind) (*Grid, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, fmt.Errorf("%w: grid %q has no cells", ErrInvalidMap, name)
	}

	g := &Grid{
		name:  name,
		rows:  len(table),
		cols:  len(table[0]),
		cells: make([]CellKind, 0, len(table)*len(table[0])),
	}

	for r, row := range table {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMap, r, len(row), g.cols)
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

func (g *Grid) Name() string { return g.name }
func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Kind returns the cell kind at p. Out-of-bounds positions read as Wall.
func (g *Grid) Kind(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// Locate returns the first cell of the given kind in row-major order
func (g *Grid) Locate(kind CellKind) (Position, bool) {
	for i, k := range g.cells {
		if k == kind {
			return Position{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Position{}, false
}

// Count returns how many cells have the given kind
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(p Position, kind CellKind)) {
	for i, k := range g.cells {
		fn(Position{Row: i / g.cols, Col: i % g.cols}, k)
	}
}
