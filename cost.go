package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// OrthogonalStepCost is charged for up/down/left/right moves
	OrthogonalStepCost = 1.0
	// DiagonalStepCost approximates √2 to three decimals
	DiagonalStepCost = 1.414
	// DefaultPenalty is the extra cost for stepping onto a Penalty cell
	DefaultPenalty = 1.0
)

// CostModel computes heuristic estimates and step costs between adjacent cells
type CostModel struct {
	Penalty float64
}

// toPoint maps a grid position onto the plane with x = col, y = row
func toPoint(p Position) orb.Point {
	return orb.Point{float64(p.Col), float64(p.Row)}
}

// Heuristic is the Euclidean distance between two positions
func (CostModel) Heuristic(a, b Position) float64 {
	return planar.Distance(toPoint(a), toPoint(b))
}

// StepCost is the cost of moving from one cell onto an adjacent cell of kind dest
func (m CostModel) StepCost(from, to Position, dest CellKind) float64 {
	cost := OrthogonalStepCost
	if from.Row != to.Row && from.Col != to.Col {
		cost = DiagonalStepCost
	}
	if dest == Penalty {
		cost += m.Penalty
	}
	return cost
}
