package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepCost(t *testing.T) {
	model := CostModel{Penalty: 2.5}
	origin := Position{3, 3}

	for _, d := range Directions {
		to := origin.Add(d)
		want := OrthogonalStepCost
		if d.Diagonal() {
			want = DiagonalStepCost
		}
		assert.Equal(t, want, model.StepCost(origin, to, Empty), "direction %d", d.ID)
		assert.Equal(t, want+2.5, model.StepCost(origin, to, Penalty), "direction %d", d.ID)
		assert.Equal(t, want, model.StepCost(origin, to, Resource), "direction %d", d.ID)
	}
}

func TestHeuristic(t *testing.T) {
	var model CostModel
	assert.Zero(t, model.Heuristic(Position{2, 2}, Position{2, 2}))
	assert.InDelta(t, 5.0, model.Heuristic(Position{0, 0}, Position{3, 4}), 1e-12)
	assert.InDelta(t, math.Sqrt2, model.Heuristic(Position{1, 1}, Position{0, 0}), 1e-12)
}

func TestHeuristicNearlyAdmissible(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	model := CostModel{Penalty: DefaultPenalty}

	for i := 0; i < 50; i++ {
		grid := randomGrid(t, r, 3+r.Intn(6), 3+r.Intn(6), 0.25)
		goal, _ := grid.Locate(Goal)
		dist := dijkstra(grid, model, goal)

		for p, d := range dist {
			if math.IsInf(d, 1) {
				continue
			}
			// bounded by the gap between √2 and 1.414 over at most 8 diagonals
			assert.LessOrEqual(t, model.Heuristic(p, goal), d+0.002, "grid %d at %v", i, p)
		}
	}
}
