package main

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoStartOrGoal means the grid lacks a start or a goal cell
	ErrNoStartOrGoal = errors.New("start or goal not found in map")
	// ErrExpansionLimit means the run hit its configured expansion cap
	ErrExpansionLimit = errors.New("expansion limit reached")
)

// Mode selects whether the search state tracks collected resources
type Mode int

const (
	// Augmented searches over (position, resource) states
	Augmented Mode = iota
	// Plain never collects resources, so soft barriers behave as walls
	Plain
)

func (m Mode) String() string {
	if m == Plain {
		return "plain"
	}
	return "augmented"
}

// ParseMode accepts "augmented" or "plain"
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "augmented":
		return Augmented, nil
	case "plain":
		return Plain, nil
	}
	return Augmented, fmt.Errorf("unknown search mode %q", s)
}

// Outcome is the terminal state of a run
type Outcome int

const (
	Exhausted Outcome = iota
	GoalReached
)

func (o Outcome) String() string {
	if o == GoalReached {
		return "goal_reached"
	}
	return "exhausted"
}

// Options defines parameters for the search
type Options struct {
	Mode          Mode
	Penalty       float64
	MaxExpansions int // 0 means unbounded
	Tracer        Tracer
}

// Option is a function that modifies Options
type Option func(*Options)

// WithMode selects plain or resource-augmented search
func WithMode(mode Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithPenalty sets the extra cost of stepping onto a Penalty cell
func WithPenalty(penalty float64) Option {
	return func(o *Options) { o.Penalty = penalty }
}

// WithMaxExpansions caps the number of expanded nodes
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithTracer attaches an observer that receives every expansion decision
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.Tracer = t }
}

// Result contains the outcome of a search
type Result struct {
	Path      []Position
	Resources []int // resource held on arrival at each Path position
	Cost      float64
	Expanded  int
	Stale     int
	Found     bool
	Outcome   Outcome
}

// Engine runs A* over a grid. An Engine holds no per-run state, but callers
// should still build one per request.
type Engine struct {
	grid *Grid
	cost CostModel
	opts Options
}

// NewEngine creates an engine for grid
func NewEngine(grid *Grid, options ...Option) *Engine {
	opts := Options{
		Mode:    Augmented,
		Penalty: DefaultPenalty,
		Tracer:  nopTracer{},
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Tracer == nil {
		opts.Tracer = nopTracer{}
	}

	return &Engine{
		grid: grid,
		cost: CostModel{Penalty: opts.Penalty},
		opts: opts,
	}
}

// Search computes the least-cost path from the Start cell to the Goal cell.
// A missing start or goal returns ErrNoStartOrGoal; an unreachable goal
// returns a Result with Found false and a nil error.
func (e *Engine) Search(ctx context.Context) (Result, error) {
	startPos, hasStart := e.grid.Locate(Start)
	goalPos, hasGoal := e.grid.Locate(Goal)
	if !hasStart || !hasGoal {
		return Result{Outcome: Exhausted}, ErrNoStartOrGoal
	}

	tracer := e.opts.Tracer
	nodes := &arena{}
	open := newFrontier(nodes)
	closedSet := make(map[SearchState]bool)

	root := nodes.add(SearchNode{
		State:  SearchState{Pos: startPos},
		Parent: noParent,
		G:      0,
		H:      e.cost.Heuristic(startPos, goalPos),
	})
	open.Push(root)

	expanded := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{Expanded: expanded, Stale: open.Stale()}, err
		}

		currentIdx, ok := open.PopMin()
		if !ok {
			break
		}
		current := nodes.get(currentIdx)
		closedSet[current.State] = true
		expanded++
		tracer.Record(Expand{State: current.State})

		// Goal test ignores the resource level
		if current.State.Pos == goalPos {
			path, resources := reconstructPath(nodes, currentIdx)
			return Result{
				Path:      path,
				Resources: resources,
				Cost:      current.G,
				Expanded:  expanded,
				Stale:     open.Stale(),
				Found:     true,
				Outcome:   GoalReached,
			}, nil
		}

		if e.opts.MaxExpansions > 0 && expanded >= e.opts.MaxExpansions {
			return Result{Expanded: expanded, Stale: open.Stale()}, ErrExpansionLimit
		}

		for _, dir := range Directions {
			to := current.State.Pos.Add(dir)
			tracer.Record(Attempt{From: current.State.Pos, To: to, Direction: dir})

			next, valid := e.successor(nodes, currentIdx, current.State, to)
			if !valid {
				tracer.Record(Blocked{To: to})
				continue
			}

			if closedSet[next] {
				tracer.Record(SkippedClosed{To: next})
				continue
			}

			tentativeG := current.G + e.cost.StepCost(current.State.Pos, to, e.grid.Kind(to))

			if bestIdx, inOpen := open.BestKnown(next); inOpen && tentativeG >= nodes.get(bestIdx).G {
				tracer.Record(SkippedOpen{To: next})
				continue
			}

			child := nodes.add(SearchNode{
				State:  next,
				Parent: currentIdx,
				G:      tentativeG,
				H:      e.cost.Heuristic(to, goalPos),
			})
			open.Push(child)
			tracer.Record(Added{To: next, G: tentativeG})
		}
	}

	// No path found
	return Result{Expanded: expanded, Stale: open.Stale(), Outcome: Exhausted}, nil
}

// successor computes the state reached by stepping onto to, or false if the
// step is not allowed from the current state.
func (e *Engine) successor(nodes *arena, currentIdx int, current SearchState, to Position) (SearchState, bool) {
	if !e.grid.InBounds(to) {
		return SearchState{}, false
	}

	resource := current.Resource
	switch e.grid.Kind(to) {
	case Wall:
		return SearchState{}, false
	case SoftBarrier:
		if resource == 0 {
			return SearchState{}, false
		}
		resource--
	case Resource:
		if e.opts.Mode == Augmented && !nodes.visits(currentIdx, to) {
			resource++
		}
	}

	return SearchState{Pos: to, Resource: resource}, true
}
