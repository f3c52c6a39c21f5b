package main

// Direction is one of the eight unit moves on the grid
type Direction struct {
	ID   DirectionID
	DRow int
	DCol int
}

// DirectionID names a move independently of any label language
type DirectionID int

const (
	Up DirectionID = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Directions lists the moves in the order the engine expands them
var Directions = [8]Direction{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
	{UpLeft, -1, -1},
	{UpRight, -1, 1},
	{DownLeft, 1, -1},
	{DownRight, 1, 1},
}

// Diagonal reports whether the move changes both row and column
func (d Direction) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// directionFromDelta finds the unit move for a (row, col) delta
func directionFromDelta(dRow, dCol int) (Direction, bool) {
	for _, d := range Directions {
		if d.DRow == dRow && d.DCol == dCol {
			return d, true
		}
	}
	return Direction{}, false
}

// Labels maps each move to a human-readable command string
type Labels [8]string

var (
	EnglishLabels = Labels{
		Up:        "up",
		Down:      "down",
		Left:      "left",
		Right:     "right",
		UpLeft:    "up-left",
		UpRight:   "up-right",
		DownLeft:  "down-left",
		DownRight: "down-right",
	}

	// PortugueseLabels match the command strings of the browser visualizer
	PortugueseLabels = Labels{
		Up:        "cima",
		Down:      "baixo",
		Left:      "esquerda",
		Right:     "direita",
		UpLeft:    "diagonal superior esquerda",
		UpRight:   "diagonal superior direita",
		DownLeft:  "diagonal inferior esquerda",
		DownRight: "diagonal inferior direita",
	}
)

// LabelsFor returns the label set for a locale name ("en" or "pt")
func LabelsFor(locale string) (Labels, bool) {
	switch locale {
	case "", "en":
		return EnglishLabels, true
	case "pt":
		return PortugueseLabels, true
	}
	return Labels{}, false
}

// Label returns the command string for d
func (l Labels) Label(d Direction) string {
	return l[d.ID]
}

// Lookup finds the move for a command string
func (l Labels) Lookup(label string) (Direction, bool) {
	for _, d := range Directions {
		if l[d.ID] == label {
			return d, true
		}
	}
	return Direction{}, false
}
