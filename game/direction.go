package game

// Direction is one of the six compass directions spanning the hex grid's
// three axes.
type Direction int8

const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

// Directions lists all six directions in enumeration order.
var Directions = [6]Direction{NorthEast, East, SouthEast, SouthWest, West, NorthWest}

// directionDeltas maps a direction to its (row, column) step.
var directionDeltas = [6][2]int8{
	{1, 1},   // NorthEast
	{0, 1},   // East
	{-1, 0},  // SouthEast
	{-1, -1}, // SouthWest
	{0, -1},  // West
	{1, 0},   // NorthWest
}

// scanDirections cover one orientation of each of the three axes. The move
// generator walks runs along these only, so no line is enumerated twice.
var scanDirections = [3]Direction{NorthWest, NorthEast, East}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func (d Direction) String() string {
	switch d {
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	}
	return "?"
}
