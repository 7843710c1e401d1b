package game

// Center is the middle cell of the board.
const Center = E5

// neighborTable holds the precomputed 61x6 adjacency of the board. Neighbor
// lookup is the single hottest operation in move generation, so the table is
// built once at process start from the coordinate rule and never recomputed.
var neighborTable = buildNeighborTable()

func buildNeighborTable() [numSpaces][6]Space {
	var t [numSpaces][6]Space
	for _, s := range spaces.all {
		for _, d := range Directions {
			r := int(spaces.row[s]) + int(directionDeltas[d][0])
			c := int(spaces.col[s]) + int(directionDeltas[d][1])
			if r < 0 || r > 8 || c < 1 || c > 9 {
				t[s][d] = Off
				continue
			}
			t[s][d] = spaces.at[r][c]
		}
	}
	return t
}

// Neighbor returns the adjacent space in the given direction, or Off when the
// step leaves the board. The neighbor of Off is Off in every direction.
func Neighbor(s Space, d Direction) Space {
	if s == Off {
		return Off
	}
	return neighborTable[s][d]
}

// LineToEdge returns the maximal straight line of spaces from a starting
// space to the edge of the board, starting space included.
func LineToEdge(from Space, d Direction) []Space {
	if from == Off {
		panic("game: LineToEdge called with Off")
	}
	line := make([]Space, 0, 9)
	for s := from; s != Off; s = neighborTable[s][d] {
		line = append(line, s)
	}
	return line
}

// LineFromTo returns the inclusive straight path from a to b together with
// its direction. ok is false when the spaces are identical or no straight
// line connects them; that is a normal result, not an error.
func LineFromTo(a, b Space) (line []Space, d Direction, ok bool) {
	if a == Off || b == Off {
		panic("game: LineFromTo called with Off")
	}
	for _, dir := range Directions {
		line := make([]Space, 1, 9)
		line[0] = a
		for s := neighborTable[a][dir]; s != Off; s = neighborTable[s][dir] {
			line = append(line, s)
			if s == b {
				return line, dir, true
			}
		}
	}
	return nil, 0, false
}

// Distance returns the number of steps separating two spaces. Pairs sharing a
// row, column or diagonal are a direct difference; any other pair is routed
// through the corner point that is row-aligned with the upper space and
// column- or diagonal-aligned with the lower one.
func Distance(a, b Space) int {
	if a == Off || b == Off {
		panic("game: Distance called with Off")
	}
	return coordDistance(
		int(spaces.row[a]), int(spaces.col[a]),
		int(spaces.row[b]), int(spaces.col[b]),
	)
}

// DistanceFromCenter returns the distance of a space from the center cell.
func DistanceFromCenter(s Space) int {
	return Distance(s, Center)
}

func coordDistance(r1, c1, r2, c2 int) int {
	switch {
	case r1 == r2:
		return absInt(c1 - c2)
	case c1 == c2:
		return absInt(r1 - r2)
	case r1-r2 == c1-c2:
		return absInt(r1 - r2)
	}
	rt, ct, rb, cb := r1, c1, r2, c2
	if rt < rb {
		rt, ct, rb, cb = r2, c2, r1, c1
	}
	// The corner may fall outside the board; the recursion only needs its
	// coordinates, both legs from it are axis-aligned.
	cc := cb
	if ct >= cb {
		cc = cb + (rt - rb)
	}
	return coordDistance(r1, c1, rt, cc) + coordDistance(rt, cc, r2, c2)
}
