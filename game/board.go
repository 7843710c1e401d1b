package game

import "strings"

// rowLengths of the jagged grid, top row I first.
var rowLengths = [9]int{5, 6, 7, 8, 9, 8, 7, 6, 5}

// Board is the mutable grid of cell contents plus a running position hash.
// It is stored as nine jagged rows, top row I first, matching the layout
// literals.
type Board struct {
	rows [9][]Marble
	hash uint64
}

// NewBoard creates a board from a starting layout.
func NewBoard(layout Layout) *Board {
	if len(layout) != 9 {
		panic("game: layout must have 9 rows")
	}
	b := &Board{}
	for i, row := range layout {
		if len(row) != rowLengths[i] {
			panic("game: layout row has the wrong length")
		}
		b.rows[i] = append([]Marble(nil), row...)
	}
	b.hash = computeHash(b)
	return b
}

// boardIndices maps a space to its grid position. Rows F to I don't start at
// column 1, hence the offset.
func boardIndices(s Space) (int, int) {
	x := 8 - int(spaces.row[s])
	y := int(spaces.col[s]) - 1
	if x <= 3 {
		y -= 4 - x
	}
	return x, y
}

// Get returns the marble at a space. Passing Off is a caller bug and panics.
func (b *Board) Get(s Space) Marble {
	if s == Off {
		panic("game: cannot get the state of Off")
	}
	x, y := boardIndices(s)
	return b.rows[x][y]
}

// Set places a marble on a space, keeping the position hash in sync.
// Passing Off is a caller bug and panics.
func (b *Board) Set(s Space, m Marble) {
	if s == Off {
		panic("game: cannot set the state of Off")
	}
	x, y := boardIndices(s)
	b.hash ^= zobristKey(s, b.rows[x][y])
	b.rows[x][y] = m
	b.hash ^= zobristKey(s, m)
}

// Score counts the marbles still on the board, black first.
func (b *Board) Score() (black, white int) {
	for _, row := range b.rows {
		for _, m := range row {
			switch m {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// CountNeighbors classifies the six neighbors of a space relative to the
// marble sitting on it, returning the number of friendly and enemy marbles.
func (b *Board) CountNeighbors(s Space) (friendly, enemy int) {
	m := b.Get(s)
	for _, d := range Directions {
		n := neighborTable[s][d]
		if n == Off {
			continue
		}
		nm := b.Get(n)
		if nm == Blank {
			continue
		}
		if nm == m {
			friendly++
		} else {
			enemy++
		}
	}
	return friendly, enemy
}

// Hash returns the position hash of the current board contents.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Copy returns an independent copy of the board. Search workers exploring the
// same session concurrently must each mutate their own copy.
func (b *Board) Copy() *Board {
	c := &Board{hash: b.hash}
	for i, row := range b.rows {
		c.rows[i] = append([]Marble(nil), row...)
	}
	return c
}

// Rows returns a row-major dump of the board contents, top row I first. The
// format is a contract between the core and a rendering collaborator.
func (b *Board) Rows() [][]Marble {
	out := make([][]Marble, 9)
	for i, row := range b.rows {
		out[i] = append([]Marble(nil), row...)
	}
	return out
}

func (b *Board) String() string {
	labels := [9]string{"    I ", "   H ", "  G ", " F ", "E ", " D ", "  C ", "   B ", "    A "}
	suffixes := [9]string{"", "", "", "", "", " 9", " 8", " 7", " 6"}
	var sb strings.Builder
	for i, row := range b.rows {
		sb.WriteString(labels[i])
		for j, m := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.String())
		}
		sb.WriteString(suffixes[i])
		sb.WriteByte('\n')
	}
	sb.WriteString("       1 2 3 4 5")
	return sb.String()
}
