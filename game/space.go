package game

// Space identifies one of the 61 cells of the hexagonal board. Rows are
// lettered A (bottom) to I (top), columns numbered 1 to 9:
//
//	    I · · · · ·
//	   H · · · · · ·
//	  G · · · · · · ·
//	 F · · · · · · · ·
//	E · · · · · · · · ·
//	 D · · · · · · · · 9
//	  C · · · · · · · 8
//	   B · · · · · · 7
//	    A · · · · · 6
//	       1 2 3 4 5
type Space int8

// Off represents everything outside the board, e.g. where a marble ends up
// after being pushed over the edge. Off must never be passed to a board
// accessor.
const Off Space = -1

const (
	A1 Space = iota
	A2
	A3
	A4
	A5
	B1
	B2
	B3
	B4
	B5
	B6
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	E1
	E2
	E3
	E4
	E5
	E6
	E7
	E8
	E9
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	G3
	G4
	G5
	G6
	G7
	G8
	G9
	H4
	H5
	H6
	H7
	H8
	H9
	I5
	I6
	I7
	I8
	I9
)

const numSpaces = 61

type spaceTable struct {
	all   [numSpaces]Space
	row   [numSpaces]int8    // 0 for row A up to 8 for row I
	col   [numSpaces]int8    // column digit, 1 to 9
	at    [9][10]Space       // (row, column) to Space, Off where no cell exists
	names [numSpaces]string
}

var spaces = buildSpaceTable()

// validCell is the shape rule of the hexagon: row r (0 for A) holds the
// columns max(1, r-3) through min(9, r+5).
func validCell(row, col int) bool {
	return col >= maxInt(1, row-3) && col <= minInt(9, row+5)
}

func buildSpaceTable() spaceTable {
	var t spaceTable
	for r := range t.at {
		for c := range t.at[r] {
			t.at[r][c] = Off
		}
	}
	s := Space(0)
	for r := 0; r < 9; r++ {
		for c := 1; c <= 9; c++ {
			if !validCell(r, c) {
				continue
			}
			t.all[s] = s
			t.row[s] = int8(r)
			t.col[s] = int8(c)
			t.at[r][c] = s
			t.names[s] = string(rune('A'+r)) + string(rune('0'+c))
			s++
		}
	}
	return t
}

// AllSpaces returns every on-board space in scan order, A1 through I9.
func AllSpaces() []Space {
	return spaces.all[:]
}

func (s Space) String() string {
	if s == Off {
		return "OFF"
	}
	return spaces.names[s]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
