package game

// Marble is the content of a single space: empty, black or white.
type Marble int8

const (
	Blank Marble = 0
	Black Marble = 1
	White Marble = -1
)

func (m Marble) String() string {
	switch m {
	case Black:
		return "@"
	case White:
		return "O"
	}
	return "·"
}

// Player identifies one of the two sides. It maps bijectively to the two
// non-empty Marble values.
type Player int8

const (
	PlayerBlack Player = Player(Black)
	PlayerWhite Player = Player(White)
)

// Marble returns the marble color belonging to the player.
func (p Player) Marble() Marble {
	return Marble(p)
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	if p == PlayerBlack {
		return "black"
	}
	return "white"
}
