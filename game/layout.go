package game

// Layout is a fixed starting arrangement of the board, rows ordered top (I)
// to bottom (A).
type Layout [][]Marble

// shorthand for the layout literals below
const (
	b = Black
	w = White
	e = Blank
)

// DefaultLayout is the standard starting position: both players' fourteen
// marbles facing each other across the board.
var DefaultLayout = Layout{
	{w, w, w, w, w},
	{w, w, w, w, w, w},
	{e, e, w, w, w, e, e},
	{e, e, e, e, e, e, e, e},
	{e, e, e, e, e, e, e, e, e},
	{e, e, e, e, e, e, e, e},
	{e, e, b, b, b, e, e},
	{b, b, b, b, b, b},
	{b, b, b, b, b},
}

// GermanDaisyLayout places each player's marbles in two flower-shaped groups
// touching the side edges.
var GermanDaisyLayout = Layout{
	{e, e, e, e, e},
	{w, w, e, e, b, b},
	{w, w, w, e, b, b, b},
	{e, w, w, e, e, b, b, e},
	{e, e, e, e, e, e, e, e, e},
	{e, b, b, e, e, w, w, e},
	{b, b, b, e, w, w, w},
	{b, b, e, e, w, w},
	{e, e, e, e, e},
}

// BelgianDaisyLayout places the flower-shaped groups in the corners.
var BelgianDaisyLayout = Layout{
	{w, w, e, b, b},
	{w, w, w, b, b, b},
	{e, w, w, e, b, b, e},
	{e, e, e, e, e, e, e, e},
	{e, e, e, e, e, e, e, e, e},
	{e, e, e, e, e, e, e, e},
	{e, b, b, e, w, w, e},
	{b, b, b, w, w, w},
	{b, b, e, w, w},
}
