package game

import "fmt"

// A Move mutates a Game and can undo itself exactly. The two implementations
// form a closed set: inline moves along a line's own axis and broadside moves
// sideways. Moves are transient; one instance is applied against exactly one
// game at a time and must be undone in reverse order of application.
type Move interface {
	// apply validates the move against the rules and, when legal, mutates
	// the board, recording every change for undo. Legality is checked in
	// full before any mutation.
	apply(g *Game) error
	// undo restores every recorded change and the previous position hash,
	// returning the move to its unapplied state.
	undo(g *Game)
	fmt.Stringer
}

type moveStage int8

const (
	unapplied moveStage = iota
	applied
)

type changeEntry struct {
	space  Space
	marble Marble
}

// changeLog records (space, previous marble) pairs while a move mutates the
// board, so undo costs only the cells touched, not a board copy.
type changeLog struct {
	entries  []changeEntry
	prevHash uint64
	stage    moveStage
}

func (l *changeLog) begin(b *Board) {
	if l.stage != unapplied {
		panic("game: move is already applied")
	}
	l.prevHash = b.hash
}

func (l *changeLog) save(b *Board, s Space) {
	l.entries = append(l.entries, changeEntry{space: s, marble: b.Get(s)})
}

func (l *changeLog) revert(b *Board) {
	if l.stage != applied {
		panic("game: move is not applied")
	}
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		b.Set(e.space, e.marble)
	}
	b.hash = l.prevHash
	l.entries = l.entries[:0]
	l.stage = unapplied
}

// InlineMove moves a line of up to three of the mover's marbles one step
// along the line's own axis. It is identified by the trailing marble of the
// line (the "caboose") and is the only move that can push opposing marbles
// (a "sumito" push, legal only when the pushed line is strictly shorter).
type InlineMove struct {
	Caboose   Space
	Direction Direction
	log       changeLog
}

func (m *InlineMove) String() string {
	return fmt.Sprintf("%v %v", m.Caboose, m.Direction)
}

func (m *InlineMove) apply(g *Game) error {
	m.log.begin(g.board)
	line, ownN, oppN, err := g.checkInline(m.Caboose, m.Direction)
	if err != nil {
		return err
	}
	if oppN > 0 {
		pushTo := Neighbor(line[ownN+oppN-1], m.Direction)
		// pushTo == Off means the pushed marble leaves the board
		if pushTo != Off {
			m.log.save(g.board, pushTo)
			g.board.Set(pushTo, g.turn.Opponent().Marble())
		}
	}
	m.log.save(g.board, line[ownN])
	g.board.Set(line[ownN], g.turn.Marble())
	m.log.save(g.board, m.Caboose)
	g.board.Set(m.Caboose, Blank)
	m.log.stage = applied
	return nil
}

func (m *InlineMove) undo(g *Game) {
	m.log.revert(g.board)
}

// checkInline runs every inline legality rule without touching the board. It
// returns the line to the edge and the sizes of the leading own and opposing
// runs for the apply step.
func (g *Game) checkInline(caboose Space, d Direction) (line []Space, ownN, oppN int, err error) {
	if g.board.Get(caboose) != g.turn.Marble() {
		return nil, 0, 0, illegalMove("only own marbles may be moved")
	}
	line = LineToEdge(caboose, d)
	ownN, oppN = g.inlineRuns(line)
	if ownN > 3 {
		return nil, 0, 0, illegalMove("only lines of up to three marbles may be moved")
	}
	if ownN == len(line) {
		return nil, 0, 0, illegalMove("own marbles must not be moved off the board")
	}
	if oppN > 0 {
		if oppN >= ownN {
			return nil, 0, 0, illegalMove("only lines shorter than the player's line can be pushed")
		}
		pushTo := Neighbor(line[ownN+oppN-1], d)
		if pushTo != Off && g.board.Get(pushTo) == g.turn.Marble() {
			return nil, 0, 0, illegalMove("marbles must be pushed to an empty space or off the board")
		}
	}
	return line, ownN, oppN, nil
}

// inlineRuns counts the leading run of the mover's marbles on the line and
// the opposing run directly behind it. Only these two runs are relevant to
// inline legality.
func (g *Game) inlineRuns(line []Space) (own, opp int) {
	mover := g.turn.Marble()
	opponent := g.turn.Opponent().Marble()
	for own < len(line) && g.board.Get(line[own]) == mover {
		own++
	}
	for own+opp < len(line) && g.board.Get(line[own+opp]) == opponent {
		opp++
	}
	return own, opp
}

// BroadsideMove shifts a line of two or three of the mover's marbles sideways
// by one step. It is identified by the line's two outermost spaces and a
// direction not parallel to the line. Every destination must be an empty
// board cell; broadside moves can never push.
type BroadsideMove struct {
	First     Space
	Second    Space
	Direction Direction
	log       changeLog
}

func (m *BroadsideMove) String() string {
	return fmt.Sprintf("%v %v %v", m.First, m.Second, m.Direction)
}

func (m *BroadsideMove) apply(g *Game) error {
	m.log.begin(g.board)
	marbles, err := g.checkBroadside(m.First, m.Second, m.Direction)
	if err != nil {
		return err
	}
	mover := g.turn.Marble()
	for _, s := range marbles {
		m.log.save(g.board, s)
		g.board.Set(s, Blank)
		dest := Neighbor(s, m.Direction)
		m.log.save(g.board, dest)
		g.board.Set(dest, mover)
	}
	m.log.stage = applied
	return nil
}

func (m *BroadsideMove) undo(g *Game) {
	m.log.revert(g.board)
}

// checkBroadside runs every broadside legality rule without touching the
// board and returns the spaces of the line to be shifted.
func (g *Game) checkBroadside(first, second Space, d Direction) ([]Space, error) {
	if first == Off || second == Off {
		return nil, illegalMove("boundary spaces must be on the board")
	}
	marbles, lineDir, ok := LineFromTo(first, second)
	if !ok || (len(marbles) != 2 && len(marbles) != 3) {
		return nil, illegalMove("only two or three neighboring marbles may be moved broadside")
	}
	_, reverseDir, _ := LineFromTo(second, first)
	if d == lineDir || d == reverseDir {
		return nil, illegalMove("the direction of a broadside move must be sideways")
	}
	for _, s := range marbles {
		if g.board.Get(s) != g.turn.Marble() {
			return nil, illegalMove("only own marbles may be moved")
		}
		dest := Neighbor(s, d)
		if dest == Off || g.board.Get(dest) != Blank {
			return nil, illegalMove("broadside moves may only go to empty spaces")
		}
	}
	return marbles, nil
}
