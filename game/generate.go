package game

// marbleRun is a straight line of one to three same-colored marbles,
// identified by its two outermost spaces. A single marble has first == last.
type marbleRun struct {
	first, last Space
}

// marbleRuns returns every run of one to three of the player's marbles. Runs
// of two and three are scanned along one orientation of each axis only, so
// each appears exactly once.
func (g *Game) marbleRuns(p Player) []marbleRun {
	marble := p.Marble()
	var runs []marbleRun
	for _, s := range spaces.all {
		if g.board.Get(s) != marble {
			continue
		}
		runs = append(runs, marbleRun{first: s, last: s})
		for _, d := range scanDirections {
			n1 := neighborTable[s][d]
			if n1 == Off || g.board.Get(n1) != marble {
				continue
			}
			runs = append(runs, marbleRun{first: s, last: n1})
			n2 := neighborTable[n1][d]
			if n2 == Off || g.board.Get(n2) != marble {
				continue
			}
			runs = append(runs, marbleRun{first: s, last: n2})
		}
	}
	return runs
}

// LegalMoves enumerates every legal move for the player to move. The order is
// deterministic (board scan order times direction order) but carries no
// significance; callers must not rely on it being best first.
func (g *Game) LegalMoves() []Move {
	var moves []Move
	for _, run := range g.marbleRuns(g.turn) {
		for _, d := range Directions {
			if run.first == run.last {
				if _, _, _, err := g.checkInline(run.first, d); err == nil {
					moves = append(moves, &InlineMove{Caboose: run.first, Direction: d})
				}
			} else {
				if _, err := g.checkBroadside(run.first, run.last, d); err == nil {
					moves = append(moves, &BroadsideMove{First: run.first, Second: run.last, Direction: d})
				}
			}
		}
	}
	return moves
}
