package game

// Weights configures the positional adjustment term of the evaluation. There
// are no built-in defaults; callers supply every weight.
type Weights struct {
	Threes   float64 // reward per three-marble line
	Isolated float64 // penalty per marble with only enemy neighbors
	Center   float64 // penalty on the average distance from the center
}

// materialWeight dominates every positional term, so the search always
// prefers winning a marble over positional gains.
const materialWeight = 150

// losingScore is the marble count at which a player has lost the game.
const losingScore = 8

// Winner returns the winning player once a side is down to eight marbles.
func Winner(black, white int) (Player, bool) {
	switch {
	case black == losingScore:
		return PlayerWhite, true
	case white == losingScore:
		return PlayerBlack, true
	}
	return 0, false
}

// Evaluate scores the position from black's perspective: the material
// difference weighted heavily, plus a positional adjustment. The adjustment
// is memoized per position hash so transposing search paths recompute it only
// once per distinct position.
func (g *Game) Evaluate() float64 {
	black, white := g.board.Score()
	material := float64((black - white) * materialWeight)
	adjustment, ok := g.heuristics[g.board.hash]
	if !ok {
		adjustment = g.adjustment(PlayerBlack) - g.adjustment(PlayerWhite)
		g.heuristics[g.board.hash] = adjustment
	}
	return material + adjustment
}

// HeuristicCache exposes the session's position-to-adjustment table. Any
// persistence of the table across runs is the integrator's concern.
func (g *Game) HeuristicCache() map[uint64]float64 {
	return g.heuristics
}

// adjustment blends cohesion (three-marble lines), isolation and centrality
// for one color.
func (g *Game) adjustment(p Player) float64 {
	marble := p.Marble()
	total := 0
	centerDistance := 0
	isolated := 0
	for _, s := range spaces.all {
		if g.board.Get(s) != marble {
			continue
		}
		total++
		centerDistance += DistanceFromCenter(s)
		if g.isIsolated(s) {
			isolated++
		}
	}
	if total == 0 {
		// a color without marbles lost long before this point
		return 0
	}
	return float64(g.countThrees(p))*g.weights.Threes -
		float64(isolated)*g.weights.Isolated -
		float64(centerDistance)/float64(total)*g.weights.Center
}

// isIsolated reports a marble with no friendly neighbor and at least one
// enemy neighbor.
func (g *Game) isIsolated(s Space) bool {
	friendly, enemy := g.board.CountNeighbors(s)
	return friendly == 0 && enemy >= 1
}

// countThrees counts the player's three-marble lines, each once.
func (g *Game) countThrees(p Player) int {
	count := 0
	for _, run := range g.marbleRuns(p) {
		if run.first != run.last && Distance(run.first, run.last) == 2 {
			count++
		}
	}
	return count
}
