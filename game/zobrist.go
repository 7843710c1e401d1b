package game

// zobristKeys holds a 64-bit key for every (color, space) pair. The fixed
// splitmix64 seed keeps position hashes reproducible across runs.
var zobristKeys = buildZobristKeys()

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func buildZobristKeys() [2][numSpaces]uint64 {
	rng := splitmix64{state: 0x9e3779b97f4a7c15}
	var keys [2][numSpaces]uint64
	for color := range keys {
		for i := range keys[color] {
			keys[color][i] = rng.next()
		}
	}
	return keys
}

// zobristKey returns the hash contribution of a marble on a space. Blank
// cells contribute nothing.
func zobristKey(s Space, m Marble) uint64 {
	switch m {
	case Black:
		return zobristKeys[0][s]
	case White:
		return zobristKeys[1][s]
	}
	return 0
}

// computeHash recomputes the position hash from the full board contents.
// Board.Set keeps its running hash identical to this; the full recompute
// exists for initialization and verification.
func computeHash(b *Board) uint64 {
	var h uint64
	for _, s := range spaces.all {
		h ^= zobristKey(s, b.Get(s))
	}
	return h
}
