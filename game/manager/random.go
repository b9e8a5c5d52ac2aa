package manager

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the only source of randomness used by the managers.
type Random interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRandom returns a seeded generator. A zero seed picks one from the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// SequenceRandom replays a fixed list of values, each reduced modulo n.
// Once the list is exhausted it starts over.
type SequenceRandom struct {
	Values []int
	pos    int
}

func (s *SequenceRandom) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
