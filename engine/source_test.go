package engine

// fixedSource is a deterministic RandomSource that replays scripted rolls
// Float64 cycles through floats, IntN through ints (reduced modulo n)
type fixedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *fixedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 1
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *fixedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}
