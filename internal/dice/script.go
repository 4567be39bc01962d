package dice

import "fmt"

// Script is a deterministic Source that replays queued values.
// Ints and Floats are consumed in order; Perms too, falling back to the
// identity permutation when empty. Running out of Ints or Floats panics so
// tests notice an unexpected draw.
type Script struct {
	Ints   []int
	Floats []float64
	Perms  [][]int
}

// Intn returns the next queued int, which must lie in [0, n).
func (s *Script) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	if len(s.Ints) == 0 {
		panic("dice: script has no ints left")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dice: scripted int %d out of range [0,%d)", v, n))
	}
	return v
}

// Float64 returns the next queued float.
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("dice: script has no floats left")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Perm returns the next queued permutation, or the identity.
func (s *Script) Perm(n int) []int {
	if len(s.Perms) > 0 {
		p := s.Perms[0]
		s.Perms = s.Perms[1:]
		return p
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Exhausted reports whether every queued int and float was consumed.
func (s *Script) Exhausted() bool {
	return len(s.Ints) == 0 && len(s.Floats) == 0
}

var _ Source = (*Script)(nil)
