package qrsvg

// symbol is the module grid of a QR Code under construction.
//
// module[y][x] is the value at column x, row y. The reserved grid has
// the same shape and marks function pattern and format cells, which
// data placement and masking must never touch.
type symbol struct {
	size int

	module   [][]bool
	reserved [][]bool
}

func newSymbol(size int) *symbol {
	s := &symbol{
		size:     size,
		module:   make([][]bool, size),
		reserved: make([][]bool, size),
	}

	for i := range s.module {
		s.module[i] = make([]bool, size)
		s.reserved[i] = make([]bool, size)
	}

	return s
}

// get returns the module value at (x, y).
func (s *symbol) get(x, y int) bool {
	return s.module[y][x]
}

// set writes the module at (x, y) without reserving it.
func (s *symbol) set(x, y int, v bool) {
	s.module[y][x] = v
}

// setReserved writes the module at (x, y) and marks it reserved.
func (s *symbol) setReserved(x, y int, v bool) {
	s.module[y][x] = v
	s.reserved[y][x] = true
}

// isReserved reports whether (x, y) belongs to a function pattern or
// format area.
func (s *symbol) isReserved(x, y int) bool {
	return s.reserved[y][x]
}

// set2dPattern stamps a 2D pattern with its top left corner at
// (x, y), marking every touched cell reserved.
func (s *symbol) set2dPattern(x, y int, pattern [][]bool) {
	for j, row := range pattern {
		for i, v := range row {
			s.setReserved(x+i, y+j, v)
		}
	}
}

// clone returns a scratch copy for mask trials. Module values are
// copied; the reserved grid is shared, since masking never writes it.
func (s *symbol) clone() *symbol {
	c := &symbol{
		size:     s.size,
		module:   make([][]bool, s.size),
		reserved: s.reserved,
	}

	for i := range s.module {
		c.module[i] = append([]bool(nil), s.module[i]...)
	}

	return c
}

// maskCondition reports whether the mask pattern inverts the module
// at column x, row y.
func maskCondition(mask, x, y int) bool {
	switch mask {
	case 0:
		return (y+x)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (y+x)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return (y*x)%2+(y*x)%3 == 0
	case 6:
		return ((y*x)%2+(y*x)%3)%2 == 0
	case 7:
		return ((y+x)%2+(y*x)%3)%2 == 0
	}

	return false
}

// applyMask XORs the mask pattern into every non-reserved module.
func (s *symbol) applyMask(mask int) {
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.reserved[y][x] {
				continue
			}

			if maskCondition(mask, x, y) {
				s.module[y][x] = !s.module[y][x]
			}
		}
	}
}

// Penalty weights specified by ISO/IEC 18004:2006.
const (
	penaltyWeight1 = 3
	penaltyWeight2 = 3
	penaltyWeight3 = 40
	penaltyWeight4 = 10
)

// penaltyScore returns the sum of the four penalty rules.
func (s *symbol) penaltyScore() int {
	return s.penalty1() + s.penalty2() + s.penalty3() + s.penalty4()
}

// penalty1 scores runs of five or more same-value modules in a row or
// column: 3 points for a run of five, plus one point per extra
// module.
func (s *symbol) penalty1() int {
	penalty := 0

	scoreRun := func(count int) {
		if count >= 5 {
			penalty += penaltyWeight1 + (count - 5)
		}
	}

	for y := 0; y < s.size; y++ {
		lastValue := s.get(0, y)
		count := 1

		for x := 1; x < s.size; x++ {
			if v := s.get(x, y); v != lastValue {
				scoreRun(count)
				lastValue = v
				count = 1
			} else {
				count++
			}
		}

		scoreRun(count)
	}

	for x := 0; x < s.size; x++ {
		lastValue := s.get(x, 0)
		count := 1

		for y := 1; y < s.size; y++ {
			if v := s.get(x, y); v != lastValue {
				scoreRun(count)
				lastValue = v
				count = 1
			} else {
				count++
			}
		}

		scoreRun(count)
	}

	return penalty
}

// penalty2 scores every 2x2 block of identical modules.
func (s *symbol) penalty2() int {
	penalty := 0

	for y := 1; y < s.size; y++ {
		for x := 1; x < s.size; x++ {
			v := s.get(x, y)

			if v == s.get(x-1, y) && v == s.get(x, y-1) && v == s.get(x-1, y-1) {
				penalty += penaltyWeight2
			}
		}
	}

	return penalty
}

// Finder-like 1:1:3:1:1 patterns with a four module light run on one
// side, scored by penalty rule 3.
var penalty3Patterns = [2][11]bool{
	{true, false, true, true, true, false, true, false, false, false, false},
	{false, false, false, false, true, false, true, true, true, false, true},
}

// penalty3 scores every 11 module row or column window matching a
// finder-like pattern.
func (s *symbol) penalty3() int {
	penalty := 0

	match := func(get func(int) bool, offset int) bool {
		for _, pattern := range &penalty3Patterns {
			matched := true

			for i, v := range pattern {
				if get(offset+i) != v {
					matched = false
					break
				}
			}

			if matched {
				return true
			}
		}

		return false
	}

	for y := 0; y < s.size; y++ {
		row := func(x int) bool { return s.get(x, y) }

		for x := 0; x+11 <= s.size; x++ {
			if match(row, x) {
				penalty += penaltyWeight3
			}
		}
	}

	for x := 0; x < s.size; x++ {
		column := func(y int) bool { return s.get(x, y) }

		for y := 0; y+11 <= s.size; y++ {
			if match(column, y) {
				penalty += penaltyWeight3
			}
		}
	}

	return penalty
}

// penalty4 scores the deviation of the dark module percentage from
// 50%, using the nearest multiples of five that bracket it.
func (s *symbol) penalty4() int {
	numModules := s.size * s.size
	numDarkModules := 0

	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.get(x, y) {
				numDarkModules++
			}
		}
	}

	percent := numDarkModules * 100 / numModules
	prev := percent - percent%5
	next := prev + 5

	deviation := abs(prev - 50)
	if d := abs(next - 50); d < deviation {
		deviation = d
	}

	return penaltyWeight4 * deviation / 5
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
