package qrsvg

import "github.com/popkit/qrsvg/internal/bitset"

// Abbreviated true/false.
const (
	b0 = false
	b1 = true
)

const finderPatternSize = 7

var (
	finderPattern = [][]bool{
		{b1, b1, b1, b1, b1, b1, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b1, b1, b1, b1, b1, b1},
	}

	alignmentPattern = [][]bool{
		{b1, b1, b1, b1, b1},
		{b1, b0, b0, b0, b1},
		{b1, b0, b1, b0, b1},
		{b1, b0, b0, b0, b1},
		{b1, b1, b1, b1, b1},
	}
)

// buildSymbol runs the layout phases in their required order: the
// function patterns and format reservations first, then data
// placement, the mask trial, and finally the format information
// write. It returns the finished symbol and the selected mask.
func buildSymbol(v *qrVersion, data *bitset.Bitset) (*symbol, int) {
	s := newSymbol(v.symbolSize())

	addFinderPatterns(s)
	addAlignmentPatterns(s, v)
	addTimingPatterns(s)
	addDarkModule(s, v)
	reserveFormatAreas(s)
	placeData(s, data)

	mask := chooseMask(s)
	s.applyMask(mask)
	writeFormatInfo(s, mask)

	return s, mask
}

// addFinderPatterns stamps the three corner finder patterns along
// with their one module light separators.
func addFinderPatterns(s *symbol) {
	corners := [][2]int{
		{0, 0},
		{s.size - finderPatternSize, 0},
		{0, s.size - finderPatternSize},
	}

	for _, c := range corners {
		s.set2dPattern(c[0], c[1], finderPattern)

		// Separator: a light border around the finder, clipped to the
		// symbol bounds.
		for y := c[1] - 1; y <= c[1]+finderPatternSize; y++ {
			for x := c[0] - 1; x <= c[0]+finderPatternSize; x++ {
				if x < 0 || y < 0 || x >= s.size || y >= s.size {
					continue
				}

				if !s.isReserved(x, y) {
					s.setReserved(x, y, false)
				}
			}
		}
	}
}

// addAlignmentPatterns stamps a 5x5 alignment pattern at every
// combination of the version's centre coordinates, skipping centres
// that land on a finder pattern.
func addAlignmentPatterns(s *symbol, v *qrVersion) {
	for _, cy := range v.alignmentCenters {
		for _, cx := range v.alignmentCenters {
			if s.isReserved(cx, cy) {
				continue
			}

			s.set2dPattern(cx-2, cy-2, alignmentPattern)
		}
	}
}

// addTimingPatterns draws the alternating timing lines on row 6 and
// column 6, dark at even coordinates.
func addTimingPatterns(s *symbol) {
	for i := finderPatternSize + 1; i < s.size-finderPatternSize-1; i++ {
		v := i%2 == 0

		s.setReserved(i, finderPatternSize-1, v)
		s.setReserved(finderPatternSize-1, i, v)
	}
}

// addDarkModule sets the single always-dark module above the bottom
// left finder pattern.
func addDarkModule(s *symbol, v *qrVersion) {
	s.setReserved(8, 4*v.number+9, true)
}

// reserveFormatAreas marks the format information cells reserved so
// that data placement and masking skip them. The final values are
// written by writeFormatInfo once the mask is known.
func reserveFormatAreas(s *symbol) {
	reserve := func(x, y int) {
		if !s.isReserved(x, y) {
			s.setReserved(x, y, false)
		}
	}

	// Around the top left finder, along row 8 and column 8. Index 6
	// belongs to the timing patterns.
	for i := 0; i <= 8; i++ {
		if i == 6 {
			continue
		}

		reserve(i, 8)
		reserve(8, i)
	}

	// Under the top right finder and beside the bottom left finder.
	for i := 0; i < 8; i++ {
		reserve(s.size-1-i, 8)
	}

	for i := 0; i < 7; i++ {
		reserve(8, s.size-1-i)
	}
}

// placeData writes the interleaved codeword bits into the symbol in
// the zig-zag scan order: column pairs from the right edge to the
// left, alternating vertical direction, skipping the vertical timing
// column. If the bitstream runs out the remaining cells are zero.
func placeData(s *symbol, data *bitset.Bitset) {
	i := 0
	upward := true

	for right := s.size - 1; right >= 1; right -= 2 {
		// The vertical timing column is not part of any column pair.
		if right == 6 {
			right = 5
		}

		for n := 0; n < s.size; n++ {
			y := n
			if upward {
				y = s.size - 1 - n
			}

			for _, x := range [2]int{right, right - 1} {
				if s.isReserved(x, y) {
					continue
				}

				v := false
				if i < data.Len() {
					v = data.At(i)
					i++
				}

				s.set(x, y, v)
			}
		}

		upward = !upward
	}
}

// chooseMask scores all eight mask patterns on scratch copies and
// returns the one with the lowest penalty. Ties go to the lowest
// mask id.
func chooseMask(s *symbol) int {
	best := 0
	bestPenalty := 0

	for mask := 0; mask < 8; mask++ {
		trial := s.clone()
		trial.applyMask(mask)

		if p := trial.penaltyScore(); mask == 0 || p < bestPenalty {
			best = mask
			bestPenalty = p
		}
	}

	return best
}

// writeFormatInfo scatters the 15 bit format codeword for the chosen
// mask into both format regions, in the fixed bit position mapping
// from ISO/IEC 18004.
func writeFormatInfo(s *symbol, mask int) {
	f := formatInfo[mask]

	bit := func(i int) bool {
		return f&(1<<uint(i)) != 0
	}

	// First copy, around the top left finder pattern.
	for i := 0; i <= 5; i++ {
		s.setReserved(8, i, bit(i))
	}

	s.setReserved(8, 7, bit(6))
	s.setReserved(8, 8, bit(7))
	s.setReserved(7, 8, bit(8))

	for i := 9; i <= 14; i++ {
		s.setReserved(14-i, 8, bit(i))
	}

	// Second copy, under the top right finder pattern and beside the
	// bottom left one.
	for i := 0; i <= 7; i++ {
		s.setReserved(s.size-1-i, 8, bit(i))
	}

	for i := 8; i <= 14; i++ {
		s.setReserved(8, s.size-finderPatternSize+i-8, bit(i))
	}
}
