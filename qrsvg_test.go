package qrsvg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyInput(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := New(content)
		require.ErrorIs(t, err, ErrInvalidInput, "%q", content)
	}
}

func TestNewTrimsContent(t *testing.T) {
	code, err := New("  https://example.com\n")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", code.Content)
}

func TestVersionSelection(t *testing.T) {
	tests := []struct {
		content string
		version int
	}{
		{"A", 1},
		{"https://example.com", 2},
		{strings.Repeat("a", 17), 1},
		{strings.Repeat("a", 18), 2},
		{strings.Repeat("a", 134), 6},
	}

	for _, tc := range tests {
		code, err := New(tc.content)

		require.NoError(t, err)
		require.Equal(t, tc.version, code.VersionNumber, "%d bytes", len(tc.content))
	}

	_, err := New(strings.Repeat("a", 135))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestMatrixDimensions(t *testing.T) {
	for _, content := range []string{"A", "https://example.com", strings.Repeat("a", 134)} {
		code, err := New(content)
		require.NoError(t, err)

		size := 4*code.VersionNumber + 17
		matrix := code.Matrix()

		require.Len(t, matrix, size)
		for _, row := range matrix {
			require.Len(t, row, size)
		}
	}
}

func TestStructuralPatterns(t *testing.T) {
	code, err := New("https://example.com")
	require.NoError(t, err)

	s := code.symbol
	size := s.size

	// Finder pattern corners and centres are dark, the inner rings
	// and separators light.
	for _, c := range [][2]int{{0, 0}, {size - 7, 0}, {0, size - 7}} {
		require.True(t, s.get(c[0], c[1]))
		require.True(t, s.get(c[0]+6, c[1]+6))
		require.True(t, s.get(c[0]+3, c[1]+3))
		require.False(t, s.get(c[0]+1, c[1]+1))
	}

	require.False(t, s.get(7, 7), "separator must be light")

	// Timing patterns alternate, dark at even coordinates.
	for i := 8; i < size-8; i++ {
		require.Equal(t, i%2 == 0, s.get(i, 6), "row timing at %d", i)
		require.Equal(t, i%2 == 0, s.get(6, i), "column timing at %d", i)
	}

	require.True(t, s.get(8, size-8), "dark module")
}

func TestDataBitsFillSymbolExactly(t *testing.T) {
	for _, content := range []string{"A", "https://example.com", strings.Repeat("a", 134)} {
		code, err := New(content)
		require.NoError(t, err)

		v := code.version
		nonReserved := 0

		for y := 0; y < code.symbol.size; y++ {
			for x := 0; x < code.symbol.size; x++ {
				if !code.symbol.isReserved(x, y) {
					nonReserved++
				}
			}
		}

		totalBits := (v.numDataCodewords()+v.numBlocks*v.ecCodewordsPerBlock)*8 +
			v.numRemainderBits
		require.Equal(t, totalBits, nonReserved, "version %d", v.number)
	}
}

func TestReservedCellsSurviveMasking(t *testing.T) {
	code, err := New("https://example.com")
	require.NoError(t, err)

	s := code.symbol

	for mask := 0; mask < 8; mask++ {
		trial := s.clone()
		trial.applyMask(mask)

		for y := 0; y < s.size; y++ {
			for x := 0; x < s.size; x++ {
				if s.isReserved(x, y) && s.get(x, y) != trial.get(x, y) {
					t.Fatalf("mask %d altered reserved cell (%d, %d)", mask, x, y)
				}
			}
		}
	}
}

func TestChosenMaskMinimisesPenalty(t *testing.T) {
	const content = "https://example.com"

	v, err := chooseVersion(len(content))
	require.NoError(t, err)

	encoded, err := encodePayload(v, []byte(content))
	require.NoError(t, err)

	// Rebuild the unmasked symbol and score all eight candidates.
	s := newSymbol(v.symbolSize())
	addFinderPatterns(s)
	addAlignmentPatterns(s, v)
	addTimingPatterns(s)
	addDarkModule(s, v)
	reserveFormatAreas(s)
	placeData(s, encoded)

	var penalties [8]int
	for mask := range penalties {
		trial := s.clone()
		trial.applyMask(mask)
		penalties[mask] = trial.penaltyScore()
	}

	chosen := chooseMask(s)

	for mask, p := range penalties {
		require.GreaterOrEqual(t, p, penalties[chosen], "mask %d", mask)
	}

	// Ties break towards the lowest mask id.
	for mask := 0; mask < chosen; mask++ {
		require.Greater(t, penalties[mask], penalties[chosen])
	}

	code, err := New(content)
	require.NoError(t, err)
	require.Equal(t, chosen, code.Mask)
}

func TestDarkThemeSwapsColoursOnly(t *testing.T) {
	code, err := New("https://example.com")
	require.NoError(t, err)

	light := string(code.SVG(false))
	dark := string(code.SVG(true))

	require.Equal(t, strings.Count(light, "<rect"), strings.Count(dark, "<rect"))

	swapped := strings.ReplaceAll(light, darkColor, "#swap")
	swapped = strings.ReplaceAll(swapped, lightColor, darkColor)
	swapped = strings.ReplaceAll(swapped, "#swap", lightColor)

	require.Equal(t, dark, swapped)
}

func TestSVGDocument(t *testing.T) {
	code, err := New("A")
	require.NoError(t, err)
	require.Equal(t, 1, code.VersionNumber)

	code.ModuleSize = 10
	svg := string(code.SVG(false))

	// 21 modules of 10px plus a 40px quiet zone on each side.
	require.Contains(t, svg, `width="290"`)
	require.Contains(t, svg, `height="290"`)
	require.Contains(t, svg, `fill="`+lightColor+`"`)
	require.Contains(t, svg, `fill="`+darkColor+`"`)

	numDark := 0
	for _, row := range code.Matrix() {
		for _, v := range row {
			if v {
				numDark++
			}
		}
	}

	// One rectangle per dark module, plus the background.
	require.Equal(t, numDark+1, strings.Count(svg, "<rect"))
}

func TestEncodeHelper(t *testing.T) {
	svg, err := Encode("https://example.com", false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(svg), "<?xml"))

	_, err = Encode("", false)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBitmapIncludesQuietZone(t *testing.T) {
	code, err := New("A")
	require.NoError(t, err)

	bitmap := code.Bitmap()
	require.Len(t, bitmap, 21+8)

	for i := range bitmap {
		require.False(t, bitmap[0][i])
		require.False(t, bitmap[i][0])
		require.False(t, bitmap[len(bitmap)-1][i])
		require.False(t, bitmap[i][len(bitmap)-1])
	}

	// The top left finder corner sits just inside the quiet zone.
	require.True(t, bitmap[4][4])
}

func TestStringPreview(t *testing.T) {
	code, err := New("A")
	require.NoError(t, err)

	preview := code.String()

	// 29 bitmap rows rendered two per line.
	require.Equal(t, 15, strings.Count(preview, "\n"))
	require.Contains(t, preview, "█")
}

func TestMatrixIsACopy(t *testing.T) {
	code, err := New("A")
	require.NoError(t, err)

	matrix := code.Matrix()
	matrix[0][0] = !matrix[0][0]

	require.NotEqual(t, matrix[0][0], code.Matrix()[0][0])
}
