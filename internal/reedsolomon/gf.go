package reedsolomon

// GF(2^8) arithmetic with primitive polynomial x^8+x^4+x^3+x^2+1.
const gfPrimitive = 0x11d

// Exponent and logarithm tables for the field. The exponent table is
// doubled so that exp[log[a]+log[b]] never needs a modulo.
var (
	gfExp [511]byte
	gfLog [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)

		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}

	for i := 255; i < 511; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// mul returns the product of a and b in the field.
func mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	return gfExp[int(gfLog[a])+int(gfLog[b])]
}
