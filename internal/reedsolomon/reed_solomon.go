// Package reedsolomon computes QR Code error correction codewords
// over GF(2^8).
package reedsolomon

// Encode returns exactly numECCodewords error correction codewords
// for the given data codewords.
//
// The data codewords are treated as the coefficients of a polynomial,
// highest degree first. The error correction codewords are the
// remainder of dividing data(x)*x^n by the degree-n generator
// polynomial, computed with an n-wide running remainder register.
func Encode(data []byte, numECCodewords int) []byte {
	gen := generator(numECCodewords)

	ecc := make([]byte, numECCodewords)

	for _, d := range data {
		factor := d ^ ecc[0]

		copy(ecc, ecc[1:])
		ecc[numECCodewords-1] = 0

		// The generator is monic, so its leading coefficient is
		// skipped.
		for i, g := range gen[1:] {
			ecc[i] ^= mul(g, factor)
		}
	}

	return ecc
}

// generator returns the degree-n generator polynomial, the product of
// (x - α^i) for i in [0, n). Coefficients are highest degree first.
func generator(degree int) []byte {
	g := []byte{1}

	for i := 0; i < degree; i++ {
		g = polyMul(g, []byte{1, gfExp[i]})
	}

	return g
}

func polyMul(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b)-1)

	for i, av := range a {
		for j, bv := range b {
			result[i+j] ^= mul(av, bv)
		}
	}

	return result
}
