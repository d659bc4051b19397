package qrsvg

import (
	"fmt"

	"github.com/popkit/qrsvg/internal/bitset"
	"github.com/popkit/qrsvg/internal/reedsolomon"
)

// byteModeIndicator is the 4 bit mode indicator for byte mode.
const byteModeIndicator = 0b0100

// Pad codewords, appended alternately until the data codeword
// capacity is reached.
var padCodewords = [2]byte{0xec, 0x11}

// encodePayload converts the raw data bytes into the final
// transmitted bit sequence for the chosen version: the padded
// byte mode bitstream, split into blocks, each block extended with
// its error correction codewords, the blocks interleaved, and the
// version's remainder bits appended.
func encodePayload(v *qrVersion, data []byte) (*bitset.Bitset, error) {
	codewords, err := buildBitstream(v, data)
	if err != nil {
		return nil, err
	}

	return interleaveBlocks(v, codewords), nil
}

// buildBitstream returns the complete data codeword sequence for the
// payload: mode indicator, character count, data bytes, terminator,
// and padding up to the version's data capacity.
//
// Version selection works on the byte count alone, so the bit length
// is validated again here.
func buildBitstream(v *qrVersion, data []byte) ([]byte, error) {
	numDataBits := v.numDataBits()

	required := 4 + v.numCharCountBits() + 8*len(data)
	if required > numDataBits {
		return nil, fmt.Errorf("%w: %d bits exceeds the version %d capacity of %d bits",
			ErrPayloadTooLarge, required, v.number, numDataBits)
	}

	b := bitset.New()
	b.AppendUint32(byteModeIndicator, 4)
	b.AppendUint32(uint32(len(data)), v.numCharCountBits())

	for _, d := range data {
		b.AppendByte(d, 8)
	}

	// Terminator: up to four zero bits, never beyond capacity.
	terminator := numDataBits - b.Len()
	if terminator > 4 {
		terminator = 4
	}

	b.AppendNumBools(terminator, false)

	// Pad to the nearest codeword boundary.
	if r := b.Len() % 8; r != 0 {
		b.AppendNumBools(8-r, false)
	}

	// Insert pad codewords alternately.
	for i := 0; b.Len() < numDataBits; i = 1 - i {
		b.AppendByte(padCodewords[i], 8)
	}

	return b.Bytes(), nil
}

// interleaveBlocks splits the data codewords into the version's
// blocks, computes each block's error correction codewords, and
// interleaves everything codeword by codeword: all data sections
// first, then all error correction sections.
func interleaveBlocks(v *qrVersion, codewords []byte) *bitset.Bitset {
	blocks := make([][]byte, v.numBlocks)
	ecBlocks := make([][]byte, v.numBlocks)

	for i := range blocks {
		start := i * v.dataCodewordsPerBlock
		blocks[i] = codewords[start : start+v.dataCodewordsPerBlock]
		ecBlocks[i] = reedsolomon.Encode(blocks[i], v.ecCodewordsPerBlock)
	}

	result := bitset.New()

	for i := 0; i < v.dataCodewordsPerBlock; i++ {
		for _, block := range blocks {
			result.AppendByte(block[i], 8)
		}
	}

	for i := 0; i < v.ecCodewordsPerBlock; i++ {
		for _, block := range ecBlocks {
			result.AppendByte(block[i], 8)
		}
	}

	result.AppendNumBools(v.numRemainderBits, false)

	return result
}
