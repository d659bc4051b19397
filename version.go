package qrsvg

import "fmt"

// Symbol versions 1-6 at error correction level L. Higher versions
// need multi-group block tables and extra alignment geometry that are
// not modelled here.
const (
	minVersion = 1
	maxVersion = 6
)

// qrVersion describes one supported symbol version at level L.
type qrVersion struct {
	number int

	// Maximum byte mode payload, in bytes.
	capacityBytes int

	// Error correction block layout.
	numBlocks             int
	dataCodewordsPerBlock int
	ecCodewordsPerBlock   int

	// Zero bits appended after block interleaving.
	numRemainderBits int

	// Alignment pattern centre coordinates, used both as rows and
	// columns.
	alignmentCenters []int
}

// Version tables from ISO/IEC 18004, level L.
var versions = []qrVersion{
	{1, 17, 1, 19, 7, 0, nil},
	{2, 32, 1, 34, 10, 7, []int{6, 18}},
	{3, 53, 1, 55, 15, 7, []int{6, 22}},
	{4, 78, 1, 80, 20, 7, []int{6, 26}},
	{5, 106, 1, 108, 26, 7, []int{6, 30}},
	{6, 134, 2, 68, 18, 7, []int{6, 34}},
}

// formatInfo holds the 15 bit format codewords for level L, indexed
// by mask pattern. Each value is the BCH(15,5) encoding of the error
// correction level and mask bits, XORed with the 0x5412 mask.
var formatInfo = [8]uint16{
	0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976,
}

// chooseVersion returns the smallest version whose byte mode capacity
// fits numBytes.
func chooseVersion(numBytes int) (*qrVersion, error) {
	for i := range versions {
		if numBytes <= versions[i].capacityBytes {
			return &versions[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %d bytes exceeds the version %d capacity of %d bytes",
		ErrPayloadTooLarge, numBytes, maxVersion, versions[len(versions)-1].capacityBytes)
}

// symbolSize returns the width/height of the symbol in modules.
func (v *qrVersion) symbolSize() int {
	return 4*v.number + 17
}

func (v *qrVersion) numDataCodewords() int {
	return v.numBlocks * v.dataCodewordsPerBlock
}

func (v *qrVersion) numDataBits() int {
	return v.numDataCodewords() * 8
}

// numCharCountBits returns the width of the byte mode character count
// field.
func (v *qrVersion) numCharCountBits() int {
	if v.number < 10 {
		return 8
	}

	return 16
}
