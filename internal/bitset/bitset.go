// Package bitset implements an append-only bit sequence.
//
// Bits are stored most significant bit first, matching the QR Code
// bitstream order.
package bitset

import "fmt"

type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage for individual bits.
	bits []byte
}

func New(v ...bool) *Bitset {
	b := &Bitset{numBits: 0, bits: make([]byte, 0)}
	b.AppendBools(v...)

	return b
}

// AppendByte appends the numBits least significant bits of value,
// most significant bit first. numBits must be in [0, 8].
func (b *Bitset) AppendByte(value byte, numBits int) {
	if numBits < 0 || numBits > 8 {
		panic(fmt.Sprintf("bitset: numBits %d out of range 0-8", numBits))
	}

	b.ensureCapacity(numBits)

	for i := numBits - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

// AppendUint32 appends the numBits least significant bits of value,
// most significant bit first. numBits must be in [0, 32].
func (b *Bitset) AppendUint32(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic(fmt.Sprintf("bitset: numBits %d out of range 0-32", numBits))
	}

	b.ensureCapacity(numBits)

	for i := numBits - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) AppendBools(bits ...bool) {
	b.ensureCapacity(len(bits))

	for _, v := range bits {
		if v {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) AppendNumBools(num int, value bool) {
	for i := 0; i < num; i++ {
		b.AppendBools(value)
	}
}

func (b *Bitset) ensureCapacity(numBits int) {
	numBits += b.numBits

	newNumBytes := numBits / 8
	if numBits%8 != 0 {
		newNumBytes++
	}

	if len(b.bits) >= newNumBytes {
		return
	}

	b.bits = append(b.bits, make([]byte, newNumBytes+2*len(b.bits))...)
}

// Len returns the number of bits stored.
func (b *Bitset) Len() int {
	return b.numBits
}

// At returns the bit at index. index must be in [0, Len()).
func (b *Bitset) At(index int) bool {
	if index < 0 || index >= b.numBits {
		panic(fmt.Sprintf("bitset: index %d out of range", index))
	}

	return b.bits[index/8]&(0x80>>uint(index%8)) != 0
}

// Bytes returns the bits packed into bytes, most significant bit
// first. The final byte is zero padded if Len() is not a multiple of
// eight.
func (b *Bitset) Bytes() []byte {
	numBytes := b.numBits / 8
	if b.numBits%8 != 0 {
		numBytes++
	}

	result := make([]byte, numBytes)
	copy(result, b.bits[:numBytes])

	return result
}
