// Package bitstream builds the QR code data bit stream: mode indicator,
// character count, payload bits, terminator, and padding. Only byte mode is
// supported; numeric, alphanumeric, and Kanji encoding are out of scope.
package bitstream

import (
	"fmt"

	"github.com/arqen/qrforge/bitutil"
	"github.com/arqen/qrforge/qrcode/symbol"
)

// modeIndicator is the 4-bit byte-mode indicator defined by the QR code
// standard.
const modeIndicator = 0x4

// CharacterCountBits returns the width of the character count field for byte
// mode at the given version, per the QR code standard's three version bands.
// Byte mode only ever needs two of the standard's three bands (8 bits for
// versions 1-9, 16 bits for 10-40); the third band (Kanji's narrower 16-bit
// split point) never applies since Kanji mode is out of scope.
func CharacterCountBits(v *symbol.Version) int {
	if v.Number <= 9 {
		return 8
	}
	return 16
}

// Build returns the header (mode indicator + character count) and payload
// bits for payload at the given version, before termination and padding.
// It fails with ErrInputTooLarge if payload's length doesn't fit the
// character count field width for v.
func Build(payload []byte, v *symbol.Version) (*bitutil.BitArray, error) {
	countBits := CharacterCountBits(v)
	if len(payload) >= 1<<uint(countBits) {
		return nil, fmt.Errorf("%w: payload length exceeds character count field", symbol.ErrInputTooLarge)
	}

	bits := bitutil.NewBitArray(0)
	bits.AppendBits(modeIndicator, 4)
	bits.AppendBits(uint32(len(payload)), countBits)
	for _, c := range payload {
		bits.AppendBits(uint32(c), 8)
	}
	return bits, nil
}

// Pad terminates bits with up to four zero bits, rounds out to a byte
// boundary, and fills the remaining capacity with the standard alternating
// 0xEC/0x11 pad codewords, until it holds exactly numDataBytes bytes. It
// fails with ErrCapacityExceeded if bits already holds more than that.
func Pad(bits *bitutil.BitArray, numDataBytes int) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: data bits exceed capacity", symbol.ErrCapacityExceeded)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	if rem := bits.Size() & 0x07; rem > 0 {
		for i := rem; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}
