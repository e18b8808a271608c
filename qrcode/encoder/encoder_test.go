package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqen/qrforge/qrcode/symbol"
)

// A 17-byte payload at level L fits version 1; an 18-byte payload at level L
// needs version 2.
func TestEncodeVersionAutoSelection(t *testing.T) {
	payload17 := make([]byte, 17)
	result, err := Encode(payload17, symbol.ECLevelL)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Version.Number)

	payload18 := make([]byte, 18)
	result, err = Encode(payload18, symbol.ECLevelL)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Version.Number)
}

// A payload larger than version 40's capacity at level L fails with
// ErrInputTooLarge.
func TestEncodeOversizeFails(t *testing.T) {
	oversize := make([]byte, 2954)
	_, err := Encode(oversize, symbol.ECLevelL)
	assert.ErrorIs(t, err, symbol.ErrInputTooLarge)
}

// "HELLO WORLD" at level M fits version 1 and produces a 21x21 symbol with
// a mask chosen from the eight candidates.
func TestEncodeHelloWorld(t *testing.T) {
	result, err := Encode([]byte("HELLO WORLD"), symbol.ECLevelM)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Version.Number)
	assert.Equal(t, 21, result.Matrix.Dimension())
	assert.GreaterOrEqual(t, result.MaskPattern, 0)
	assert.LessOrEqual(t, result.MaskPattern, 7)
}

func TestEncodeVersionExplicitTooSmallFails(t *testing.T) {
	_, err := EncodeVersion([]byte("this payload is far too large for version one"), symbol.ECLevelH, 1)
	assert.ErrorIs(t, err, symbol.ErrCapacityExceeded)
}

func TestEncodeVersionExplicitFits(t *testing.T) {
	result, err := EncodeVersion([]byte("hi"), symbol.ECLevelL, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Version.Number)
}

// TestEncodeEveryVersionAndLevel exercises the full pipeline across all 40
// versions and all four EC levels with the largest whole-byte payload each
// version's capacity holds after the header, guarding against an off-by-one in padding, block
// splitting, or the serpentine placement boundary at any table entry.
func TestEncodeEveryVersionAndLevel(t *testing.T) {
	for n := 1; n <= 40; n++ {
		v, err := symbol.GetVersionForNumber(n)
		require.NoError(t, err)
		for level := symbol.ECLevelL; level <= symbol.ECLevelH; level++ {
			headerBits := 4
			if n <= 9 {
				headerBits += 8
			} else {
				headerBits += 16
			}
			capacityBits := v.ECBlocksForLevel(level).TotalDataCodewords()*8 - headerBits
			payload := make([]byte, capacityBits/8)
			result, err := EncodeVersion(payload, level, n)
			require.NoError(t, err, "version %d level %s", n, level)
			assert.Equal(t, n, result.Version.Number)
			assert.Equal(t, v.DimensionForVersion(), result.Matrix.Dimension())
		}
	}
}
