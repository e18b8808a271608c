package qrforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVersionAutoSelection(t *testing.T) {
	sym, err := Generate(make([]byte, 17), ECLevelL)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version)
	assert.Equal(t, 21, sym.Side)

	sym, err = Generate(make([]byte, 18), ECLevelL)
	require.NoError(t, err)
	assert.Equal(t, 2, sym.Version)
	assert.Equal(t, 25, sym.Side)
}

func TestGenerateOversizeFails(t *testing.T) {
	_, err := Generate(make([]byte, 2954), ECLevelL)
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

// A version 1-M symbol for "HELLO WORLD" is 21x21, with function patterns
// intact after masking and format info.
func TestGenerateHelloWorld(t *testing.T) {
	sym, err := Generate([]byte("HELLO WORLD"), ECLevelM)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version)
	assert.Equal(t, 21, sym.Side)
	assert.GreaterOrEqual(t, sym.MaskPattern, 0)
	assert.LessOrEqual(t, sym.MaskPattern, 7)

	// The top-left finder's dark outer ring must still be dark after
	// masking and format info: function patterns are never touched by
	// either stage.
	for i := 0; i < 7; i++ {
		assert.True(t, sym.Dark(0, i), "finder row 0 col %d", i)
	}
}

func TestGenerateWithOptionsExplicitVersion(t *testing.T) {
	sym, err := GenerateWithOptions([]byte("hi"), ECLevelL, Options{Version: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, sym.Version)
	assert.Equal(t, 37, sym.Side)
}

func TestGenerateWithOptionsExplicitVersionTooSmallFails(t *testing.T) {
	tooBig := make([]byte, 200)
	_, err := GenerateWithOptions(tooBig, ECLevelH, Options{Version: 1})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestECLevelForLetterDefaultsToL(t *testing.T) {
	level, err := ECLevelForLetter("")
	require.NoError(t, err)
	assert.Equal(t, ECLevelL, level)

	_, err = ECLevelForLetter("z")
	assert.ErrorIs(t, err, ErrInvalidECLevel)
}
