package qrforge

import (
	"github.com/arqen/qrforge/qrcode/encoder"
	"github.com/arqen/qrforge/qrcode/symbol"
)

// ErrorCorrectionLevel is one of the four QR code error correction levels.
type ErrorCorrectionLevel = symbol.ErrorCorrectionLevel

// The four QR code error correction levels, re-exported from qrcode/symbol
// for callers who only need the root package.
const (
	ECLevelL = symbol.ECLevelL // ~7% recoverable
	ECLevelM = symbol.ECLevelM // ~15% recoverable
	ECLevelQ = symbol.ECLevelQ // ~25% recoverable
	ECLevelH = symbol.ECLevelH // ~30% recoverable
)

// ErrInputTooLarge is returned by Generate when no version (1-40) at the
// requested error correction level can hold the payload.
var ErrInputTooLarge = symbol.ErrInputTooLarge

// ErrCapacityExceeded is returned by GenerateWithOptions when Options.Version is set
// and the payload does not fit that version at the requested level.
var ErrCapacityExceeded = symbol.ErrCapacityExceeded

// ErrInvalidECLevel is returned by ECLevelForLetter for an unrecognized
// level letter.
var ErrInvalidECLevel = symbol.ErrInvalidECLevel

// ECLevelForLetter parses a single case-insensitive letter ("L", "M", "Q",
// "H") into an ErrorCorrectionLevel, defaulting to L for an empty string.
func ECLevelForLetter(letter string) (ErrorCorrectionLevel, error) {
	return symbol.ECLevelForLetter(letter)
}

// Options configures a Generate call. The zero value auto-selects the
// smallest version that fits the payload.
type Options struct {
	// Version pins generation to a specific QR version (1-40). Zero means
	// auto-select the smallest version that fits.
	Version int
}

// Symbol is a finished QR code: the module matrix plus the parameters the
// pipeline chose or was given.
type Symbol struct {
	// Version is the QR code version (1-40) this symbol was built at.
	Version int
	// Side is the module side length (21 + 4*(Version-1)).
	Side int
	// ECLevel is the error correction level this symbol was built at.
	ECLevel ErrorCorrectionLevel
	// MaskPattern is the winning mask index (0-7).
	MaskPattern int

	result *encoder.Result
}

// Dark reports whether the module at (row, col) is dark. 0 <= row, col <
// Side. The returned matrix does not include a quiet zone; renderers are
// responsible for the standard's minimum 4-module light border.
func (s *Symbol) Dark(row, col int) bool {
	return s.result.Matrix.Dark(row, col)
}

// Generate builds a QR code symbol from payload at ecLevel, auto-selecting
// the smallest version (1-40) whose byte-mode capacity holds it. It fails
// with ErrInputTooLarge if payload exceeds version 40's capacity at
// ecLevel.
func Generate(payload []byte, ecLevel ErrorCorrectionLevel) (*Symbol, error) {
	return GenerateWithOptions(payload, ecLevel, Options{})
}

// GenerateWithOptions builds a QR code symbol from payload at ecLevel,
// honoring opts.Version if set. With an explicit version it fails with
// ErrCapacityExceeded (not ErrInputTooLarge) if payload doesn't fit.
func GenerateWithOptions(payload []byte, ecLevel ErrorCorrectionLevel, opts Options) (*Symbol, error) {
	var result *encoder.Result
	var err error
	if opts.Version > 0 {
		result, err = encoder.EncodeVersion(payload, ecLevel, opts.Version)
	} else {
		result, err = encoder.Encode(payload, ecLevel)
	}
	if err != nil {
		return nil, err
	}

	return &Symbol{
		Version:     result.Version.Number,
		Side:        result.Matrix.Dimension(),
		ECLevel:     result.ECLevel,
		MaskPattern: result.MaskPattern,
		result:      result,
	}, nil
}
