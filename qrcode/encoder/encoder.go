// Package encoder orchestrates the full QR code generation pipeline: version
// selection, bit-stream encoding, Reed-Solomon block ECC, interleaving,
// matrix placement, mask selection, and format/version info. Each pipeline
// stage lives in its own package; this one only wires them together.
package encoder

import (
	"github.com/arqen/qrforge/qrcode/bitstream"
	"github.com/arqen/qrforge/qrcode/codewords"
	"github.com/arqen/qrforge/qrcode/matrix"
	"github.com/arqen/qrforge/qrcode/symbol"
)

// Result is the finished output of one pipeline run.
type Result struct {
	Matrix      *matrix.Symbol
	Version     *symbol.Version
	ECLevel     symbol.ErrorCorrectionLevel
	MaskPattern int
}

// Encode runs the pipeline over payload at ecLevel, auto-selecting the
// smallest version (1-40) whose byte-mode capacity holds payload. It fails
// with symbol.ErrInputTooLarge if no version is large enough.
func Encode(payload []byte, ecLevel symbol.ErrorCorrectionLevel) (*Result, error) {
	v, err := chooseVersion(payload, ecLevel)
	if err != nil {
		return nil, err
	}
	return run(payload, ecLevel, v)
}

// EncodeVersion runs the pipeline pinned to an explicit version, failing
// with symbol.ErrCapacityExceeded if payload does not fit that version at
// ecLevel.
func EncodeVersion(payload []byte, ecLevel symbol.ErrorCorrectionLevel, versionNumber int) (*Result, error) {
	v, err := symbol.GetVersionForNumber(versionNumber)
	if err != nil {
		return nil, err
	}
	if !fitsVersion(payload, ecLevel, v) {
		return nil, symbol.ErrCapacityExceeded
	}
	return run(payload, ecLevel, v)
}

// chooseVersion walks versions 1-40 in order and returns the first one
// whose byte-mode capacity at ecLevel holds the header (mode indicator +
// character count, whose width itself depends on the candidate version)
// plus the payload. This can't be answered by a single capacity number the
// way symbol.SelectVersion is, because the character count field widens
// from 8 to 16 bits at version 10, so the same header is not the same size
// for every candidate.
func chooseVersion(payload []byte, ecLevel symbol.ErrorCorrectionLevel) (*symbol.Version, error) {
	for n := 1; n <= 40; n++ {
		v, err := symbol.GetVersionForNumber(n)
		if err != nil {
			return nil, err
		}
		if fitsVersion(payload, ecLevel, v) {
			return v, nil
		}
	}
	return nil, symbol.ErrInputTooLarge
}

func fitsVersion(payload []byte, ecLevel symbol.ErrorCorrectionLevel, v *symbol.Version) bool {
	headerBits := 4 + bitstream.CharacterCountBits(v)
	totalBits := headerBits + 8*len(payload)
	capacityBits := v.ECBlocksForLevel(ecLevel).TotalDataCodewords() * 8
	return totalBits <= capacityBits
}

// run executes the bit-stream, ECC, interleaving, matrix, and masking
// stages for payload against an already-chosen version.
func run(payload []byte, ecLevel symbol.ErrorCorrectionLevel, v *symbol.Version) (*Result, error) {
	bits, err := bitstream.Build(payload, v)
	if err != nil {
		return nil, err
	}

	ecBlocks := v.ECBlocksForLevel(ecLevel)
	if err := bitstream.Pad(bits, ecBlocks.TotalDataCodewords()); err != nil {
		return nil, err
	}

	finalBits, err := codewords.Interleave(bits, ecBlocks)
	if err != nil {
		return nil, err
	}

	placed := matrix.New(v)
	placed.PlaceCodewords(finalBits)

	best, maskPattern := matrix.SelectMask(placed, v, ecLevel)

	return &Result{
		Matrix:      best,
		Version:     v,
		ECLevel:     ecLevel,
		MaskPattern: maskPattern,
	}, nil
}
