// Package qrforge generates ISO/IEC 18004 QR code symbols from an octet
// payload: byte mode only, versions 1-40, error correction levels L/M/Q/H.
//
// Generate picks the smallest version that holds the payload;
// GenerateWithOptions with an explicit version in Options pins the pipeline to that version and
// fails with ErrCapacityExceeded if the payload does not fit it. The result
// is an abstract dark/light module matrix with no quiet zone; rendering
// (ANSI, PNG, SVG, ...) is left to the caller.
package qrforge
