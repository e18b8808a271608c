package symbol

import "errors"

// ErrInvalidECLevel is returned when a caller supplies an unrecognized error
// correction level letter.
var ErrInvalidECLevel = errors.New("qrcode/symbol: invalid error correction level")

// ErrInvalidVersion is returned by GetVersionForNumber for a version number
// outside the 1-40 range.
var ErrInvalidVersion = errors.New("qrcode/symbol: invalid version number")

// ErrInputTooLarge is returned when a payload cannot fit into version 40 at
// the requested error correction level.
var ErrInputTooLarge = errors.New("qrcode/symbol: input too large for any QR version at this error correction level")

// ErrCapacityExceeded is returned when a caller pins an explicit version that
// is too small to carry the payload.
var ErrCapacityExceeded = errors.New("qrcode/symbol: payload exceeds capacity of the requested version")
