package matrix

import "github.com/arqen/qrforge/qrcode/symbol"

// BCH generator polynomials from the QR code standard: format info is
// BCH(15,5) with generator 0x537, scrambled with mask 0x5412; version info
// (version 7+) is BCH(18,6) with generator 0x1f25.
const (
	formatInfoPoly  = 0x537
	formatInfoMask  = 0x5412
	versionInfoPoly = 0x1f25
)

// formatInfoCoordinatesA lists the (row, col) positions of the format info
// copy that runs along the top-left finder pattern.
func formatInfoCoordinatesA() [][2]int {
	return [][2]int{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
}

// formatInfoCoordinatesB lists the (row, col) positions of the mirrored
// format info copy that runs along the top-right and bottom-left finders.
func formatInfoCoordinatesB(dimension int) [][2]int {
	coords := make([][2]int, 0, 15)
	for i := 0; i < 8; i++ {
		coords = append(coords, [2]int{8, dimension - 1 - i})
	}
	for i := 8; i < 15; i++ {
		coords = append(coords, [2]int{dimension - 7 + (i - 8), 8})
	}
	return coords
}

// writeFormatInfo computes and writes the 15-bit BCH-protected format
// information (EC level + mask pattern) into both reserved copies.
func (s *Symbol) writeFormatInfo(ecLevel symbol.ErrorCorrectionLevel, maskIndex int) {
	typeInfo := (ecLevel.Bits() << 3) | maskIndex
	bits := (typeInfo << 10) | bchCode(typeInfo, formatInfoPoly)
	bits ^= formatInfoMask

	coordsA := formatInfoCoordinatesA()
	coordsB := formatInfoCoordinatesB(s.dimension)
	for i := 0; i < 15; i++ {
		bit := (bits>>uint(i))&1 == 1
		s.setDark(coordsA[i][0], coordsA[i][1], bit)
		s.setDark(coordsB[i][0], coordsB[i][1], bit)
	}
}

// WriteVersionInfo computes and writes the 18-bit BCH-protected version
// information for versions 7 and above; it is a no-op below version 7.
func (s *Symbol) WriteVersionInfo(v *symbol.Version) {
	if v.Number < 7 {
		return
	}
	bits := (v.Number << 12) | bchCode(v.Number, versionInfoPoly)

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := (bits>>uint(bitIndex))&1 == 1
			bitIndex++
			s.setDark(s.dimension-11+j, i, bit) // bottom-left block
			s.setDark(i, s.dimension-11+j, bit) // top-right block
		}
	}
}

// bchCode computes the BCH error-correction bits of value against the given
// generator polynomial, via synthetic binary division.
func bchCode(value, poly int) int {
	msbSetInPoly := msbPosition(poly)
	value <<= uint(msbSetInPoly - 1)
	for msbPosition(value) >= msbSetInPoly {
		value ^= poly << uint(msbPosition(value)-msbSetInPoly)
	}
	return value
}

// msbPosition returns the 1-based position of the highest set bit.
func msbPosition(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
