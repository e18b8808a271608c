// Package matrix builds the QR code module matrix: function patterns,
// reserved areas, codeword placement, and mask selection.
//
// The matrix is modeled as two parallel planes instead of the single
// byte matrix with a 0xFF "empty" sentinel that a first pass at this code
// used: a value plane (is this module dark?) and a reservation plane (is
// this module off-limits to codeword placement?). Keeping "what color is
// this module" and "is this module already spoken for" as two separate
// questions removes the sentinel-byte special case from every read site.
package matrix

import (
	"github.com/arqen/qrforge/bitutil"
	"github.com/arqen/qrforge/qrcode/mask"
	"github.com/arqen/qrforge/qrcode/symbol"
)

// Symbol is the module matrix for one QR code, mid-construction or final.
type Symbol struct {
	dimension int
	value     *bitutil.BitMatrix
	reserved  *bitutil.BitMatrix
}

// New builds a Symbol with every function pattern (finders, separators,
// timing, alignment, dark module) and every format/version info area
// already embedded and reserved, ready for codeword placement.
func New(v *symbol.Version) *Symbol {
	dimension := v.DimensionForVersion()
	s := &Symbol{
		dimension: dimension,
		value:     bitutil.NewBitMatrix(dimension),
		reserved:  bitutil.NewBitMatrix(dimension),
	}
	s.embedBasicPatterns(v)
	s.reserveFormatInfo()
	if v.Number >= 7 {
		s.reserveVersionInfo()
	}
	return s
}

// Dimension returns the module side length.
func (s *Symbol) Dimension() int { return s.dimension }

// Dark reports whether the module at (row, col) is currently dark.
func (s *Symbol) Dark(row, col int) bool { return s.value.Get(col, row) }

func (s *Symbol) setDark(row, col int, dark bool) {
	if dark {
		s.value.Set(col, row)
	} else {
		s.value.Unset(col, row)
	}
}

// IsReserved reports whether the module at (row, col) belongs to a function
// pattern or format/version info area and must not receive a data bit.
func (s *Symbol) IsReserved(row, col int) bool { return s.reserved.Get(col, row) }

func (s *Symbol) reserve(row, col int) { s.reserved.Set(col, row) }

// Position is one cell visited during serpentine codeword placement.
type Position struct {
	Row, Col int
}

// SerpentinePositions returns every module position of a dimension x
// dimension symbol in the order QR codes place codeword bits: two columns
// at a time, right to left, alternating scan direction each pair, skipping
// the vertical timing column. Reserved cells are included; callers filter
// them out during placement. This is an explicit, inspectable position
// sequence rather than a loop that both tracks direction state and decides
// occupancy at once.
func SerpentinePositions(dimension int) []Position {
	positions := make([]Position, 0, dimension*dimension)
	for col := dimension - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		upward := (((dimension - 1 - col) / 2) & 1) == 0
		for count := 0; count < dimension; count++ {
			row := count
			if upward {
				row = dimension - 1 - count
			}
			positions = append(positions, Position{Row: row, Col: col})
			positions = append(positions, Position{Row: row, Col: col - 1})
		}
	}
	return positions
}

// PlaceCodewords writes the bits of a final (interleaved, padded) codeword
// stream into every non-reserved module, in SerpentinePositions order, with
// no masking applied yet.
func (s *Symbol) PlaceCodewords(bits *bitutil.BitArray) {
	bitIndex := 0
	size := bits.Size()
	for _, pos := range SerpentinePositions(s.dimension) {
		if s.IsReserved(pos.Row, pos.Col) {
			continue
		}
		var bit bool
		if bitIndex < size {
			bit = bits.Get(bitIndex)
			bitIndex++
		}
		s.setDark(pos.Row, pos.Col, bit)
	}
}

// ApplyMask flips every non-reserved module for which maskFn reports true.
// Calling it twice with the same mask undoes it (it's an XOR), but
// orchestration never relies on that; mask selection always starts from an
// unmasked symbol.
func (s *Symbol) ApplyMask(maskFn mask.Func) {
	for row := 0; row < s.dimension; row++ {
		for col := 0; col < s.dimension; col++ {
			if s.IsReserved(row, col) {
				continue
			}
			if maskFn(row, col) {
				s.setDark(row, col, !s.Dark(row, col))
			}
		}
	}
}

// Clone returns an independent copy of the symbol.
func (s *Symbol) Clone() *Symbol {
	return &Symbol{
		dimension: s.dimension,
		value:     s.value.Clone(),
		reserved:  s.reserved.Clone(),
	}
}

// SelectMask tries all eight mask patterns against an already-placed
// (but unmasked) symbol, writes format and version info for each
// candidate, scores it with the standard penalty rules, and returns the
// symbol with the lowest-penalty mask applied along with the chosen mask
// index. Version info must be rebuilt per candidate (not just once on the
// winner) because it occupies real modules that feed into the penalty
// score for version 7 and up.
func SelectMask(placed *Symbol, v *symbol.Version, ecLevel symbol.ErrorCorrectionLevel) (*Symbol, int) {
	bestPenalty := -1
	bestIndex := 0
	var best *Symbol
	for i, fn := range mask.Patterns {
		candidate := placed.Clone()
		candidate.ApplyMask(fn)
		candidate.writeFormatInfo(ecLevel, i)
		candidate.WriteVersionInfo(v)
		penalty := mask.Penalty(candidate.Dark, candidate.dimension)
		if best == nil || penalty < bestPenalty {
			bestPenalty = penalty
			bestIndex = i
			best = candidate
		}
	}
	return best, bestIndex
}

// positionDetectionPattern is the 7x7 finder pattern.
var positionDetectionPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// positionAdjustmentPattern is the 5x5 alignment pattern.
var positionAdjustmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

func (s *Symbol) embedBasicPatterns(v *symbol.Version) {
	s.embedFinder(0, 0)
	s.embedFinder(s.dimension-7, 0)
	s.embedFinder(0, s.dimension-7)

	// Finder plus separator at each corner. The adjacent format info strips
	// are reserved separately in reserveFormatInfo; the timing pattern owns
	// its own endpoints at (6,8) and (8,6).
	s.reserveRegion(0, 0, 8, 8)
	s.reserveRegion(s.dimension-8, 0, 8, 8)
	s.reserveRegion(0, s.dimension-8, 8, 8)

	if v.Number >= 2 {
		s.embedAlignmentPatterns(v)
	}

	s.embedTimingPatterns()

	// Dark module, always present, always dark.
	s.setDark(s.dimension-8, 8, true)
	s.reserve(s.dimension-8, 8)
}

// row/col convention throughout this file: row is the vertical (y) index,
// col is the horizontal (x) index, and the dark module sits at
// row = dimension-8, col = 8, matching the QR standard's (x=8, y=height-8)
// description read as (col, row).

func (s *Symbol) embedFinder(colStart, rowStart int) {
	for dr := 0; dr < 7; dr++ {
		for dc := 0; dc < 7; dc++ {
			s.setDark(rowStart+dr, colStart+dc, positionDetectionPattern[dr][dc])
		}
	}
}

// reserveRegion marks a rectangle (in column, row, width, height form,
// matching how finder+separator+format corners are described in the QR
// standard) as off-limits to codeword placement, without touching module
// color.
func (s *Symbol) reserveRegion(col, row, width, height int) {
	s.reserved.SetRegion(col, row, width, height)
}

func (s *Symbol) embedAlignmentPatterns(v *symbol.Version) {
	centers := v.AlignmentPatternCenters
	for _, cr := range centers {
		for _, cc := range centers {
			// Skip centers that land on a finder pattern's reserved corner;
			// no other check is needed since finders are embedded first.
			if s.IsReserved(cr, cc) {
				continue
			}
			for dr := -2; dr <= 2; dr++ {
				for dc := -2; dc <= 2; dc++ {
					s.setDark(cr+dr, cc+dc, positionAdjustmentPattern[dr+2][dc+2])
					s.reserve(cr+dr, cc+dc)
				}
			}
		}
	}
}

func (s *Symbol) embedTimingPatterns() {
	for i := 8; i < s.dimension-8; i++ {
		dark := (i+1)%2 != 0
		if !s.IsReserved(6, i) {
			s.setDark(6, i, dark)
			s.reserve(6, i)
		}
		if !s.IsReserved(i, 6) {
			s.setDark(i, 6, dark)
			s.reserve(i, 6)
		}
	}
}

func (s *Symbol) reserveFormatInfo() {
	for _, rc := range formatInfoCoordinatesA() {
		s.reserve(rc[0], rc[1])
	}
	for _, rc := range formatInfoCoordinatesB(s.dimension) {
		s.reserve(rc[0], rc[1])
	}
}

func (s *Symbol) reserveVersionInfo() {
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			s.reserve(s.dimension-11+j, i)
			s.reserve(i, s.dimension-11+j)
		}
	}
}
