// Package mask implements the eight QR code data mask patterns and the
// penalty-scoring rules used to pick the best one for a given symbol.
package mask

// Func reports whether the module at (row, col) should be inverted by this
// mask pattern.
type Func func(row, col int) bool

// Patterns holds the eight QR code data mask predicates, indexed 0-7 as
// written into format information.
var Patterns = [8]Func{
	func(row, col int) bool { return (row+col)&0x01 == 0 },
	func(row, col int) bool { return row&0x01 == 0 },
	func(row, col int) bool { return col%3 == 0 },
	func(row, col int) bool { return (row+col)%3 == 0 },
	func(row, col int) bool { return ((row/2)+(col/3))&0x01 == 0 },
	func(row, col int) bool { return (row*col)%6 == 0 },
	func(row, col int) bool { return ((row*col)%6) < 3 },
	func(row, col int) bool { return ((row + col + ((row*col)%3)) & 0x01) == 0 },
}

// DarkFunc reports whether the module at (row, col) is dark, after any
// masking has already been applied. Penalty scoring only ever looks at the
// final rendered matrix, so it doesn't need to know about masks itself.
type DarkFunc func(row, col int) bool

// Penalty computes the total QR code penalty score (rules N1-N4) for a
// dimension x dimension symbol whose dark modules are reported by dark.
func Penalty(dark DarkFunc, dimension int) int {
	return penaltyRule1(dark, dimension) +
		penaltyRule2(dark, dimension) +
		penaltyRule3(dark, dimension) +
		penaltyRule4(dark, dimension)
}

// penaltyRule1 scores runs of 5+ same-colored modules along rows and columns.
func penaltyRule1(dark DarkFunc, dimension int) int {
	return penaltyRule1Direction(dark, dimension, true) + penaltyRule1Direction(dark, dimension, false)
}

func penaltyRule1Direction(dark DarkFunc, dimension int, horizontal bool) int {
	penalty := 0
	for i := 0; i < dimension; i++ {
		runLength := 0
		lastValue := false
		for j := 0; j < dimension; j++ {
			var value bool
			if horizontal {
				value = dark(i, j)
			} else {
				value = dark(j, i)
			}
			if j != 0 && value == lastValue {
				runLength++
			} else {
				if runLength >= 5 {
					penalty += 3 + (runLength - 5)
				}
				runLength = 1
				lastValue = value
			}
		}
		if runLength >= 5 {
			penalty += 3 + (runLength - 5)
		}
	}
	return penalty
}

// penaltyRule2 scores each 2x2 block of same-colored modules.
func penaltyRule2(dark DarkFunc, dimension int) int {
	penalty := 0
	for i := 0; i < dimension-1; i++ {
		for j := 0; j < dimension-1; j++ {
			v := dark(i, j)
			if v == dark(i, j+1) && v == dark(i+1, j) && v == dark(i+1, j+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// penaltyRule3 scores occurrences of the 1:1:3:1:1 finder-like pattern
// (dark,light,dark,dark,dark,light,dark) with four light modules trailing
// on at least one side, checked along both rows and columns.
func penaltyRule3(dark DarkFunc, dimension int) int {
	penalty := 0
	for i := 0; i < dimension; i++ {
		for j := 0; j < dimension; j++ {
			if j+6 < dimension &&
				dark(i, j) && !dark(i, j+1) && dark(i, j+2) && dark(i, j+3) &&
				dark(i, j+4) && !dark(i, j+5) && dark(i, j+6) {
				leadingWhite := j+10 < dimension && !dark(i, j+7) && !dark(i, j+8) && !dark(i, j+9) && !dark(i, j+10)
				trailingWhite := j >= 4 && !dark(i, j-1) && !dark(i, j-2) && !dark(i, j-3) && !dark(i, j-4)
				if leadingWhite || trailingWhite {
					penalty += 40
				}
			}
			if i+6 < dimension &&
				dark(i, j) && !dark(i+1, j) && dark(i+2, j) && dark(i+3, j) &&
				dark(i+4, j) && !dark(i+5, j) && dark(i+6, j) {
				leadingWhite := i+10 < dimension && !dark(i+7, j) && !dark(i+8, j) && !dark(i+9, j) && !dark(i+10, j)
				trailingWhite := i >= 4 && !dark(i-1, j) && !dark(i-2, j) && !dark(i-3, j) && !dark(i-4, j)
				if leadingWhite || trailingWhite {
					penalty += 40
				}
			}
		}
	}
	return penalty
}

// penaltyRule4 scores deviation of the dark module ratio from 50%, in steps
// of 5 percentage points.
func penaltyRule4(dark DarkFunc, dimension int) int {
	numDark := 0
	total := dimension * dimension
	for i := 0; i < dimension; i++ {
		for j := 0; j < dimension; j++ {
			if dark(i, j) {
				numDark++
			}
		}
	}
	fivePercentVariances := abs(numDark*2-total) * 10 / total
	return fivePercentVariances * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
