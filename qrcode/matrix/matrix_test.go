package matrix

import (
	"testing"

	"github.com/arqen/qrforge/bitutil"
	"github.com/arqen/qrforge/qrcode/mask"
	"github.com/arqen/qrforge/qrcode/symbol"
)

func version(t *testing.T, number int) *symbol.Version {
	t.Helper()
	v, err := symbol.GetVersionForNumber(number)
	if err != nil {
		t.Fatalf("GetVersionForNumber(%d): %v", number, err)
	}
	return v
}

func TestNewHasCorrectDimension(t *testing.T) {
	v := version(t, 1)
	s := New(v)
	if s.Dimension() != 21 {
		t.Errorf("Dimension() = %d, want 21", s.Dimension())
	}
}

func TestNewEmbedsFinderPatterns(t *testing.T) {
	s := New(version(t, 1))
	// Top-left finder's outer ring is fully dark.
	for i := 0; i < 7; i++ {
		if !s.Dark(0, i) {
			t.Errorf("top-left finder row 0 col %d should be dark", i)
		}
	}
	// The finder's inner 5x5 ring is light.
	if s.Dark(1, 1) {
		t.Error("finder inner light ring should be light")
	}
}

func TestNewSetsDarkModule(t *testing.T) {
	s := New(version(t, 1))
	if !s.Dark(s.Dimension()-8, 8) {
		t.Error("dark module should always be dark")
	}
	if !s.IsReserved(s.Dimension()-8, 8) {
		t.Error("dark module should be reserved")
	}
}

func TestNewReservesTimingPatterns(t *testing.T) {
	s := New(version(t, 1))
	for i := 8; i < s.Dimension()-8; i++ {
		if !s.IsReserved(6, i) || !s.IsReserved(i, 6) {
			t.Errorf("timing module at %d should be reserved", i)
		}
	}
}

func TestNewTimingPatternsAlternateStartingDark(t *testing.T) {
	s := New(version(t, 1))
	// The timing pattern runs from the separators inward, endpoints
	// included: even coordinates dark, odd light. The endpoints at (6,8)
	// and (8,6) belong to timing, not to the format info strips next to
	// them.
	for i := 8; i < s.Dimension()-8; i++ {
		wantDark := i%2 == 0
		if s.Dark(6, i) != wantDark {
			t.Errorf("timing module (6,%d) dark = %v, want %v", i, s.Dark(6, i), wantDark)
		}
		if s.Dark(i, 6) != wantDark {
			t.Errorf("timing module (%d,6) dark = %v, want %v", i, s.Dark(i, 6), wantDark)
		}
	}
}

func TestSerpentinePositionsSkipsColumnSix(t *testing.T) {
	positions := SerpentinePositions(21)
	for _, p := range positions {
		if p.Col == 6 {
			t.Fatalf("serpentine positions should never visit column 6, got %+v", p)
		}
	}
}

func TestSerpentinePositionsCoversEveryNonTimingColumn(t *testing.T) {
	dimension := 21
	positions := SerpentinePositions(dimension)
	// Every cell except the vertical timing column, each exactly once.
	want := dimension * (dimension - 1)
	if len(positions) != want {
		t.Fatalf("len(positions) = %d, want %d", len(positions), want)
	}
	seen := make(map[Position]bool, want)
	for _, p := range positions {
		if seen[p] {
			t.Fatalf("position %+v visited twice", p)
		}
		seen[p] = true
	}
}

func TestPlaceCodewordsSkipsReservedCells(t *testing.T) {
	v := version(t, 1)
	s := New(v)
	before := s.Clone()

	bits := bitutil.NewBitArray(0)
	for i := 0; i < s.Dimension()*s.Dimension(); i++ {
		bits.AppendBit(true)
	}
	s.PlaceCodewords(bits)

	// Reserved cells (e.g. the finder pattern) must be unchanged by
	// placement even though the bit stream is all ones.
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if s.Dark(i, j) != before.Dark(i, j) {
				t.Fatalf("reserved cell (%d,%d) changed during placement", i, j)
			}
		}
	}
}

func TestApplyMaskOnlyTouchesNonReservedCells(t *testing.T) {
	v := version(t, 1)
	s := New(v)
	before := s.Clone()

	alwaysFlip := func(row, col int) bool { return true }
	s.ApplyMask(alwaysFlip)

	for row := 0; row < s.Dimension(); row++ {
		for col := 0; col < s.Dimension(); col++ {
			if s.IsReserved(row, col) {
				if s.Dark(row, col) != before.Dark(row, col) {
					t.Fatalf("reserved cell (%d,%d) flipped by mask", row, col)
				}
			} else if s.Dark(row, col) == before.Dark(row, col) {
				t.Fatalf("non-reserved cell (%d,%d) should have flipped", row, col)
			}
		}
	}
}

func TestSelectMaskPicksLowestPenalty(t *testing.T) {
	v := version(t, 1)
	s := New(v)

	bits := bitutil.NewBitArray(0)
	for i := 0; i < s.Dimension()*s.Dimension(); i++ {
		bits.AppendBit(i%3 == 0)
	}
	s.PlaceCodewords(bits)

	best, index := SelectMask(s, v, symbol.ECLevelM)
	if best == nil {
		t.Fatal("SelectMask returned nil symbol")
	}
	if index < 0 || index > 7 {
		t.Errorf("mask index %d out of range", index)
	}
	requireLowestPenalty(t, s, v, symbol.ECLevelM, index)
}

// requireLowestPenalty rescores every mask candidate of placed the way the
// final symbol is built (mask, then format and version info) and fails if
// any candidate scores below the chosen index, or ties it at a lower index.
func requireLowestPenalty(t *testing.T, placed *Symbol, v *symbol.Version, ecLevel symbol.ErrorCorrectionLevel, index int) {
	t.Helper()
	if index < 0 || index >= len(mask.Patterns) {
		t.Fatalf("mask index %d out of range", index)
	}
	scores := make([]int, len(mask.Patterns))
	for i, fn := range mask.Patterns {
		candidate := placed.Clone()
		candidate.ApplyMask(fn)
		candidate.writeFormatInfo(ecLevel, i)
		candidate.WriteVersionInfo(v)
		scores[i] = mask.Penalty(candidate.Dark, candidate.Dimension())
	}
	for i, score := range scores {
		if score < scores[index] || (score == scores[index] && i < index) {
			t.Errorf("mask %d scores %d, beating chosen mask %d at %d", i, score, index, scores[index])
		}
	}
}

// TestSelectMaskWritesVersionInfoBeforeScoring guards against regressing to
// scoring candidates with version info left at its reserved-but-unwritten
// placeholder: for version 7+, the winning candidate returned by SelectMask
// must already carry the correct BCH-coded version info, matching what
// WriteVersionInfo would produce on its own, and must be the lowest-penalty
// candidate when every candidate is scored with its version info written,
// so penalty scoring saw the true final module pattern rather than a
// stand-in.
func TestSelectMaskWritesVersionInfoBeforeScoring(t *testing.T) {
	v := version(t, 7)
	s := New(v)

	bits := bitutil.NewBitArray(0)
	for i := 0; i < s.Dimension()*s.Dimension(); i++ {
		bits.AppendBit(i%5 == 0)
	}
	s.PlaceCodewords(bits)

	best, index := SelectMask(s, v, symbol.ECLevelM)
	requireLowestPenalty(t, s, v, symbol.ECLevelM, index)

	want := best.Clone()
	want.WriteVersionInfo(v)

	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			if best.Dark(s.Dimension()-11+j, i) != want.Dark(s.Dimension()-11+j, i) {
				t.Fatalf("version info not written before scoring at (%d,%d)", s.Dimension()-11+j, i)
			}
			if best.Dark(i, s.Dimension()-11+j) != want.Dark(i, s.Dimension()-11+j) {
				t.Fatalf("version info not written before scoring at (%d,%d)", i, s.Dimension()-11+j)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(version(t, 1))
	clone := s.Clone()
	clone.setDark(10, 10, !clone.Dark(10, 10))
	if s.Dark(10, 10) == clone.Dark(10, 10) {
		t.Error("modifying clone should not affect original")
	}
}
