package reedsolomon

import "errors"

// ErrShortBlock is returned when a block carries no data codewords or asks
// for no error correction codewords.
var ErrShortBlock = errors.New("reedsolomon: block needs at least one data and one error correction codeword")

// Generator returns the degree-n generator polynomial, the product of
// (x - alpha^i) for i in 0..degree-1, built by multiplying one binomial in
// at a time. Coefficients are ordered highest degree first: degree+1 of
// them, leading coefficient 1.
func Generator(degree int) []byte {
	gen := []byte{1}
	for i := 0; i < degree; i++ {
		root := Exp(i)
		next := make([]byte, len(gen)+1)
		for j, c := range gen {
			next[j] = Add(next[j], c)
			next[j+1] = Mul(c, root)
		}
		gen = next
	}
	return gen
}

// EncodeBlock computes the ecLen error correction codewords for one data
// block: the remainder of data(x) * x^ecLen divided by the degree-ecLen
// generator polynomial, via synthetic division. Each incoming codeword
// folds into the remainder registers as
// factor = remainder[0] + codeword, then remainder[j] += gen[j+1] * factor
// after the registers shift up by one.
func EncodeBlock(data []byte, ecLen int) ([]byte, error) {
	if len(data) == 0 || ecLen < 1 {
		return nil, ErrShortBlock
	}
	gen := Generator(ecLen)
	remainder := make([]byte, ecLen)
	for _, d := range data {
		factor := Add(remainder[0], d)
		copy(remainder, remainder[1:])
		remainder[ecLen-1] = 0
		for j, g := range gen[1:] {
			remainder[j] = Add(remainder[j], Mul(g, factor))
		}
	}
	return remainder, nil
}
