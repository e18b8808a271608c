// Package codewords splits a padded data bit stream into error-correction
// blocks, generates each block's Reed-Solomon error-correction codewords,
// and interleaves data and EC codewords into the final bit stream placed
// into the symbol matrix.
package codewords

import (
	"fmt"

	"github.com/arqen/qrforge/bitutil"
	"github.com/arqen/qrforge/qrcode/symbol"
	"github.com/arqen/qrforge/reedsolomon"
)

// block is one error-correction block: its data codewords and the
// corresponding generated EC codewords.
type block struct {
	data []byte
	ec   []byte
}

// Interleave splits data (already terminated and padded to exactly the data
// capacity of ecBlocks) into its blocks per ecBlocks' layout, generates each
// block's EC codewords, and returns the final interleaved bit stream: every
// block's data codewords column by column, then every block's EC codewords
// column by column, exactly as the QR code standard requires.
func Interleave(data *bitutil.BitArray, ecBlocks *symbol.ECBlocks) (*bitutil.BitArray, error) {
	numDataBytes := ecBlocks.TotalDataCodewords()
	if data.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("codewords: data holds %d bytes, ec blocks expect %d", data.SizeInBytes(), numDataBytes)
	}

	raw := data.Bytes()
	blocks := make([]block, 0, ecBlocks.NumBlocks())
	offset := 0
	maxDataLen := 0
	for _, group := range ecBlocks.Blocks {
		for i := 0; i < group.Count; i++ {
			dataBytes := raw[offset : offset+group.DataCodewords]
			offset += group.DataCodewords

			ecBytes, err := reedsolomon.EncodeBlock(dataBytes, ecBlocks.ECCodewordsPerBlock)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block{data: dataBytes, ec: ecBytes})
			if group.DataCodewords > maxDataLen {
				maxDataLen = group.DataCodewords
			}
		}
	}

	result := bitutil.NewBitArray(0)
	for i := 0; i < maxDataLen; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				result.AppendBits(uint32(b.data[i]), 8)
			}
		}
	}
	for i := 0; i < ecBlocks.ECCodewordsPerBlock; i++ {
		for _, b := range blocks {
			result.AppendBits(uint32(b.ec[i]), 8)
		}
	}
	return result, nil
}
