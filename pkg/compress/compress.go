// Package compress holds the byte-level codecs used when persisting a trained
// model: a variable-width integer codec for the count tables and a zstd layer
// on top of the serialized blocks.
package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var BITMASK = []byte{
	0b00000001,
	0b00000011,
	0b00000111,
	0b00001111,
	0b00011111,
	0b00111111,
	0b01111111,
	0b11111111,
}

func getLSB(x byte, n uint8) byte {
	if n > 8 {
		panic("can extract at max 8 bits from the number")
	}
	return x & BITMASK[n-1]
}

var bitShifts = [10]uint8{7, 7, 7, 7, 7, 7, 7, 7, 7, 1}

var bufPool = sync.Pool{
	New: func() any {
		return new([11]byte)
	},
}

func encodeUVarint(x uint64) []byte {
	var i int = 0
	buf := bufPool.Get().(*[11]byte)
	for i = 0; i < len(bitShifts); i++ {
		buf[i] = getLSB(byte(x), bitShifts[i]) | 0b10000000
		x = x >> bitShifts[i]
		if x == 0 {
			break
		}
	}

	buf[i] = buf[i] & 0b01111111
	out := append(make([]byte, 0, i+1), buf[:i+1]...)
	bufPool.Put(buf)
	return out
}

func decodeUVarint(buf []byte) (uint64, int) {
	v, n := binary.Uvarint(buf)
	return v, n
}

// EncodeIntList writes each non-negative integer as an unsigned varint.
// Unigram count tables and flattened bigram triples both go through this codec.
func EncodeIntList(arr []int) []byte {
	buf := make([]byte, 0)
	for i := 0; i < len(arr); i++ {
		buf = append(buf, encodeUVarint(uint64(arr[i]))...)
	}
	return buf
}

func DecodeIntList(buf []byte) []int {
	var results []int
	for len(buf) > 0 {
		v, n := decodeUVarint(buf)
		if n == 0 {
			break
		}

		results = append(results, int(v))
		buf = buf[n:]
	}
	return results
}

// EncodeBigramTriples flattens a bigram count table into (prev, next, count)
// triples in an arbitrary but self-contained order, then varint-encodes them.
func EncodeBigramTriples(counts map[[2]int]int) []byte {
	flat := make([]int, 0, len(counts)*3)
	for pair, count := range counts {
		flat = append(flat, pair[0], pair[1], count)
	}
	return EncodeIntList(flat)
}

func DecodeBigramTriples(buf []byte) (map[[2]int]int, error) {
	flat := DecodeIntList(buf)
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("bigram table is %d integers, not a multiple of 3", len(flat))
	}
	counts := make(map[[2]int]int, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		counts[[2]int{flat[i], flat[i+1]}] = flat[i+2]
	}
	return counts, nil
}

// Compress applies zstd to an already-serialized block. Count tables shrink
// well here because varint bytes over a skewed frequency distribution are
// highly repetitive.
func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()
	return decoder.DecodeAll(data, nil)
}
