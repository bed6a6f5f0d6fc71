package inflate

import (
	"errors"
	"fmt"
)

// MaxSymbolValue is the largest alphabet size (number of describable
// symbols) a literal/length or offset table may declare.
const MaxSymbolValue = 285

// maxCodeLength is the longest canonical code length the decoder supports.
const maxCodeLength = 31

// fastBits is the width of the fast lookup table, in bits.
const fastBits = 8

// Pair is one (symbol, code length) entry fed into buildHuffman.
type Pair struct {
	Symbol uint16
	Length uint8
}

type fastEntry struct {
	symbol uint16
	length uint8 // 0 means "no entry"
}

// huffmanDecoder is a canonical Huffman decoder built from a set of
// (symbol, length) pairs. It owns its tables by value; callers build one per
// Huffman table description and discard it once the block using it is done.
type huffmanDecoder struct {
	fast [1 << fastBits]fastEntry

	// For each code length 1..maxCodeLength: the number of symbols at that
	// length, the first (lowest) canonical code value at that length, and
	// the index in symbols[] where that length's symbols begin.
	count     [maxCodeLength + 1]uint16
	firstCode [maxCodeLength + 1]uint32
	firstIdx  [maxCodeLength + 1]int

	symbols   []uint16
	maxLength uint8
}

// buildHuffman constructs a canonical Huffman decoder from pairs.
//
// Symbols are bucketed by length in head-of-list order: within a length,
// symbols inserted later end up earlier in canonical order. Codes are then
// assigned length by length, shortest first, starting from code 0 and
// shifting left by one bit between lengths.
func buildHuffman(pairs []Pair) (*huffmanDecoder, error) {
	var buckets [maxCodeLength + 1][]uint16
	for _, p := range pairs {
		if p.Length == 0 || int(p.Length) > maxCodeLength {
			return nil, fmt.Errorf("%w: code length %d out of range", ErrInvalidTable, p.Length)
		}
		// prepend: later insertions at the same length sort first
		buckets[p.Length] = append([]uint16{p.Symbol}, buckets[p.Length]...)
	}

	d := &huffmanDecoder{}
	code := uint32(0)
	for length := 1; length <= maxCodeLength; length++ {
		d.firstIdx[length] = len(d.symbols)
		d.firstCode[length] = code

		bucket := buckets[length]
		d.count[length] = uint16(len(bucket))
		if len(bucket) > 0 {
			d.maxLength = uint8(length)
		}

		for i, sym := range bucket {
			d.symbols = append(d.symbols, sym)
			if length <= fastBits {
				fillFastTable(d, sym, uint32(length), code+uint32(i))
			}
		}
		code += uint32(len(bucket))
		code <<= 1
	}
	return d, nil
}

// fillFastTable maps every 8-bit prefix consistent with (length, codeValue)
// to (symbol, length) in the fast table.
func fillFastTable(d *huffmanDecoder, symbol uint16, length, codeValue uint32) {
	shift := fastBits - length
	base := codeValue << shift
	for p := uint32(0); p < (1 << shift); p++ {
		d.fast[base+p] = fastEntry{symbol: symbol, length: uint8(length)}
	}
}

// decode reads one symbol from br using d, consuming exactly as many bits as
// the matched code's length.
func (d *huffmanDecoder) decode(br *bitReader) (uint16, error) {
	if len(d.symbols) == 0 {
		return 0, fmt.Errorf("%w: empty table", ErrInvalidTable)
	}

	prefix, err := br.peek(fastBits)
	if err == nil {
		if e := d.fast[prefix]; e.length != 0 {
			if err := br.drop(uint(e.length)); err != nil {
				return 0, err
			}
			return e.symbol, nil
		}
	} else if !errors.Is(err, ErrTruncated) {
		return 0, err
	}

	// Slow path: walk bit by bit. It handles codes longer than fastBits, and
	// also any code when fewer than fastBits bits of input remain, so a short
	// code at the very end of the stream still decodes. Nothing has been
	// consumed yet, so the incremental code value starts from scratch here.
	code := uint32(0)
	for length := 1; length <= int(d.maxLength); length++ {
		bit, err := br.take(1)
		if err != nil {
			return 0, err
		}
		code = (code << 1) | bit
		cnt := uint32(d.count[length])
		if code-d.firstCode[length] < cnt {
			idx := d.firstIdx[length] + int(code-d.firstCode[length])
			return d.symbols[idx], nil
		}
	}
	return 0, fmt.Errorf("%w: no code matched after %d bits", ErrInvalidCode, d.maxLength)
}
