package inflate

import "fmt"

// parseHuffmanTable reads a compressed Huffman table description from br and
// builds a decoder from it. Symbols are described in descending order,
// N-1 down to 0, each record produced by the static descriptor decoder
// naming either a run of absent symbols or a run of symbols sharing a code
// length.
func parseHuffmanTable(br *bitReader) (*huffmanDecoder, error) {
	n, err := br.take(16)
	if err != nil {
		return nil, err
	}
	if n > MaxSymbolValue {
		return nil, fmt.Errorf("%w: alphabet size %d exceeds %d", ErrInvalidTable, n, MaxSymbolValue)
	}

	static, err := staticDecoder()
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	r := int(n) - 1
	for r >= 0 {
		d, err := static.decode(br)
		if err != nil {
			return nil, err
		}
		bits := d & 0x1F
		run := int(d>>5) + 1

		if bits == 0 {
			r -= run
			continue
		}
		for i := 0; i < run && r >= 0; i++ {
			pairs = append(pairs, Pair{Symbol: uint16(r), Length: uint8(bits)})
			r--
		}
	}

	return buildHuffman(pairs)
}
