package inflate

import "fmt"

// decodeBlock decodes one block frame into out, starting at out[outPos:],
// and returns the new out_pos. writeSizeConstAdd is the per-stream constant
// folded into every back-reference length (§4.6).
func decodeBlock(br *bitReader, out []byte, outPos int, writeSizeConstAdd uint32) (int, error) {
	litTable, err := parseHuffmanTable(br)
	if err != nil {
		return outPos, fmt.Errorf("literal/length table: %w", err)
	}
	offTable, err := parseHuffmanTable(br)
	if err != nil {
		return outPos, fmt.Errorf("offset table: %w", err)
	}

	maxCountExp, err := br.take(4)
	if err != nil {
		return outPos, err
	}
	budget := (maxCountExp + 1) << 12

	for budget > 0 && outPos < len(out) {
		s, err := litTable.decode(br)
		if err != nil {
			return outPos, fmt.Errorf("literal/length symbol: %w", err)
		}

		if s < 256 {
			out[outPos] = byte(s)
			outPos++
			budget--
			continue
		}

		length, err := decodeLength(br, uint32(s)-256, writeSizeConstAdd)
		if err != nil {
			return outPos, err
		}
		offset, err := decodeOffset(br, offTable)
		if err != nil {
			return outPos, err
		}
		if int(offset) > outPos {
			return outPos, fmt.Errorf("%w: offset %d at out_pos %d", ErrBackrefRange, offset, outPos)
		}

		for i := uint32(0); i < length && outPos < len(out); i++ {
			out[outPos] = out[outPos-int(offset)]
			outPos++
		}
		budget--
	}

	return outPos, nil
}

// decodeLength computes the back-reference length for length code c,
// consuming any extra bits the code requires.
func decodeLength(br *bitReader, c uint32, writeSizeConstAdd uint32) (uint32, error) {
	q, r := c/4, c%4

	var base uint32
	switch {
	case c == 28:
		base = 0xFF
	case q == 0:
		base = c
	case q >= 1 && q <= 6:
		base = (1 << (q - 1)) * (4 + r)
	default:
		return 0, fmt.Errorf("%w: quotient %d out of range", ErrInvalidLengthCode, q)
	}

	length := base
	if q > 1 && c != 28 {
		extra, err := br.take(uint(q - 1))
		if err != nil {
			return 0, err
		}
		length = base | extra
	}
	return length + writeSizeConstAdd, nil
}

// decodeOffset decodes the back-reference offset symbol from offTable and
// computes the final offset, consuming any extra bits the code requires.
func decodeOffset(br *bitReader, offTable *huffmanDecoder) (uint32, error) {
	s, err := offTable.decode(br)
	if err != nil {
		return 0, fmt.Errorf("offset symbol: %w", err)
	}
	sv := uint32(s)
	q, r := sv/2, sv%2

	var base uint32
	switch {
	case q == 0:
		base = sv
	case q >= 1 && q <= 16:
		base = (1 << (q - 1)) * (2 + r)
	default:
		return 0, fmt.Errorf("%w: quotient %d out of range", ErrInvalidOffsetCode, q)
	}

	offset := base
	if q > 1 {
		extra, err := br.take(uint(q - 1))
		if err != nil {
			return 0, err
		}
		offset = base | extra
	}
	return offset + 1, nil
}
