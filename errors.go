package inflate

import "errors"

var (
	// ErrTruncated is returned when the bit stream is asked for bits past
	// the end of the input.
	ErrTruncated = errors.New("inflate: truncated input")
	// ErrInvalidTable is returned when a Huffman table description is
	// malformed: an alphabet larger than MaxSymbolValue, or a decode
	// attempted against a table with no assigned codes.
	ErrInvalidTable = errors.New("inflate: invalid huffman table")
	// ErrInvalidCode is returned when the bit stream does not resolve to
	// any assigned code in a table (over-long or corrupt code).
	ErrInvalidCode = errors.New("inflate: invalid huffman code")
	// ErrInvalidLengthCode is returned for a back-reference length code
	// whose quotient is out of range.
	ErrInvalidLengthCode = errors.New("inflate: invalid length code")
	// ErrInvalidOffsetCode is returned for a back-reference offset code
	// whose quotient is out of range.
	ErrInvalidOffsetCode = errors.New("inflate: invalid offset code")
	// ErrBackrefRange is returned when a back-reference points before the
	// start of the output buffer.
	ErrBackrefRange = errors.New("inflate: back-reference out of range")
)
