package inflate

import (
	"fmt"
	"io"
)

// Decompress decodes a complete compressed byte range produced by the
// inflate codec (§4.6) and returns the decompressed output.
//
// maxOutputSize, if positive and smaller than the stream's declared size,
// caps the allocated output buffer: decoding stops as soon as the buffer is
// full rather than once the declared size is reached.
func Decompress(data []byte, maxOutputSize int) ([]byte, error) {
	br := newBitReader(data)

	if _, err := br.take(32); err != nil { // stream magic, not validated
		return nil, fmt.Errorf("reading magic: %w", err)
	}

	declaredSize, err := br.take(32)
	if err != nil {
		return nil, fmt.Errorf("reading declared size: %w", err)
	}

	if _, err := br.take(4); err != nil { // discarded bits
		return nil, err
	}
	writeSizeConstAddBits, err := br.take(4)
	if err != nil {
		return nil, err
	}
	writeSizeConstAdd := writeSizeConstAddBits + 1

	outSize := int(declaredSize)
	if maxOutputSize > 0 && maxOutputSize < outSize {
		outSize = maxOutputSize
	}
	out := make([]byte, outSize)

	outPos := 0
	for outPos < len(out) {
		outPos, err = decodeBlock(br, out, outPos, writeSizeConstAdd)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// reader adapts a one-shot Decompress call to the io.ReadCloser interface:
// the whole input is decoded eagerly, and Read serves the result out of an
// in-memory buffer.
type reader struct {
	data      []byte
	readIndex int
}

// NewReader decodes the entirety of r and returns a ReadCloser over the
// decompressed bytes. It is the caller's responsibility to call Close on the
// returned ReadCloser when done.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading compressed input: %w", err)
	}
	out, err := Decompress(compressed, 0)
	if err != nil {
		return nil, err
	}
	return &reader{data: out}, nil
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.readIndex >= len(r.data) {
		return 0, io.EOF
	}
	n = copy(p, r.data[r.readIndex:])
	r.readIndex += n
	return n, nil
}

func (r *reader) Close() error {
	return nil
}
