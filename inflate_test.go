package inflate

import (
	"bytes"
	"testing"
)

// writeFrameHeader writes the stream magic (discarded), declaredSize, the
// four discarded bits, and write_size_const_add (encoded as value-1) per
// §4.6.
func writeFrameHeader(w *bitWriter, declaredSize uint32, writeSizeConstAdd uint32) {
	w.writeBits(0, 32) // magic, not validated
	w.writeBits(declaredSize, 32)
	w.writeBits(0, 4)
	w.writeBits(writeSizeConstAdd-1, 4)
}

func TestDecompressEmptyDeclaredStream(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 0, 1)

	out, err := Decompress(w.bytes(), 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestDecompressSingleLiteral(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 1, 1)

	encodeTableDescriptor(t, w, 66, map[uint16]uint8{65: 1}) // T_lit: only 'A' (0x41)
	encodeTableDescriptor(t, w, 0, nil)                      // T_off: unused, empty
	w.writeBits(0, 4)                                        // max_count_exp = 0
	w.writeBits(0b0, 1)                                      // symbol 65's code

	out, err := Decompress(w.bytes(), 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if string(out) != "A" {
		t.Fatalf("got %q, want %q", out, "A")
	}
}

func TestDecompressBackReferenceRLE(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 6, 1)

	// T_lit: symbol 90 ('Z') and symbol 260 (back-reference code 4) both at
	// length 1; head-of-list insertion order during parsing gives 90 the
	// lower code (0), 260 the higher (1).
	encodeTableDescriptor(t, w, 261, map[uint16]uint8{260: 1, 90: 1})
	encodeTableDescriptor(t, w, 1, map[uint16]uint8{0: 1}) // T_off: symbol 0 only
	w.writeBits(0, 4)                                      // max_count_exp = 0

	w.writeBits(0b0, 1) // literal 'Z'
	w.writeBits(0b1, 1) // back-reference: c = 4 -> length_base 4, no extra bits
	w.writeBits(0b0, 1) // offset symbol 0 -> offset_base 0, no extra bits

	out, err := Decompress(w.bytes(), 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if string(out) != "ZZZZZZ" {
		t.Fatalf("got %q, want %q", out, "ZZZZZZ")
	}
}

func TestDecompressMultiBlockBoundary(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 8192, 1)

	// Block 1: 4096 literal 0x00 bytes.
	encodeTableDescriptor(t, w, 1, map[uint16]uint8{0: 1})
	encodeTableDescriptor(t, w, 0, nil)
	w.writeBits(0, 4)
	for i := 0; i < 4096; i++ {
		w.writeBits(0b0, 1)
	}

	// Block 2: 4096 literal 0xFF bytes.
	encodeTableDescriptor(t, w, 256, map[uint16]uint8{255: 1})
	encodeTableDescriptor(t, w, 0, nil)
	w.writeBits(0, 4)
	for i := 0; i < 4096; i++ {
		w.writeBits(0b0, 1)
	}

	out, err := Decompress(w.bytes(), 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 8192 {
		t.Fatalf("expected 8192 bytes, got %d", len(out))
	}
	for i := 0; i < 4096; i++ {
		if out[i] != 0x00 {
			t.Fatalf("byte %d: got %#x, want 0x00", i, out[i])
		}
	}
	for i := 4096; i < 8192; i++ {
		if out[i] != 0xFF {
			t.Fatalf("byte %d: got %#x, want 0xFF", i, out[i])
		}
	}
}

func TestDecompressMaxOutputSizeCap(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 8192, 1)
	encodeTableDescriptor(t, w, 1, map[uint16]uint8{0: 1})
	encodeTableDescriptor(t, w, 0, nil)
	w.writeBits(0, 4)
	for i := 0; i < 4096; i++ {
		w.writeBits(0b0, 1)
	}

	out, err := Decompress(w.bytes(), 10)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected capped output of 10 bytes, got %d", len(out))
	}
}

func TestNewReader(t *testing.T) {
	w := &bitWriter{}
	writeFrameHeader(w, 1, 1)
	encodeTableDescriptor(t, w, 66, map[uint16]uint8{65: 1})
	encodeTableDescriptor(t, w, 0, nil)
	w.writeBits(0, 4)
	w.writeBits(0b0, 1)

	r, err := NewReader(bytes.NewReader(w.bytes()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "A" {
		t.Fatalf("got %q, want %q", buf[:n], "A")
	}
}
