package archive

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFixture assembles a minimal, well-formed DAT archive byte image:
// a primary header, an MFT header with 3 entries (0 reserved, 1 a raw data
// blob, 2 the MFT index itself), and one index record mapping file id 42 to
// MFT record 1.
func buildFixture(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	const (
		mftOffset  = 64
		entry1Off  = 168
		entry1Size = 11 // "hello world"
		indexOff   = 160
		indexSize  = 8
	)

	primary := DatHeader{
		Version:    1,
		Identifier: [3]byte{'D', 'A', 'T'},
		HeaderSize: datHeaderSize,
		MFTOffset:  mftOffset,
		MFTSize:    3 * mftEntrySize,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, primary))
	buf.Write(make([]byte, mftOffset-buf.Len())) // pad up to mftOffset

	mft := MFTHeader{Identifier: mftMagic, NumEntries: 3}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, mft))

	entry0 := MFTEntry{} // reserved
	entry1 := MFTEntry{Offset: entry1Off, Size: entry1Size}
	entry2 := MFTEntry{Offset: indexOff, Size: indexSize}
	for _, e := range []MFTEntry{entry0, entry1, entry2} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, e))
	}

	require.NoError(t, binary.Write(&buf, binary.LittleEndian, MFTIndexEntry{FileID: 42, BaseID: 1}))
	buf.WriteString("hello world")

	return buf.Bytes()
}

func TestOpenAndExtractRawEntry(t *testing.T) {
	data := buildFixture(t)
	a, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	out, err := a.Extract(42)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(out))
}

func TestExtractUnknownID(t *testing.T) {
	data := buildFixture(t)
	a, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = a.Extract(999)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	data := buildFixture(t)
	data[64] = 'X' // corrupt the MFT header identifier
	_, err := Open(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestExtractManyConcurrent(t *testing.T) {
	data := buildFixture(t)
	a, err := Open(bytes.NewReader(data))
	require.NoError(t, err)

	out, err := a.ExtractMany(context.Background(), []uint32{42, 42, 42})
	require.NoError(t, err)
	require.Equal(t, "hello world", string(out[42]))
}

func TestExtractWithCache(t *testing.T) {
	data := buildFixture(t)
	a, err := Open(bytes.NewReader(data), WithCache(16))
	require.NoError(t, err)

	out1, err := a.Extract(42)
	require.NoError(t, err)
	out2, err := a.Extract(42) // served from cache
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}
