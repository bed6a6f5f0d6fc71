package archive

import (
	"encoding/binary"
	"fmt"
	"io"
)

// mftIndexRecord is the MFT record index holding the archive's lookup
// table (§6.1: "the entry at MFT index 2 is the index itself").
const mftIndexRecord = 2

// MFTEntry is one record of the MFT entry table. The record at index 0 is
// reserved and unused by lookups, but still occupies its on-disk slot.
type MFTEntry struct {
	Offset          uint64
	Size            uint32
	CompressionFlag uint16
	EntryFlag       uint16
	Counter         uint32
	CRC             uint32
}

const mftEntrySize = 8 + 4 + 2 + 2 + 4 + 4

// Compressed reports whether the entry body is an inflate stream rather
// than raw bytes.
func (e MFTEntry) Compressed() bool { return e.CompressionFlag != 0 }

// MFTIndexEntry is one (file_id, base_id) lookup pair from the MFT index.
type MFTIndexEntry struct {
	FileID uint32
	BaseID uint32
}

const mftIndexEntrySize = 4 + 4

func readMFTEntries(r io.ReaderAt, mftOffset int64, numEntries uint32) ([]MFTEntry, error) {
	entries := make([]MFTEntry, numEntries)
	base := mftOffset + mftHeaderSize
	sr := io.NewSectionReader(r, base, int64(numEntries)*mftEntrySize)
	if err := binary.Read(sr, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("reading MFT entries: %w", err)
	}
	return entries, nil
}

func readMFTIndex(r io.ReaderAt, entries []MFTEntry) ([]MFTIndexEntry, error) {
	if int(mftIndexRecord) >= len(entries) {
		return nil, fmt.Errorf("%w: index record %d", ErrEntryRange, mftIndexRecord)
	}
	idxEntry := entries[mftIndexRecord]
	n := idxEntry.Size / mftIndexEntrySize

	index := make([]MFTIndexEntry, n)
	sr := io.NewSectionReader(r, int64(idxEntry.Offset), int64(idxEntry.Size))
	if err := binary.Read(sr, binary.LittleEndian, index); err != nil {
		return nil, fmt.Errorf("reading MFT index: %w", err)
	}
	return index, nil
}

// lookup resolves a query id to the MFT entry record it names, matching
// either field of an index record and jumping to the entry at record index
// base_id (the value, not the matched field).
func lookup(index []MFTIndexEntry, entries []MFTEntry, id uint32) (MFTEntry, error) {
	for _, rec := range index {
		if rec.FileID == id || rec.BaseID == id {
			if int(rec.BaseID) >= len(entries) {
				return MFTEntry{}, fmt.Errorf("%w: base_id %d", ErrEntryRange, rec.BaseID)
			}
			return entries[rec.BaseID], nil
		}
	}
	return MFTEntry{}, fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
}
