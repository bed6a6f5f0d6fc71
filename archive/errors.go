package archive

import "errors"

var (
	// ErrBadMagic is returned when the MFT header's identifier field does
	// not match the expected "Mft\x1A" signature.
	ErrBadMagic = errors.New("archive: bad MFT magic")
	// ErrEntryNotFound is returned when no MFT index record matches a
	// requested entry id.
	ErrEntryNotFound = errors.New("archive: entry not found")
	// ErrEntryRange is returned when an MFT index record points at an
	// entry slot outside the MFT entry table.
	ErrEntryRange = errors.New("archive: index points outside entry table")
)
