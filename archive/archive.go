// Package archive reads the DAT archive container: a fixed-field primary
// header, an MFT (Master File Table) entry list, and an MFT index used to
// resolve entry ids to offsets. Compressed entry bodies are decoded with
// the inflate package.
package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/korlath/inflate"
)

// maxExtractConcurrency bounds the number of entries ExtractMany decodes at
// once, since each decode allocates its own O(declared_size) output buffer.
const maxExtractConcurrency = 8

// Archive is an opened DAT archive, ready to resolve and extract entries.
// It is safe for concurrent use: Extract and ExtractMany may be called from
// multiple goroutines, all read-only against the parsed header and index.
type Archive struct {
	r io.ReaderAt

	header    DatHeader
	mftHeader MFTHeader
	entries   []MFTEntry
	index     []MFTIndexEntry

	cache *decodeCache
	log   *slog.Logger
}

// Open parses the primary header, MFT header, MFT entries, and MFT index
// from r.
func Open(r io.ReaderAt, opts ...Option) (*Archive, error) {
	header, err := readDatHeader(r)
	if err != nil {
		return nil, err
	}
	mftHeader, err := readMFTHeader(r, int64(header.MFTOffset))
	if err != nil {
		return nil, err
	}
	entries, err := readMFTEntries(r, int64(header.MFTOffset), mftHeader.NumEntries)
	if err != nil {
		return nil, err
	}
	index, err := readMFTIndex(r, entries)
	if err != nil {
		return nil, err
	}

	a := &Archive{
		r:         r,
		header:    header,
		mftHeader: mftHeader,
		entries:   entries,
		index:     index,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.log.Debug("archive opened",
		"mft_offset", header.MFTOffset,
		"num_entries", mftHeader.NumEntries,
		"num_index_records", len(index))
	return a, nil
}

// Extract resolves id via the MFT index and returns the entry body,
// inflating it first if the entry is marked compressed.
func (a *Archive) Extract(id uint32) ([]byte, error) {
	if data, ok := a.cache.get(id); ok {
		a.log.Debug("extract cache hit", "id", id)
		return data, nil
	}

	entry, err := lookup(a.index, a.entries, id)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, entry.Size)
	if _, err := a.r.ReadAt(raw, int64(entry.Offset)); err != nil {
		return nil, fmt.Errorf("reading entry %d body: %w", id, err)
	}

	if !entry.Compressed() {
		a.log.Debug("extract raw entry", "id", id, "size", entry.Size)
		a.cache.add(id, raw)
		return raw, nil
	}

	out, err := inflate.Decompress(raw, 0)
	if err != nil {
		return nil, fmt.Errorf("inflating entry %d: %w", id, err)
	}
	a.log.Debug("extract inflated entry", "id", id, "compressed_size", entry.Size, "size", len(out))
	a.cache.add(id, out)
	return out, nil
}

// ExtractMany decodes several entries concurrently, bounded by
// maxExtractConcurrency. It returns every entry once all have been
// extracted, or the first error encountered. After an error, entries whose
// extraction has not yet started are skipped; extractions already running
// finish before ExtractMany returns.
func (a *Archive) ExtractMany(ctx context.Context, ids []uint32) (map[uint32][]byte, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxExtractConcurrency)

	results := make([][]byte, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := a.Extract(id)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[uint32][]byte, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	return out, nil
}
