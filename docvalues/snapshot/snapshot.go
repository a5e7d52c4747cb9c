// Package snapshot persists in-memory doc-values stores to a byte stream.
//
// The format is a small framed blob: fixed header, optionally compressed
// payload, xxhash64 checksum. Encoded point bytes inside the payload are
// preserved bit-for-bit; the frame only wraps them. This is a convenience
// for embedded users of the in-memory stores, not the storage engine's own
// on-disk layout.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/pointfield/docvalues"
	"github.com/hupe1980/pointfield/numeric"
)

// Compression selects the payload compression codec.
type Compression uint8

const (
	// CompressionNone stores the payload verbatim.
	CompressionNone Compression = iota
	// CompressionZstd uses zstd block compression.
	CompressionZstd
	// CompressionLZ4 uses lz4 block compression.
	CompressionLZ4
)

// String returns the string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

const (
	magic   = "PFDV"
	version = 1

	sectionSortedSet     = 1
	sectionNumericColumn = 2
)

// ErrChecksumMismatch indicates a corrupted snapshot payload.
var ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")

// WriteSortedSet writes a sealed sorted-set store for one field.
func WriteSortedSet(w io.Writer, kind numeric.Kind, store *docvalues.MemorySortedSet, comp Compression) error {
	payload := binary.AppendUvarint(nil, uint64(store.DocCount()))

	width := kind.ByteWidth()
	view := store.View()
	for _, docID := range store.DocIDs() {
		if !view.Advance(docID) {
			return fmt.Errorf("snapshot: store lists doc %d without values", docID)
		}
		payload = binary.AppendUvarint(payload, uint64(docID))
		payload = binary.AppendUvarint(payload, uint64(view.Count()))
		for i := 0; i < view.Count(); i++ {
			b := view.Ordinal(i)
			if len(b) != width {
				return fmt.Errorf("snapshot: doc %d ordinal %d: got %d bytes, want %d", docID, i, len(b), width)
			}
			payload = append(payload, b...)
		}
	}

	return writeFrame(w, sectionSortedSet, kind, comp, payload)
}

// ReadSortedSet reads a sorted-set store written by WriteSortedSet.
func ReadSortedSet(r io.Reader) (numeric.Kind, *docvalues.MemorySortedSet, error) {
	section, kind, payload, err := readFrame(r)
	if err != nil {
		return 0, nil, err
	}
	if section != sectionSortedSet {
		return 0, nil, fmt.Errorf("snapshot: unexpected section %d, want sorted set", section)
	}

	store := docvalues.NewMemorySortedSet()
	width := kind.ByteWidth()

	docCount, payload, err := readUvarint(payload)
	if err != nil {
		return 0, nil, err
	}
	for range docCount {
		var docID, valueCount uint64
		docID, payload, err = readUvarint(payload)
		if err != nil {
			return 0, nil, err
		}
		valueCount, payload, err = readUvarint(payload)
		if err != nil {
			return 0, nil, err
		}
		for range valueCount {
			if len(payload) < width {
				return 0, nil, fmt.Errorf("snapshot: short payload for doc %d", docID)
			}
			encoded := make([]byte, width)
			copy(encoded, payload[:width])
			payload = payload[width:]
			store.Add(uint32(docID), encoded)
		}
	}
	store.Seal()
	return kind, store, nil
}

// WriteNumericColumn writes a single-valued numeric column for one field.
func WriteNumericColumn(w io.Writer, col *docvalues.NumericColumn, comp Compression) error {
	payload := binary.AppendUvarint(nil, uint64(col.DocCount()))
	for docID, bits := range col.All() {
		payload = binary.AppendUvarint(payload, uint64(docID))
		payload = binary.LittleEndian.AppendUint64(payload, uint64(bits))
	}
	return writeFrame(w, sectionNumericColumn, col.Kind(), comp, payload)
}

// ReadNumericColumn reads a column written by WriteNumericColumn.
func ReadNumericColumn(r io.Reader) (*docvalues.NumericColumn, error) {
	section, kind, payload, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	if section != sectionNumericColumn {
		return nil, fmt.Errorf("snapshot: unexpected section %d, want numeric column", section)
	}

	col := docvalues.NewNumericColumn(kind)
	docCount, payload, err := readUvarint(payload)
	if err != nil {
		return nil, err
	}
	for range docCount {
		var docID uint64
		docID, payload, err = readUvarint(payload)
		if err != nil {
			return nil, err
		}
		if len(payload) < 8 {
			return nil, fmt.Errorf("snapshot: short payload for doc %d", docID)
		}
		bits := int64(binary.LittleEndian.Uint64(payload))
		payload = payload[8:]
		col.Add(uint32(docID), bits)
	}
	return col, nil
}

// writeFrame compresses the payload, prepends the header and appends the
// checksum of the stored (possibly compressed) bytes.
func writeFrame(w io.Writer, section byte, kind numeric.Kind, comp Compression, payload []byte) error {
	stored, err := compress(payload, comp)
	if err != nil {
		return err
	}
	// Incompressible payloads fall back to verbatim storage.
	if len(stored) >= len(payload) {
		stored = payload
		comp = CompressionNone
	}

	header := make([]byte, 0, 32)
	header = append(header, magic...)
	header = append(header, version, section, byte(kind), byte(comp))
	header = binary.AppendUvarint(header, uint64(len(payload)))
	header = binary.AppendUvarint(header, uint64(len(stored)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(stored); err != nil {
		return err
	}

	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(stored))
	_, err = w.Write(sum[:])
	return err
}

func readFrame(r io.Reader) (section byte, kind numeric.Kind, payload []byte, err error) {
	br := newByteReader(r)

	head := make([]byte, 8)
	if _, err = io.ReadFull(br, head); err != nil {
		return 0, 0, nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if string(head[:4]) != magic {
		return 0, 0, nil, fmt.Errorf("snapshot: bad magic %q", head[:4])
	}
	if head[4] != version {
		return 0, 0, nil, fmt.Errorf("snapshot: unsupported version %d", head[4])
	}
	section = head[5]
	kind = numeric.Kind(head[6])
	if !kind.Valid() {
		return 0, 0, nil, fmt.Errorf("snapshot: invalid kind %d", head[6])
	}
	comp := Compression(head[7])

	rawLen, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("snapshot: read payload length: %w", err)
	}
	storedLen, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("snapshot: read stored length: %w", err)
	}

	stored := make([]byte, storedLen)
	if _, err = io.ReadFull(br, stored); err != nil {
		return 0, 0, nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	var sum [8]byte
	if _, err = io.ReadFull(br, sum[:]); err != nil {
		return 0, 0, nil, fmt.Errorf("snapshot: read checksum: %w", err)
	}
	if binary.LittleEndian.Uint64(sum[:]) != xxhash.Sum64(stored) {
		return 0, 0, nil, ErrChecksumMismatch
	}

	payload, err = decompress(stored, comp, int(rawLen))
	if err != nil {
		return 0, 0, nil, err
	}
	return section, kind, payload, nil
}

func compress(payload []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4: %w", err)
		}
		if n == 0 {
			// Incompressible; writeFrame falls back to verbatim.
			return payload, nil
		}
		return dst[:n], nil
	default:
		return nil, fmt.Errorf("snapshot: unknown compression %d", comp)
	}
}

func decompress(stored []byte, comp Compression, rawLen int) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return stored, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd: %w", err)
		}
		defer dec.Close()
		payload, err := dec.DecodeAll(stored, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd: %w", err)
		}
		return payload, nil
	case CompressionLZ4:
		payload := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4: %w", err)
		}
		return payload[:n], nil
	default:
		return nil, fmt.Errorf("snapshot: unknown compression %d", comp)
	}
}

func readUvarint(b []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, nil, errors.New("snapshot: invalid varint")
	}
	return v, b[n:], nil
}

type readByteReader interface {
	io.Reader
	io.ByteReader
}

// byteReader adapts an io.Reader for binary.ReadUvarint without double
// buffering when the source already implements io.ByteReader.
type byteReader struct {
	r io.Reader
	b [1]byte
}

func newByteReader(r io.Reader) readByteReader {
	if rb, ok := r.(readByteReader); ok {
		return rb
	}
	return &byteReader{r: r}
}

func (br *byteReader) Read(p []byte) (int, error) { return br.r.Read(p) }

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.b[:]); err != nil {
		return 0, err
	}
	return br.b[0], nil
}
