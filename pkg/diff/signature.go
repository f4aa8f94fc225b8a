package diff

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/rolldiff/rolldiff/pkg/rolling"
)

// Entry fingerprints a single chunk of the base file.
type Entry struct {
	// Index is the zero-based ordinal of the entry among the retained chunks
	// of the base file's non-overlapping partition, in base file order.
	// Dropped duplicate and colliding chunks consume no index.
	Index uint32 `json:"index"`
	// Strong is the BLAKE2s-256 digest of the chunk contents.
	Strong []byte `json:"checksum"`
	// Chunk is the chunk contents.
	Chunk []byte `json:"bytes"`
}

// EnsureValid verifies that entry invariants are respected.
func (e *Entry) EnsureValid() error {
	// A nil entry is not valid.
	if e == nil {
		return errors.New("nil entry")
	}

	// Ensure that the strong digest has the expected size.
	if len(e.Strong) != StrongHashSize {
		return errors.New("strong digest has incorrect length")
	}

	// Ensure that the chunk is non-empty and matches its digest.
	if len(e.Chunk) == 0 {
		return errors.New("empty chunk")
	} else if !bytes.Equal(e.Strong, strongHash(e.Chunk)) {
		return errors.New("strong digest does not match chunk contents")
	}

	// Success.
	return nil
}

// Signature is the chunk fingerprint table for a base file, keyed by weak
// hash. It is constructed once by NewSignature and treated as read-only
// afterward, so it may be shared between delta generation and patching.
type Signature map[uint32]*Entry

// EnsureValid verifies that signature invariants are respected: valid
// entries, a uniform chunk size, and unique indices forming a contiguous
// prefix of the naturals. It is primarily intended for tables loaded from
// untrusted storage - tables built by NewSignature maintain these invariants
// by construction.
func (s Signature) EnsureValid() error {
	chunkSize := 0
	indices := make(map[uint32]bool, len(s))
	for _, entry := range s {
		if err := entry.EnsureValid(); err != nil {
			return errors.Wrap(err, "invalid entry")
		}
		if chunkSize == 0 {
			chunkSize = len(entry.Chunk)
		} else if len(entry.Chunk) != chunkSize {
			return errors.New("inconsistent chunk sizes")
		}
		if indices[entry.Index] {
			return errors.New("duplicate chunk index")
		}
		indices[entry.Index] = true
	}
	for i := uint32(0); i < uint32(len(s)); i++ {
		if !indices[i] {
			return errors.Errorf("chunk index %d missing from table", i)
		}
	}
	return nil
}

// chunksByIndex builds a secondary index from chunk index to chunk contents.
// Match resolution during patching is O(1) against this map, where a scan of
// the weak-hash-keyed table would be linear per token.
func (s Signature) chunksByIndex() map[uint32][]byte {
	result := make(map[uint32][]byte, len(s))
	for _, entry := range s {
		result[entry.Index] = entry.Chunk
	}
	return result
}

// NewSignature partitions base into non-overlapping chunks of chunkSize bytes
// and builds the fingerprint table using the specified weak hash algorithm.
// Any trailing bytes shorter than chunkSize are ignored - the delta encoder
// carries such tails as literals. It returns the table along with the number
// of weak hash collisions encountered.
//
// When two distinct chunks produce the same weak hash, the first-seen entry
// wins and the collision is counted; duplicate chunks with identical contents
// are silently ignored. Indices are only allocated for retained entries, so
// the table's indices always form a contiguous prefix.
func NewSignature(base []byte, chunkSize int, algorithm rolling.Algorithm) (Signature, uint, error) {
	// Verify that the chunk size is sensible.
	if chunkSize < 1 {
		return nil, 0, errors.New("non-positive chunk size")
	}

	// Create the table.
	signature := make(Signature)

	// Create the weak hash. A single instance suffices because Initialize
	// resets its state for every chunk.
	weak := rolling.New(algorithm)

	// Walk the base in chunk-size strides, ignoring any short tail.
	var collisions uint
	var nextIndex uint32
	for offset := 0; offset+chunkSize <= len(base); offset += chunkSize {
		chunk := base[offset : offset+chunkSize]
		hash := weak.Initialize(chunk)

		// Check for an existing entry under this weak hash. Identical chunk
		// contents are a duplicate rather than a collision.
		if existing, ok := signature[hash]; ok {
			if !bytes.Equal(existing.Chunk, chunk) {
				collisions++
			}
			continue
		}

		// Record the entry. The chunk is copied because the table outlives
		// the caller's buffer.
		chunkCopy := make([]byte, chunkSize)
		copy(chunkCopy, chunk)
		signature[hash] = &Entry{
			Index:  nextIndex,
			Strong: strongHash(chunkCopy),
			Chunk:  chunkCopy,
		}
		nextIndex++
	}

	// Success.
	return signature, collisions, nil
}
