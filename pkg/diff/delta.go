package diff

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/rolldiff/rolldiff/pkg/rolling"
)

// Delta computes the delta operations needed to reconstitute target using the
// chunks fingerprinted in signature. The signature must have been generated
// with the same chunk size and weak hash algorithm - mismatched parameters
// yield a valid but match-free (and thus maximally verbose) delta at best.
//
// The scan is a single forward pass: the weak hash window slides one byte at
// a time across target, and every weak hit is verified against the entry's
// strong digest before a match is emitted. After a match the window is
// reinitialized past the consumed chunk rather than slid chunk-size times.
// Any trailing bytes shorter than the chunk size are emitted as literals,
// mirroring the signature side, which never fingerprints such a tail.
func Delta(target []byte, chunkSize int, algorithm rolling.Algorithm, signature Signature) ([]Operation, error) {
	// Verify that the chunk size is sensible.
	if chunkSize < 1 {
		return nil, errors.New("non-positive chunk size")
	}

	// A target shorter than a single chunk can't contain any matches.
	delta := make([]Operation, 0, len(target)/chunkSize+len(target)%chunkSize)
	if len(target) < chunkSize {
		for _, b := range target {
			delta = append(delta, LiteralOperation(b))
		}
		return delta, nil
	}

	// Prime the weak hash over the first chunk-size window.
	weak := rolling.New(algorithm)
	hash := weak.Initialize(target[:chunkSize])

	// Scan. The loop invariant is that the weak hash window equals
	// target[cursor : cursor+chunkSize] whenever cursor+chunkSize is within
	// bounds.
	cursor := 0
	for {
		// Once fewer than chunkSize bytes remain, no further match is
		// possible and the tail is carried literally.
		if cursor > len(target)-chunkSize {
			for _, b := range target[cursor:] {
				delta = append(delta, LiteralOperation(b))
			}
			break
		}

		// Probe the signature table and verify any weak hit with the strong
		// digest. A weak hit with a mismatched digest is the designed
		// collision path and falls through to the literal case.
		if entry, ok := signature[hash]; ok && bytes.Equal(entry.Strong, strongHash(weak.Window())) {
			delta = append(delta, MatchOperation(entry.Index))
			cursor += chunkSize
			if cursor+chunkSize <= len(target) {
				hash = weak.Initialize(target[cursor : cursor+chunkSize])
			}
			continue
		}

		// No match - emit the cursor byte as a literal and slide the window
		// one byte forward if a full window remains.
		delta = append(delta, LiteralOperation(target[cursor]))
		cursor++
		if cursor+chunkSize <= len(target) {
			hash = weak.Roll(target[cursor+chunkSize-1])
		}
	}

	// Success.
	return delta, nil
}
