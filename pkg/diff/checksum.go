package diff

import (
	"golang.org/x/crypto/blake2s"
)

// StrongHashSize is the size of a strong chunk digest in bytes.
const StrongHashSize = blake2s.Size

// strongHash computes the BLAKE2s-256 digest of data. It is used to resolve
// weak hash matches, which many distinct chunks can share.
func strongHash(data []byte) []byte {
	digest := blake2s.Sum256(data)
	return digest[:]
}
