package rolling

import (
	"github.com/pkg/errors"
)

// Hash is the interface implemented by rolling checksums. A rolling checksum
// maintains a fixed-size byte window alongside its hash state and can advance
// the window by a single byte without recomputing the hash from scratch.
type Hash interface {
	// Initialize resets the hash state, consumes all bytes of window, and
	// returns the resulting hash. The hash's window is set to a copy of the
	// provided bytes.
	Initialize(window []byte) uint32
	// Roll appends b to the window, drops the oldest windowed byte, and
	// returns the resulting hash. Roll panics if invoked before Initialize -
	// rolling an empty window is a programming error.
	Roll(b byte) uint32
	// Sum32 returns the most recently computed hash without mutating state.
	Sum32() uint32
	// Window returns the current window contents. The returned slice remains
	// valid only until the next Initialize or Roll call.
	Window() []byte
}

// Algorithm identifies a rolling checksum algorithm.
type Algorithm uint8

const (
	// AlgorithmAdler32 indicates the byte-wise rolling Adler-32 checksum.
	AlgorithmAdler32 Algorithm = iota
	// AlgorithmFletcher32 indicates the byte-wise rolling Fletcher-32
	// checksum.
	AlgorithmFletcher32
)

// ParseAlgorithm converts a string-based representation of an algorithm name
// to the appropriate Algorithm value. Unknown names are an error.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "adler":
		return AlgorithmAdler32, nil
	case "fletcher":
		return AlgorithmFletcher32, nil
	default:
		return AlgorithmAdler32, errors.Errorf("unknown algorithm: %q", name)
	}
}

// String provides a human-readable representation of an algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAdler32:
		return "adler"
	case AlgorithmFletcher32:
		return "fletcher"
	default:
		return "unknown"
	}
}

// New creates a rolling hash implementing the specified algorithm. It panics
// if the algorithm is invalid.
func New(algorithm Algorithm) Hash {
	switch algorithm {
	case AlgorithmAdler32:
		return NewAdler32()
	case AlgorithmFletcher32:
		return NewFletcher32()
	default:
		panic("invalid rolling hash algorithm")
	}
}
