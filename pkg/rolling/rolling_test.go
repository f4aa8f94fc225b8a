package rolling

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestParseAlgorithm verifies algorithm name parsing for valid and invalid
// names.
func TestParseAlgorithm(t *testing.T) {
	if algorithm, err := ParseAlgorithm("adler"); err != nil {
		t.Error("valid algorithm name failed to parse:", err)
	} else if algorithm != AlgorithmAdler32 {
		t.Error("incorrect algorithm parsed for adler")
	}
	if algorithm, err := ParseAlgorithm("fletcher"); err != nil {
		t.Error("valid algorithm name failed to parse:", err)
	} else if algorithm != AlgorithmFletcher32 {
		t.Error("incorrect algorithm parsed for fletcher")
	}
	if _, err := ParseAlgorithm("md5"); err == nil {
		t.Error("invalid algorithm name parsed without error")
	}
	if _, err := ParseAlgorithm(""); err == nil {
		t.Error("empty algorithm name parsed without error")
	}
}

// TestAlgorithmString verifies the human-readable algorithm representations.
func TestAlgorithmString(t *testing.T) {
	if AlgorithmAdler32.String() != "adler" {
		t.Error("incorrect string for Adler-32")
	}
	if AlgorithmFletcher32.String() != "fletcher" {
		t.Error("incorrect string for Fletcher-32")
	}
	if Algorithm(200).String() != "unknown" {
		t.Error("incorrect string for invalid algorithm")
	}
}

// rollingEquivalenceTestCase verifies that rolling a window across a byte
// sequence produces the same hash and window contents at every offset as
// initializing a fresh hash over that offset's window from scratch.
type rollingEquivalenceTestCase struct {
	algorithm  Algorithm
	length     int
	seed       int64
	windowSize int
}

// run executes the test case.
func (c rollingEquivalenceTestCase) run(t *testing.T) {
	// Mark this as a helper function.
	t.Helper()

	// Generate repeatable random data.
	random := rand.New(rand.NewSource(c.seed))
	data := make([]byte, c.length)
	random.Read(data)

	// Prime the rolled hash over the first window.
	rolled := New(c.algorithm)
	rolled.Initialize(data[:c.windowSize])

	// Slide across the data, comparing against from-scratch hashes at every
	// offset.
	fresh := New(c.algorithm)
	for offset := 1; offset+c.windowSize <= len(data); offset++ {
		rolledHash := rolled.Roll(data[offset+c.windowSize-1])
		freshHash := fresh.Initialize(data[offset : offset+c.windowSize])
		if rolledHash != freshHash {
			t.Fatalf(
				"rolled hash diverged from fresh hash at offset %d (window size %d): %d != %d",
				offset, c.windowSize, rolledHash, freshHash,
			)
		}
		if !bytes.Equal(rolled.Window(), data[offset:offset+c.windowSize]) {
			t.Fatalf("rolled window diverged from data at offset %d", offset)
		}
	}
}

// TestAdler32RollingEquivalence verifies rolling/from-scratch equivalence for
// Adler-32 across a range of window sizes.
func TestAdler32RollingEquivalence(t *testing.T) {
	for _, windowSize := range []int{2, 3, 4, 5, 8, 16, 32} {
		test := rollingEquivalenceTestCase{
			algorithm:  AlgorithmAdler32,
			length:     512,
			seed:       473,
			windowSize: windowSize,
		}
		test.run(t)
	}
}

// TestFletcher32RollingEquivalence verifies rolling/from-scratch equivalence
// for Fletcher-32 across a range of window sizes.
func TestFletcher32RollingEquivalence(t *testing.T) {
	for _, windowSize := range []int{2, 3, 4, 5, 8, 16, 32} {
		test := rollingEquivalenceTestCase{
			algorithm:  AlgorithmFletcher32,
			length:     512,
			seed:       182,
			windowSize: windowSize,
		}
		test.run(t)
	}
}

// TestNewInvalidAlgorithmPanics verifies that constructing a hash for an
// invalid algorithm is treated as a programming error.
func TestNewInvalidAlgorithmPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid algorithm construction did not panic")
		}
	}()
	New(Algorithm(200))
}
