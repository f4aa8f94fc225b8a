package rolling

import (
	"bytes"
	"testing"
)

// TestAdler32KnownAnswer verifies the full-window Adler-32 hash against a
// precomputed value.
func TestAdler32KnownAnswer(t *testing.T) {
	hash := NewAdler32().Initialize([]byte("hello world"))
	if hash != 436929629 {
		t.Error("incorrect Adler-32 hash:", hash, "!=", 436929629)
	}
}

// TestAdler32Roll verifies rolled Adler-32 hashes against precomputed values.
func TestAdler32Roll(t *testing.T) {
	adler := NewAdler32()
	if hash := adler.Initialize([]byte("hello world")); hash != 436929629 {
		t.Fatal("incorrect initial hash:", hash, "!=", 436929629)
	}
	if hash := adler.Roll('a'); hash != 434635862 {
		t.Error("incorrect hash after first roll:", hash, "!=", 434635862)
	}
	if hash := adler.Roll('m'); hash != 435029086 {
		t.Error("incorrect hash after second roll:", hash, "!=", 435029086)
	}
	if window := adler.Window(); !bytes.Equal(window, []byte("llo worldam")) {
		t.Error("incorrect window contents after rolling:", string(window))
	}
}

// TestAdler32SumDoesNotMutate verifies that Sum32 reports the last computed
// hash without changing state.
func TestAdler32SumDoesNotMutate(t *testing.T) {
	adler := NewAdler32()
	hash := adler.Initialize([]byte("hello world"))
	if adler.Sum32() != hash || adler.Sum32() != hash {
		t.Error("repeated Sum32 calls disagree with Initialize result")
	}
}

// TestAdler32RollBeforeInitializePanics verifies that rolling an empty window
// is treated as a programming error.
func TestAdler32RollBeforeInitializePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("roll before initialization did not panic")
		}
	}()
	NewAdler32().Roll('x')
}
