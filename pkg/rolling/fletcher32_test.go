package rolling

import (
	"bytes"
	"testing"
)

// TestFletcher32KnownAnswer verifies the full-window Fletcher-32 hash against
// a precomputed value.
func TestFletcher32KnownAnswer(t *testing.T) {
	hash := NewFletcher32().Initialize([]byte("hello world"))
	if hash != 436208732 {
		t.Error("incorrect Fletcher-32 hash:", hash, "!=", 436208732)
	}
}

// TestFletcher32Roll verifies rolled Fletcher-32 hashes against precomputed
// values.
func TestFletcher32Roll(t *testing.T) {
	fletcher := NewFletcher32()
	if hash := fletcher.Initialize([]byte("hello world")); hash != 436208732 {
		t.Fatal("incorrect initial hash:", hash, "!=", 436208732)
	}
	if hash := fletcher.Roll('a'); hash != 433914965 {
		t.Error("incorrect hash after first roll:", hash, "!=", 433914965)
	}
	if hash := fletcher.Roll('m'); hash != 434308189 {
		t.Error("incorrect hash after second roll:", hash, "!=", 434308189)
	}
	if window := fletcher.Window(); !bytes.Equal(window, []byte("llo worldam")) {
		t.Error("incorrect window contents after rolling:", string(window))
	}
}

// TestFletcher32RollBeforeInitializePanics verifies that rolling an empty
// window is treated as a programming error.
func TestFletcher32RollBeforeInitializePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("roll before initialization did not panic")
		}
	}()
	NewFletcher32().Roll('x')
}
