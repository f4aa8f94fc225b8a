package diff

import (
	"bytes"
	"testing"

	"github.com/rolldiff/rolldiff/pkg/rolling"
)

// TestPatchAssembly verifies that literals and matches are assembled in
// operation order.
func TestPatchAssembly(t *testing.T) {
	signature, _, err := NewSignature([]byte("abcdwxyz"), 4, rolling.AlgorithmAdler32)
	if err != nil {
		t.Fatal("unable to generate signature:", err)
	}

	delta := []Operation{
		MatchOperation(1),
		LiteralOperation('-'),
		MatchOperation(0),
		LiteralOperation('!'),
	}
	result, err := Patch(delta, signature)
	if err != nil {
		t.Fatal("unable to apply delta:", err)
	}
	if !bytes.Equal(result, []byte("wxyz-abcd!")) {
		t.Error("incorrect reconstruction:", string(result))
	}
}

// TestPatchEmptyDelta verifies that an empty delta reconstructs an empty
// file.
func TestPatchEmptyDelta(t *testing.T) {
	result, err := Patch(nil, Signature{})
	if err != nil {
		t.Fatal("unable to apply empty delta:", err)
	}
	if len(result) != 0 {
		t.Error("empty delta produced output")
	}
}

// TestPatchUnknownIndex verifies that a match referencing an index absent
// from the table is an error.
func TestPatchUnknownIndex(t *testing.T) {
	signature, _, err := NewSignature([]byte("abcd"), 4, rolling.AlgorithmAdler32)
	if err != nil {
		t.Fatal("unable to generate signature:", err)
	}
	if _, err := Patch([]Operation{MatchOperation(7)}, signature); err == nil {
		t.Error("unknown chunk index accepted")
	}
}

// TestPatchInvalidOperationKind verifies that an operation with an unknown
// kind is an error.
func TestPatchInvalidOperationKind(t *testing.T) {
	if _, err := Patch([]Operation{{Kind: OperationKind(9)}}, Signature{}); err == nil {
		t.Error("unknown operation kind accepted")
	}
}
