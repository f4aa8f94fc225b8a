package diff

import (
	"bytes"

	"github.com/pkg/errors"
)

// Patch applies a delta against the signature table it was generated from,
// returning the reconstructed target contents. Literal operations contribute
// their byte directly; match operations contribute the chunk bytes recorded
// in the corresponding signature entry. A match referencing an index unknown
// to the table makes reconstruction impossible and is an error.
func Patch(delta []Operation, signature Signature) ([]byte, error) {
	// Build the index-keyed chunk lookup once.
	chunks := signature.chunksByIndex()

	// Assemble the output in operation order.
	var output bytes.Buffer
	for _, operation := range delta {
		switch operation.Kind {
		case OperationKindLiteral:
			output.WriteByte(operation.Byte)
		case OperationKindMatch:
			chunk, ok := chunks[operation.Index]
			if !ok {
				return nil, errors.Errorf("delta references unknown chunk index %d", operation.Index)
			}
			output.Write(chunk)
		default:
			return nil, errors.New("unknown operation kind")
		}
	}

	// Success.
	return output.Bytes(), nil
}
