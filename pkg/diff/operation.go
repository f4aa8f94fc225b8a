package diff

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OperationKind encodes the variant of an Operation.
type OperationKind uint8

const (
	// OperationKindLiteral indicates an operation carrying a single raw byte.
	OperationKindLiteral OperationKind = iota
	// OperationKindMatch indicates an operation referencing an indexed chunk
	// of the signature table.
	OperationKindMatch
)

// Operation is a single delta instruction: either a literal byte to append to
// the output or a reference to a chunk held by the signature table. A delta
// is an ordered sequence of operations which, applied against a compatible
// signature, reconstructs the target file exactly.
type Operation struct {
	// Kind indicates the operation variant.
	Kind OperationKind
	// Index is the referenced chunk index for match operations.
	Index uint32
	// Byte is the raw byte for literal operations.
	Byte byte
}

// LiteralOperation creates an operation carrying a single raw byte.
func LiteralOperation(b byte) Operation {
	return Operation{Kind: OperationKindLiteral, Byte: b}
}

// MatchOperation creates an operation referencing an indexed chunk.
func MatchOperation(index uint32) Operation {
	return Operation{Kind: OperationKindMatch, Index: index}
}

// EnsureValid verifies that operation invariants are respected.
func (o Operation) EnsureValid() error {
	if o.Kind != OperationKindLiteral && o.Kind != OperationKindMatch {
		return errors.New("unknown operation kind")
	}
	return nil
}

// operationWire is the persisted representation of an Operation: exactly one
// of I (a chunk index) or B (a literal byte) must be present.
type operationWire struct {
	Index *uint32 `json:"I,omitempty"`
	Byte  *byte   `json:"B,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case OperationKindLiteral:
		b := o.Byte
		return json.Marshal(operationWire{Byte: &b})
	case OperationKindMatch:
		index := o.Index
		return json.Marshal(operationWire{Index: &index})
	default:
		return nil, errors.New("unknown operation kind")
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var wire operationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Index != nil && wire.Byte == nil {
		*o = MatchOperation(*wire.Index)
	} else if wire.Byte != nil && wire.Index == nil {
		*o = LiteralOperation(*wire.Byte)
	} else {
		return errors.New("operation must carry exactly one of an index or a byte")
	}
	return nil
}
