package hash

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/zeebo/blake3"
)

// Hash is a domain separated hash with an extendable output, used to derive
// field elements and points from arbitrary data.
//
// Internally this is blake3, read through its digest as an XOF.
type Hash struct {
	h *blake3.Hasher
}

// New creates an empty Hash.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest returns a reader for the current output of the function.
//
// This does not finalize the state: further writes to hash are allowed,
// and do not affect readers returned earlier.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - *saferith.Nat
//   - hash.WriterToWithDomain
//
// This function will apply its own domain separation for the first two types.
// The last type already suggests which domain to use, and this function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			if err := writeWithDomain(hash.h, BytesWithDomain{TheDomain: "[]byte", Bytes: t}); err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case *saferith.Nat:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *saferith.Nat: nil")
			}
			if err := writeWithDomain(hash.h, BytesWithDomain{TheDomain: "saferith.Nat", Bytes: t.Big().Bytes()}); err != nil {
				return fmt.Errorf("hash.Hash: write *saferith.Nat: %w", err)
			}
		case WriterToWithDomain:
			if err := writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
