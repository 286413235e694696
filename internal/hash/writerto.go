package hash

import "io"

// WriterToWithDomain is a type that can write itself to a hash, and knows its domain.
//
// The domain distinguishes the output of different types implementing this interface.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, unique for each implementor
	Domain() string
}

// writeWithDomain writes `(<domain><data>)`.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	if _, err := io.WriteString(w, "("+object.Domain()); err != nil {
		return err
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// BytesWithDomain annotates a chunk of data with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
