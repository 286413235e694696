package curve

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

const (
	formatCompressedEven byte = 0x02
	formatCompressedOdd  byte = 0x03
)

var (
	// ErrIdentity is returned when encoding the point at infinity, which has no compressed form.
	ErrIdentity = errors.New("curve: the identity has no compressed form")
	// ErrNotOnCurve is returned when an x coordinate does not belong to any point on the curve.
	ErrNotOnCurve = errors.New("curve: x is not the coordinate of a point on the curve")
)

func format(odd bool) byte {
	if odd {
		return formatCompressedOdd
	}
	return formatCompressedEven
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output is 0x02 or 0x03, depending on the parity, followed by x in big-endian,
// using at least one byte.
func (cp *CompressedPoint) MarshalBinary() ([]byte, error) {
	if cp.X == nil {
		return nil, errors.New("curve.CompressedPoint.MarshalBinary: x is nil")
	}
	x := cp.X.Big().Bytes()
	if len(x) == 0 {
		x = []byte{0}
	}
	return append([]byte{format(cp.Odd)}, x...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (cp *CompressedPoint) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return errors.New("curve.CompressedPoint.Unmarshal: data is too small")
	}
	if data[0] != formatCompressedEven && data[0] != formatCompressedOdd {
		return fmt.Errorf("curve.CompressedPoint.Unmarshal: incorrect format 0x%02x", data[0])
	}
	cp.Odd = data[0] == formatCompressedOdd
	cp.X = new(saferith.Nat).SetBytes(data[1:])
	return nil
}

// MarshalPoint encodes v as its format byte followed by x as a big-endian
// integer of the byte length of p.
func (c *Curve) MarshalPoint(v *Point) ([]byte, error) {
	if v == nil {
		return nil, errors.New("curve.Point.Marshal: point is nil")
	}
	cp, ok := c.Compress(v)
	if !ok {
		return nil, fmt.Errorf("curve.Point.Marshal: %w", ErrIdentity)
	}
	data := make([]byte, 1+c.byteLen())
	data[0] = format(cp.Odd)
	cp.X.Big().FillBytes(data[1:])
	return data, nil
}

// UnmarshalPoint decodes the output of MarshalPoint, recovering y.
func (c *Curve) UnmarshalPoint(data []byte) (*Point, error) {
	if len(data) != 1+c.byteLen() {
		return nil, fmt.Errorf("curve.Point.Unmarshal: expected %d bytes, got %d", 1+c.byteLen(), len(data))
	}
	var cp CompressedPoint
	if err := cp.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	if _, _, lt := cp.X.Cmp(c.p.Nat()); lt != 1 {
		return nil, errors.New("curve.Point.Unmarshal: invalid point: x >= field prime")
	}
	v, ok := c.DecompressPoint(&cp)
	if !ok {
		return nil, fmt.Errorf("curve.Point.Unmarshal: invalid point: %w", ErrNotOnCurve)
	}
	return v, nil
}
