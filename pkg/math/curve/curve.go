// Package curve implements point compression for short Weierstrass curves
// y² = x³ + a⋅x + b over a prime field 𝔽ₚ.
//
// A point is compressed to its x coordinate and the parity of y.
// Decompression recovers y with a modular square root, see arith.Prime.
package curve

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/weierstrass/pkg/math/arith"
)

// Curve is the curve y² = x³ + a⋅x + b (mod p).
//
// p must be 2 or an odd prime, and 4a³ + 27b² ≠ 0 (mod p) is assumed.
// Neither is checked.
//
// A Curve is immutable and safe for concurrent use: its cached values are
// copied before being passed to saferith.
type Curve struct {
	a, b *saferith.Nat
	p    *arith.Prime
}

// NewCurve returns the curve y² = x³ + a⋅x + b over ℤₚ.
// The coefficients are reduced mod p.
func NewCurve(a, b *saferith.Nat, p *saferith.Modulus) *Curve {
	return &Curve{
		a: new(saferith.Nat).Mod(a, p),
		b: new(saferith.Nat).Mod(b, p),
		p: arith.NewPrime(p),
	}
}

// NewCurveFromUint64 is NewCurve for small parameters.
func NewCurveFromUint64(a, b, p uint64) *Curve {
	return NewCurve(
		new(saferith.Nat).SetUint64(a),
		new(saferith.Nat).SetUint64(b),
		saferith.ModulusFromUint64(p),
	)
}

// A returns the coefficient a.
func (c *Curve) A() *saferith.Nat {
	return new(saferith.Nat).SetNat(c.a)
}

// B returns the coefficient b.
func (c *Curve) B() *saferith.Nat {
	return new(saferith.Nat).SetNat(c.b)
}

// P returns the field modulus.
func (c *Curve) P() *saferith.Modulus {
	return c.p.Modulus
}

// rhs returns x³ + a⋅x + b (mod p).
func (c *Curve) rhs(x *saferith.Nat) *saferith.Nat {
	p := c.p.Modulus
	x = new(saferith.Nat).SetNat(x)
	out := new(saferith.Nat).ModMul(x, x, p)
	out.ModAdd(out, c.A(), p)
	out.ModMul(out, x, p)
	out.ModAdd(out, c.B(), p)
	return out
}

// IsOnCurve returns true if v is the identity, or if its coordinates satisfy the
// curve equation.
//
// The coordinates of v must be reduced mod p.
func (c *Curve) IsOnCurve(v *Point) bool {
	if v.IsIdentity() {
		return true
	}
	y := v.Y()
	lhs := new(saferith.Nat).ModMul(y, y, c.p.Modulus)
	return lhs.Eq(c.rhs(v.x)) == 1
}

// Compress returns the x coordinate of v and the parity of its y coordinate.
// The identity has no compressed form, and false is returned instead.
func (c *Curve) Compress(v *Point) (*CompressedPoint, bool) {
	if v.IsIdentity() {
		return nil, false
	}
	return &CompressedPoint{
		X:   new(saferith.Nat).SetNat(v.x),
		Odd: arith.IsOdd(v.y),
	}, true
}

// Decompress returns the point (x, y) on the curve such that y is odd iff odd is true.
//
// If x is not the x coordinate of any point on the curve, false is returned.
// This happens for roughly half of all field elements.
// x must be reduced mod p.
func (c *Curve) Decompress(x *saferith.Nat, odd bool) (*Point, bool) {
	y, ok := c.p.Sqrt(c.rhs(x))
	if !ok {
		return nil, false
	}
	// the other root is p - y, and has the opposite parity unless y = 0
	if arith.IsOdd(y) != odd {
		y = new(saferith.Nat).ModNeg(y, c.p.Modulus)
	}
	return NewPoint(x, y), true
}

// DecompressPoint is Decompress applied to a CompressedPoint.
func (c *Curve) DecompressPoint(cp *CompressedPoint) (*Point, bool) {
	return c.Decompress(cp.X, cp.Odd)
}

// byteLen is the number of bytes needed to hold an element of 𝔽ₚ.
func (c *Curve) byteLen() int {
	return (c.p.BitLen() + 7) / 8
}

// Domain implements hash.WriterToWithDomain.
func (c *Curve) Domain() string {
	return "Weierstrass Curve"
}

// WriteTo implements io.WriterTo, writing p, a and b as fixed size big-endian integers.
func (c *Curve) WriteTo(w io.Writer) (int64, error) {
	size := c.byteLen()
	buf := make([]byte, 3*size)
	c.p.Nat().Big().FillBytes(buf[:size])
	c.A().Big().FillBytes(buf[size : 2*size])
	c.B().Big().FillBytes(buf[2*size:])
	n, err := w.Write(buf)
	return int64(n), err
}
