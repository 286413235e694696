package curve

import (
	"fmt"

	"github.com/cronokirby/saferith"
)

// Point is either the point at infinity, or an affine point (x, y).
//
// The zero value is the identity.
// Whether the point lies on a given curve is not enforced, see Curve.IsOnCurve.
type Point struct {
	x, y   *saferith.Nat
	affine bool
}

// NewPoint returns the affine point (x, y).
// The coordinates are copied.
func NewPoint(x, y *saferith.Nat) *Point {
	return &Point{
		x:      new(saferith.Nat).SetNat(x),
		y:      new(saferith.Nat).SetNat(y),
		affine: true,
	}
}

// NewIdentityPoint returns the point at infinity.
func NewIdentityPoint() *Point {
	return new(Point)
}

// IsIdentity returns true if the point is ∞.
func (v *Point) IsIdentity() bool {
	return !v.affine
}

// X returns a copy of the x coordinate, or nil for the identity.
func (v *Point) X() *saferith.Nat {
	if v.IsIdentity() {
		return nil
	}
	return new(saferith.Nat).SetNat(v.x)
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (v *Point) Y() *saferith.Nat {
	if v.IsIdentity() {
		return nil
	}
	return new(saferith.Nat).SetNat(v.y)
}

// Equal returns true if v and u are both the identity, or have the same coordinates.
func (v *Point) Equal(u *Point) bool {
	if v.IsIdentity() || u.IsIdentity() {
		return v.IsIdentity() && u.IsIdentity()
	}
	return v.x.Eq(u.x) == 1 && v.y.Eq(u.y) == 1
}

// String implements fmt.Stringer.
func (v *Point) String() string {
	if v == nil {
		return "nil"
	}
	if v.IsIdentity() {
		return "Point{Identity}"
	}
	return fmt.Sprintf("Point{X: %v, Y: %v}", v.x.Big(), v.y.Big())
}

// CompressedPoint is the x coordinate of an affine point, together with the parity of y.
type CompressedPoint struct {
	X   *saferith.Nat
	Odd bool
}

// Equal returns true if both pairs are identical.
func (cp *CompressedPoint) Equal(other *CompressedPoint) bool {
	return cp.Odd == other.Odd && cp.X.Eq(other.X) == 1
}

// String implements fmt.Stringer.
func (cp *CompressedPoint) String() string {
	if cp == nil {
		return "nil"
	}
	parity := "even"
	if cp.Odd {
		parity = "odd"
	}
	return fmt.Sprintf("CompressedPoint{X: %v, %s}", cp.X.Big(), parity)
}
