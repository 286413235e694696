// Package arith contains number theoretic helpers over prime fields, built on saferith.
package arith

import "github.com/cronokirby/saferith"

// IsOdd returns true if x is odd.
func IsOdd(x *saferith.Nat) bool {
	return x.Byte(0)&1 == 1
}

// isOne returns true if x = 1.
func isOne(x *saferith.Nat) bool {
	return x.Eq(new(saferith.Nat).SetUint64(1)) == 1
}

// clone copies x.
// saferith normalizes the limbs of its operands in place, so cached values
// are never handed to it directly.
func clone(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).SetNat(x)
}
