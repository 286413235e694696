package arith

import (
	"fmt"

	"github.com/cronokirby/saferith"
)

// Symbol is the value of the Legendre symbol (a/p).
type Symbol int

const (
	NonResidue Symbol = -1
	Zero       Symbol = 0
	Residue    Symbol = 1
)

// String implements fmt.Stringer.
func (s Symbol) String() string {
	switch s {
	case NonResidue:
		return "non-residue"
	case Zero:
		return "zero"
	case Residue:
		return "residue"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Legendre returns (a/p), computed as a^((p-1)/2) (mod p).
//
// p must be an odd prime, and Legendre panics if p is even.
// For a composite p the result carries no meaning: anything other than 0 or 1
// is reported as NonResidue.
func Legendre(a *saferith.Nat, p *saferith.Modulus) Symbol {
	mustBeOdd(p)
	return legendre(a, p, new(saferith.Nat).Rsh(p.Nat(), 1, -1))
}

// legendre computes aᵉ (mod p) with e = (p-1)/2 and maps the result to a Symbol.
func legendre(a *saferith.Nat, p *saferith.Modulus, e *saferith.Nat) Symbol {
	ls := new(saferith.Nat).Exp(clone(a), e, p)
	switch {
	case ls.EqZero() == 1:
		return Zero
	case isOne(ls):
		return Residue
	default:
		return NonResidue
	}
}

func mustBeOdd(p *saferith.Modulus) {
	if !IsOdd(p.Nat()) {
		panic(fmt.Sprintf("arith: Legendre symbol requires an odd prime modulus, got %v", p.Nat().Big()))
	}
}
