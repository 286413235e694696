package arith

import (
	"fmt"
	"sync"

	"github.com/cronokirby/saferith"
)

// Prime wraps a saferith.Modulus holding a prime p, and caches the values needed
// to extract square roots mod p.
//
// With p - 1 = q⋅2ˢ and q odd, square roots are computed with Tonelli-Shanks.
// When s = 1 (p ≡ 3 mod 4) the root is a^((p+1)/4) and no iteration is needed.
//
// p = 2 is accepted as a degenerate case where every element is its own root.
// Any other even modulus is rejected by NewPrime.
// Primality is never checked: a composite p may lead to a panic or to wrong results.
type Prime struct {
	// represents p
	*saferith.Modulus
	// p = 2
	degenerate bool
	// half = (p-1)/2
	half *saferith.Nat
	// p - 1 = q⋅2ˢ
	q *saferith.Nat
	s int
	// rootExp = (p+1)/4 if s = 1, (q+1)/2 otherwise
	rootExp *saferith.Nat

	once sync.Once
	// z is the smallest quadratic non-residue, c = zᵠ (mod p)
	z, c *saferith.Nat
}

// NewPrime creates the cached values for p.
// The modulus is not copied.
func NewPrime(p *saferith.Modulus) *Prime {
	one := new(saferith.Nat).SetUint64(1)
	pNat := p.Nat()
	if pNat.Eq(new(saferith.Nat).SetUint64(2)) == 1 {
		return &Prime{Modulus: p, degenerate: true}
	}
	if !IsOdd(pNat) || isOne(pNat) {
		panic(fmt.Sprintf("arith: %v is neither 2 nor an odd prime", p.Nat().Big()))
	}

	q := new(saferith.Nat).Sub(pNat, one, -1)
	s := 0
	for !IsOdd(q) {
		q.Rsh(q, 1, -1)
		s++
	}

	rootExp := new(saferith.Nat)
	if s == 1 {
		// (p+1)/4
		rootExp.Add(pNat, one, p.BitLen()+1)
		rootExp.Rsh(rootExp, 2, -1)
	} else {
		// (q+1)/2
		rootExp.Add(q, one, p.BitLen())
		rootExp.Rsh(rootExp, 1, -1)
	}

	return &Prime{
		Modulus: p,
		half:    new(saferith.Nat).Rsh(pNat, 1, -1),
		q:       q,
		s:       s,
		rootExp: rootExp,
	}
}

// TwoAdicity returns s, where p - 1 = q⋅2ˢ with q odd.
// It returns 0 for p = 2.
func (p *Prime) TwoAdicity() int {
	return p.s
}

// Legendre returns (a/p).
// It panics for p = 2, which has no Legendre symbol.
func (p *Prime) Legendre(a *saferith.Nat) Symbol {
	if p.degenerate {
		panic("arith: Legendre symbol is undefined modulo 2")
	}
	return legendre(a, p.Modulus, clone(p.half))
}

// NonResidue returns the smallest z ≥ 1 such that (z/p) = -1.
func (p *Prime) NonResidue() *saferith.Nat {
	if p.degenerate {
		panic("arith: there are no quadratic non-residues modulo 2")
	}
	p.findNonResidue()
	return clone(p.z)
}

func (p *Prime) findNonResidue() {
	p.once.Do(func() {
		// the search is bounded by a private copy of p, never by the shared modulus
		pNat := p.Nat()
		one := new(saferith.Nat).SetUint64(1)
		z := new(saferith.Nat).SetUint64(1)
		for p.Legendre(z) != NonResidue {
			z.Add(z, one, p.BitLen())
			if _, _, lt := z.Cmp(pNat); lt != 1 {
				panic(fmt.Sprintf("arith: no quadratic non-residue modulo %v, the modulus is not prime", p.Nat().Big()))
			}
		}
		p.z = z
		p.c = new(saferith.Nat).Exp(clone(z), clone(p.q), p.Modulus)
	})
}

// Sqrt returns r such that r² ≡ a (mod p), and false if a is not a square mod p.
//
// a must be reduced mod p.
func (p *Prime) Sqrt(a *saferith.Nat) (*saferith.Nat, bool) {
	if p.degenerate {
		return clone(a), true
	}

	a = clone(a)
	switch p.Legendre(a) {
	case Zero:
		return new(saferith.Nat).SetUint64(0), true
	case NonResidue:
		return nil, false
	}

	if p.s == 1 {
		return new(saferith.Nat).Exp(a, clone(p.rootExp), p.Modulus), true
	}

	p.findNonResidue()
	m := p.s
	c := clone(p.c)
	t := new(saferith.Nat).Exp(a, clone(p.q), p.Modulus)
	r := new(saferith.Nat).Exp(a, clone(p.rootExp), p.Modulus)

	var t2i, b saferith.Nat
	for !isOne(t) {
		// the order of t is 2ⁱ, with 0 < i < m
		i := 0
		t2i.SetNat(t)
		for !isOne(&t2i) {
			t2i.ModMul(&t2i, &t2i, p.Modulus)
			i++
			if i == m {
				panic(fmt.Sprintf("arith: Tonelli-Shanks failed to converge, %v is not prime", p.Nat().Big()))
			}
		}

		// b = c^(2^(m-i-1))
		b.SetNat(c)
		for j := 0; j < m-i-1; j++ {
			b.ModMul(&b, &b, p.Modulus)
		}

		m = i
		c.ModMul(&b, &b, p.Modulus)
		t.ModMul(t, c, p.Modulus)
		r.ModMul(r, &b, p.Modulus)
	}
	return r, true
}

// ModSqrt returns a square root of a mod p, and false if none exists.
//
// p must be 2 or an odd prime, and a must be reduced mod p.
// Callers taking many roots mod the same p should build a Prime once instead.
func ModSqrt(a *saferith.Nat, p *saferith.Modulus) (*saferith.Nat, bool) {
	return NewPrime(p).Sqrt(a)
}
